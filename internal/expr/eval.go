package expr

import (
	"math"

	"github.com/agbru/errcalc/errmath"
	"github.com/agbru/errcalc/errval"
)

// Evaluator evaluates parsed expressions. The configured policy supplies
// the error bound for plain literals and is carried by every value the
// evaluator produces.
type Evaluator struct {
	policy errval.Policy[float64]
}

// NewEvaluator creates an Evaluator whose plain literals take their error
// bound from the given policy.
func NewEvaluator(policy errval.Policy[float64]) *Evaluator {
	return &Evaluator{policy: policy}
}

// Policy returns the evaluator's default-error policy.
func (e *Evaluator) Policy() errval.Policy[float64] { return e.policy }

// SetPolicy replaces the evaluator's default-error policy.
func (e *Evaluator) SetPolicy(policy errval.Policy[float64]) { e.policy = policy }

// Evaluate parses and evaluates src in one step.
func (e *Evaluator) Evaluate(src string) (errval.ErrorValue[float64], error) {
	node, err := Parse(src)
	if err != nil {
		return errval.ErrorValue[float64]{}, err
	}
	return e.Eval(node)
}

// Eval evaluates a parsed expression tree.
func (e *Evaluator) Eval(node Node) (errval.ErrorValue[float64], error) {
	var zero errval.ErrorValue[float64]
	switch n := node.(type) {
	case LiteralNode:
		return errval.FromLiteral(n.Value, e.policy)
	case UncertainNode:
		return errval.NewWithPolicy(n.Value, n.Err, e.policy)
	case NegNode:
		operand, err := e.Eval(n.Operand)
		if err != nil {
			return zero, err
		}
		return operand.Neg(), nil
	case BinaryNode:
		return e.evalBinary(n)
	case CallNode:
		return e.evalCall(n)
	default:
		return zero, errval.NewDomainError("eval", "unknown expression node at offset %d", node.Pos())
	}
}

func (e *Evaluator) evalBinary(n BinaryNode) (errval.ErrorValue[float64], error) {
	var zero errval.ErrorValue[float64]
	left, err := e.Eval(n.Left)
	if err != nil {
		return zero, err
	}

	// An exact literal exponent keeps the scalar power rule available,
	// which also covers negative bases with integral exponents.
	if n.Op == tokCaret {
		if lit, ok := n.Right.(LiteralNode); ok {
			return errmath.PowScalar(left, lit.Value)
		}
	}

	right, err := e.Eval(n.Right)
	if err != nil {
		return zero, err
	}

	switch n.Op {
	case tokPlus:
		return left.Add(right), nil
	case tokMinus:
		return left.Sub(right), nil
	case tokStar:
		return left.Mul(right)
	case tokSlash:
		return left.Div(right)
	case tokCaret:
		if right.Err() == 0 {
			return errmath.PowScalar(left, right.Value())
		}
		return errmath.Pow(left, right)
	default:
		return zero, errval.NewDomainError("eval", "unknown operator at offset %d", n.Offset)
	}
}

// unaryFuncs maps function names to single-argument propagation functions.
var unaryFuncs = map[string]func(errval.ErrorValue[float64]) (errval.ErrorValue[float64], error){
	"sin":   errmath.Sin[float64],
	"cos":   errmath.Cos[float64],
	"tan":   errmath.Tan[float64],
	"asin":  errmath.Asin[float64],
	"acos":  errmath.Acos[float64],
	"atan":  errmath.Atan[float64],
	"sinh":  errmath.Sinh[float64],
	"cosh":  errmath.Cosh[float64],
	"tanh":  errmath.Tanh[float64],
	"asinh": errmath.Asinh[float64],
	"acosh": errmath.Acosh[float64],
	"atanh": errmath.Atanh[float64],
	"exp":   errmath.Exp[float64],
	"expm1": errmath.Expm1[float64],
	"exp2":  errmath.Exp2[float64],
	"log":   errmath.Log[float64],
	"log1p": errmath.Log1p[float64],
	"log10": errmath.Log10[float64],
	"log2":  errmath.Log2[float64],
	"sqrt":  errmath.Sqrt[float64],
	"cbrt":  errmath.Cbrt[float64],
}

// binaryFuncs maps function names to two-argument propagation functions.
var binaryFuncs = map[string]func(a, b errval.ErrorValue[float64]) (errval.ErrorValue[float64], error){
	"pow":   errmath.Pow[float64],
	"hypot": errmath.Hypot[float64],
	"atan2": errmath.Atan2[float64],
}

func (e *Evaluator) evalCall(n CallNode) (errval.ErrorValue[float64], error) {
	var zero errval.ErrorValue[float64]

	if fn, ok := unaryFuncs[n.Name]; ok {
		if len(n.Args) != 1 {
			return zero, newParseError(n.Offset, "%s expects 1 argument, got %d", n.Name, len(n.Args))
		}
		arg, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		return fn(arg)
	}

	if fn, ok := binaryFuncs[n.Name]; ok {
		if len(n.Args) != 2 {
			return zero, newParseError(n.Offset, "%s expects 2 arguments, got %d", n.Name, len(n.Args))
		}
		a, err := e.Eval(n.Args[0])
		if err != nil {
			return zero, err
		}
		b, err := e.Eval(n.Args[1])
		if err != nil {
			return zero, err
		}
		return fn(a, b)
	}

	if n.Name == "logn" {
		return e.evalLogn(n)
	}

	return zero, newParseError(n.Offset, "unknown function %q", n.Name)
}

// evalLogn handles logn(x, n). The base must be an exact integral value
// of at least 2.
func (e *Evaluator) evalLogn(n CallNode) (errval.ErrorValue[float64], error) {
	var zero errval.ErrorValue[float64]
	if len(n.Args) != 2 {
		return zero, newParseError(n.Offset, "logn expects 2 arguments, got %d", len(n.Args))
	}
	x, err := e.Eval(n.Args[0])
	if err != nil {
		return zero, err
	}

	// A literal base is taken as exact so the default-error policy never
	// smears it into an uncertain value.
	var baseValue float64
	if lit, ok := n.Args[1].(LiteralNode); ok {
		baseValue = lit.Value
	} else {
		base, err := e.Eval(n.Args[1])
		if err != nil {
			return zero, err
		}
		if base.Err() != 0 {
			return zero, errval.NewDomainError("logn", "base must be exact, got %v", base)
		}
		baseValue = base.Value()
	}
	if baseValue != math.Trunc(baseValue) {
		return zero, errval.NewDomainError("logn", "base must be an integer, got %v", baseValue)
	}
	return errmath.Logn(x, int(baseValue))
}
