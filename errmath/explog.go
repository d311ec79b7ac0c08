package errmath

import (
	"math"

	"github.com/agbru/errcalc/errval"
)

// Exp returns e**x. Error multiplier: exp(x).
func Exp[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("exp", x, math.Exp(v), math.Exp(v)*x.Err())
}

// Expm1 returns e**x − 1, accurate near zero. Error multiplier: exp(x).
func Expm1[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("expm1", x, math.Expm1(v), math.Exp(v)*x.Err())
}

// Exp2 returns 2**x. Error multiplier: 2**x × ln 2.
func Exp2[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("exp2", x, math.Exp2(v), math.Exp2(v)*math.Ln2*x.Err())
}

// Log returns the natural logarithm of x, defined for x > 0. Error
// multiplier: 1/x.
func Log[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v <= 0 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("log", "argument %v not positive", v)
	}
	return derive("log", x, math.Log(v), x.Err()/v)
}

// Log1p returns log(1+x), defined for x > −1. Error multiplier:
// 1/log(1+x); an argument of zero makes the multiplier's divisor zero and
// fails with a DivisionByZeroError.
func Log1p[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v <= -1 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("log1p", "argument %v not above -1", v)
	}
	d := math.Log1p(v)
	if d == 0 {
		return errval.ErrorValue[T]{}, errval.DivisionByZeroError{Op: "log1p"}
	}
	return derive("log1p", x, d, x.Err()/d)
}

// Log10 returns the decimal logarithm of x, defined for x > 0. Error
// multiplier: 1/(x·ln 10).
func Log10[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v <= 0 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("log10", "argument %v not positive", v)
	}
	return derive("log10", x, math.Log10(v), x.Err()/(v*math.Ln10))
}

// Log2 returns the binary logarithm of x, defined for x > 0. Error
// multiplier: 1/(x·ln 2).
func Log2[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v <= 0 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("log2", "argument %v not positive", v)
	}
	return derive("log2", x, math.Log2(v), x.Err()/(v*math.Ln2))
}

// Logn returns the base-n logarithm of a floating-kind x, defined for
// x > 0 and integral n ≥ 2. Error multiplier: 1/(x·ln n). The result keeps
// the operand's floating kind.
func Logn[T errval.Float](x errval.ErrorValue[T], n int) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if n < 2 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("logn", "base %d not above 1", n)
	}
	if v <= 0 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("logn", "argument %v not positive", v)
	}
	ln := math.Log(float64(n))
	return derive("logn", x, math.Log(v)/ln, x.Err()/(v*ln))
}

// LognInt returns the base-n logarithm of an integral-kind x. The result
// is promoted to the float64 value kind, preserving the error bound and
// the default-error policy.
func LognInt[T errval.Integer](x errval.ErrorValue[T], n int) (errval.ErrorValue[float64], error) {
	return Logn(errval.Promote(x), n)
}
