package errmath

import (
	"math"

	"github.com/agbru/errcalc/errval"
)

// Sqrt returns the square root of x, defined for x > 0. Error multiplier:
// 1/(2·√x); a zero argument makes the multiplier's divisor zero and fails
// with a DivisionByZeroError.
func Sqrt[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v < 0 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("sqrt", "argument %v negative", v)
	}
	if v == 0 {
		return errval.ErrorValue[T]{}, errval.DivisionByZeroError{Op: "sqrt"}
	}
	r := math.Sqrt(v)
	return derive("sqrt", x, r, x.Err()/(2*r))
}

// Cbrt returns the cube root of x, defined for non-zero x. Error
// multiplier: 1/(3·∛x).
func Cbrt[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v == 0 {
		return errval.ErrorValue[T]{}, errval.DivisionByZeroError{Op: "cbrt"}
	}
	r := math.Cbrt(v)
	return derive("cbrt", x, r, x.Err()/math.Abs(3*r))
}

// Pow returns base**exponent for two uncertain operands, defined for a
// positive base. The error sums both contributions:
//
//	|y·x^(y−1)|·dx + |x^y·ln x|·dy
//
// The result carries the base operand's default-error policy.
func Pow[T errval.Float](base, exponent errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	x, y := float64(base.Value()), float64(exponent.Value())
	if x <= 0 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("pow", "base %v not positive", x)
	}
	v := math.Pow(x, y)
	errOut := math.Abs(y*math.Pow(x, y-1))*base.Err() + math.Abs(v*math.Log(x))*exponent.Err()
	return derive("pow", base, v, errOut)
}

// PowScalar returns base**n for an exact literal exponent. Error
// multiplier: |n·x^(n−1)|. A negative base with a non-integral exponent is
// outside the real domain and fails with a DomainError.
func PowScalar[T errval.Float](base errval.ErrorValue[T], n float64) (errval.ErrorValue[T], error) {
	x := float64(base.Value())
	v := math.Pow(x, n)
	if math.IsNaN(v) {
		return errval.ErrorValue[T]{}, errval.NewDomainError("pow", "base %v not valid for exponent %v", x, n)
	}
	return derive("pow", base, v, math.Abs(n*math.Pow(x, n-1))*base.Err())
}

// Hypot returns √(x²+y²). The error sums the per-argument contributions
// (|x|·dx + |y|·dy)/√(x²+y²); two zero-valued operands make the divisor
// zero and fail with a DivisionByZeroError. The result carries the first
// operand's default-error policy.
func Hypot[T errval.Float](x, y errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	vx, vy := float64(x.Value()), float64(y.Value())
	h := math.Hypot(vx, vy)
	if h == 0 {
		return errval.ErrorValue[T]{}, errval.DivisionByZeroError{Op: "hypot"}
	}
	errOut := (math.Abs(vx)*x.Err() + math.Abs(vy)*y.Err()) / h
	return derive("hypot", x, h, errOut)
}
