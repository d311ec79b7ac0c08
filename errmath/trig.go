package errmath

import (
	"math"

	"github.com/agbru/errcalc/errval"
)

// Sin returns the sine of x. Error multiplier: |cos(x)|.
func Sin[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("sin", x, math.Sin(v), math.Abs(math.Cos(v))*x.Err())
}

// Cos returns the cosine of x. Error multiplier: |sin(x)|.
func Cos[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("cos", x, math.Cos(v), math.Abs(math.Sin(v))*x.Err())
}

// Tan returns the tangent of x. Error multiplier: 1/cos²(x).
func Tan[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	c := math.Cos(v)
	if c == 0 {
		return errval.ErrorValue[T]{}, errval.DivisionByZeroError{Op: "tan"}
	}
	return derive("tan", x, math.Tan(v), x.Err()/(c*c))
}

// Asin returns the arcsine of x, defined for |x| < 1. Error multiplier:
// 1/√(1−x²).
func Asin[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v < -1 || v > 1 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("asin", "argument %v outside [-1, 1]", v)
	}
	d := math.Sqrt(1 - v*v)
	if d == 0 {
		return errval.ErrorValue[T]{}, errval.DivisionByZeroError{Op: "asin"}
	}
	return derive("asin", x, math.Asin(v), x.Err()/d)
}

// Acos returns the arccosine of x, defined for |x| < 1. Error multiplier:
// 1/√(1−x²).
func Acos[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v < -1 || v > 1 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("acos", "argument %v outside [-1, 1]", v)
	}
	d := math.Sqrt(1 - v*v)
	if d == 0 {
		return errval.ErrorValue[T]{}, errval.DivisionByZeroError{Op: "acos"}
	}
	return derive("acos", x, math.Acos(v), x.Err()/d)
}

// Atan returns the arctangent of x. Error multiplier: 1/(1+x²).
func Atan[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("atan", x, math.Atan(v), x.Err()/(1+v*v))
}

// Atan2 returns the arctangent of y/x. It delegates to Atan on the
// uncertain quotient, so the division propagation rule applies first and a
// zero-valued operand fails with a DivisionByZeroError.
func Atan2[T errval.Float](y, x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	q, err := y.Div(x)
	if err != nil {
		return errval.ErrorValue[T]{}, err
	}
	return Atan(q)
}
