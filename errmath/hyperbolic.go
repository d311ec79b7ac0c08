package errmath

import (
	"math"

	"github.com/agbru/errcalc/errval"
)

// Sinh returns the hyperbolic sine of x. Error multiplier: cosh(x).
func Sinh[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("sinh", x, math.Sinh(v), math.Cosh(v)*x.Err())
}

// Cosh returns the hyperbolic cosine of x. Error multiplier: |sinh(x)|.
func Cosh[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("cosh", x, math.Cosh(v), math.Abs(math.Sinh(v))*x.Err())
}

// Tanh returns the hyperbolic tangent of x. Error multiplier: 1/cosh²(x).
func Tanh[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	c := math.Cosh(v)
	return derive("tanh", x, math.Tanh(v), x.Err()/(c*c))
}

// Asinh returns the inverse hyperbolic sine of x. Error multiplier:
// 1/√(1+x²).
func Asinh[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	return derive("asinh", x, math.Asinh(v), x.Err()/math.Sqrt(1+v*v))
}

// Acosh returns the inverse hyperbolic cosine of x, defined for x > 1.
// Error multiplier: 1/√(x²−1).
func Acosh[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v < 1 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("acosh", "argument %v below 1", v)
	}
	d := math.Sqrt(v*v - 1)
	if d == 0 {
		return errval.ErrorValue[T]{}, errval.DivisionByZeroError{Op: "acosh"}
	}
	return derive("acosh", x, math.Acosh(v), x.Err()/d)
}

// Atanh returns the inverse hyperbolic tangent of x, defined for |x| < 1.
// Error multiplier: 1/(1−x²).
func Atanh[T errval.Float](x errval.ErrorValue[T]) (errval.ErrorValue[T], error) {
	v := float64(x.Value())
	if v <= -1 || v >= 1 {
		return errval.ErrorValue[T]{}, errval.NewDomainError("atanh", "argument %v outside (-1, 1)", v)
	}
	return derive("atanh", x, math.Atanh(v), x.Err()/(1-v*v))
}
