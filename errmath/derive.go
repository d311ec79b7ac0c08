package errmath

import (
	"math"

	"github.com/agbru/errcalc/errval"
)

// derive builds the propagated result for a function applied to x: the new
// value and the already-scaled error term. The error term is taken in
// absolute value (the Σ|∂f/∂argᵢ|·errᵢ convention) and the result inherits
// x's default-error policy. Non-finite components are rejected so callers
// never observe silent NaN or Inf propagation.
func derive[T errval.Float](op string, x errval.ErrorValue[T], value, errOut float64) (errval.ErrorValue[T], error) {
	if math.IsNaN(value) {
		return errval.ErrorValue[T]{}, errval.NewDomainError(op, "result is not a number for input %v", x.Value())
	}
	if math.IsNaN(errOut) || math.IsInf(errOut, 0) {
		return errval.ErrorValue[T]{}, errval.NewDomainError(op, "propagated error is not finite for input %v", x.Value())
	}
	return errval.NewWithPolicy(T(value), math.Abs(errOut), x.Policy())
}
