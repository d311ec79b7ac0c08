package errval

import "math"

// Arithmetic on ErrorValue follows first-order worst-case propagation:
// additive operations add absolute errors, multiplicative operations add
// relative errors scaled by the result magnitude. Binary operations treat
// operand errors as independent; the result carries the left operand's
// default-error policy.

// Add returns the sum. The result error is the sum of the operand errors.
func (ev ErrorValue[T]) Add(other ErrorValue[T]) ErrorValue[T] {
	return ErrorValue[T]{
		value:  ev.value + other.value,
		err:    ev.err + other.err,
		policy: ev.policy,
	}
}

// Sub returns the difference. Errors still add: uncertainty never cancels.
func (ev ErrorValue[T]) Sub(other ErrorValue[T]) ErrorValue[T] {
	return ErrorValue[T]{
		value:  ev.value - other.value,
		err:    ev.err + other.err,
		policy: ev.policy,
	}
}

// Mul returns the product. The result error is
//
//	|result| × (err(a)/|value(a)| + err(b)/|value(b)|)
//
// computed from the pre-operation operand magnitudes. A zero-valued operand
// is a zero divisor in the relative-error formula and fails with a
// DivisionByZeroError.
func (ev ErrorValue[T]) Mul(other ErrorValue[T]) (ErrorValue[T], error) {
	rel, err := relativeErrorSum("mul", ev, other)
	if err != nil {
		return ErrorValue[T]{}, err
	}
	value := ev.value * other.value
	return ErrorValue[T]{
		value:  value,
		err:    math.Abs(float64(value)) * rel,
		policy: ev.policy,
	}, nil
}

// Div returns the quotient, propagating error by the same relative-error
// addition as Mul. A zero divisor, or a zero-valued dividend (a zero
// divisor in the relative-error formula), fails with a
// DivisionByZeroError; both operands are left unmodified.
func (ev ErrorValue[T]) Div(other ErrorValue[T]) (ErrorValue[T], error) {
	if other.value == 0 {
		return ErrorValue[T]{}, DivisionByZeroError{Op: "div"}
	}
	rel, err := relativeErrorSum("div", ev, other)
	if err != nil {
		return ErrorValue[T]{}, err
	}
	value := ev.value / other.value
	return ErrorValue[T]{
		value:  value,
		err:    math.Abs(float64(value)) * rel,
		policy: ev.policy,
	}, nil
}

// relativeErrorSum returns err(a)/|value(a)| + err(b)/|value(b)|, failing
// with a DivisionByZeroError when either magnitude is zero.
func relativeErrorSum[T Numeric](op string, a, b ErrorValue[T]) (float64, error) {
	av, bv := math.Abs(float64(a.value)), math.Abs(float64(b.value))
	if av == 0 || bv == 0 {
		return 0, DivisionByZeroError{Op: op}
	}
	return a.err/av + b.err/bv, nil
}

// Neg returns the negated value with an unchanged error bound.
func (ev ErrorValue[T]) Neg() ErrorValue[T] {
	return ErrorValue[T]{value: -ev.value, err: ev.err, policy: ev.policy}
}

// AddNum adds a bare literal, promoting it through the receiver's
// default-error policy.
func (ev ErrorValue[T]) AddNum(k T) (ErrorValue[T], error) {
	lit, err := FromLiteral(k, ev.policy)
	if err != nil {
		return ErrorValue[T]{}, err
	}
	return ev.Add(lit), nil
}

// SubNum subtracts a bare literal, promoting it through the receiver's
// default-error policy.
func (ev ErrorValue[T]) SubNum(k T) (ErrorValue[T], error) {
	lit, err := FromLiteral(k, ev.policy)
	if err != nil {
		return ErrorValue[T]{}, err
	}
	return ev.Sub(lit), nil
}

// MulNum multiplies by a bare literal, promoting it through the receiver's
// default-error policy.
func (ev ErrorValue[T]) MulNum(k T) (ErrorValue[T], error) {
	lit, err := FromLiteral(k, ev.policy)
	if err != nil {
		return ErrorValue[T]{}, err
	}
	return ev.Mul(lit)
}

// DivNum divides by a bare literal, promoting it through the receiver's
// default-error policy.
func (ev ErrorValue[T]) DivNum(k T) (ErrorValue[T], error) {
	lit, err := FromLiteral(k, ev.policy)
	if err != nil {
		return ErrorValue[T]{}, err
	}
	return ev.Div(lit)
}

// AddAssign adds other to the receiver in place.
func (ev *ErrorValue[T]) AddAssign(other ErrorValue[T]) {
	res := ev.Add(other)
	ev.value, ev.err = res.value, res.err
}

// SubAssign subtracts other from the receiver in place.
func (ev *ErrorValue[T]) SubAssign(other ErrorValue[T]) {
	res := ev.Sub(other)
	ev.value, ev.err = res.value, res.err
}

// MulAssign multiplies the receiver in place. The error formula uses the
// receiver's pre-operation value: Mul computes on a snapshot before any
// mutation, so the relative error of the receiver is never taken against
// the already-updated product. On failure the receiver is unmodified.
func (ev *ErrorValue[T]) MulAssign(other ErrorValue[T]) error {
	res, err := ev.Mul(other)
	if err != nil {
		return err
	}
	ev.value, ev.err = res.value, res.err
	return nil
}

// DivAssign divides the receiver in place, with the same pre-operation
// snapshot guarantee as MulAssign. On failure the receiver is unmodified.
func (ev *ErrorValue[T]) DivAssign(other ErrorValue[T]) error {
	res, err := ev.Div(other)
	if err != nil {
		return err
	}
	ev.value, ev.err = res.value, res.err
	return nil
}

// AddNumAssign adds a bare literal in place, promoting it through the
// receiver's default-error policy.
func (ev *ErrorValue[T]) AddNumAssign(k T) error {
	res, err := ev.AddNum(k)
	if err != nil {
		return err
	}
	ev.value, ev.err = res.value, res.err
	return nil
}

// SubNumAssign subtracts a bare literal in place, promoting it through the
// receiver's default-error policy.
func (ev *ErrorValue[T]) SubNumAssign(k T) error {
	res, err := ev.SubNum(k)
	if err != nil {
		return err
	}
	ev.value, ev.err = res.value, res.err
	return nil
}

// MulNumAssign multiplies by a bare literal in place, promoting it through
// the receiver's default-error policy. On failure the receiver is
// unmodified.
func (ev *ErrorValue[T]) MulNumAssign(k T) error {
	res, err := ev.MulNum(k)
	if err != nil {
		return err
	}
	ev.value, ev.err = res.value, res.err
	return nil
}

// DivNumAssign divides by a bare literal in place, promoting it through the
// receiver's default-error policy. On failure the receiver is unmodified.
func (ev *ErrorValue[T]) DivNumAssign(k T) error {
	res, err := ev.DivNum(k)
	if err != nil {
		return err
	}
	ev.value, ev.err = res.value, res.err
	return nil
}

// Inc increments the value by one through the literal-addition path, so the
// error bound grows by the promoted error of the literal 1 (0 under the
// Zero policy, 0.5 under HalfUnit).
func (ev *ErrorValue[T]) Inc() error {
	return ev.AddNumAssign(1)
}

// Dec decrements the value by one through the literal-subtraction path.
func (ev *ErrorValue[T]) Dec() error {
	return ev.SubNumAssign(1)
}
