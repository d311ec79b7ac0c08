package errval

// PolicyMode identifies the rule by which a bare numeric literal acquires
// an error when combined with an ErrorValue.
type PolicyMode int

const (
	// PolicyZero assigns error 0 to bare literals.
	PolicyZero PolicyMode = iota
	// PolicyHalfUnit assigns half of one unit in the last meaningful
	// decimal place of the literal, modeling quantization uncertainty.
	PolicyHalfUnit
	// PolicyCustom assigns the result of a caller-supplied function.
	PolicyCustom
)

// String returns the mode name for display and logging.
func (m PolicyMode) String() string {
	switch m {
	case PolicyZero:
		return "zero"
	case PolicyHalfUnit:
		return "half-unit"
	case PolicyCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ErrorFunc computes the default error for a bare literal under a Custom
// policy.
type ErrorFunc[T Numeric] func(T) float64

// Policy is the default-error rule carried by an ErrorValue. It is an
// explicit value, never ambient state: constructing an ErrorValue from a
// bare literal takes the policy as a parameter or inherits it from the
// combining operand. The zero Policy is PolicyZero.
type Policy[T Numeric] struct {
	mode PolicyMode
	fn   ErrorFunc[T]
}

// ZeroPolicy returns the policy assigning error 0 to bare literals.
func ZeroPolicy[T Numeric]() Policy[T] {
	return Policy[T]{mode: PolicyZero}
}

// HalfUnitPolicy returns the policy assigning half of one unit in the last
// meaningful decimal place of a literal.
func HalfUnitPolicy[T Numeric]() Policy[T] {
	return Policy[T]{mode: PolicyHalfUnit}
}

// CustomPolicy returns a policy assigning fn(literal) as the default error.
// It fails with a ConfigError if fn is nil.
func CustomPolicy[T Numeric](fn ErrorFunc[T]) (Policy[T], error) {
	if fn == nil {
		return Policy[T]{}, NewConfigError("custom default-error policy requires a function")
	}
	return Policy[T]{mode: PolicyCustom, fn: fn}, nil
}

// Mode returns the active policy mode.
func (p Policy[T]) Mode() PolicyMode { return p.mode }

// Func returns the configured custom function. The second return is false
// unless the mode is PolicyCustom; a function configured earlier is never
// reported while another mode is active.
func (p Policy[T]) Func() (ErrorFunc[T], bool) {
	if p.mode != PolicyCustom {
		return nil, false
	}
	return p.fn, true
}

// Promote converts the policy to operate on float64 literals. A custom
// function is wrapped with a narrowing conversion of its argument, so the
// promoted policy preserves the configured behavior.
func (p Policy[T]) Promote() Policy[float64] {
	out := Policy[float64]{mode: p.mode}
	if p.fn != nil {
		fn := p.fn
		out.fn = func(x float64) float64 { return fn(T(x)) }
	}
	return out
}

// errorFor computes the default error for the literal x under this policy.
func (p Policy[T]) errorFor(x T) (float64, error) {
	switch p.mode {
	case PolicyZero:
		return 0, nil
	case PolicyHalfUnit:
		return halfUnitError(x), nil
	case PolicyCustom:
		if p.fn == nil {
			return 0, NewConfigError("custom default-error policy has no function")
		}
		e := p.fn(x)
		if e < 0 {
			return 0, NewDomainError("policy", "custom error function returned negative error %v", e)
		}
		return e, nil
	default:
		return 0, NewConfigError("invalid default-error policy mode: %d", int(p.mode))
	}
}
