package errval

import (
	"fmt"
	"math"
)

// ErrorValue is a quantity with a symmetric uncertainty bound: a value of
// numeric kind T and a non-negative float64 error. The zero ErrorValue has
// value 0, error 0, and the Zero default-error policy.
//
// The error component is guaranteed non-negative at all times; constructors
// and propagation steps reject or never produce negative bounds.
type ErrorValue[T Numeric] struct {
	value  T
	err    float64
	policy Policy[T]
}

// New creates an ErrorValue from an explicit (value, error) pair. It fails
// with a DomainError if the error bound is negative or NaN.
func New[T Numeric](value T, err float64) (ErrorValue[T], error) {
	if err < 0 || math.IsNaN(err) {
		return ErrorValue[T]{}, NewDomainError("new", "error bound must be non-negative, got %v", err)
	}
	return ErrorValue[T]{value: value, err: err}, nil
}

// MustNew is like New but panics on a negative or NaN error bound. It is
// intended for constants and tests where the bound is statically known to
// be valid.
func MustNew[T Numeric](value T, err float64) ErrorValue[T] {
	ev, e := New(value, err)
	if e != nil {
		panic(e)
	}
	return ev
}

// Exact creates an ErrorValue with error 0, representing a quantity known
// exactly.
func Exact[T Numeric](value T) ErrorValue[T] {
	return ErrorValue[T]{value: value}
}

// FromLiteral promotes a bare numeric literal to an ErrorValue, computing
// its error through the given policy. The resulting value carries the
// policy. It fails with a ConfigError if the policy is Custom with no
// function.
func FromLiteral[T Numeric](value T, p Policy[T]) (ErrorValue[T], error) {
	e, err := p.errorFor(value)
	if err != nil {
		return ErrorValue[T]{}, err
	}
	return ErrorValue[T]{value: value, err: e, policy: p}, nil
}

// NewWithPolicy creates an ErrorValue from an explicit (value, error) pair
// carrying the given default-error policy. It fails with a DomainError if
// the error bound is negative or NaN.
func NewWithPolicy[T Numeric](value T, err float64, p Policy[T]) (ErrorValue[T], error) {
	ev, e := New(value, err)
	if e != nil {
		return ErrorValue[T]{}, e
	}
	ev.policy = p
	return ev, nil
}

// Promote widens an ErrorValue of any numeric kind to the float64 kind,
// preserving the error bound and the default-error policy. Integral
// quantities must be promoted before applying transcendental propagation
// functions that operate on floating kinds.
func Promote[T Numeric](ev ErrorValue[T]) ErrorValue[float64] {
	return ErrorValue[float64]{
		value:  float64(ev.value),
		err:    ev.err,
		policy: ev.policy.Promote(),
	}
}

// Value returns the value component, discarding the error bound. This is
// the explicit narrowing conversion to the underlying value type.
func (ev ErrorValue[T]) Value() T { return ev.value }

// Err returns the absolute error bound.
func (ev ErrorValue[T]) Err() float64 { return ev.err }

// Policy returns the default-error policy carried by this value.
func (ev ErrorValue[T]) Policy() Policy[T] { return ev.policy }

// Mode returns the active default-error policy mode.
func (ev ErrorValue[T]) Mode() PolicyMode { return ev.policy.mode }

// CustomFunc returns the configured custom error function. The second
// return is false unless the active mode is PolicyCustom.
func (ev ErrorValue[T]) CustomFunc() (ErrorFunc[T], bool) {
	return ev.policy.Func()
}

// SetPolicy configures the default-error policy in place.
//
// PolicyZero and PolicyHalfUnit are accepted unconditionally and fn is
// ignored. PolicyCustom requires a non-nil fn. Any other mode fails with a
// ConfigError and leaves the active policy unchanged.
func (ev *ErrorValue[T]) SetPolicy(mode PolicyMode, fn ErrorFunc[T]) error {
	switch mode {
	case PolicyZero:
		ev.policy = ZeroPolicy[T]()
	case PolicyHalfUnit:
		ev.policy = HalfUnitPolicy[T]()
	case PolicyCustom:
		p, err := CustomPolicy(fn)
		if err != nil {
			return err
		}
		ev.policy = p
	default:
		return NewConfigError("invalid default-error policy mode: %d", int(mode))
	}
	return nil
}

// Set replaces both components in place. It fails with a DomainError if the
// error bound is negative or NaN, leaving the value unmodified.
func (ev *ErrorValue[T]) Set(value T, err float64) error {
	if err < 0 || math.IsNaN(err) {
		return NewDomainError("set", "error bound must be non-negative, got %v", err)
	}
	ev.value = value
	ev.err = err
	return nil
}

// At returns component i widened to float64: index 0 is the value, index 1
// is the error bound. Any other index fails with an IndexError.
func (ev ErrorValue[T]) At(i int) (float64, error) {
	switch i {
	case 0:
		return float64(ev.value), nil
	case 1:
		return ev.err, nil
	default:
		return 0, IndexError{Index: i}
	}
}

// Min returns the lower bound of the quantity, value − error.
func (ev ErrorValue[T]) Min() float64 { return float64(ev.value) - ev.err }

// Max returns the upper bound of the quantity, value + error.
func (ev ErrorValue[T]) Max() float64 { return float64(ev.value) + ev.err }

// Cmp compares by value alone and returns -1, 0, or +1. The error bound
// does not participate in ordering: two quantities with equal value but
// different uncertainty compare equal. This is a deliberate simplification
// of the ordering contract, not an oversight.
func (ev ErrorValue[T]) Cmp(other ErrorValue[T]) int {
	switch {
	case ev.value < other.value:
		return -1
	case ev.value > other.value:
		return 1
	default:
		return 0
	}
}

// String renders the quantity as "<value> ± <error>".
func (ev ErrorValue[T]) String() string {
	return fmt.Sprintf("%v ± %v", ev.value, ev.err)
}
