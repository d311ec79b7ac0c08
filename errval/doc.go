// Package errval implements a measurement-uncertainty value type: a
// (value, error) pair in which the error component is a symmetric bound on
// the uncertainty of the value. Arithmetic on ErrorValue propagates the
// error term using first-order (derivative-based) rules: addition and
// subtraction add absolute errors, multiplication and division add relative
// errors scaled by the result magnitude. Operand errors are assumed
// independent and are combined worst-case, not statistically.
//
// A bare numeric literal combined with an ErrorValue acquires an error
// through the value's default-error Policy (Zero, HalfUnit, or a custom
// function). The policy is carried by value: copies preserve it, and there
// is no package-level policy state.
//
// All failures are surfaced as typed errors (DomainError,
// DivisionByZeroError, IndexError, ConfigError) at the point of violation;
// no operation silently produces NaN or Inf in the error component.
package errval
