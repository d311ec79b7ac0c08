// Package errmath provides error-propagating counterparts of the math
// package's transcendental functions for errval.ErrorValue operands.
//
// Each function applies standard first-order (delta-method) propagation:
// for f applied to x the result error is |f′(value(x))| × err(x), and for a
// function of several uncertain arguments the per-argument contributions
// are summed worst-case. Results carry the first operand's default-error
// policy.
//
// Inputs outside a function's mathematical domain fail with an
// errval.DomainError, and zero divisors inside a propagation formula fail
// with an errval.DivisionByZeroError; no function silently returns NaN or
// Inf components.
package errmath
