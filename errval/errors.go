package errval

import "fmt"

// DomainError reports an argument outside the mathematical domain of an
// operation, or a negative error bound supplied where non-negativity is
// required.
type DomainError struct {
	// Op is the name of the operation that rejected the argument.
	Op string
	// Reason explains the domain violation.
	Reason string
}

// Error returns the error message for a DomainError.
func (e DomainError) Error() string {
	return fmt.Sprintf("%s: domain error: %s", e.Op, e.Reason)
}

// NewDomainError creates a DomainError with a formatted reason.
func NewDomainError(op, format string, a ...any) error {
	return DomainError{Op: op, Reason: fmt.Sprintf(format, a...)}
}

// DivisionByZeroError reports a zero divisor encountered in a division or
// in the relative-error formula of a multiplicative operation.
type DivisionByZeroError struct {
	// Op is the name of the operation in which the zero divisor occurred.
	Op string
}

// Error returns the error message for a DivisionByZeroError.
func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero in error propagation", e.Op)
}

// IndexError reports component indexing with a value other than 0 (value)
// or 1 (error).
type IndexError struct {
	// Index is the out-of-range index that was requested.
	Index int
}

// Error returns the error message for an IndexError.
func (e IndexError) Error() string {
	return fmt.Sprintf("error value index must be 0 or 1, got %d", e.Index)
}

// ConfigError reports an invalid default-error policy configuration: an
// unrecognized mode, or Custom mode requested without a function.
type ConfigError struct {
	// Message explains the configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}
