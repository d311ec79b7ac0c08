package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agbru/errcalc/errval"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess         = 0   // Indicates successful execution.
	ExitErrorGeneric    = 1   // Indicates a generic error.
	ExitErrorTimeout    = 2   // Indicates the operation timed out.
	ExitErrorEvaluation = 3   // Indicates an expression failed to evaluate.
	ExitErrorConfig     = 4   // Indicates a configuration error.
	ExitErrorCanceled   = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvaluationError encapsulates an expression evaluation failure while
// preserving the original cause. The cause is typically one of the typed
// errors from the errval package (domain violation, vanished divisor,
// invalid index, invalid policy) or a parse error from the expression
// front end.
type EvaluationError struct {
	// Expression is the source text that failed to evaluate.
	Expression string
	// Cause is the underlying error that triggered this evaluation error.
	Cause error
}

// Error returns a message naming the failing expression and its cause.
func (e EvaluationError) Error() string {
	return fmt.Sprintf("evaluating %q: %v", e.Expression, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e EvaluationError) Unwrap() error { return e.Cause }

// NewEvaluationError wraps an evaluation failure with the expression that
// caused it. Returns nil when cause is nil.
func NewEvaluationError(expression string, cause error) error {
	if cause == nil {
		return nil
	}
	return EvaluationError{Expression: expression, Cause: cause}
}

// TimeoutError represents an evaluation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code it should produce.
// Configuration errors (from either this package or the value library's
// policy validation) map to ExitErrorConfig; timeouts and context
// cancellation map to their dedicated codes; evaluation failures such as
// domain violations, vanished divisors, and invalid component indexes map
// to ExitErrorEvaluation; anything else is generic.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		configErr    ConfigError
		valConfigErr errval.ConfigError
		timeoutErr   TimeoutError
		domainErr    errval.DomainError
		divZeroErr   errval.DivisionByZeroError
		indexErr     errval.IndexError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeoutErr):
		return ExitErrorTimeout
	case errors.As(err, &configErr), errors.As(err, &valConfigErr):
		return ExitErrorConfig
	case errors.As(err, &domainErr), errors.As(err, &divZeroErr), errors.As(err, &indexErr):
		return ExitErrorEvaluation
	default:
		return ExitErrorGeneric
	}
}
