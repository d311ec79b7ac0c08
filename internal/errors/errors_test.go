// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agbru/errcalc/errval"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--workers"),
			expected: "invalid value 42 for flag --workers",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestEvaluationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		expr        string
		cause       error
		expectedMsg string
		checkIs     error
		checkUnwrap bool
	}{
		{
			name:        "Error names the expression and the cause",
			expr:        "log(-1)",
			cause:       errors.New("argument outside function domain"),
			expectedMsg: `evaluating "log(-1)": argument outside function domain`,
		},
		{
			name:        "Unwrap returns cause",
			expr:        "1/0",
			cause:       errors.New("original error"),
			expectedMsg: `evaluating "1/0": original error`,
			checkUnwrap: true,
		},
		{
			name:        "errors.Is works with wrapped error",
			expr:        "sin(1)",
			cause:       context.Canceled,
			expectedMsg: `evaluating "sin(1)": context canceled`,
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := EvaluationError{Expression: tt.expr, Cause: tt.cause}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}

			if tt.checkUnwrap && err.Unwrap() != tt.cause {
				t.Error("Unwrap should return the original cause")
			}

			if tt.checkIs != nil && !errors.Is(err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestNewEvaluationError(t *testing.T) {
	t.Parallel()

	if NewEvaluationError("x", nil) != nil {
		t.Error("NewEvaluationError with nil cause should return nil")
	}

	err := NewEvaluationError("sqrt(-4)", errors.New("negative argument"))
	var evalErr EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatal("expected error to be EvaluationError type")
	}
	if evalErr.Expression != "sqrt(-4)" {
		t.Errorf("expected Expression %q, got %q", "sqrt(-4)", evalErr.Expression)
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         TimeoutError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns formatted message",
			err:      TimeoutError{Operation: "batch evaluation", Limit: 30 * time.Second},
			expected: `operation "batch evaluation" timed out after 30s`,
		},
		{
			name:     "Error with subsecond limit",
			err:      TimeoutError{Operation: "parse", Limit: 500 * time.Millisecond},
			expected: `operation "parse" timed out after 500ms`,
		},
		{
			name:        "errors.As works with TimeoutError",
			err:         TimeoutError{Operation: "eval", Limit: 10 * time.Second},
			expected:    `operation "eval" timed out after 10s`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var timeoutErr TimeoutError
				if !errors.As(err, &timeoutErr) {
					t.Error("expected error to be TimeoutError type")
				}
				if timeoutErr.Operation != tt.err.Operation {
					t.Errorf("expected Operation %q, got %q", tt.err.Operation, timeoutErr.Operation)
				}
				if timeoutErr.Limit != tt.err.Limit {
					t.Errorf("expected Limit %v, got %v", tt.err.Limit, timeoutErr.Limit)
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         ValidationError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns formatted message",
			err:      ValidationError{Field: "workers", Message: "must be greater than zero"},
			expected: `validation error for "workers": must be greater than zero`,
		},
		{
			name:        "errors.As works with ValidationError",
			err:         ValidationError{Field: "policy", Message: "unknown policy name"},
			expected:    `validation error for "policy": unknown policy name`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var validationErr ValidationError
				if !errors.As(err, &validationErr) {
					t.Error("expected error to be ValidationError type")
				}
				if validationErr.Field != tt.err.Field {
					t.Errorf("expected Field %q, got %q", tt.err.Field, validationErr.Field)
				}
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load expression file",
			expectedMsg: "failed to load expression file: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "operation timed out",
			expectedMsg: "operation timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("bad token"),
			format:      "line %d of %s",
			args:        []any{4, "input.txt"},
			expectedMsg: "line 4 of input.txt: bad token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := IsContextError(tt.err)
			if result != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"context canceled", context.Canceled, ExitErrorCanceled},
		{"context deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"timeout error", TimeoutError{Operation: "eval", Limit: time.Second}, ExitErrorTimeout},
		{"app config error", NewConfigError("bad flag"), ExitErrorConfig},
		{"value library config error", errval.NewConfigError("custom policy requires a function"), ExitErrorConfig},
		{"domain error", errval.NewDomainError("log", "argument must be positive"), ExitErrorEvaluation},
		{"division by zero", errval.DivisionByZeroError{Op: "div"}, ExitErrorEvaluation},
		{"index error", errval.IndexError{Index: 5}, ExitErrorEvaluation},
		{"wrapped domain error", NewEvaluationError("log(-1)", errval.NewDomainError("log", "argument must be positive")), ExitErrorEvaluation},
		{"generic error", errors.New("unexpected"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor(%v) = %d, expected %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodes_Unique(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":         ExitSuccess,
		"ExitErrorGeneric":    ExitErrorGeneric,
		"ExitErrorTimeout":    ExitErrorTimeout,
		"ExitErrorEvaluation": ExitErrorEvaluation,
		"ExitErrorConfig":     ExitErrorConfig,
		"ExitErrorCanceled":   ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
