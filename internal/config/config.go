package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/errcalc/errval"
	apperrors "github.com/agbru/errcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application
// reads.
const EnvPrefix = "ERRCALC_"

// Default configuration values.
const (
	DefaultPolicy  = "zero"
	DefaultTimeout = 30 * time.Second
	DefaultTheme   = "dark"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// Expr is a single expression to evaluate. Positional arguments are
	// joined into Expr when the flag is not set.
	Expr string
	// File is a path to a file of expressions, one per line, evaluated as
	// a batch. "-" reads from standard input.
	File string
	// Policy names the default-error policy applied to plain literals:
	// "zero" or "half-unit".
	Policy string
	// Workers is the number of concurrent evaluations in batch mode.
	Workers int
	// Timeout bounds the total evaluation time.
	Timeout time.Duration
	// REPL starts the interactive read-eval-print loop.
	REPL bool
	// TUI starts the full-screen interactive calculator.
	TUI bool
	// Verbose enables debug logging.
	Verbose bool
	// Details prints the bounds and relative error alongside each result.
	Details bool
	// Quiet suppresses everything except results and errors.
	Quiet bool
	// NoColor disables colored output.
	NoColor bool
	// Theme names the color theme: "dark", "light", or "none".
	Theme string
	// Completion names a shell to emit a completion script for, then exit.
	Completion string
}

// PolicyValue returns the errval policy named by the Policy field.
func (c *AppConfig) PolicyValue() (errval.Policy[float64], error) {
	switch c.Policy {
	case "zero":
		return errval.ZeroPolicy[float64](), nil
	case "half-unit":
		return errval.HalfUnitPolicy[float64](), nil
	default:
		return errval.Policy[float64]{}, apperrors.NewConfigError(
			"unknown policy %q (valid: zero, half-unit)", c.Policy)
	}
}

// ParseConfig parses command-line flags and environment variables into an
// AppConfig. Flags win over environment variables, which win over the
// defaults. Usage and flag errors are written to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (*AppConfig, error) {
	config := &AppConfig{
		Policy:  DefaultPolicy,
		Workers: runtime.NumCPU(),
		Timeout: DefaultTimeout,
		Theme:   DefaultTheme,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&config.Expr, "e", config.Expr, "expression to evaluate (shorthand)")
	fs.StringVar(&config.Expr, "expr", config.Expr, "expression to evaluate, e.g. 'sin(1.0±0.1)'")
	fs.StringVar(&config.File, "f", config.File, "file of expressions to evaluate (shorthand)")
	fs.StringVar(&config.File, "file", config.File, "file of expressions to evaluate, one per line ('-' for stdin)")
	fs.StringVar(&config.Policy, "policy", config.Policy, "default-error policy for plain literals: zero, half-unit")
	fs.IntVar(&config.Workers, "workers", config.Workers, "concurrent evaluations in batch mode")
	fs.DurationVar(&config.Timeout, "timeout", config.Timeout, "maximum total evaluation time")
	fs.BoolVar(&config.REPL, "repl", config.REPL, "start the interactive read-eval-print loop")
	fs.BoolVar(&config.TUI, "tui", config.TUI, "start the full-screen interactive calculator")
	fs.BoolVar(&config.Verbose, "v", config.Verbose, "enable debug logging (shorthand)")
	fs.BoolVar(&config.Verbose, "verbose", config.Verbose, "enable debug logging")
	fs.BoolVar(&config.Details, "d", config.Details, "print bounds and relative error (shorthand)")
	fs.BoolVar(&config.Details, "details", config.Details, "print bounds and relative error with each result")
	fs.BoolVar(&config.Quiet, "q", config.Quiet, "suppress everything except results and errors (shorthand)")
	fs.BoolVar(&config.Quiet, "quiet", config.Quiet, "suppress everything except results and errors")
	fs.BoolVar(&config.NoColor, "no-color", config.NoColor, "disable colored output")
	fs.StringVar(&config.Theme, "theme", config.Theme, "color theme: dark, light, none")
	fs.StringVar(&config.Completion, "completion", config.Completion, "generate a shell completion script: bash, zsh, fish, powershell")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options] [expression]\n\n", programName)
		fmt.Fprintf(errWriter, "Evaluates arithmetic expressions over uncertain values, propagating\n")
		fmt.Fprintf(errWriter, "measurement error bounds through every operation.\n\n")
		fmt.Fprintf(errWriter, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errWriter, "\nExamples:\n")
		fmt.Fprintf(errWriter, "  %s '2.0±0.1 * 4.0±0.2'\n", programName)
		fmt.Fprintf(errWriter, "  %s -e 'hypot(3.0±0.1, 4.0±0.2)' -d\n", programName)
		fmt.Fprintf(errWriter, "  %s -f measurements.txt -workers 4\n", programName)
		fmt.Fprintf(errWriter, "  %s -repl -policy half-unit\n", programName)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	applyEnvOverrides(config, fs)

	// Remaining positional arguments form the expression, so quoting the
	// whole expression is optional when it contains no shell metacharacters.
	if config.Expr == "" && fs.NArg() > 0 {
		config.Expr = strings.Join(fs.Args(), " ")
	}

	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// validate rejects configurations that cannot be executed.
func validate(config *AppConfig) error {
	if config.Workers < 1 {
		return apperrors.NewConfigError("workers must be at least 1, got %d", config.Workers)
	}
	if config.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", config.Timeout)
	}
	if _, err := config.PolicyValue(); err != nil {
		return err
	}
	switch config.Theme {
	case "dark", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q (valid: dark, light, none)", config.Theme)
	}
	if config.Expr != "" && config.File != "" {
		return apperrors.NewConfigError("-expr and -file are mutually exclusive")
	}
	modes := 0
	for _, on := range []bool{config.REPL, config.TUI, config.Expr != "" || config.File != ""} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("choose one of: an expression, -file, -repl, -tui")
	}
	return nil
}
