package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/errcalc/errval"
	"github.com/agbru/errcalc/internal/cli"
	"github.com/agbru/errcalc/internal/config"
	apperrors "github.com/agbru/errcalc/internal/errors"
	"github.com/agbru/errcalc/internal/logging"
	"github.com/agbru/errcalc/internal/tui"
	"github.com/agbru/errcalc/internal/ui"
)

// Application represents the errcalc application instance.
type Application struct {
	Config    *config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}

	programName := "errcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a.initTheme()

	policy, err := a.Config.PolicyValue()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	switch {
	case a.Config.TUI:
		return a.runTUI(ctx, policy)
	case a.Config.REPL:
		return a.runREPL(policy, out)
	case a.Config.File != "":
		return a.runBatch(ctx, policy, out)
	default:
		return a.runEvaluate(policy, out)
	}
}

// initTheme selects the color theme. An explicit -no-color flag wins, then
// the NO_COLOR environment variable, then the -theme selection.
func (a *Application) initTheme() {
	ui.InitTheme(a.Config.NoColor)
	if !a.Config.NoColor && ui.GetCurrentTheme().Name != ui.NoColorTheme.Name {
		ui.SetTheme(a.Config.Theme)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	policies := []string{"zero", "half-unit"}
	if err := cli.GenerateCompletion(out, a.Config.Completion, policies); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI launches the full-screen interactive calculator.
func (a *Application) runTUI(ctx context.Context, policy errval.Policy[float64]) int {
	ctx, cancel := setupLifecycle(ctx, a.Config)
	defer cancel()

	return tui.Run(ctx, policy, a.Config.Details, Version)
}

// runREPL starts the line-oriented interactive session.
func (a *Application) runREPL(policy errval.Policy[float64], out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{Policy: policy, Details: a.Config.Details})
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
