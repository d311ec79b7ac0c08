package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/agbru/errcalc/errval"
	"github.com/agbru/errcalc/internal/cli"
	"github.com/agbru/errcalc/internal/config"
	apperrors "github.com/agbru/errcalc/internal/errors"
	"github.com/agbru/errcalc/internal/expr"
	"github.com/agbru/errcalc/internal/logging"
)

// setupLifecycle bounds ctx by the configured timeout and cancels it on
// SIGINT or SIGTERM.
func setupLifecycle(ctx context.Context, cfg *config.AppConfig) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runEvaluate evaluates the single expression given on the command line.
func (a *Application) runEvaluate(policy errval.Policy[float64], out io.Writer) int {
	if a.Config.Expr == "" {
		fmt.Fprintf(a.ErrWriter, "No expression given. Run with -h for usage.\n")
		return apperrors.ExitErrorConfig
	}

	start := time.Now()
	value, err := cli.EvaluateExpression(expr.NewEvaluator(policy), a.Config.Expr)
	if err != nil {
		cli.DisplayEvaluationError(out, a.Config.Expr, err)
		return apperrors.ExitCodeFor(err)
	}

	a.Logger.Debug("expression evaluated",
		logging.String("expr", a.Config.Expr),
		logging.String("duration", cli.FormatExecutionDuration(time.Since(start))))

	cli.DisplayResult(out, a.Config.Expr, value, a.outputConfig())
	return apperrors.ExitSuccess
}

// runBatch evaluates a file of expressions concurrently.
func (a *Application) runBatch(ctx context.Context, policy errval.Policy[float64], out io.Writer) int {
	ctx, cancel := setupLifecycle(ctx, a.Config)
	defer cancel()

	sources, err := a.readBatch()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if len(sources) == 0 {
		if !a.Config.Quiet {
			fmt.Fprintln(out, "No expressions to evaluate.")
		}
		return apperrors.ExitSuccess
	}

	a.Logger.Debug("starting batch evaluation",
		logging.String("file", a.Config.File),
		logging.Int("expressions", len(sources)),
		logging.Int("workers", a.Config.Workers))

	// Progress rendering is skipped in quiet mode.
	var progressChan chan cli.ProgressUpdate
	var wg sync.WaitGroup
	if !a.Config.Quiet {
		progressChan = make(chan cli.ProgressUpdate, len(sources))
		wg.Add(1)
		go cli.DisplayProgress(&wg, progressChan, out)
	}

	start := time.Now()
	results, batchErr := cli.EvaluateBatch(ctx, expr.NewEvaluator(policy), sources, a.Config.Workers, progressChan)
	if progressChan != nil {
		close(progressChan)
		wg.Wait()
	}
	if batchErr != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", batchErr)
		return apperrors.ExitCodeFor(batchErr)
	}

	failures := cli.DisplayBatchResults(out, results, a.outputConfig())
	if !a.Config.Quiet {
		cli.DisplayBatchSummary(out, len(results), failures, time.Since(start))
	}

	if failures > 0 {
		return apperrors.ExitErrorEvaluation
	}
	return apperrors.ExitSuccess
}

// readBatch reads the expression list from the configured file, or from
// standard input when the file is "-".
func (a *Application) readBatch() ([]string, error) {
	if a.Config.File == "-" {
		return cli.ReadExpressions(os.Stdin)
	}

	f, err := os.Open(a.Config.File)
	if err != nil {
		return nil, fmt.Errorf("opening expression file: %w", err)
	}
	defer f.Close()

	return cli.ReadExpressions(f)
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{Quiet: a.Config.Quiet, Details: a.Config.Details}
}
