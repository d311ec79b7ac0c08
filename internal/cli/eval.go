package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/errcalc/errval"
	apperrors "github.com/agbru/errcalc/internal/errors"
	"github.com/agbru/errcalc/internal/expr"
)

// Result holds the outcome of evaluating one expression.
type Result struct {
	// Index is the position of the expression in its batch.
	Index int
	// Source is the expression text.
	Source string
	// Value is the evaluated result when Err is nil.
	Value errval.ErrorValue[float64]
	// Err reports why the expression failed to evaluate.
	Err error
}

// EvaluateExpression evaluates a single expression, wrapping any failure
// with the source text.
func EvaluateExpression(evaluator *expr.Evaluator, source string) (errval.ErrorValue[float64], error) {
	value, err := evaluator.Evaluate(source)
	if err != nil {
		return errval.ErrorValue[float64]{}, apperrors.NewEvaluationError(source, err)
	}
	return value, nil
}

// ReadExpressions reads expressions from r, one per line. Blank lines and
// lines starting with '#' are skipped.
func ReadExpressions(r io.Reader) ([]string, error) {
	var sources []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading expressions: %w", err)
	}
	return sources, nil
}

// EvaluateBatch evaluates sources concurrently with at most workers
// goroutines, preserving input order in the returned slice. Individual
// evaluation failures are recorded per result; the returned error is
// non-nil only when the context is canceled before the batch completes.
// Progress updates are sent to progressChan when it is non-nil; the
// channel is not closed by this function.
func EvaluateBatch(ctx context.Context, evaluator *expr.Evaluator, sources []string, workers int, progressChan chan<- ProgressUpdate) ([]Result, error) {
	results := make([]Result, len(sources))
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			value, err := EvaluateExpression(evaluator, source)
			results[i] = Result{Index: i, Source: source, Value: value, Err: err}

			done := int(completed.Add(1))
			if progressChan != nil {
				select {
				case progressChan <- ProgressUpdate{Completed: done, Total: len(sources)}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
