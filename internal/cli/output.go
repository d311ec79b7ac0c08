// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatValue], [FormatExecutionDuration].

package cli

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/agbru/errcalc/errval"
	"github.com/agbru/errcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Quiet mode suppresses everything except the bare result.
	Quiet bool
	// Details adds the interval bounds and relative error to each result.
	Details bool
}

// FormatValue formats an uncertain value as "value ± error".
func FormatValue(value errval.ErrorValue[float64]) string {
	return value.String()
}

// FormatRelativeError formats the error bound as a percentage of the
// value. A zero value has no meaningful relative error.
func FormatRelativeError(value errval.ErrorValue[float64]) string {
	if value.Value() == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.3g%%", 100*value.Err()/math.Abs(value.Value()))
}

// DisplayQuietResult outputs a bare result suitable for scripting.
func DisplayQuietResult(out io.Writer, value errval.ErrorValue[float64]) {
	fmt.Fprintln(out, FormatValue(value))
}

// DisplayResult displays an evaluated expression with its result. In
// details mode the interval bounds and relative error follow on separate
// lines.
func DisplayResult(out io.Writer, source string, value errval.ErrorValue[float64], config OutputConfig) {
	if config.Quiet {
		DisplayQuietResult(out, value)
		return
	}

	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ui.ColorYellow(), source, ui.ColorReset(),
		ui.ColorGreen(), FormatValue(value), ui.ColorReset())

	if config.Details {
		fmt.Fprintf(out, "  interval: %s[%v, %v]%s\n",
			ui.ColorCyan(), value.Min(), value.Max(), ui.ColorReset())
		fmt.Fprintf(out, "  relative: %s%s%s\n",
			ui.ColorCyan(), FormatRelativeError(value), ui.ColorReset())
	}
}

// DisplayEvaluationError reports a failed expression.
func DisplayEvaluationError(out io.Writer, source string, err error) {
	fmt.Fprintf(out, "%s%s%s: %serror: %v%s\n",
		ui.ColorYellow(), source, ui.ColorReset(),
		ui.ColorRed(), err, ui.ColorReset())
}

// DisplayBatchResults displays every batch result in input order and
// returns the number of failed expressions.
func DisplayBatchResults(out io.Writer, results []Result, config OutputConfig) int {
	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			DisplayEvaluationError(out, r.Source, r.Err)
			continue
		}
		DisplayResult(out, r.Source, r.Value, config)
	}
	return failures
}

// DisplayBatchSummary prints a one-line summary after a batch run.
func DisplayBatchSummary(out io.Writer, total, failures int, duration time.Duration) {
	status := ui.ColorGreen()
	if failures > 0 {
		status = ui.ColorRed()
	}
	fmt.Fprintf(out, "\n%s%d/%d expressions evaluated%s in %s%s%s",
		status, total-failures, total, ui.ColorReset(),
		ui.ColorCyan(), FormatExecutionDuration(duration), ui.ColorReset())
	if failures > 0 {
		fmt.Fprintf(out, " %s(%d failed)%s", ui.ColorRed(), failures, ui.ColorReset())
	}
	fmt.Fprintln(out)
}
