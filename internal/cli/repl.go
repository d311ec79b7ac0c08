// Package cli provides the command-line presentation layer, including the
// REPL (Read-Eval-Print Loop) for interactive uncertainty calculations.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/errcalc/errval"
	"github.com/agbru/errcalc/internal/expr"
	"github.com/agbru/errcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Policy is the initial default-error policy for plain literals.
	Policy errval.Policy[float64]
	// Details displays interval bounds and relative error with results.
	Details bool
}

// REPL represents an interactive uncertainty calculator session.
type REPL struct {
	config    REPLConfig
	evaluator *expr.Evaluator
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config:    config,
		evaluator: expr.NewEvaluator(config.Policy),
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"err> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sUncertainty Calculator - Interactive Mode%s            %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sEnter an expression to evaluate it, e.g. %s2.0±0.1 * 4.0±0.2%s\n",
		ui.ColorBold(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s(the error bound may also be written with a tilde: 2.0~0.1)%s\n\n",
		ui.ColorGrey(), ui.ColorReset())
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %spolicy <name>%s - Change the default-error policy (zero, half-unit)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdetails%s       - Toggle bounds and relative error display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfuncs%s         - List available functions\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "policy", "p":
		r.cmdPolicy(args)
	case "details", "d":
		r.cmdDetails()
	case "funcs", "functions", "ls":
		r.cmdFuncs()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Anything else is an expression
		r.evaluate(input)
	}

	return true
}

// evaluate runs one expression and prints its result.
func (r *REPL) evaluate(source string) {
	value, err := r.evaluator.Evaluate(source)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayResult(r.out, source, value, OutputConfig{Details: r.config.Details})
}

// cmdPolicy handles the "policy" command.
func (r *REPL) cmdPolicy(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: policy <zero|half-unit>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Current policy: %s%s%s\n", ui.ColorCyan(), r.evaluator.Policy().Mode(), ui.ColorReset())
		return
	}

	switch strings.ToLower(args[0]) {
	case "zero":
		r.evaluator.SetPolicy(errval.ZeroPolicy[float64]())
	case "half-unit", "halfunit":
		r.evaluator.SetPolicy(errval.HalfUnitPolicy[float64]())
	default:
		fmt.Fprintf(r.out, "%sUnknown policy: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		fmt.Fprintf(r.out, "Valid policies: zero, half-unit\n")
		return
	}
	fmt.Fprintf(r.out, "Policy changed to: %s%s%s\n", ui.ColorGreen(), r.evaluator.Policy().Mode(), ui.ColorReset())
}

// cmdDetails toggles the detailed result display.
func (r *REPL) cmdDetails() {
	r.config.Details = !r.config.Details
	status := "disabled"
	if r.config.Details {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Detailed display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdFuncs lists the available propagation functions.
func (r *REPL) cmdFuncs() {
	fmt.Fprintf(r.out, "\n%sAvailable functions:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  trigonometric:  %ssin cos tan asin acos atan atan2%s\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  hyperbolic:     %ssinh cosh tanh asinh acosh atanh%s\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  exponential:    %sexp expm1 exp2 log log1p log10 log2 logn%s\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  power:          %ssqrt cbrt pow hypot%s\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	detailsStatus := "no"
	if r.config.Details {
		detailsStatus = "yes"
	}
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Policy:   %s%s%s\n", ui.ColorCyan(), r.evaluator.Policy().Mode(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Details:  %s%s%s\n", ui.ColorCyan(), detailsStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
