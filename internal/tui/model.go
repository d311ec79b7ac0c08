package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/errcalc/errval"
	apperrors "github.com/agbru/errcalc/internal/errors"
	"github.com/agbru/errcalc/internal/expr"
)

// historyEntry is one evaluated expression and its outcome.
type historyEntry struct {
	source string
	result string
	detail string
	failed bool
}

// ContextCancelledMsg signals that the parent context was canceled.
type ContextCancelledMsg struct{ Err error }

// Model is the root bubbletea model for the interactive calculator.
type Model struct {
	input     textinput.Model
	history   []historyEntry
	evaluator *expr.Evaluator
	keymap    KeyMap

	details  bool
	version  string
	width    int
	height   int
	exitCode int
}

// NewModel creates a new calculator model with the given literal policy.
func NewModel(policy errval.Policy[float64], details bool, version string) Model {
	input := textinput.New()
	input.Placeholder = "2.0±0.1 * 4.0±0.2"
	input.Prompt = promptStyle.Render("err> ")
	input.Focus()

	return Model{
		input:     input,
		evaluator: expr.NewEvaluator(policy),
		keymap:    DefaultKeyMap(),
		details:   details,
		version:   version,
		exitCode:  apperrors.ExitSuccess,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 10
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		source := strings.TrimSpace(m.input.Value())
		if source == "" {
			return m, nil
		}
		m.history = append(m.history, m.evaluate(source))
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keymap.Policy):
		m.cyclePolicy()
		return m, nil

	case key.Matches(msg, m.keymap.Details):
		m.details = !m.details
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		m.history = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs one expression and records the outcome.
func (m Model) evaluate(source string) historyEntry {
	value, err := m.evaluator.Evaluate(source)
	if err != nil {
		return historyEntry{source: source, result: err.Error(), failed: true}
	}

	entry := historyEntry{source: source, result: value.String()}
	if m.details {
		entry.detail = fmt.Sprintf("interval [%v, %v]", value.Min(), value.Max())
		if value.Value() != 0 {
			entry.detail += fmt.Sprintf("  relative %.3g%%", 100*value.Err()/math.Abs(value.Value()))
		}
	}
	return entry
}

// cyclePolicy switches the literal policy between zero and half-unit.
func (m *Model) cyclePolicy() {
	if m.evaluator.Policy().Mode() == errval.PolicyZero {
		m.evaluator.SetPolicy(errval.HalfUnitPolicy[float64]())
	} else {
		m.evaluator.SetPolicy(errval.ZeroPolicy[float64]())
	}
}

// View renders the calculator.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render("Uncertainty Calculator") + " " + versionStyle.Render(m.version)

	var lines []string
	for _, entry := range m.history {
		if entry.failed {
			lines = append(lines, exprStyle.Render(entry.source)+" "+errorStyle.Render("✗ "+entry.result))
			continue
		}
		lines = append(lines, exprStyle.Render(entry.source)+" = "+resultStyle.Render(entry.result))
		if entry.detail != "" {
			lines = append(lines, "  "+detailStyle.Render(entry.detail))
		}
	}

	// Keep only the lines that fit above the input and footer.
	maxLines := m.height - 8
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	historyPanel := panelStyle.Width(m.width - 2).Render(strings.Join(lines, "\n"))

	status := statusStyle.Render(fmt.Sprintf("policy: %s", m.evaluator.Policy().Mode()))
	if m.details {
		status += statusStyle.Render("  details: on")
	}

	footer := strings.Join([]string{
		footerKeyStyle.Render("enter") + footerDescStyle.Render(" evaluate"),
		footerKeyStyle.Render("ctrl+p") + footerDescStyle.Render(" policy"),
		footerKeyStyle.Render("ctrl+d") + footerDescStyle.Render(" details"),
		footerKeyStyle.Render("ctrl+l") + footerDescStyle.Render(" clear"),
		footerKeyStyle.Render("esc") + footerDescStyle.Render(" quit"),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		historyPanel,
		m.input.View(),
		status,
		footer,
	)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, policy errval.Policy[float64], details bool, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(policy, details, version)

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Send(ContextCancelledMsg{Err: ctx.Err()})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
