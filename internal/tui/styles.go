package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/errcalc/internal/ui"
)

// Style variables for the interactive calculator.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	titleStyle      lipgloss.Style
	versionStyle    lipgloss.Style
	promptStyle     lipgloss.Style
	exprStyle       lipgloss.Style
	resultStyle     lipgloss.Style
	errorStyle      lipgloss.Style
	detailStyle     lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	statusStyle     lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	promptStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	exprStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	resultStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	detailStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusStyle = lipgloss.NewStyle().
		Foreground(t.Info)
}
