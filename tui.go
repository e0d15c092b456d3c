package renamer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	renameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	removeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
)

// FormatActions renders the pending actions for review, one per line.
func FormatActions(actions []Action) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Pending actions:") + "\n")
	for _, a := range actions {
		style := renameStyle
		if a.Kind == ActionDelete {
			style = removeStyle
		}
		b.WriteString(fmt.Sprintf("  %s\n", style.Render(a.String())))
	}
	return b.String()
}

func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	renderList("Renamed:", successStyle, s.Renamed)
	renderList("Removed:", removeStyle, s.Removed)
	renderList("Skipped:", skippedStyle, s.Skipped)
	renderList("Failed:", errorStyle, s.Failed)

	return b.String()
}
