package sheet

import "github.com/charmbracelet/lipgloss"

// Report styles, keyed by what they mark rather than by colour.
var (
	styleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleHeading  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("6"))
	styleLinter   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCaret    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleClean    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleFailed   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleWarning  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// severityStyle colours an issue message by how bad it is.
func severityStyle(severity string) lipgloss.Style {
	if severity == SeverityError {
		return styleError
	}
	return styleWarning
}

// RenderStyle applies style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
