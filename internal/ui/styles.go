// Package ui renders tmt's terminal output: status messages, the theme list and
// the profile property table.
package ui

import "github.com/charmbracelet/lipgloss"

// Define colors
var (
	Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	Success = lipgloss.AdaptiveColor{Light: "#05A167", Dark: "#05D176"}
	Error   = lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"}
	Info    = lipgloss.AdaptiveColor{Light: "#5A9FE0", Dark: "#71B7F9"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	Command = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#00FF00"}
)

// Define styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)
	HeaderStyle  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	CommandStyle = lipgloss.NewStyle().Foreground(Command)
)

// AuditStyle paints a store command for the verbose trace.
func AuditStyle(cmd string) string {
	return CommandStyle.Render(cmd)
}

// ThemeStyle paints text in a theme's own colors.
func ThemeStyle(background, foreground string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(foreground))
}
