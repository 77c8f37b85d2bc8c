package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used by the console output.

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
)

// ConfigureColor selects the color profile. Color is also disabled when the
// NO_COLOR convention is in effect.
func ConfigureColor(enabled bool) {
	if !enabled || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Title renders a section heading.
func Title(s string) string { return titleStyle.Render(s) }

// Label renders descriptive text next to a value.
func Label(s string) string { return labelStyle.Render(s) }

// Result renders a computed value.
func Result(s string) string { return resultStyle.Render(s) }

// Error renders an error message.
func Error(s string) string { return errorStyle.Render(s) }
