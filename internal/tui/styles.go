package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mUML/pkg/core/config"
)

// Styles holds the rendered look of the shell
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Panel     lipgloss.Style
	Prompt    lipgloss.Style
	Echo      lipgloss.Style
	Output    lipgloss.Style
	Error     lipgloss.Style
	StatusBar lipgloss.Style
	Candidate lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds styles from the [tui] colors
func NewStyles(colors config.TUIConfig) Styles {
	accent := lipgloss.Color(colors.Accent)
	muted := lipgloss.Color(colors.Muted)
	errColor := lipgloss.Color(colors.Error)
	border := lipgloss.Color(colors.Border)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Prompt: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Echo: lipgloss.NewStyle().
			Foreground(muted),

		Output: lipgloss.NewStyle(),

		Error: lipgloss.NewStyle().
			Foreground(errColor),

		StatusBar: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		Candidate: lipgloss.NewStyle().
			Foreground(accent),

		Help: lipgloss.NewStyle().
			Foreground(muted),
	}
}

// DefaultStyles uses the default [tui] colors
func DefaultStyles() Styles {
	return NewStyles(config.Default().TUI)
}
