package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App         lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Title       lipgloss.Style
	EntryDate   lipgloss.Style
	EntryHours  lipgloss.Style
	EntryDesc   lipgloss.Style
	Total       lipgloss.Style
	Empty       lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")
	secondary := lipgloss.Color("39")
	muted := lipgloss.Color("240")
	errorColor := lipgloss.Color("196")

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		EntryDate: lipgloss.NewStyle().
			Foreground(secondary),
		EntryHours: lipgloss.NewStyle().
			Bold(true),
		EntryDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Total: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginTop(1),
		Empty: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),
		Error: lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true),
	}
}
