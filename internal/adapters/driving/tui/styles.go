package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the list view.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Checked  lipgloss.Style
	Done     lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Prompt   lipgloss.Style
}

// DefaultStyles returns the default theme.
func DefaultStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Done:     lipgloss.NewStyle().Strikethrough(true).Faint(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}
