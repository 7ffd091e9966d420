// Package tui provides the terminal user interface for the currenttime
// command.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the watch view.
type Styles struct {
	Clock lipgloss.Style
	Hint  lipgloss.Style
}

// NewStyles returns the watch view styles. Without color every style
// renders its input unchanged.
func NewStyles(color bool) Styles {
	if !color {
		return Styles{
			Clock: lipgloss.NewStyle(),
			Hint:  lipgloss.NewStyle(),
		}
	}
	return Styles{
		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Hint: lipgloss.NewStyle().Faint(true),
	}
}
