// ABOUTME: Lipgloss styles for the inspector view
// ABOUTME: Built once; the background guess comes from internal/termfix

package inspect

import "github.com/charmbracelet/lipgloss"

// Styles holds the inspector palette.
type Styles struct {
	Title    lipgloss.Style
	Event    lipgloss.Style
	Sequence lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the inspector palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		Event:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Sequence: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
