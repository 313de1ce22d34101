package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the dashboard.
type Styles struct {
	Title    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Summary  lipgloss.Style
	Section  lipgloss.Style
	Hint     lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#d29b1d")),
		Summary:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bbbbbb")),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")).Italic(true),
	}
}
