package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used across the console views.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Summary   lipgloss.Style
	ChartName lipgloss.Style
	Selected  lipgloss.Style
	Bar       lipgloss.Style
	BarLabel  lipgloss.Style
	Filter    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles uses the burgundy-forward palette of the web dashboards.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("131")),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("131")),
		Summary:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ChartName: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("131")),
		BarLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Filter:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("108")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
