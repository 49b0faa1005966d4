package schedule

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	semester lipgloss.Style
	current  lipgloss.Style
	day      lipgloss.Style
	period   lipgloss.Style
	course   lipgloss.Style
	detail   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		semester: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		current:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		day:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		period:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(8),
		course:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
