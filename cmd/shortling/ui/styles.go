package ui

import "github.com/charmbracelet/lipgloss"

// Styles centralizes the lipgloss styling shared by the pages and the
// one-shot command output.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Help     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	StatCard lipgloss.Style
	StatNum  lipgloss.Style
	Bar      lipgloss.Style
	ShortURL lipgloss.Style
	Faint    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatCard: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).MarginRight(1),
		StatNum:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		ShortURL: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		Faint:    lipgloss.NewStyle().Faint(true),
	}
}
