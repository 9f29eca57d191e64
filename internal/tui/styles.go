package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	descriptionStyle = lipgloss.NewStyle().Italic(true)
	switchStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	buttonStyle      = lipgloss.NewStyle().Bold(true)
	aliveStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	deadStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
