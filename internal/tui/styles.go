package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	badgeOnline  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	badgeOffline = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
