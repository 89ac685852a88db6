package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	cursorStyle     = lipgloss.NewStyle().Bold(true)
	completedStyle  = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	actionStyle     = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
