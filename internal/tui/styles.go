package tui

import "github.com/charmbracelet/lipgloss"

const (
	listWidth       = 24
	panelWidth      = 44
	minPreviewWidth = 30
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("99"))
)
