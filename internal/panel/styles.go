package panel

import "github.com/charmbracelet/lipgloss"

const (
	defaultWidth = 44
	labelWidth   = 18
)

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(primaryColor)

	subtabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingRight(1)

	activeSubtabStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				PaddingRight(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(labelWidth)

	focusedLabelStyle = labelStyle.
				Foreground(accentColor).
				Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeCellStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Underline(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	pairStyle = lipgloss.NewStyle().Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			MarginTop(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)
