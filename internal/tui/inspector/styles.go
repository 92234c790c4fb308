package inspector

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginRight(1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(13)

	onStyle = lipgloss.NewStyle().
		Foreground(successColor).
		Bold(true)

	offStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	scaleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingRight(1)

	activeScaleStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true).
				Underline(true).
				PaddingRight(1)

	historyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)
)
