package tui

import "github.com/charmbracelet/lipgloss"

const displayWidth = 23

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(displayWidth).
			Align(lipgloss.Right).
			Padding(0, 1).
			Bold(true)

	errorDisplayStyle = displayStyle.
				Foreground(lipgloss.Color("196"))

	cellStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	operatorCellStyle = cellStyle.
				Foreground(lipgloss.Color("214"))

	pressedCellStyle = cellStyle.
				BorderForeground(lipgloss.Color("205")).
				Foreground(lipgloss.Color("205")).
				Bold(true)

	blankCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("0"))

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
