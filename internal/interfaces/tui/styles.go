package tui

import "github.com/charmbracelet/lipgloss"

const cardWidth = 30

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3f51b5")).MarginBottom(1)
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#4caf50")).Padding(0, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(cardWidth)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("#3f51b5"))
	cardTitleStyle    = lipgloss.NewStyle().Bold(true)
	cardSubStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	modalStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3f51b5")).Padding(0, 1).Width(50)
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	disabledStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	modalTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)
