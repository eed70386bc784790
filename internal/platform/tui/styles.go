package tui

import "github.com/charmbracelet/lipgloss"

// Styles shared by the menu and the scoreboard.
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// center places text in the middle of a line width cells wide.
func center(width int, text string) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
