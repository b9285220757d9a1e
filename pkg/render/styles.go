package render

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)
	unassignedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cc0000"))
	holidayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cc9500"))
	patchingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3cc5ff"))
)
