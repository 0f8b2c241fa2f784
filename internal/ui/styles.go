package ui

import "github.com/charmbracelet/lipgloss"

// Shared TUI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF9F1C"))

	faintStyle = lipgloss.NewStyle().Faint(true)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD75F"))

	mutedTrackStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Faint(true)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#59CD90"))
)
