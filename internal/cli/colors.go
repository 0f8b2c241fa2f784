package cli

import "github.com/charmbracelet/lipgloss"

// Sunny colour palette ☀
// Shared theme colours for consistent branding across CLI and TUI
var (
	// Core sunny colours (bright to warm)
	SunYellow  = lipgloss.Color("#FFD75F") // Bright sun yellow
	SunOrange  = lipgloss.Color("#FF9F1C") // Warm orange
	SkyBlue    = lipgloss.Color("#3FA7D6") // Clear sky blue
	GrassGreen = lipgloss.Color("#59CD90") // Fresh green

	// Accent colours
	WarmGray = lipgloss.Color("#8A8168") // Muted khaki for subtle text
)
