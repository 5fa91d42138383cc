package style

import "github.com/charmbracelet/lipgloss"

// Palette is the player's color scheme.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve  = lipgloss.Color("#cba6f7")
	Red    = lipgloss.Color("#f38ba8")
	Peach  = lipgloss.Color("#fab387")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")

	AccentColor = Mauve
	ErrorColor  = Red
	FaintColor  = Overlay

	// BorderColor frames the pane while only the preview shows; it blends into
	// ActiveBorderColor as the video surface fades in.
	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)
