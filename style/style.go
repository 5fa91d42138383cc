// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/curtain-cli/curtain/color"
	"github.com/lucasb-eyer/go-colorful"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a stateless rendering function that applies the specified background color to a string.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner in the accent colors.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a visually highlighted banner using dominant error status colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that encapsulates a string in a colored, padded tag block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Blend mixes two hex colors; alpha 0 gives from, alpha 1 gives to.
// Non-hex colors cannot be mixed and snap at the halfway point.
func Blend(from, to lipgloss.Color, alpha float64) lipgloss.Color {
	switch {
	case alpha <= 0:
		return from
	case alpha >= 1:
		return to
	}

	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		if alpha < 0.5 {
			return from
		}
		return to
	}

	return lipgloss.Color(a.BlendLab(b, alpha).Clamped().Hex())
}

// Opacity renders s with its foreground faded into the Base background by alpha.
// Fully transparent text renders as blank space of the same width.
func Opacity(fg lipgloss.Color, alpha float64) func(string) string {
	return func(s string) string {
		if alpha <= 0 {
			return New().Width(lipgloss.Width(s)).Render("")
		}
		return New().Foreground(Blend(Base, fg, alpha)).Render(s)
	}
}
