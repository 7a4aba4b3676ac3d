package commands

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Ho-67/colorpick/internal/color"
)

// swatch renders a small colored block with the hex code printed over it in
// the luminance-matched label color.
func swatch(c color.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.LabelColor())).
		Padding(0, 1).
		Render(c.Hex())
}

// chip renders a narrow unlabeled block of the color.
func chip(c color.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render("   ")
}
