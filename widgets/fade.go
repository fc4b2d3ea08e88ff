package widgets

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fade blends fg toward bg as opacity drops from 1 to 0. Colours that do not
// parse as hex are returned unchanged.
func Fade(fg, bg string, opacity float64) lipgloss.Color {
	opacity = math.Max(0, math.Min(1, opacity))
	from, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	to, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	return lipgloss.Color(to.BlendRgb(from, opacity).Clamped().Hex())
}
