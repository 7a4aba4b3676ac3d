// Package palette derives small harmony palettes from a base color using
// HSL math.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Ho-67/colorpick/internal/color"
)

func toColorful(c color.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.Color{R: r, G: g, B: b}
}

// Complement returns the hue-opposite color at the same saturation and
// lightness.
func Complement(c color.Color) color.Color {
	h, s, l := toColorful(c).Hsl()
	return fromColorful(colorful.Hsl(math.Mod(h+180, 360), s, l))
}

// Analogous returns n colors with hues spread evenly across ±30° around c.
// The base color sits in the middle of the spread. n < 1 yields nil.
func Analogous(c color.Color, n int) []color.Color {
	if n < 1 {
		return nil
	}
	h, s, l := toColorful(c).Hsl()
	if n == 1 {
		return []color.Color{fromColorful(colorful.Hsl(h, s, l))}
	}

	out := make([]color.Color, 0, n)
	for i := 0; i < n; i++ {
		offset := -30 + 60*float64(i)/float64(n-1)
		hue := math.Mod(h+offset+360, 360)
		out = append(out, fromColorful(colorful.Hsl(hue, s, l)))
	}
	return out
}

// Shades returns n colors sharing the hue and saturation of c, with
// lightness stepping evenly from dark to light. n < 1 yields nil.
func Shades(c color.Color, n int) []color.Color {
	if n < 1 {
		return nil
	}
	h, s, _ := toColorful(c).Hsl()
	if n == 1 {
		return []color.Color{c}
	}

	// Stay off the pure black/white endpoints so every shade keeps its hue.
	const lo, hi = 0.12, 0.88
	out := make([]color.Color, 0, n)
	for i := 0; i < n; i++ {
		l := lo + (hi-lo)*float64(i)/float64(n-1)
		out = append(out, fromColorful(colorful.Hsl(h, s, l)))
	}
	return out
}
