package color

import (
	"fmt"
	"math/rand"
)

// Channel indexes for SetChannel/Channel.
const (
	Red = iota
	Green
	Blue
)

// Color is an RGB color. The three uint8 channels are the source of truth;
// the hex and rgb() forms are derived from them.
type Color struct {
	R, G, B uint8
}

// New builds a color from int channel values, clamping each to [0,255].
func New(r, g, b int) Color {
	return Color{clamp(r), clamp(g), clamp(b)}
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Hex returns the canonical encoding: "#" followed by 6 uppercase hex digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGB returns the rgb(r, g, b) display form.
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Channel returns the value of channel i as an int.
func (c Color) Channel(i int) int {
	switch i {
	case Red:
		return int(c.R)
	case Green:
		return int(c.G)
	case Blue:
		return int(c.B)
	}
	return 0
}

// SetChannel returns a copy of c with channel i set to v, clamped to [0,255].
func (c Color) SetChannel(i, v int) Color {
	switch i {
	case Red:
		c.R = clamp(v)
	case Green:
		c.G = clamp(v)
	case Blue:
		c.B = clamp(v)
	}
	return c
}

// Luminance estimates perceived brightness with the ITU-R BT.709 weights
// (0.2126, 0.7152, 0.0722). Integer weights scaled by 10000 keep equal-channel
// greys exact, so the threshold comparison is deterministic.
func (c Color) Luminance() float64 {
	return float64(2126*int(c.R)+7152*int(c.G)+722*int(c.B)) / 10000
}

// luminanceThreshold splits backgrounds that need dark text from those that
// need light text.
const luminanceThreshold = 140

// IsLight reports whether the color is bright enough to need dark label text.
// The comparison is strictly greater than the threshold, so a luminance of
// exactly 140 counts as dark.
func (c Color) IsLight() bool {
	return c.Luminance() > luminanceThreshold
}

// Label colors for text drawn over a Color background.
const (
	DarkLabel  = "#1A1A1A" // used on light backgrounds
	LightLabel = "#F5F5F5" // used on dark backgrounds
)

// LabelColor picks the readable text color for this background.
func (c Color) LabelColor() string {
	if c.IsLight() {
		return DarkLabel
	}
	return LightLabel
}

// Random returns a color with three independently uniform channels.
func Random(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// RandomChannel draws one uniform channel value in [0,255].
func RandomChannel(rng *rand.Rand) int {
	return rng.Intn(256)
}
