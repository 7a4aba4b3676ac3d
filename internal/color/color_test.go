package color

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexCanonicalForm(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"black", Color{0, 0, 0}, "#000000"},
		{"white", Color{255, 255, 255}, "#FFFFFF"},
		{"single digit channels pad", Color{1, 2, 3}, "#010203"},
		{"mixed", Color{255, 0, 170}, "#FF00AA"},
		{"lowercase never leaks", Color{171, 205, 239}, "#ABCDEF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.Hex()
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 7)
		})
	}
}

func TestRGBString(t *testing.T) {
	assert.Equal(t, "rgb(255, 0, 170)", Color{255, 0, 170}.RGB())
	assert.Equal(t, "rgb(0, 0, 0)", Color{}.RGB())
}

func TestHexRoundTrip(t *testing.T) {
	// Sweep every value on each channel with the others pinned, then a
	// pseudo-random sample of full triples.
	for v := 0; v <= 255; v++ {
		for _, c := range []Color{
			{R: uint8(v), G: 7, B: 200},
			{R: 7, G: uint8(v), B: 200},
			{R: 7, G: 200, B: uint8(v)},
		} {
			got, verdict := ParseHex(c.Hex())
			assert.Equal(t, VerdictOK, verdict)
			assert.Equal(t, c, got)
		}
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := Random(rng)
		got, verdict := ParseHex(c.Hex())
		assert.Equal(t, VerdictOK, verdict)
		assert.Equal(t, c, got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		verdict Verdict
	}{
		{"six digits", "FF00AA", Color{255, 0, 170}, VerdictOK},
		{"six digits with hash", "#FF00AA", Color{255, 0, 170}, VerdictOK},
		{"lowercase six digits", "ff00aa", Color{255, 0, 170}, VerdictOK},
		{"shorthand doubles digits", "F0A", Color{255, 0, 170}, VerdictOK},
		{"shorthand with hash", "#f0a", Color{255, 0, 170}, VerdictOK},
		{"surrounding spaces trimmed", "  #FF00AA ", Color{255, 0, 170}, VerdictOK},

		{"stray letters", "GGHHII", Color{}, VerdictError},
		{"stray punctuation", "FF00A!", Color{}, VerdictError},
		{"css rgb form", "rgb(1,2,3)", Color{}, VerdictError},
		{"seven digits with hash", "#FFFFFFF", Color{}, VerdictError},
		{"eight chars", "12345678", Color{}, VerdictError},
		{"seven chars not a code", "FFFFFF#", Color{}, VerdictError},

		{"empty", "", Color{}, VerdictTyping},
		{"bare hash", "#", Color{}, VerdictTyping},
		{"one digit", "F", Color{}, VerdictTyping},
		{"two digits", "FF", Color{}, VerdictTyping},
		{"four digits", "FF00", Color{}, VerdictTyping},
		{"five digits", "FF00A", Color{}, VerdictTyping},
		{"hash plus five", "#FF00A", Color{}, VerdictTyping},
		{"double hash", "##", Color{}, VerdictTyping},
		{"hash in the middle", "F0#A", Color{}, VerdictTyping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verdict := ParseHex(tt.input)
			assert.Equal(t, tt.verdict, verdict, "verdict for %q", tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetChannelClamps(t *testing.T) {
	c := Color{10, 20, 30}

	c = c.SetChannel(Red, 300)
	assert.Equal(t, 255, c.Channel(Red))

	c = c.SetChannel(Green, -5)
	assert.Equal(t, 0, c.Channel(Green))

	c = c.SetChannel(Blue, 170)
	assert.Equal(t, Color{255, 0, 170}, c)
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 255, Color{255, 255, 255}.Luminance(), 0.0001)
	assert.InDelta(t, 0, Color{0, 0, 0}.Luminance(), 0.0001)

	// Green dominates the weighting.
	assert.Greater(t, Color{0, 255, 0}.Luminance(), Color{255, 0, 0}.Luminance())
	assert.Greater(t, Color{255, 0, 0}.Luminance(), Color{0, 0, 255}.Luminance())
}

func TestLabelColor(t *testing.T) {
	assert.True(t, Color{255, 255, 255}.IsLight())
	assert.Equal(t, DarkLabel, Color{255, 255, 255}.LabelColor())

	assert.False(t, Color{0, 0, 0}.IsLight())
	assert.Equal(t, LightLabel, Color{0, 0, 0}.LabelColor())

	// An equal-channel grey has luminance exactly equal to its channel value.
	// 140 sits on the threshold and the comparison is strict, so it is dark.
	boundary := Color{140, 140, 140}
	assert.Equal(t, 140.0, boundary.Luminance())
	assert.False(t, boundary.IsLight())
	assert.True(t, Color{141, 141, 141}.IsLight())
}

func TestRandomRangeAndDeterminism(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		assert.Equal(t, Random(a), Random(b))
	}

	// Uniform draws should reach both ends of the range over enough samples.
	rng := rand.New(rand.NewSource(7))
	low, high := 255, 0
	for i := 0; i < 5000; i++ {
		v := RandomChannel(rng)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 255)
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	assert.Less(t, low, 16)
	assert.Greater(t, high, 239)
}
