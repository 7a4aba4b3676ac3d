package color

import (
	"strconv"
	"strings"
)

// Verdict classifies a hex string as it is being edited.
type Verdict int

const (
	// VerdictOK is a complete 3- or 6-digit code; the decoded color is valid.
	VerdictOK Verdict = iota
	// VerdictError is a string that can never become a valid code.
	VerdictError
	// VerdictTyping is incomplete but still plausible input; callers should
	// leave their current color untouched and not flag an error.
	VerdictTyping
)

func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictError:
		return "error"
	case VerdictTyping:
		return "typing"
	}
	return "unknown"
}

// ParseHex classifies s and, when it is a complete code, decodes it. The
// returned Color is only meaningful for VerdictOK. Classification depends on
// the shape of the input alone, checked in order:
//
//	character outside #0-9a-fA-F      -> error
//	3 or 6 hex digits, optional "#"   -> ok
//	longer than "#RRGGBB"             -> error
//	7 chars but not a code            -> error
//	anything shorter                  -> typing
//
// 3-digit shorthand expands by doubling each digit, so "F0A" means "FF00AA".
func ParseHex(s string) (Color, Verdict) {
	s = strings.TrimSpace(s)

	for _, r := range s {
		if r != '#' && !isHexDigit(r) {
			return Color{}, VerdictError
		}
	}

	digits := strings.TrimPrefix(s, "#")
	if isHexDigits(digits) {
		switch len(digits) {
		case 3:
			return decode(expandShorthand(digits)), VerdictOK
		case 6:
			return decode(digits), VerdictOK
		}
	}

	if len(s) >= 7 {
		return Color{}, VerdictError
	}
	return Color{}, VerdictTyping
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

// expandShorthand turns "F0A" into "FF00AA".
func expandShorthand(s string) string {
	var b strings.Builder
	b.Grow(6)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		b.WriteByte(s[i])
	}
	return b.String()
}

// decode parses exactly 6 hex digits into a Color.
func decode(digits string) Color {
	r, _ := strconv.ParseUint(digits[0:2], 16, 8)
	g, _ := strconv.ParseUint(digits[2:4], 16, 8)
	b, _ := strconv.ParseUint(digits[4:6], 16, 8)
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}
