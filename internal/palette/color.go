package palette

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a concrete color value with red, green, blue, and alpha
// channels, each in [0, 1]. It is the value a style identity resolves to;
// identities, not Color values, are what survive archival.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from channel values in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from channel values in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// rgb8 creates an opaque color from 8-bit channel values.
func rgb8(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// Equals returns true if two colors match exactly on all four channels.
func (c Color) Equals(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B && c.A == other.A
}

// WithinTolerance returns true if every channel of the two colors is within
// tol of its counterpart.
func (c Color) WithinTolerance(other Color, tol float64) bool {
	return math.Abs(c.R-other.R) <= tol &&
		math.Abs(c.G-other.G) <= tol &&
		math.Abs(c.B-other.B) <= tol &&
		math.Abs(c.A-other.A) <= tol
}

// Hex8 returns the 8-hex-digit lowercase encoding of the color: one rounded
// byte per channel in RGBA order. The encoding is reversible via ParseHex8
// to within 1/255 per channel.
func (c Color) Hex8() string {
	cc := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	a := uint8(math.Round(clamp01(c.A) * 255))
	return fmt.Sprintf("%s%02x", cc.Hex()[1:], a)
}

// ParseHex8 decodes an 8-hex-digit RGBA string produced by Hex8.
func ParseHex8(s string) (Color, error) {
	if len(s) != 8 {
		return Color{}, fmt.Errorf("hex color %q: want 8 digits, got %d", s, len(s))
	}
	cc, err := colorful.Hex("#" + s[:6])
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	a, err := strconv.ParseUint(s[6:8], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return Color{R: cc.R, G: cc.G, B: cc.B, A: float64(a) / 255}, nil
}

// Lightness returns the perceptual lightness of the color in [0, 1],
// ignoring alpha. Used to derive the automatic foreground for a theme
// background.
func (c Color) Lightness() float64 {
	l, _, _ := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Lab()
	return l
}

// String returns a human-readable representation of the color.
func (c Color) String() string {
	return "#" + c.Hex8()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
