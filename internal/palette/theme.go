package palette

// Theme supplies the colors that are theme-derived rather than archived.
// The only one the engine depends on is the automatic foreground: the color
// a run painted with the "automatic" identity renders in. It is recomputed
// from the live theme on every decode and never written to storage.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Dark reports whether the theme has a dark background.
	Dark bool

	// Background is the canvas color text is drawn over.
	Background Color

	// foreground is the automatic text color for this background.
	foreground Color
}

// DefaultLight returns the built-in light theme.
func DefaultLight() *Theme {
	return &Theme{
		Name:       "light",
		Dark:       false,
		Background: rgb8(0xff, 0xff, 0xff),
		foreground: rgb8(0x1c, 0x1c, 0x1e),
	}
}

// DefaultDark returns the built-in dark theme.
func DefaultDark() *Theme {
	return &Theme{
		Name:       "dark",
		Dark:       true,
		Background: rgb8(0x1c, 0x1c, 0x1e),
		foreground: rgb8(0xf2, 0xf2, 0xf7),
	}
}

// ThemeForBackground derives a theme from an arbitrary background color,
// picking a near-black or near-white automatic foreground by perceptual
// lightness.
func ThemeForBackground(name string, bg Color) *Theme {
	dark := bg.Lightness() < 0.5
	t := &Theme{Name: name, Dark: dark, Background: bg}
	if dark {
		t.foreground = rgb8(0xf2, 0xf2, 0xf7)
	} else {
		t.foreground = rgb8(0x1c, 0x1c, 0x1e)
	}
	return t
}

// Automatic returns the theme foreground: the concrete color behind the
// "automatic" identity for this theme.
func (t *Theme) Automatic() Color {
	return t.foreground
}
