package codec

import (
	"github.com/dshills/richnote/internal/palette"
	"github.com/dshills/richnote/internal/style"
	"github.com/dshills/richnote/internal/textbuf"
)

// Codec stamps and recovers the redundant primitive styling metadata
// around the archival round trip.
type Codec struct {
	reg   *palette.Registry
	theme *palette.Theme
	fonts style.Provider
}

// Option is a functional option for configuring a Codec.
type Option func(*Codec)

// WithRegistry sets the identity registry used for color inference and
// resolution.
func WithRegistry(reg *palette.Registry) Option {
	return func(c *Codec) {
		if reg != nil {
			c.reg = reg
		}
	}
}

// WithTheme sets the theme supplying the automatic foreground color.
func WithTheme(theme *palette.Theme) Option {
	return func(c *Codec) {
		if theme != nil {
			c.theme = theme
		}
	}
}

// WithFonts sets the font provider used to rebuild fonts on decode.
func WithFonts(fonts style.Provider) Option {
	return func(c *Codec) {
		if fonts != nil {
			c.fonts = fonts
		}
	}
}

// New creates a Codec over the fixed palette, the light theme, and the
// platform-neutral font provider unless options override them.
func New(opts ...Option) *Codec {
	c := &Codec{
		reg:   palette.NewRegistry(),
		theme: palette.DefaultLight(),
		fonts: style.DefaultProvider(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode returns a copy of the buffer with redundant primitive metadata
// stamped onto every maximal run, ready for archival. The effective
// attributes are re-queried at each run boundary; nothing is assumed
// stable across the whole buffer.
func (c *Codec) Encode(b *textbuf.Buffer) *textbuf.Buffer {
	return b.MapRuns(func(_ textbuf.Range, attrs style.Attributes) style.Attributes {
		// Trait flags are re-derived from the font on every pass and
		// overwrite whatever was there. Merging would let a stale flag
		// from an earlier edit survive a font change.
		var bold, italic bool
		if attrs.Font != nil {
			bold, italic = attrs.Font.Bold, attrs.Font.Italic
		}
		attrs.Bold, attrs.Italic = bold, italic

		// A run with a concrete color but no token gets one inferred.
		// A run with neither stays absent; decode default-fills it.
		if attrs.Foreground == "" && attrs.ForegroundColor != nil {
			attrs.Foreground = c.reg.Identify(*attrs.ForegroundColor)
		}

		// The automatic color is theme-derived and recomputed at decode
		// time. Archiving a concrete value for it would freeze one
		// theme's color into the note.
		if attrs.Foreground == palette.Automatic {
			attrs.ForegroundColor = nil
		}

		if attrs.Highlight == "" && attrs.HighlightColor != nil {
			attrs.Highlight = c.reg.Identify(*attrs.HighlightColor)
		}

		return attrs
	})
}

// Decode returns a copy of the buffer with fonts and concrete colors
// rebuilt from the primitive metadata that survived archival.
func (c *Codec) Decode(b *textbuf.Buffer) *textbuf.Buffer {
	return b.MapRuns(func(_ textbuf.Range, attrs style.Attributes) style.Attributes {
		switch {
		case attrs.Foreground != "":
			if col, ok := c.reg.Resolve(attrs.Foreground); ok {
				attrs.ForegroundColor = &col
			} else {
				// Automatic, or a token mangled beyond recognition.
				// Either way the live theme color substitutes, and the
				// canonical automatic token replaces whatever was
				// archived.
				col := c.theme.Automatic()
				attrs.ForegroundColor = &col
				attrs.Foreground = palette.Automatic
			}
		case attrs.ForegroundColor == nil:
			// No token and no raw color: the run is treated as
			// deliberately automatic, never left colorless.
			col := c.theme.Automatic()
			attrs.ForegroundColor = &col
			attrs.Foreground = palette.Automatic
		}

		// Absence of highlight metadata means no highlight, not a
		// default. Only a present token is reconstructed; one that
		// resolves to nothing decodes to the absent form.
		if attrs.Highlight != "" {
			if col, ok := c.reg.Resolve(attrs.Highlight); ok {
				attrs.HighlightColor = &col
			} else {
				attrs.Highlight = ""
				attrs.HighlightColor = nil
			}
		}

		if attrs.Bold || attrs.Italic {
			font := c.fonts.System(c.recoverPoints(attrs))
			if variant, ok := c.fonts.WithTraits(font, attrs.Bold, attrs.Italic); ok {
				font = variant
			}
			attrs.Font = &font
		}
		// A run with neither flag keeps its font untouched: a plain,
		// unstyled run passes through unmodified.

		return attrs
	})
}

// recoverPoints picks the point size for a rebuilt font: the explicit
// size attribute first, then the archived font's point size if still
// readable, then the fixed default.
func (c *Codec) recoverPoints(attrs style.Attributes) float64 {
	switch {
	case attrs.Size != style.SizeUnset:
		return attrs.Size.Points()
	case attrs.Font != nil && attrs.Font.Points > 0:
		return attrs.Font.Points
	default:
		return style.DefaultPoints
	}
}
