package style

import "github.com/dshills/richnote/internal/palette"

// State is the immutable value describing the active or selected text
// style. Transform methods return a new State with exactly one field
// changed; the receiver is never modified.
type State struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Size          FontSize
	Foreground    palette.Identity
	Highlight     palette.Identity
}

// NewState returns the default style: normal size, automatic foreground,
// no highlight, no traits.
func NewState() State {
	return State{
		Size:       SizeNormal,
		Foreground: palette.Automatic,
	}
}

// ToggleBold returns the state with bold flipped.
func (s State) ToggleBold() State {
	s.Bold = !s.Bold
	return s
}

// ToggleItalic returns the state with italic flipped.
func (s State) ToggleItalic() State {
	s.Italic = !s.Italic
	return s
}

// ToggleUnderline returns the state with underline flipped.
func (s State) ToggleUnderline() State {
	s.Underline = !s.Underline
	return s
}

// ToggleStrikethrough returns the state with strikethrough flipped.
func (s State) ToggleStrikethrough() State {
	s.Strikethrough = !s.Strikethrough
	return s
}

// WithSize returns the state with the given size. SizeUnset normalizes to
// SizeNormal; a State always carries a concrete size.
func (s State) WithSize(size FontSize) State {
	if size == SizeUnset {
		size = SizeNormal
	}
	s.Size = size
	return s
}

// WithForeground returns the state with the given foreground identity.
// The empty identity normalizes to automatic.
func (s State) WithForeground(id palette.Identity) State {
	if id == "" {
		id = palette.Automatic
	}
	s.Foreground = id
	return s
}

// WithHighlight returns the state with the given highlight identity.
// The empty identity means no highlight.
func (s State) WithHighlight(id palette.Identity) State {
	s.Highlight = id
	return s
}

// Env carries the collaborators State needs to materialize into concrete
// attributes: the font system, the identity registry, and the live theme.
type Env struct {
	Fonts    Provider
	Registry *palette.Registry
	Theme    *palette.Theme
}

// DefaultEnv returns an Env over the platform-neutral font provider, the
// fixed palette, and the light theme.
func DefaultEnv() *Env {
	return &Env{
		Fonts:    DefaultProvider(),
		Registry: palette.NewRegistry(),
		Theme:    palette.DefaultLight(),
	}
}

// filled returns an Env with nil fields replaced by defaults.
func (e *Env) filled() Env {
	out := Env{}
	if e != nil {
		out = *e
	}
	if out.Fonts == nil {
		out.Fonts = DefaultProvider()
	}
	if out.Registry == nil {
		out.Registry = palette.NewRegistry()
	}
	if out.Theme == nil {
		out.Theme = palette.DefaultLight()
	}
	return out
}

// Materialize produces the concrete Attributes this state renders as.
// The font is built through the provider; requesting bold+italic yields a
// font carrying both traits, falling back to the unmodified face when the
// font system cannot synthesize the combination. Never errors.
func (s State) Materialize(env *Env) Attributes {
	e := env.filled()

	attrs := Attributes{
		Bold:          s.Bold,
		Italic:        s.Italic,
		Underline:     s.Underline,
		Strikethrough: s.Strikethrough,
		Size:          s.Size,
	}
	if attrs.Size == SizeUnset {
		attrs.Size = SizeNormal
	}

	font := e.Fonts.System(attrs.Size.Points())
	if s.Bold || s.Italic {
		if variant, ok := e.Fonts.WithTraits(font, s.Bold, s.Italic); ok {
			font = variant
		}
	}
	attrs.Font = &font

	fg := s.Foreground
	if fg == "" {
		fg = palette.Automatic
	}
	attrs.Foreground = fg
	if fg == palette.Automatic {
		c := e.Theme.Automatic()
		attrs.ForegroundColor = &c
	} else if c, ok := e.Registry.Resolve(fg); ok {
		attrs.ForegroundColor = &c
	}

	if s.Highlight != "" {
		attrs.Highlight = s.Highlight
		if c, ok := e.Registry.Resolve(s.Highlight); ok {
			attrs.HighlightColor = &c
		}
	}

	return attrs
}

// Extract reconstructs the State that materializes to the given attributes.
// Every lookup has a deterministic fallback: trait flags fall back to the
// font's traits, the size to the font's point size and then the default,
// a missing foreground to automatic. Round-trip law:
// Extract(s.Materialize(env), env) == s for every reachable s.
func Extract(attrs Attributes, env *Env) State {
	e := env.filled()

	s := State{
		Bold:          attrs.Bold,
		Italic:        attrs.Italic,
		Underline:     attrs.Underline,
		Strikethrough: attrs.Strikethrough,
	}
	if attrs.Font != nil {
		s.Bold = s.Bold || attrs.Font.Bold
		s.Italic = s.Italic || attrs.Font.Italic
	}

	switch {
	case attrs.Size != SizeUnset:
		s.Size = attrs.Size
	case attrs.Font != nil && attrs.Font.Points > 0:
		s.Size = SizeForPoints(attrs.Font.Points)
	default:
		s.Size = SizeNormal
	}

	switch {
	case attrs.Foreground != "":
		s.Foreground = attrs.Foreground
	case attrs.ForegroundColor != nil:
		s.Foreground = e.Registry.Identify(*attrs.ForegroundColor)
	default:
		s.Foreground = palette.Automatic
	}

	switch {
	case attrs.Highlight != "":
		s.Highlight = attrs.Highlight
	case attrs.HighlightColor != nil:
		s.Highlight = e.Registry.Identify(*attrs.HighlightColor)
	}

	return s
}
