package editor

import (
	"sync"

	"github.com/dshills/richnote/internal/archive"
	"github.com/dshills/richnote/internal/autoformat"
	"github.com/dshills/richnote/internal/checkbox"
	"github.com/dshills/richnote/internal/codec"
	"github.com/dshills/richnote/internal/config"
	"github.com/dshills/richnote/internal/palette"
	"github.com/dshills/richnote/internal/style"
	"github.com/dshills/richnote/internal/textbuf"
)

// Session is the main facade for note editing. It combines the attributed
// buffer, the caret style state, auto-formatting, checkbox conversion,
// and the codec passes into a unified, thread-safe API.
type Session struct {
	mu sync.RWMutex

	buf    *textbuf.Buffer
	env    *style.Env
	state  style.State
	codec  *codec.Codec
	format *autoformat.Engine
	boxes  *checkbox.Converter

	caret     int
	selection *textbuf.Range

	convertBoxes bool
	defaultState style.State

	// Initialization
	initText string
	numbered bool
	bullets  bool
}

// Option configures a Session.
type Option func(*Session)

// WithText sets the initial plain-text content.
func WithText(text string) Option {
	return func(s *Session) {
		s.initText = text
	}
}

// WithEnv sets the styling environment (fonts, registry, theme).
func WithEnv(env *style.Env) Option {
	return func(s *Session) {
		if env != nil {
			s.env = env
		}
	}
}

// WithDefaultSize sets the size token new text starts with.
func WithDefaultSize(size style.FontSize) Option {
	return func(s *Session) {
		s.state = s.state.WithSize(size)
	}
}

// WithAutoFormat enables or disables list continuation on line breaks.
func WithAutoFormat(numbered, bullets bool) Option {
	return func(s *Session) {
		s.numbered = numbered
		s.bullets = bullets
	}
}

// WithCheckboxes enables or disables bracket-token conversion while typing.
func WithCheckboxes(enabled bool) Option {
	return func(s *Session) {
		s.convertBoxes = enabled
	}
}

// New creates a Session with the given options.
func New(opts ...Option) *Session {
	s := &Session{
		env:          style.DefaultEnv(),
		state:        style.NewState(),
		numbered:     true,
		bullets:      true,
		convertBoxes: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.defaultState = s.state
	s.buf = textbuf.NewFromString(s.initText)
	s.codec = codec.New(
		codec.WithRegistry(s.env.Registry),
		codec.WithTheme(s.env.Theme),
		codec.WithFonts(s.env.Fonts),
	)
	s.format = autoformat.New(
		autoformat.WithNumberedLists(s.numbered),
		autoformat.WithBullets(s.bullets),
	)
	s.boxes = checkbox.New()
	return s
}

// NewFromConfig creates a Session wired from a validated configuration.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Session, error) {
	env, err := cfg.BuildEnv()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithEnv(env),
		WithDefaultSize(cfg.Editor.Size()),
		WithAutoFormat(cfg.Editor.AutoFormat.NumberedLists, cfg.Editor.AutoFormat.Bullets),
		WithCheckboxes(cfg.Editor.AutoFormat.Checkboxes),
	}
	return New(append(base, opts...)...), nil
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the full buffer content.
func (s *Session) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Text()
}

// Len returns the buffer length in bytes.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Len()
}

// IsEmpty returns true if the buffer has no content.
func (s *Session) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.IsEmpty()
}

// LineCount returns the number of lines.
func (s *Session) LineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.LineCount()
}

// Caret returns the caret byte offset.
func (s *Session) Caret() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.caret
}

// Selection returns the active selection, if any.
func (s *Session) Selection() (textbuf.Range, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selection == nil {
		return textbuf.Range{}, false
	}
	return *s.selection, true
}

// State returns the current caret style state.
func (s *Session) State() style.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// AttributesAt returns the attributes at offset and the maximal run
// containing it.
func (s *Session) AttributesAt(offset int) (style.Attributes, textbuf.Range) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Attributes(offset)
}

// MarkerAt returns the checkbox marker at offset, if any.
func (s *Session) MarkerAt(offset int) (*style.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return checkbox.MarkerAt(s.buf, offset)
}

// Snapshot returns an independent copy of the buffer.
func (s *Session) Snapshot() *textbuf.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Clone()
}

// ============================================================================
// Caret and Selection
// ============================================================================

// SetCaret moves the caret, clearing any selection. The offset is clamped
// to the buffer and snapped back to a grapheme cluster boundary.
func (s *Session) SetCaret(offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.caret = s.buf.SnapOffset(offset)
	s.selection = nil
}

// Select sets the selection, widening it outward to grapheme cluster
// boundaries. Start and end may arrive in either order. An empty range
// collapses to a caret move.
func (s *Session) Select(start, end int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if start > end {
		start, end = end, start
	}
	start = clamp(start, 0, s.buf.Len())
	end = clamp(end, 0, s.buf.Len())

	r := s.buf.SnapRange(textbuf.Range{Start: start, End: end})
	if r.IsEmpty() {
		s.caret = r.Start
		s.selection = nil
		return
	}
	s.selection = &r
	s.caret = r.End
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClearSelection drops the selection, leaving the caret in place.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nil
}

// ============================================================================
// Editing
// ============================================================================

// Type inserts text at the caret (replacing the selection if one exists)
// with the current style state applied, then converts any bracket tokens
// to checkbox markers. The caret moves past the inserted text.
func (s *Session) Type(text string) error {
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	attrs := s.state.Materialize(s.env)
	before := s.buf.Len()

	if sel := s.selection; sel != nil {
		if err := s.buf.ReplaceWithAttributes(sel.Start, sel.End, text, attrs); err != nil {
			return err
		}
		// Inserted byte count via length delta: ingest normalization may
		// shorten the typed text.
		s.caret = sel.Start + (s.buf.Len() - before) + sel.Len()
		s.selection = nil
	} else {
		if err := s.buf.InsertWithAttributes(s.caret, text, attrs); err != nil {
			return err
		}
		s.caret += s.buf.Len() - before
	}

	if s.convertBoxes {
		// Marker and bracket token have the same byte length, so the
		// caret stays valid across conversion.
		if _, err := s.boxes.Convert(s.buf, &attrs); err != nil {
			return err
		}
	}
	return nil
}

// LineBreak inserts a line break at the caret, continuing list prefixes
// per the auto-format rules. A selection is deleted first.
func (s *Session) LineBreak() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sel := s.selection; sel != nil {
		if err := s.buf.Delete(sel.Start, sel.End); err != nil {
			return err
		}
		s.caret = sel.Start
		s.selection = nil
	}

	caret, err := s.format.HandleLineBreak(s.buf, s.caret)
	if err != nil {
		return err
	}
	s.caret = caret
	return nil
}

// ConvertCheckboxes scans the whole buffer for bracket tokens and
// converts them to markers, styling trailing spaces with the current
// state. Returns whether anything was converted.
func (s *Session) ConvertCheckboxes() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attrs := s.state.Materialize(s.env)
	return s.boxes.Convert(s.buf, &attrs)
}

// ToggleCheckbox flips the checked state of the marker at offset.
// Returns false if no marker is there.
func (s *Session) ToggleCheckbox(offset int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return checkbox.Toggle(s.buf, offset)
}

// ============================================================================
// Styling
// ============================================================================

// ToggleBold flips bold in the style state and applies the result to the
// selection, if any.
func (s *Session) ToggleBold() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.ToggleBold()
	bold := s.state.Bold
	return s.restyle(func(st style.State) style.State {
		st.Bold = bold
		return st
	})
}

// ToggleItalic flips italic in the style state and applies the result to
// the selection, if any.
func (s *Session) ToggleItalic() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.ToggleItalic()
	italic := s.state.Italic
	return s.restyle(func(st style.State) style.State {
		st.Italic = italic
		return st
	})
}

// ToggleUnderline flips underline in the style state and applies the
// result to the selection, if any.
func (s *Session) ToggleUnderline() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.ToggleUnderline()
	underline := s.state.Underline
	return s.restyle(func(st style.State) style.State {
		st.Underline = underline
		return st
	})
}

// ToggleStrikethrough flips strikethrough in the style state and applies
// the result to the selection, if any.
func (s *Session) ToggleStrikethrough() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.ToggleStrikethrough()
	strike := s.state.Strikethrough
	return s.restyle(func(st style.State) style.State {
		st.Strikethrough = strike
		return st
	})
}

// SetSize sets the size token in the style state and applies it to the
// selection, if any.
func (s *Session) SetSize(size style.FontSize) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithSize(size)
	applied := s.state.Size
	return s.restyle(func(st style.State) style.State {
		return st.WithSize(applied)
	})
}

// SetForeground sets the foreground identity in the style state and
// applies it to the selection, if any.
func (s *Session) SetForeground(id palette.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithForeground(id)
	applied := s.state.Foreground
	return s.restyle(func(st style.State) style.State {
		return st.WithForeground(applied)
	})
}

// SetHighlight sets the highlight identity in the style state and applies
// it to the selection, if any. The empty identity clears the highlight.
func (s *Session) SetHighlight(id palette.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithHighlight(id)
	return s.restyle(func(st style.State) style.State {
		return st.WithHighlight(id)
	})
}

// restyle rebuilds every run in the selection through the state transform.
// Checkbox markers survive restyling. Callers hold the write lock.
func (s *Session) restyle(apply func(style.State) style.State) error {
	if s.selection == nil {
		return nil
	}
	return s.buf.TransformAttributes(*s.selection, func(a style.Attributes) style.Attributes {
		out := apply(style.Extract(a, s.env)).Materialize(s.env)
		out.Todo = a.Todo
		return out
	})
}

// ============================================================================
// Persistence
// ============================================================================

// Save runs the encode pass and marshals the result into the archive
// envelope. The live buffer is not modified.
func (s *Session) Save() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return archive.Marshal(s.codec.Encode(s.buf))
}

// Load replaces the session content with an unarchived document, running
// the decode pass to rebuild concrete attributes. The caret moves to the
// start and the style state resets to its configured default.
func (s *Session) Load(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := archive.Unmarshal(data)
	if err != nil {
		return err
	}
	s.buf = s.codec.Decode(b)
	s.caret = 0
	s.selection = nil
	s.state = s.defaultState
	return nil
}
