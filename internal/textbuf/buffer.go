package textbuf

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dshills/richnote/internal/style"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrEditsOverlap     = errors.New("edits overlap or are not in reverse order")
)

// Buffer is an attributed text buffer: UTF-8 text partitioned into
// attribute runs. Not safe for concurrent mutation; see the package
// documentation for the concurrency model.
type Buffer struct {
	text     string
	runs     []run
	revision Revision
}

// run is one attribute run. Runs store lengths, not offsets, so edits only
// touch the runs they overlap.
type run struct {
	length int
	attrs  style.Attributes
}

// Option configures a Buffer at construction.
type Option func(*Buffer)

// WithInitialAttributes sets the attributes of the initial text.
func WithInitialAttributes(attrs style.Attributes) Option {
	return func(b *Buffer) {
		if len(b.runs) > 0 {
			b.runs[0].attrs = attrs.Clone()
		}
	}
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{revision: NextRevision()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer with initial content. The text is
// normalized (line endings to LF, Unicode to NFC) and covered by a single
// run of zero-value attributes unless WithInitialAttributes overrides them.
func NewFromString(s string, opts ...Option) *Buffer {
	s = normalizeText(s)
	b := &Buffer{text: s, revision: NextRevision()}
	if len(s) > 0 {
		b.runs = []run{{length: len(s)}}
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// normalizeText converts line endings to LF and the encoding to NFC.
// Both transforms are fixpoints: normalizing already-normalized text is
// the identity, which keeps archived run lengths aligned on reload.
func normalizeText(s string) string {
	if strings.ContainsRune(s, '\r') {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return s
}

// Read operations

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// IsEmpty returns true if the buffer has no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return b.text
}

// TextRange returns the text in [start, end), clamped to the buffer.
func (b *Buffer) TextRange(start, end int) string {
	r := Range{Start: start, End: end}.Clamp(len(b.text))
	return b.text[r.Start:r.End]
}

// RuneCount returns the number of Unicode code points in the buffer.
func (b *Buffer) RuneCount() int {
	return utf8.RuneCountInString(b.text)
}

// Revision returns the current buffer revision.
func (b *Buffer) Revision() Revision {
	return b.revision
}

// Write operations

// Insert inserts text at the given offset. The text inherits the
// attributes of the character before the insertion point (the first run
// when inserting at offset zero), except a checkbox marker's Todo
// attachment, which stays on its placeholder.
func (b *Buffer) Insert(offset int, text string) error {
	return b.insert(offset, text, nil)
}

// InsertWithAttributes inserts text carrying explicit attributes.
func (b *Buffer) InsertWithAttributes(offset int, text string, attrs style.Attributes) error {
	a := attrs.Clone()
	return b.insert(offset, text, &a)
}

func (b *Buffer) insert(offset int, text string, attrs *style.Attributes) error {
	if offset < 0 || offset > len(b.text) {
		return ErrOffsetOutOfRange
	}
	text = normalizeText(text)
	if text == "" {
		return nil
	}
	b.splice(offset, offset, text, attrs)
	b.revision = NextRevision()
	return nil
}

// Delete removes the text in [start, end).
func (b *Buffer) Delete(start, end int) error {
	if start < 0 || start > end || end > len(b.text) {
		return ErrRangeInvalid
	}
	if start == end {
		return nil
	}
	b.splice(start, end, "", nil)
	b.revision = NextRevision()
	return nil
}

// Replace replaces the text in [start, end). The replacement inherits
// attributes like Insert does, evaluated after the deletion.
func (b *Buffer) Replace(start, end int, text string) error {
	return b.replace(start, end, text, nil)
}

// ReplaceWithAttributes replaces the text in [start, end) with text
// carrying explicit attributes.
func (b *Buffer) ReplaceWithAttributes(start, end int, text string, attrs style.Attributes) error {
	a := attrs.Clone()
	return b.replace(start, end, text, &a)
}

func (b *Buffer) replace(start, end int, text string, attrs *style.Attributes) error {
	if start < 0 || start > end || end > len(b.text) {
		return ErrRangeInvalid
	}
	text = normalizeText(text)
	if start == end && text == "" {
		return nil
	}
	b.splice(start, end, text, attrs)
	b.revision = NextRevision()
	return nil
}

// Clone returns an independent deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{text: b.text, revision: NextRevision()}
	out.runs = make([]run, len(b.runs))
	for i, r := range b.runs {
		out.runs[i] = run{length: r.length, attrs: r.attrs.Clone()}
	}
	return out
}

// Equal reports whether two buffers hold the same text and the same
// maximal runs with equal attributes.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.text != other.text || len(b.runs) != len(other.runs) {
		return false
	}
	for i, r := range b.runs {
		o := other.runs[i]
		if r.length != o.length || !r.attrs.Equals(o.attrs) {
			return false
		}
	}
	return true
}

// MapRuns returns a new buffer with the same text whose attributes are the
// result of applying fn to each maximal run in order. The effective
// attributes are re-queried at every run boundary; fn receives a private
// clone and may return it modified. The receiver is not changed.
func (b *Buffer) MapRuns(fn func(Range, style.Attributes) style.Attributes) *Buffer {
	out := &Buffer{text: b.text, revision: NextRevision()}
	out.runs = make([]run, 0, len(b.runs))
	offset := 0
	for _, r := range b.runs {
		rng := Range{Start: offset, End: offset + r.length}
		out.runs = append(out.runs, run{length: r.length, attrs: fn(rng, r.attrs.Clone())})
		offset = rng.End
	}
	out.coalesce()
	return out
}
