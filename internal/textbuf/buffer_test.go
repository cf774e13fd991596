package textbuf

import (
	"errors"
	"testing"

	"github.com/dshills/richnote/internal/style"
)

func TestNewBuffer(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}

	if b.RunCount() != 0 {
		t.Errorf("expected 0 runs, got %d", b.RunCount())
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestNewFromString(t *testing.T) {
	text := "Hello, World!"
	b := NewFromString(text)

	if b.Text() != text {
		t.Errorf("expected %q, got %q", text, b.Text())
	}

	if b.Len() != len(text) {
		t.Errorf("expected length %d, got %d", len(text), b.Len())
	}

	if b.RunCount() != 1 {
		t.Errorf("expected 1 run, got %d", b.RunCount())
	}
}

func TestNewFromStringNormalizesLineEndings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"cr", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"clean", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.input)
			if b.Text() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, b.Text())
			}
		})
	}
}

func TestNewFromStringNormalizesToNFC(t *testing.T) {
	// e + combining acute accent composes to a single code point.
	b := NewFromString("Café")

	if b.Text() != "Café" {
		t.Errorf("expected NFC text, got %q", b.Text())
	}

	if b.Len() != 5 {
		t.Errorf("expected 5 bytes after composition, got %d", b.Len())
	}
}

func TestBufferInsertNormalizesPerFragment(t *testing.T) {
	b := NewFromString("e")

	// A combining mark inserted as its own fragment has no base to
	// compose with; composition never reaches across the splice
	// boundary.
	if err := b.Insert(1, "\u0301"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "e\u0301" {
		t.Errorf("expected decomposed pair, got %q", b.Text())
	}
	if b.GraphemeCount() != 1 {
		t.Errorf("expected 1 grapheme cluster, got %d", b.GraphemeCount())
	}

	// Construction normalizes the document as a whole and composes it.
	if got := NewFromString(b.Text()).Text(); got != "\u00e9" {
		t.Errorf("expected composed text, got %q", got)
	}
}

func TestWithInitialAttributes(t *testing.T) {
	bold := style.Attributes{Bold: true}
	b := NewFromString("hello", WithInitialAttributes(bold))

	attrs, r := b.Attributes(0)
	if !attrs.Bold {
		t.Error("expected initial text to be bold")
	}
	if r != (Range{Start: 0, End: 5}) {
		t.Errorf("expected run [0:5), got %s", r)
	}
}

func TestBufferInsert(t *testing.T) {
	b := NewFromString("Hello World")

	if err := b.Insert(5, ","); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", b.Text())
	}
}

func TestBufferInsertOutOfRange(t *testing.T) {
	b := NewFromString("Hello")

	if err := b.Insert(100, "X"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}

	if err := b.Insert(-1, "X"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestBufferInsertInheritsAttributes(t *testing.T) {
	b := NewFromString("ab")
	if err := b.SetAttributes(Range{Start: 0, End: 1}, style.Attributes{Bold: true}); err != nil {
		t.Fatalf("set attributes failed: %v", err)
	}

	// Inserting after the bold "a" inherits bold.
	if err := b.Insert(1, "X"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	attrs, r := b.Attributes(1)
	if !attrs.Bold {
		t.Error("inserted text should inherit bold from preceding character")
	}
	if r != (Range{Start: 0, End: 2}) {
		t.Errorf("expected bold run [0:2), got %s", r)
	}

	// Inserting at offset zero inherits from the first run.
	if err := b.Insert(0, "Y"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	attrs, _ = b.Attributes(0)
	if !attrs.Bold {
		t.Error("text inserted at start should inherit the first run's attributes")
	}
}

func TestBufferInsertAfterMarkerDoesNotExtendIt(t *testing.T) {
	placeholder := string(style.Placeholder)
	b := NewFromString(placeholder + "a")
	marked := style.Attributes{Bold: true, Todo: style.NewTodo(false)}
	if err := b.SetAttributes(Range{Start: 0, End: len(placeholder)}, marked); err != nil {
		t.Fatalf("set attributes failed: %v", err)
	}

	// Inserting right after the placeholder inherits its style, never
	// the marker identity.
	if err := b.Insert(len(placeholder), "X"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	attrs, r := b.Attributes(0)
	if attrs.Todo == nil {
		t.Fatal("marker lost")
	}
	if r != (Range{Start: 0, End: len(placeholder)}) {
		t.Errorf("marker run = %s, want [0:%d)", r, len(placeholder))
	}

	attrs, _ = b.Attributes(len(placeholder))
	if attrs.Todo != nil {
		t.Error("inserted text must not carry the marker")
	}
	if !attrs.Bold {
		t.Error("inserted text should inherit the surrounding style")
	}

	// The same holds at offset zero, where the marker run is the one
	// inherited from.
	if err := b.Insert(0, "Y"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	attrs, _ = b.Attributes(0)
	if attrs.Todo != nil {
		t.Error("text inserted before the marker must not carry it")
	}
	if !attrs.Bold {
		t.Error("text inserted before the marker should inherit its style")
	}
	attrs, r = b.Attributes(1)
	if attrs.Todo == nil {
		t.Fatal("marker lost after leading insert")
	}
	if r != (Range{Start: 1, End: 1 + len(placeholder)}) {
		t.Errorf("marker run = %s, want [1:%d)", r, 1+len(placeholder))
	}
}

func TestBufferInsertWithAttributes(t *testing.T) {
	b := NewFromString("ab")

	if err := b.InsertWithAttributes(1, "X", style.Attributes{Italic: true}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "aXb" {
		t.Errorf("expected 'aXb', got %q", b.Text())
	}

	attrs, r := b.Attributes(1)
	if !attrs.Italic {
		t.Error("expected inserted text to be italic")
	}
	if r != (Range{Start: 1, End: 2}) {
		t.Errorf("expected italic run [1:2), got %s", r)
	}

	if b.RunCount() != 3 {
		t.Errorf("expected 3 runs, got %d", b.RunCount())
	}
}

func TestBufferInsertIntoEmpty(t *testing.T) {
	b := New()

	if err := b.Insert(0, "hello"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if b.Text() != "hello" {
		t.Errorf("expected 'hello', got %q", b.Text())
	}

	attrs, r := b.Attributes(0)
	if !attrs.IsZero() {
		t.Errorf("expected zero attributes, got %s", attrs)
	}
	if r != (Range{Start: 0, End: 5}) {
		t.Errorf("expected run [0:5), got %s", r)
	}
}

func TestBufferDelete(t *testing.T) {
	b := NewFromString("Hello, World!")

	if err := b.Delete(5, 7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if b.Text() != "HelloWorld!" {
		t.Errorf("expected 'HelloWorld!', got %q", b.Text())
	}
}

func TestBufferDeleteInvalidRange(t *testing.T) {
	b := NewFromString("Hello")

	if err := b.Delete(3, 2); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}

	if err := b.Delete(0, 100); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestBufferDeleteMergesRuns(t *testing.T) {
	b := NewFromString("abc")
	if err := b.SetAttributes(Range{Start: 1, End: 2}, style.Attributes{Bold: true}); err != nil {
		t.Fatalf("set attributes failed: %v", err)
	}
	if b.RunCount() != 3 {
		t.Fatalf("expected 3 runs, got %d", b.RunCount())
	}

	// Deleting the bold "b" leaves two plain runs that must coalesce.
	if err := b.Delete(1, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if b.RunCount() != 1 {
		t.Errorf("expected 1 run after coalescing, got %d", b.RunCount())
	}

	_, r := b.Attributes(0)
	if r != (Range{Start: 0, End: 2}) {
		t.Errorf("expected run [0:2), got %s", r)
	}
}

func TestBufferReplace(t *testing.T) {
	b := NewFromString("Hello World")

	if err := b.Replace(6, 11, "Go"); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if b.Text() != "Hello Go" {
		t.Errorf("expected 'Hello Go', got %q", b.Text())
	}
}

func TestBufferReplaceInheritsAfterDeletion(t *testing.T) {
	b := NewFromString("ab")
	if err := b.SetAttributes(Range{Start: 0, End: 1}, style.Attributes{Bold: true}); err != nil {
		t.Fatalf("set attributes failed: %v", err)
	}

	// Replacing "b" inherits from "a", the character before the range.
	if err := b.Replace(1, 2, "XY"); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	attrs, r := b.Attributes(1)
	if !attrs.Bold {
		t.Error("replacement should inherit attributes of preceding character")
	}
	if r != (Range{Start: 0, End: 3}) {
		t.Errorf("expected run [0:3), got %s", r)
	}
}

func TestBufferReplaceWithAttributes(t *testing.T) {
	b := NewFromString("Hello World")

	if err := b.ReplaceWithAttributes(6, 11, "Go", style.Attributes{Underline: true}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	attrs, r := b.Attributes(6)
	if !attrs.Underline {
		t.Error("expected replacement to be underlined")
	}
	if r != (Range{Start: 6, End: 8}) {
		t.Errorf("expected run [6:8), got %s", r)
	}
}

func TestBufferTextRange(t *testing.T) {
	b := NewFromString("Hello World")

	if got := b.TextRange(6, 11); got != "World" {
		t.Errorf("expected 'World', got %q", got)
	}

	// Out-of-range boundaries clamp instead of failing.
	if got := b.TextRange(-5, 100); got != "Hello World" {
		t.Errorf("expected full text, got %q", got)
	}
}

func TestBufferRuneCount(t *testing.T) {
	b := NewFromString("héllo")

	if b.RuneCount() != 5 {
		t.Errorf("expected 5 runes, got %d", b.RuneCount())
	}

	if b.Len() != 6 {
		t.Errorf("expected 6 bytes, got %d", b.Len())
	}
}

func TestBufferRevisionAdvances(t *testing.T) {
	b := NewFromString("hello")
	rev := b.Revision()

	if err := b.Insert(0, "x"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Revision() == rev {
		t.Error("revision should advance after insert")
	}

	rev = b.Revision()
	if err := b.SetAttributes(Range{Start: 0, End: 2}, style.Attributes{Bold: true}); err != nil {
		t.Fatalf("set attributes failed: %v", err)
	}
	if b.Revision() == rev {
		t.Error("revision should advance after attribute change")
	}
}

func TestBufferClone(t *testing.T) {
	b := NewFromString("hello")
	if err := b.SetAttributes(Range{Start: 0, End: 2}, style.Attributes{Bold: true}); err != nil {
		t.Fatalf("set attributes failed: %v", err)
	}

	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone should equal original")
	}

	if err := c.Insert(0, "x"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Text() == c.Text() {
		t.Error("mutating clone should not affect original")
	}

	if err := c.SetAttributes(Range{Start: 0, End: 1}, style.Attributes{Italic: true}); err != nil {
		t.Fatalf("set attributes failed: %v", err)
	}
	attrs, _ := b.Attributes(0)
	if attrs.Italic {
		t.Error("clone attribute change leaked into original")
	}
}

func TestBufferEqual(t *testing.T) {
	a := NewFromString("hello")
	b := NewFromString("hello")

	if !a.Equal(b) {
		t.Error("identical buffers should be equal")
	}

	if err := b.SetAttributes(Range{Start: 0, End: 1}, style.Attributes{Bold: true}); err != nil {
		t.Fatalf("set attributes failed: %v", err)
	}
	if a.Equal(b) {
		t.Error("buffers with different attributes should not be equal")
	}

	if a.Equal(nil) {
		t.Error("buffer should not equal nil")
	}
}

func TestBufferLineOperations(t *testing.T) {
	b := NewFromString("first line\nsecond line\nthird line")

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}

	tests := []struct {
		line     int
		expected string
	}{
		{0, "first line"},
		{1, "second line"},
		{2, "third line"},
	}

	for _, tt := range tests {
		if got := b.LineText(tt.line); got != tt.expected {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.expected)
		}
	}
}

func TestBufferLineStartEnd(t *testing.T) {
	b := NewFromString("ab\ncde\n\nf")

	tests := []struct {
		line          int
		expectedStart int
		expectedEnd   int
	}{
		{0, 0, 2},
		{1, 3, 6},
		{2, 7, 7},
		{3, 8, 9},
		{99, 9, 9}, // out of range clamps to buffer end
	}

	for _, tt := range tests {
		start := b.LineStartOffset(tt.line)
		end := b.LineEndOffset(tt.line)

		if start != tt.expectedStart {
			t.Errorf("LineStartOffset(%d) = %d, want %d", tt.line, start, tt.expectedStart)
		}
		if end != tt.expectedEnd {
			t.Errorf("LineEndOffset(%d) = %d, want %d", tt.line, end, tt.expectedEnd)
		}
	}
}

func TestBufferLineForOffset(t *testing.T) {
	b := NewFromString("ab\ncde\nf")

	tests := []struct {
		offset   int
		expected int
	}{
		{0, 0},
		{2, 0},  // the newline belongs to line 0
		{3, 1},  // first byte of line 1
		{6, 1},  // newline at end of line 1
		{7, 2},  // first byte of line 2
		{8, 2},  // end of buffer
		{99, 2}, // past the end clamps to last line
		{-1, 0},
	}

	for _, tt := range tests {
		if got := b.LineForOffset(tt.offset); got != tt.expected {
			t.Errorf("LineForOffset(%d) = %d, want %d", tt.offset, got, tt.expected)
		}
	}
}

func TestBufferLineRangeTrailingNewline(t *testing.T) {
	b := NewFromString("ab\n")

	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}

	if r := b.LineRange(1); r != (Range{Start: 3, End: 3}) {
		t.Errorf("expected empty final line [3:3), got %s", r)
	}
}
