package textbuf

import (
	"fmt"

	"github.com/dshills/richnote/internal/style"
)

// Edit represents a text edit operation.
// It specifies a range to replace, the new text, and optionally the
// attributes the new text should carry. A nil Attrs inherits attributes
// from the character preceding the edit.
type Edit struct {
	Range   Range             // The range to replace
	NewText string            // The replacement text
	Attrs   *style.Attributes // Attributes for the new text, nil to inherit
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(offset int, text string) Edit {
	return Edit{
		Range:   Range{Start: offset, End: offset},
		NewText: text,
	}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end int) Edit {
	return Edit{
		Range:   Range{Start: start, End: end},
		NewText: "",
	}
}

// WithAttrs returns a copy of the edit carrying explicit attributes for
// the replacement text.
func (e Edit) WithAttrs(attrs style.Attributes) Edit {
	e.Attrs = &attrs
	return e
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// Delta returns the change in buffer length caused by this edit.
func (e Edit) Delta() int {
	return len(e.NewText) - e.Range.Len()
}

// ApplyEdits applies multiple edits atomically.
// Edits must be in reverse order (highest offset first) so earlier
// edits do not shift the offsets of later ones. The revision advances
// once for the whole batch.
func (b *Buffer) ApplyEdits(edits []Edit) error {
	if len(edits) == 0 {
		return nil
	}

	// Validate edits are in reverse order and non-overlapping.
	for i := 1; i < len(edits); i++ {
		if edits[i].Range.End > edits[i-1].Range.Start {
			return ErrEditsOverlap
		}
	}

	// Validate all ranges before touching the buffer.
	for _, edit := range edits {
		if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End ||
			edit.Range.End > len(b.text) {
			return fmt.Errorf("%w: %s", ErrRangeInvalid, edit.Range)
		}
	}

	for _, edit := range edits {
		var attrs *style.Attributes
		if edit.Attrs != nil {
			a := edit.Attrs.Clone()
			attrs = &a
		}
		b.splice(edit.Range.Start, edit.Range.End, normalizeText(edit.NewText), attrs)
	}

	b.revision = NextRevision()
	return nil
}
