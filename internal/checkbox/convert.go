package checkbox

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/dshills/richnote/internal/style"
	"github.com/dshills/richnote/internal/textbuf"
)

// The two fixed bracket patterns. Case-insensitive X only; no other
// content between the brackets is recognized.
var (
	uncheckedPattern = regexp.MustCompile(`\[ \]`)
	checkedPattern   = regexp.MustCompile(`\[[xX]\]`)
)

// match is one detected bracket token.
type match struct {
	r       textbuf.Range
	checked bool
}

// Converter replaces bracket tokens with checkbox placeholders.
type Converter struct{}

// New creates a Converter.
func New() *Converter {
	return &Converter{}
}

// Convert scans the buffer for bracket tokens and replaces each with a
// placeholder carrying a freshly identified marker, in one atomic batch.
// When spaceAttrs is non-nil and a single space follows a placeholder,
// that one space receives the supplied attributes, keeping text typed
// after the marker visually consistent. Reports whether any conversion
// occurred.
func (c *Converter) Convert(b *textbuf.Buffer, spaceAttrs *style.Attributes) (bool, error) {
	matches := scan(b.Text())
	if len(matches) == 0 {
		return false, nil
	}

	placeholder := string(style.Placeholder)
	edits := make([]textbuf.Edit, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		attrs, _ := b.Attributes(m.r.Start)
		attrs.Todo = style.NewTodo(m.checked)
		edits = append(edits, textbuf.NewEdit(m.r, placeholder).WithAttrs(attrs))
	}

	if err := b.ApplyEdits(edits); err != nil {
		return false, fmt.Errorf("replace checkbox tokens: %w", err)
	}

	// The placeholder has the same byte length as the bracket token it
	// replaces, so pre-scan offsets remain valid after the batch.
	if spaceAttrs != nil {
		for _, m := range matches {
			after := m.r.Start + len(placeholder)
			if after < b.Len() && b.TextRange(after, after+1) == " " {
				if err := b.SetAttributes(textbuf.Range{Start: after, End: after + 1}, *spaceAttrs); err != nil {
					return true, fmt.Errorf("style trailing space: %w", err)
				}
			}
		}
	}

	return true, nil
}

// scan collects the bracket tokens of both patterns as leftmost,
// non-overlapping matches in ascending offset order. The patterns cannot
// produce overlapping matches, but merged input from two scans is
// re-verified rather than trusted.
func scan(text string) []match {
	var matches []match
	for _, span := range uncheckedPattern.FindAllStringIndex(text, -1) {
		matches = append(matches, match{r: textbuf.NewRange(span[0], span[1])})
	}
	for _, span := range checkedPattern.FindAllStringIndex(text, -1) {
		matches = append(matches, match{r: textbuf.NewRange(span[0], span[1]), checked: true})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].r.Start < matches[j].r.Start
	})

	out := matches[:0]
	for _, m := range matches {
		if n := len(out); n > 0 && m.r.Start < out[n-1].r.End {
			continue
		}
		out = append(out, m)
	}
	return out
}

// MarkerAt returns the checkbox marker covering the given offset, if the
// character there is a placeholder with one attached.
func MarkerAt(b *textbuf.Buffer, offset int) (*style.Todo, bool) {
	attrs, _ := b.Attributes(offset)
	if attrs.Todo == nil {
		return nil, false
	}
	return attrs.Todo, true
}

// Toggle flips the checked state of the marker covering the given offset.
// Reports whether a marker was found.
func Toggle(b *textbuf.Buffer, offset int) (bool, error) {
	attrs, r := b.Attributes(offset)
	if attrs.Todo == nil {
		return false, nil
	}

	err := b.TransformAttributes(r, func(a style.Attributes) style.Attributes {
		if a.Todo != nil {
			a.Todo.Toggle()
		}
		return a
	})
	if err != nil {
		return false, fmt.Errorf("toggle marker: %w", err)
	}
	return true, nil
}
