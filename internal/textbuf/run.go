package textbuf

import "github.com/dshills/richnote/internal/style"

// Attributes returns the effective attributes at the given offset together
// with their longest effective range: the maximal run containing the
// offset. An out-of-range offset yields zero attributes and an empty range.
func (b *Buffer) Attributes(offset int) (style.Attributes, Range) {
	if offset < 0 || offset >= len(b.text) {
		return style.Attributes{}, Range{}
	}
	idx, start := b.runIndexAt(offset)
	r := b.runs[idx]
	return r.attrs.Clone(), Range{Start: start, End: start + r.length}
}

// RunCount returns the number of maximal runs.
func (b *Buffer) RunCount() int {
	return len(b.runs)
}

// SetAttributes assigns attributes to every run overlapping the range.
// The range snaps outward to grapheme cluster boundaries first, so a run
// never splits a user-perceived character.
func (b *Buffer) SetAttributes(r Range, attrs style.Attributes) error {
	return b.TransformAttributes(r, func(style.Attributes) style.Attributes {
		return attrs.Clone()
	})
}

// TransformAttributes rewrites the attributes of every run overlapping the
// range through fn. Boundary runs are split so text outside the range is
// untouched. fn receives a private clone and may return it modified.
func (b *Buffer) TransformAttributes(r Range, fn func(style.Attributes) style.Attributes) error {
	if !r.IsValid() || r.Start < 0 || r.End > len(b.text) {
		return ErrRangeInvalid
	}
	if r.IsEmpty() {
		return nil
	}
	r = b.snapToGraphemes(r)
	b.splitAt(r.Start)
	b.splitAt(r.End)

	pos := 0
	for i := range b.runs {
		start, end := pos, pos+b.runs[i].length
		pos = end
		if start >= r.End {
			break
		}
		if end <= r.Start {
			continue
		}
		b.runs[i].attrs = fn(b.runs[i].attrs.Clone())
	}
	b.coalesce()
	b.revision = NextRevision()
	return nil
}

// splice is the single low-level mutation: it replaces [start, end) with
// text, adjusting the run partition. attrs carries explicit attributes for
// the new text, nil to inherit from the character before start (evaluated
// after the deletion).
func (b *Buffer) splice(start, end int, text string, attrs *style.Attributes) {
	if start != end {
		b.deleteRuns(start, end)
	}
	b.text = b.text[:start] + text + b.text[end:]
	if len(text) > 0 {
		b.insertRuns(start, len(text), attrs)
	}
	b.coalesce()
}

// deleteRuns removes [start, end) from the run partition.
func (b *Buffer) deleteRuns(start, end int) {
	out := b.runs[:0]
	pos := 0
	for _, r := range b.runs {
		rs, re := pos, pos+r.length
		pos = re

		overlap := minInt(re, end) - maxInt(rs, start)
		if overlap < 0 {
			overlap = 0
		}
		if r.length > overlap {
			out = append(out, run{length: r.length - overlap, attrs: r.attrs})
		}
	}
	b.runs = out
}

// insertRuns accounts for n new bytes at offset. With explicit attrs the
// bytes form their own run; otherwise they join the run of the character
// before the offset (the first run when offset is zero). A marker run
// never widens: text inheriting from one takes its attributes minus the
// Todo attachment as a separate run.
func (b *Buffer) insertRuns(offset, n int, attrs *style.Attributes) {
	if attrs != nil {
		b.splitAt(offset)
		idx := 0
		pos := 0
		for idx < len(b.runs) && pos < offset {
			pos += b.runs[idx].length
			idx++
		}
		b.runs = append(b.runs, run{})
		copy(b.runs[idx+1:], b.runs[idx:])
		b.runs[idx] = run{length: n, attrs: *attrs}
		return
	}

	if len(b.runs) == 0 {
		b.runs = []run{{length: n}}
		return
	}
	anchor := offset - 1
	if anchor < 0 {
		anchor = 0
	}
	idx, _ := b.runIndexAt(anchor)
	if b.runs[idx].attrs.Todo != nil {
		// A marker owns exactly its placeholder character.
		inherited := b.runs[idx].attrs.Clone()
		inherited.Todo = nil
		b.insertRuns(offset, n, &inherited)
		return
	}
	b.runs[idx].length += n
}

// splitAt ensures a run boundary exists at the given offset.
func (b *Buffer) splitAt(offset int) {
	pos := 0
	for i, r := range b.runs {
		if pos == offset {
			return
		}
		if offset < pos+r.length {
			head := offset - pos
			b.runs = append(b.runs, run{})
			copy(b.runs[i+1:], b.runs[i:])
			b.runs[i] = run{length: head, attrs: r.attrs}
			b.runs[i+1] = run{length: r.length - head, attrs: r.attrs.Clone()}
			return
		}
		pos += r.length
	}
}

// coalesce merges adjacent runs with identical attributes and drops empty
// runs, restoring the maximal-run invariant.
func (b *Buffer) coalesce() {
	if len(b.runs) == 0 {
		return
	}
	out := b.runs[:0]
	for _, r := range b.runs {
		if r.length == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].attrs.Equals(r.attrs) {
			out[n-1].length += r.length
			continue
		}
		out = append(out, r)
	}
	b.runs = out
}

// runIndexAt returns the index of the run containing the offset and the
// run's start offset. The offset must be within [0, Len()).
func (b *Buffer) runIndexAt(offset int) (int, int) {
	pos := 0
	for i, r := range b.runs {
		if offset < pos+r.length {
			return i, pos
		}
		pos += r.length
	}
	return len(b.runs) - 1, pos - b.runs[len(b.runs)-1].length
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
