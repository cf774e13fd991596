package textbuf

import "github.com/rivo/uniseg"

// GraphemeCount returns the number of grapheme clusters (user-perceived
// characters) in the buffer.
func (b *Buffer) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(b.text)
}

// SnapOffset moves an offset back to the start of the grapheme cluster
// containing it. Offsets already on a cluster boundary are returned
// unchanged; out-of-range offsets are clamped.
func (b *Buffer) SnapOffset(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(b.text) {
		return len(b.text)
	}
	g := uniseg.NewGraphemes(b.text)
	for g.Next() {
		from, to := g.Positions()
		if offset < to {
			return from
		}
	}
	return offset
}

// SnapRange widens a range outward so both boundaries fall on grapheme
// cluster boundaries. An empty range snaps back to its cluster start.
func (b *Buffer) SnapRange(r Range) Range {
	if r.IsEmpty() {
		off := b.SnapOffset(r.Start)
		return Range{Start: off, End: off}
	}
	return b.snapToGraphemes(r)
}

// snapToGraphemes widens a range outward so both boundaries fall on
// grapheme cluster boundaries. Ranges already aligned are returned
// unchanged.
func (b *Buffer) snapToGraphemes(r Range) Range {
	if r.IsEmpty() {
		return r
	}
	g := uniseg.NewGraphemes(b.text)
	for g.Next() {
		from, to := g.Positions()
		if from >= r.End {
			break
		}
		if from < r.Start && r.Start < to {
			r.Start = from
		}
		if from < r.End && r.End < to {
			r.End = to
		}
	}
	return r
}
