package textbuf

import "github.com/dshills/richnote/internal/style"

// RunIter walks the maximal runs of a buffer in order.
// The iterator reads a snapshot of the run partition taken at creation;
// mutating the buffer during iteration does not affect it.
type RunIter struct {
	runs   []run
	idx    int
	offset int
}

// Runs returns an iterator over the buffer's maximal runs.
func (b *Buffer) Runs() *RunIter {
	snap := make([]run, len(b.runs))
	copy(snap, b.runs)
	return &RunIter{runs: snap}
}

// Next returns the next run's range and attributes. The attributes are a
// private clone. It returns ok=false when the runs are exhausted.
func (it *RunIter) Next() (Range, style.Attributes, bool) {
	if it.idx >= len(it.runs) {
		return Range{}, style.Attributes{}, false
	}
	r := it.runs[it.idx]
	rng := Range{Start: it.offset, End: it.offset + r.length}
	it.idx++
	it.offset = rng.End
	return rng, r.attrs.Clone(), true
}

// Reset rewinds the iterator to the first run.
func (it *RunIter) Reset() {
	it.idx = 0
	it.offset = 0
}
