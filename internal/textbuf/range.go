package textbuf

import "fmt"

// Range is a byte range in the buffer. Start is inclusive, End is
// exclusive: [Start, End).
type Range struct {
	Start int
	End   int
}

// NewRange creates a Range from start and end offsets.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if Start <= End.
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if this range overlaps another.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Shift returns the range moved by delta.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// Clamp returns the range restricted to [0, limit].
func (r Range) Clamp(limit int) Range {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > limit {
		r.End = limit
	}
	if r.Start > r.End {
		r.Start = r.End
	}
	return r
}
