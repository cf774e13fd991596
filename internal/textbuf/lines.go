package textbuf

import "strings"

// LineCount returns the number of lines (newlines + 1).
func (b *Buffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}

// LineForOffset returns the 0-indexed line containing the given byte
// offset. Offsets past the end map to the last line.
func (b *Buffer) LineForOffset(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	return strings.Count(b.text[:offset], "\n")
}

// LineStartOffset returns the byte offset of the start of the given line.
// Lines are 0-indexed; out-of-range lines clamp to the buffer end.
func (b *Buffer) LineStartOffset(line int) int {
	if line <= 0 {
		return 0
	}
	pos := 0
	for ; line > 0; line-- {
		nl := strings.IndexByte(b.text[pos:], '\n')
		if nl < 0 {
			return len(b.text)
		}
		pos += nl + 1
	}
	return pos
}

// LineEndOffset returns the byte offset of the end of the given line,
// not including the newline character.
func (b *Buffer) LineEndOffset(line int) int {
	start := b.LineStartOffset(line)
	if nl := strings.IndexByte(b.text[start:], '\n'); nl >= 0 {
		return start + nl
	}
	return len(b.text)
}

// LineRange returns the byte range of the given line, newline excluded.
func (b *Buffer) LineRange(line int) Range {
	return Range{Start: b.LineStartOffset(line), End: b.LineEndOffset(line)}
}

// LineText returns the text of the given line, newline excluded.
func (b *Buffer) LineText(line int) string {
	r := b.LineRange(line)
	return b.text[r.Start:r.End]
}
