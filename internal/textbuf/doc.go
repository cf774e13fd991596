// Package textbuf provides the attributed text buffer: an ordered sequence
// of UTF-8 characters plus a set of contiguous, non-overlapping attribute
// runs that partition the full length.
//
// The buffer maintains three invariants:
//
//   - Runs exactly cover [0, Len()) with no gaps or overlaps
//   - No run is empty
//   - Adjacent runs with identical attributes are coalesced, so external
//     inspection always sees maximal runs
//
// Text entering the buffer is normalized on ingest: line endings to LF and
// Unicode to NFC. Attribute range boundaries snap outward to grapheme
// cluster boundaries so a run never splits a user-perceived character.
//
// Mutation inherits attributes from the character before the insertion
// point unless explicit attributes are supplied. Multiple edits are applied
// atomically with ApplyEdits, which requires reverse order (highest offset
// first) so earlier replacements never invalidate later offsets.
//
// The buffer is not safe for concurrent mutation: all editing runs on one
// logical thread. Clone and MapRuns produce independent values and are the
// basis for the codec's pure passes.
package textbuf
