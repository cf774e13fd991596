package textbuf

import "sync/atomic"

// Revision identifies a buffer state. Each mutation produces a new
// revision, letting callers detect staleness cheaply.
type Revision uint64

var revisionCounter uint64

// NextRevision generates a unique revision. Thread-safe.
func NextRevision() Revision {
	return Revision(atomic.AddUint64(&revisionCounter, 1))
}
