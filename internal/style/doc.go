// Package style defines the styling model of the rich-text engine: the
// per-run Attributes record, the immutable State value describing the
// active text style, the platform-neutral font descriptor, and the checkbox
// marker attachment.
//
// State is the user-facing style: a small value with toggle/set transforms
// that each change exactly one field. Attributes is the concrete per-run
// record stored on the buffer: the native font object and raw colors the
// archiver is known to mangle, alongside the redundant primitive fields
// (trait flags, size token, identity strings) the codec stamps so the style
// survives the round trip.
//
// Materialize and Extract convert between the two and obey
// Extract(Materialize(s)) == s for every reachable State.
package style
