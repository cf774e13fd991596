// Package codec implements the pre-archive and post-archive transforms
// that make styling survive the lossy archival boundary.
//
// The archiver is opaque and known to mangle two things: font objects lose
// their bold/italic traits across platform boundaries, and attribute keys
// holding non-primitive values are not reliably preserved. Keys whose
// values are strings, numbers, or booleans do survive. The codec exploits
// that: Encode walks every maximal run and stamps redundant primitive
// fields (trait flags, color identity tokens) next to the native
// representation; Decode rebuilds fonts and concrete colors from those
// primitives alone.
//
// Both passes are pure: they produce a new buffer value and never touch
// the input. Absence of expected metadata is never an error; every missing
// field falls back deterministically. Both passes are idempotent, so a
// document may pass through either any number of times.
package codec
