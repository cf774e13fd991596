// Package archive is the storage envelope for attributed buffers: a
// keyed JSON document holding the text and, per run, only primitive
// fields. Font objects and raw color values are deliberately not part of
// the schema; they do not survive the boundary, which is exactly the
// behavior the codec defends against. Encode before Marshal and Decode
// after Unmarshal to carry styling across.
//
// Unmarshal validates structure, version, and that the run lengths
// exactly cover the text. Corrupt envelopes fail with a sentinel error;
// absent styling fields inside a run are not errors, they read as unset.
package archive
