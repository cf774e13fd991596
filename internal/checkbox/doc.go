// Package checkbox detects bracket-notation checkbox markers in typed
// text and replaces them with identity-bearing placeholder characters.
//
// The patterns are fixed literals: "[ ]" unchecked, "[x]" or "[X]"
// checked. Every match becomes a placeholder carrying a fresh marker id;
// the checked state lives on the marker, not in the surrounding style.
// Matches are collected first and replaced in descending offset order so
// earlier replacements never invalidate later offsets.
package checkbox
