// Package editor ties the engine together into an editing session: one
// attributed buffer, the caret style state, typing-time formatting, and
// the codec passes around persistence.
package editor
