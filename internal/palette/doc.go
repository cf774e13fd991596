// Package palette provides the color identity system for the rich-text
// engine. It defines the concrete color value type, the fixed palette of
// named colors and highlights, the registry that maps colors to stable
// string identifiers and back, and the theme that supplies the automatic
// (theme-derived) foreground color.
//
// Identifiers exist so that color meaning survives lossy serialization:
// a named color is archived as its name, an arbitrary color as a reversible
// hex token, and the theme default as the reserved "automatic" token that
// never carries a literal value.
//
// Identity forms:
//
//   - Palette tokens: "blue", "lemon", ... (see palette.go)
//   - Custom tokens:  "custom:" + 8 hex digits (RGBA, one byte per channel)
//   - The reserved token "automatic" for the theme foreground
//
// Basic usage:
//
//	reg := palette.NewRegistry()
//	id := reg.Identify(palette.RGB(0.9, 0.1, 0.2)) // "custom:e61a33ff"
//	c, ok := reg.Resolve(id)                       // back within 1/255 per channel
package palette
