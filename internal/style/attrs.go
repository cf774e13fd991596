package style

import (
	"strings"

	"github.com/dshills/richnote/internal/palette"
)

// Attributes is the concrete styling record of one attribute run. It holds
// both halves of the model: the native representation (font object, raw
// colors) that the archiver mangles, and the redundant primitive fields the
// codec maintains so the style can be rebuilt after the round trip.
//
// Absent fields use the zero value: a nil Font or color pointer means the
// attribute is not set, an empty identity means no token has been stamped.
type Attributes struct {
	// Font is the native font object. Lossy across archival.
	Font *Font

	// Bold and Italic are the redundant primitive trait flags stamped by
	// the codec from the font. They survive where the font does not.
	Bold   bool
	Italic bool

	// Size is the explicit semantic size attribute, SizeUnset when the run
	// carries none.
	Size FontSize

	// Foreground is the stable color identity token, empty when absent.
	Foreground palette.Identity

	// ForegroundColor is the concrete foreground. Lossy across archival;
	// never archived when Foreground is the automatic token.
	ForegroundColor *palette.Color

	// Highlight is the stable highlight identity token, empty when absent.
	// Absence means "no highlight", never "automatic".
	Highlight palette.Identity

	// HighlightColor is the concrete highlight color. Lossy across archival.
	HighlightColor *palette.Color

	Underline     bool
	Strikethrough bool

	// Todo is the checkbox marker attachment for a placeholder character,
	// nil for ordinary text.
	Todo *Todo
}

// Clone returns a deep copy of the attributes.
func (a Attributes) Clone() Attributes {
	out := a
	if a.Font != nil {
		f := *a.Font
		out.Font = &f
	}
	if a.ForegroundColor != nil {
		c := *a.ForegroundColor
		out.ForegroundColor = &c
	}
	if a.HighlightColor != nil {
		c := *a.HighlightColor
		out.HighlightColor = &c
	}
	out.Todo = a.Todo.Clone()
	return out
}

// Equals returns true if two attribute records are identical. Adjacent runs
// with equal attributes coalesce into one.
func (a Attributes) Equals(other Attributes) bool {
	if a.Bold != other.Bold || a.Italic != other.Italic ||
		a.Underline != other.Underline || a.Strikethrough != other.Strikethrough ||
		a.Size != other.Size ||
		a.Foreground != other.Foreground || a.Highlight != other.Highlight {
		return false
	}
	if !fontsEqual(a.Font, other.Font) {
		return false
	}
	if !colorsEqual(a.ForegroundColor, other.ForegroundColor) {
		return false
	}
	if !colorsEqual(a.HighlightColor, other.HighlightColor) {
		return false
	}
	return a.Todo.Equals(other.Todo)
}

// IsZero returns true if no attribute is set.
func (a Attributes) IsZero() bool {
	return a.Equals(Attributes{})
}

// String returns a compact human-readable summary, used by the inspection
// tooling.
func (a Attributes) String() string {
	var parts []string
	if a.Bold {
		parts = append(parts, "bold")
	}
	if a.Italic {
		parts = append(parts, "italic")
	}
	if a.Underline {
		parts = append(parts, "underline")
	}
	if a.Strikethrough {
		parts = append(parts, "strike")
	}
	if a.Size != SizeUnset {
		parts = append(parts, "size="+a.Size.String())
	}
	if a.Foreground != "" {
		parts = append(parts, "fg="+string(a.Foreground))
	}
	if a.Highlight != "" {
		parts = append(parts, "hl="+string(a.Highlight))
	}
	if a.Todo != nil {
		if a.Todo.Checked {
			parts = append(parts, "todo=checked")
		} else {
			parts = append(parts, "todo=unchecked")
		}
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, " ")
}

func fontsEqual(a, b *Font) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func colorsEqual(a, b *palette.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(*b)
}
