package palette

// Version identifies the palette enumeration. Archived identity tokens are
// interpreted against the palette version that wrote them; additions bump
// the version, existing names and values never change.
const Version = 1

// Entry is a named palette color. The identity token for an entry is its
// name.
type Entry struct {
	Name  string
	Color Color
}

// Foreground palette, version 1.
var foregrounds = []Entry{
	{Name: "blue", Color: rgb8(0x00, 0x7a, 0xff)},
	{Name: "green", Color: rgb8(0x34, 0xc7, 0x59)},
	{Name: "red", Color: rgb8(0xff, 0x3b, 0x30)},
	{Name: "orange", Color: rgb8(0xff, 0x95, 0x00)},
	{Name: "purple", Color: rgb8(0xaf, 0x52, 0xde)},
	{Name: "pink", Color: rgb8(0xff, 0x2d, 0x55)},
	{Name: "brown", Color: rgb8(0xa2, 0x84, 0x5e)},
	{Name: "gray", Color: rgb8(0x8e, 0x8e, 0x93)},
}

// Highlight palette, version 1. Names are distinct from foreground names so
// that a single identity namespace covers both.
var highlights = []Entry{
	{Name: "lemon", Color: rgb8(0xff, 0xf5, 0x99)},
	{Name: "lime", Color: rgb8(0xb2, 0xf2, 0xbb)},
	{Name: "sky", Color: rgb8(0xa5, 0xd8, 0xff)},
	{Name: "blush", Color: rgb8(0xfc, 0xc2, 0xd7)},
	{Name: "lavender", Color: rgb8(0xd0, 0xbf, 0xff)},
	{Name: "mint", Color: rgb8(0x96, 0xf2, 0xd7)},
}

// Foregrounds returns the named foreground colors of the current palette
// version. The slice is a copy; callers may modify it freely.
func Foregrounds() []Entry {
	out := make([]Entry, len(foregrounds))
	copy(out, foregrounds)
	return out
}

// Highlights returns the named highlight colors of the current palette
// version. The slice is a copy.
func Highlights() []Entry {
	out := make([]Entry, len(highlights))
	copy(out, highlights)
	return out
}
