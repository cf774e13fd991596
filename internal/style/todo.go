package style

import "github.com/google/uuid"

// Placeholder is the single character embedded in the buffer for a checkbox
// marker. The marker's state lives on the Todo attachment, not in the text
// or the surrounding style.
const Placeholder rune = '￼'

// Todo is a checkbox marker attachment: an interactive checked/unchecked
// glyph with its own stable identity. The identity is independent of any
// attribute run and survives the archival round trip as primitive fields.
type Todo struct {
	ID      string
	Checked bool
}

// NewTodo creates a marker with a fresh identity.
func NewTodo(checked bool) *Todo {
	return &Todo{
		ID:      uuid.New().String(),
		Checked: checked,
	}
}

// Toggle flips the checked state in place.
func (t *Todo) Toggle() {
	t.Checked = !t.Checked
}

// Equals returns true if two markers have the same identity and state.
func (t *Todo) Equals(other *Todo) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ID == other.ID && t.Checked == other.Checked
}

// Clone returns a copy of the marker.
func (t *Todo) Clone() *Todo {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
