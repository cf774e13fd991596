package archive

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/richnote/internal/palette"
	"github.com/dshills/richnote/internal/style"
	"github.com/dshills/richnote/internal/textbuf"
)

// Version is the current envelope schema version.
const Version = 1

// Errors returned by archive operations.
var (
	ErrInvalidArchive = errors.New("invalid archive document")
	ErrUnknownVersion = errors.New("unknown archive version")
	ErrRunsMisaligned = errors.New("run lengths do not cover the text")
)

// Marshal serializes the buffer into the envelope. Only primitive fields
// are written; fonts and raw colors are dropped at this boundary.
func Marshal(b *textbuf.Buffer) ([]byte, error) {
	out := []byte(`{}`)

	out, err := sjson.SetBytes(out, "version", Version)
	if err != nil {
		return nil, fmt.Errorf("set version: %w", err)
	}
	out, err = sjson.SetBytes(out, "text", b.Text())
	if err != nil {
		return nil, fmt.Errorf("set text: %w", err)
	}

	runs := make([]map[string]interface{}, 0, b.RunCount())
	it := b.Runs()
	for {
		r, attrs, ok := it.Next()
		if !ok {
			break
		}
		runs = append(runs, runObject(r, attrs))
	}
	out, err = sjson.SetBytes(out, "runs", runs)
	if err != nil {
		return nil, fmt.Errorf("set runs: %w", err)
	}

	return out, nil
}

// runObject builds the primitive field set of one run. Unset fields are
// omitted; readers treat absence as unset.
func runObject(r textbuf.Range, attrs style.Attributes) map[string]interface{} {
	obj := map[string]interface{}{"len": r.Len()}

	if attrs.Bold {
		obj["bold"] = true
	}
	if attrs.Italic {
		obj["italic"] = true
	}
	if attrs.Underline {
		obj["underline"] = true
	}
	if attrs.Strikethrough {
		obj["strike"] = true
	}
	if attrs.Size != style.SizeUnset {
		obj["size"] = attrs.Size.String()
	}
	if attrs.Foreground != "" {
		obj["fg"] = string(attrs.Foreground)
	}
	if attrs.Highlight != "" {
		obj["hl"] = string(attrs.Highlight)
	}
	if attrs.Todo != nil {
		obj["todo"] = map[string]interface{}{
			"id":      attrs.Todo.ID,
			"checked": attrs.Todo.Checked,
		}
	}
	return obj
}

// Unmarshal rebuilds a buffer from the envelope. The runs must exactly
// cover the text or the document is rejected.
func Unmarshal(data []byte) (*textbuf.Buffer, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidArchive
	}

	doc := gjson.ParseBytes(data)
	version := doc.Get("version")
	if !version.Exists() {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidArchive)
	}
	if v := version.Int(); v != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, v)
	}

	text := doc.Get("text")
	if !text.Exists() {
		return nil, fmt.Errorf("%w: missing text", ErrInvalidArchive)
	}

	b := textbuf.NewFromString(text.String())

	pos := 0
	var runErr error
	doc.Get("runs").ForEach(func(_, run gjson.Result) bool {
		length := int(run.Get("len").Int())
		if length <= 0 {
			runErr = fmt.Errorf("%w: run length %d", ErrInvalidArchive, length)
			return false
		}
		r := textbuf.Range{Start: pos, End: pos + length}
		if err := b.SetAttributes(r, runAttrs(run)); err != nil {
			runErr = fmt.Errorf("%w: run at %d: %v", ErrRunsMisaligned, pos, err)
			return false
		}
		pos += length
		return true
	})
	if runErr != nil {
		return nil, runErr
	}
	if pos != b.Len() {
		return nil, fmt.Errorf("%w: runs cover %d of %d bytes", ErrRunsMisaligned, pos, b.Len())
	}

	return b, nil
}

// runAttrs reads one run's primitive fields. Absent fields read as unset,
// never as errors.
func runAttrs(run gjson.Result) style.Attributes {
	attrs := style.Attributes{
		Bold:          run.Get("bold").Bool(),
		Italic:        run.Get("italic").Bool(),
		Underline:     run.Get("underline").Bool(),
		Strikethrough: run.Get("strike").Bool(),
		Size:          style.ParseFontSize(run.Get("size").String()),
		Foreground:    palette.Identity(run.Get("fg").String()),
		Highlight:     palette.Identity(run.Get("hl").String()),
	}
	if todo := run.Get("todo"); todo.Exists() {
		attrs.Todo = &style.Todo{
			ID:      todo.Get("id").String(),
			Checked: todo.Get("checked").Bool(),
		}
	}
	return attrs
}

// RoundTrip marshals and immediately unmarshals the buffer, the exact
// transform a save and reload performs at this boundary.
func RoundTrip(b *textbuf.Buffer) (*textbuf.Buffer, error) {
	data, err := Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	out, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return out, nil
}
