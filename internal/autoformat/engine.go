package autoformat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/richnote/internal/textbuf"
)

// numberedPrefix matches a list number at the start of a line: digits,
// a dot, one whitespace character.
var numberedPrefix = regexp.MustCompile(`^(\d+)\.\s`)

// Bullet prefixes recognized at the start of a line.
const (
	bulletDash = "- "
	bulletDot  = "• "
)

// Engine detects line prefixes and continues them across line breaks.
type Engine struct {
	numbered bool
	bullets  bool
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithNumberedLists enables or disables numbered list continuation.
func WithNumberedLists(enabled bool) Option {
	return func(e *Engine) {
		e.numbered = enabled
	}
}

// WithBullets enables or disables bullet continuation.
func WithBullets(enabled bool) Option {
	return func(e *Engine) {
		e.bullets = enabled
	}
}

// New creates an Engine with every continuation enabled unless options
// disable them.
func New(opts ...Option) *Engine {
	e := &Engine{numbered: true, bullets: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandleLineBreak inserts a line break at the caret, continuing the
// current line's prefix onto the new line when one is detected. Numbered
// prefixes also renumber the immediately following numbered lines.
// It returns the caret position after the inserted text.
//
// Prefix detection reads the current line up to the caret. The numbered
// check precedes the bullet check; only one applies. A prefix whose
// remaining content is blank emits a bare line break, terminating the
// list.
func (e *Engine) HandleLineBreak(b *textbuf.Buffer, caret int) (int, error) {
	if caret < 0 || caret > b.Len() {
		return caret, fmt.Errorf("caret %d: %w", caret, textbuf.ErrOffsetOutOfRange)
	}

	line := b.LineForOffset(caret)
	head := b.TextRange(b.LineStartOffset(line), caret)

	if e.numbered {
		if m := numberedPrefix.FindStringSubmatch(head); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return e.breakNumbered(b, caret, line, head[len(m[0]):], n)
			}
		}
	}

	if e.bullets {
		for _, prefix := range []string{bulletDash, bulletDot} {
			if strings.HasPrefix(head, prefix) {
				return e.breakBullet(b, caret, head[len(prefix):], prefix)
			}
		}
	}

	return bareBreak(b, caret)
}

// breakNumbered continues a numbered list: the new line starts at n+1 and
// every consecutive numbered line after it is renumbered from n+2. All
// edits apply as one atomic batch in descending offset order.
func (e *Engine) breakNumbered(b *textbuf.Buffer, caret, line int, rest string, n int) (int, error) {
	if strings.TrimSpace(rest) == "" {
		return bareBreak(b, caret)
	}

	edits := renumberEdits(b, line+1, n+2)
	marker := "\n" + strconv.Itoa(n+1) + ". "
	edits = append(edits, textbuf.NewInsert(caret, marker))

	if err := b.ApplyEdits(edits); err != nil {
		return caret, fmt.Errorf("continue numbered list: %w", err)
	}
	return caret + len(marker), nil
}

// renumberEdits builds the replacement edits for the renumbering cascade:
// a single forward scan from the given line, halting at the first line
// without a numbered prefix. The returned edits are in descending offset
// order, ready to prepend to a batch.
func renumberEdits(b *textbuf.Buffer, fromLine, next int) []textbuf.Edit {
	var edits []textbuf.Edit
	for line := fromLine; line < b.LineCount(); line++ {
		start := b.LineStartOffset(line)
		m := numberedPrefix.FindStringSubmatchIndex(b.LineText(line))
		if m == nil {
			break
		}
		digits := textbuf.Range{Start: start + m[2], End: start + m[3]}
		attrs, _ := b.Attributes(digits.Start)
		edits = append(edits, textbuf.NewEdit(digits, strconv.Itoa(next)).WithAttrs(attrs))
		next++
	}

	// Scanned forward, applied backward.
	for i, j := 0, len(edits)-1; i < j; i, j = i+1, j-1 {
		edits[i], edits[j] = edits[j], edits[i]
	}
	return edits
}

// breakBullet continues a bullet line by repeating its prefix.
func (e *Engine) breakBullet(b *textbuf.Buffer, caret int, rest, prefix string) (int, error) {
	if strings.TrimSpace(rest) == "" {
		return bareBreak(b, caret)
	}

	marker := "\n" + prefix
	if err := b.Insert(caret, marker); err != nil {
		return caret, fmt.Errorf("continue bullet: %w", err)
	}
	return caret + len(marker), nil
}

// bareBreak inserts a plain line break with no continuation.
func bareBreak(b *textbuf.Buffer, caret int) (int, error) {
	if err := b.Insert(caret, "\n"); err != nil {
		return caret, fmt.Errorf("insert line break: %w", err)
	}
	return caret + 1, nil
}
