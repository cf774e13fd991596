package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dshills/richnote/internal/config/watcher"
	"github.com/dshills/richnote/internal/editor"
)

// runInspect decodes an archive and prints its text and styled runs.
func (app *Application) runInspect(args []string) error {
	if len(args) == 0 {
		return NewCommandError("inspect", "", ErrMissingFile)
	}
	path := args[0]
	if err := app.inspect(path); err != nil {
		return NewCommandError("inspect", path, err)
	}
	return nil
}

func (app *Application) inspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	session, err := editor.NewFromConfig(app.cfg)
	if err != nil {
		return err
	}
	if err := session.Load(data); err != nil {
		return err
	}

	buf := session.Snapshot()
	fmt.Fprintf(app.stdout, "%s: %d bytes, %d graphemes, %d lines, %d runs\n",
		path, buf.Len(), buf.GraphemeCount(), buf.LineCount(), buf.RunCount())

	it := buf.Runs()
	for {
		r, attrs, ok := it.Next()
		if !ok {
			break
		}
		fmt.Fprintf(app.stdout, "  [%d:%d) %-24q %s\n",
			r.Start, r.End, preview(buf.TextRange(r.Start, r.End)), attrs)
	}
	return nil
}

// preview shortens run text for one-line display.
func preview(s string) string {
	const max = 20
	s = strings.ReplaceAll(s, "\n", "\\n")
	if len(s) <= max {
		return s
	}
	// Back up to a rune boundary before cutting.
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// runNormalize decodes an archive and re-encodes it in place, settling
// it into canonical form.
func (app *Application) runNormalize(args []string) error {
	if len(args) == 0 {
		return NewCommandError("normalize", "", ErrMissingFile)
	}
	path := args[0]
	if err := app.normalize(path); err != nil {
		return NewCommandError("normalize", path, err)
	}
	return nil
}

func (app *Application) normalize(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	session, err := editor.NewFromConfig(app.cfg)
	if err != nil {
		return err
	}
	if err := session.Load(data); err != nil {
		return err
	}
	out, err := session.Save()
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, out); err != nil {
		return err
	}
	app.logger.Info("normalized %s (%d bytes)", path, len(out))
	return nil
}

// runConvert turns a plain-text file into a note archive, applying the
// configured defaults and checkbox conversion.
func (app *Application) runConvert(args []string) error {
	if len(args) == 0 {
		return NewCommandError("convert", "", ErrMissingFile)
	}
	input := args[0]
	output := input + ".note"
	if len(args) > 1 {
		output = args[1]
	}
	if err := app.convert(input, output); err != nil {
		return NewCommandError("convert", input, err)
	}
	return nil
}

func (app *Application) convert(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	session, err := editor.NewFromConfig(app.cfg)
	if err != nil {
		return err
	}
	// Typing the text through the session stamps the configured default
	// style on every run and converts bracket tokens as they pass.
	if err := session.Type(string(data)); err != nil {
		return err
	}

	out, err := session.Save()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(output, out); err != nil {
		return err
	}
	app.logger.Info("converted %s to %s (%d bytes)", input, output, len(out))
	fmt.Fprintf(app.stdout, "wrote %s\n", output)
	return nil
}

// runWatch inspects an archive and re-inspects it whenever it changes
// on disk, until Shutdown is called.
func (app *Application) runWatch(args []string) error {
	if len(args) == 0 {
		return NewCommandError("watch", "", ErrMissingFile)
	}
	path := args[0]

	w, err := watcher.New()
	if err != nil {
		return NewCommandError("watch", path, err)
	}
	defer w.Close()

	w.OnChange(func(ev watcher.Event) {
		app.logger.Info("%s: %s", ev.Op, ev.Path)
		if ev.Op == watcher.OpRemove {
			return
		}
		if err := app.inspect(ev.Path); err != nil {
			app.logger.Error("inspect %s: %v", ev.Path, err)
		}
	})
	w.OnError(func(err error) {
		app.logger.Error("watch: %v", err)
	})

	if err := w.Watch(path); err != nil {
		return NewCommandError("watch", path, err)
	}

	if err := app.inspect(path); err != nil {
		app.logger.Error("inspect %s: %v", path, err)
	}

	app.logger.Info("watching %s", path)
	<-app.done
	return nil
}

// writeFileAtomic writes data via a temporary file and rename so that
// readers never observe a partial archive.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".richnote-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
