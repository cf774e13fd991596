// Package watcher provides file watching for configuration live reload.
//
// The watcher monitors configuration files for changes and triggers
// reload callbacks when modifications are detected. Events are debounced
// so rapid write bursts coalesce into a single notification.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Errors returned by watcher operations.
var (
	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher is closed")

	// ErrAlreadyWatching indicates the path is already watched.
	ErrAlreadyWatching = errors.New("path already watched")

	// ErrNotWatching indicates the path is not watched.
	ErrNotWatching = errors.New("path not watched")
)

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates the file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called when a watched file changes.
type Handler func(Event)

// Watcher monitors configuration files for changes.
type Watcher struct {
	mu          sync.Mutex
	fs          *fsnotify.Watcher
	files       map[string]bool
	dirs        map[string]int
	handlers    []Handler
	errHandlers []func(error)
	delay       time.Duration
	pending     map[string]*pendingEvent
	closed      bool
	closeCh     chan struct{}
	wg          sync.WaitGroup
}

// pendingEvent tracks a debounced event.
type pendingEvent struct {
	op    Operation
	at    time.Time
	timer *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce delay for rapid changes. Zero disables
// debouncing.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.delay = d
		}
	}
}

// New creates a file watcher.
func New(opts ...Option) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:      fs,
		files:   make(map[string]bool),
		dirs:    make(map[string]int),
		delay:   100 * time.Millisecond,
		pending: make(map[string]*pendingEvent),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch adds a file to the watch list. The file itself may not exist
// yet, but its parent directory must. Editors replace config files by
// rename on save; watching the parent directory catches the new inode.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[abs] {
		return ErrAlreadyWatching
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Unwatch removes a file from the watch list.
func (w *Watcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if !w.files[abs] {
		return ErrNotWatching
	}

	delete(w.files, abs)
	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if err := w.fs.Remove(dir); err != nil {
			return err
		}
	}
	return nil
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// OnError registers a handler for watcher errors.
func (w *Watcher) OnError(handler func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errHandlers = append(w.errHandlers, handler)
}

// WatchedFiles returns the list of watched files.
func (w *Watcher) WatchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	return files
}

// IsWatching returns true if the path is being watched.
func (w *Watcher) IsWatching(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[abs]
}

// PendingCount returns the number of debounced events not yet delivered.
func (w *Watcher) PendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Flush immediately delivers all pending events. Useful for testing or
// when immediate notification is needed.
func (w *Watcher) Flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path, p := range w.pending {
		p.timer.Stop()
		paths = append(paths, path)
	}
	w.mu.Unlock()

	for _, path := range paths {
		w.fire(path)
	}
}

// Close stops the watcher. Pending events are discarded.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	// Closing the fsnotify watcher closes its channels, which also
	// unblocks processLoop.
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleFSEvent(ev)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.emitError(err)
		}
	}
}

// handleFSEvent filters, converts, and debounces an fsnotify event.
func (w *Watcher) handleFSEvent(ev fsnotify.Event) {
	op, ok := convertOp(ev.Op)
	if !ok {
		return
	}
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[path] {
		return
	}

	now := time.Now()
	if p, exists := w.pending[path]; exists {
		p.op = coalesce(p.op, op)
		p.at = now
		p.timer.Reset(w.delay)
		return
	}

	p := &pendingEvent{op: op, at: now}
	p.timer = time.AfterFunc(w.delay, func() {
		w.fire(path)
	})
	w.pending[path] = p
}

// fire delivers a pending event and removes it from the map.
func (w *Watcher) fire(path string) {
	w.mu.Lock()
	p, exists := w.pending[path]
	if !exists {
		w.mu.Unlock()
		return
	}
	delete(w.pending, path)
	event := Event{Path: path, Op: p.op, Time: p.at}
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		w.safeCall(handler, event)
	}
}

// safeCall calls a handler with panic recovery so a panicking handler
// cannot kill the watcher goroutine.
func (w *Watcher) safeCall(handler Handler, event Event) {
	defer func() {
		_ = recover()
	}()
	handler(event)
}

// emitError forwards a watcher error to registered handlers.
func (w *Watcher) emitError(err error) {
	w.mu.Lock()
	handlers := make([]func(error), len(w.errHandlers))
	copy(handlers, w.errHandlers)
	w.mu.Unlock()

	for _, handler := range handlers {
		handler(err)
	}
}

// convertOp maps an fsnotify operation to a watcher operation. Chmod
// events are dropped.
func convertOp(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	}
	return 0, false
}

// coalesce merges two debounced operations on the same path. Removal
// takes precedence; creation beats modification.
func coalesce(old, next Operation) Operation {
	switch {
	case old == OpRemove || next == OpRemove:
		return OpRemove
	case old == OpCreate || next == OpCreate:
		return OpCreate
	default:
		return next
	}
}
