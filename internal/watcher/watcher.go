// Package watcher reports changes to the grading database made by other
// processes, so the form can reload its catalogs without a keypress.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event reports that the database at Path was written.
type Event struct {
	Path string
}

// Watcher watches one SQLite database file together with its WAL.
type Watcher struct {
	watcher *fsnotify.Watcher
	dbPath  string
	Events  chan Event
	Errors  chan error
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// New creates a watcher for the database at dbPath. The containing
// directory is watched because SQLite replaces the WAL and journal
// files rather than rewriting them in place.
func New(dbPath string) (*Watcher, error) {
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dbPath, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch database directory: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		dbPath:  abs,
		Events:  make(chan Event, 1),
		Errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.eventLoop()
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			// Events coalesce: one pending reload covers any number of
			// writes.
			select {
			case w.Events <- Event{Path: w.dbPath}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// matches reports whether path is the database or one of its sidecar
// files.
func (w *Watcher) matches(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	switch abs {
	case w.dbPath, w.dbPath + "-wal", w.dbPath + "-journal":
		return true
	}
	return false
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	w.running = false
	return w.watcher.Close()
}

// Done is closed once the watcher has stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Close is an alias for Stop
func (w *Watcher) Close() error {
	return w.Stop()
}
