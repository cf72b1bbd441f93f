// Package watcher notices external writes to the data document. The store has
// no conflict detection (last write wins), so the dashboard watches the file
// and reloads instead of going stale when another process writes it.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"vitalog/internal/logger"
)

// Event signals that the watched document changed on disk.
type Event struct {
	Path string
	Err  error
}

type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	Events    chan Event
	done      chan struct{}
}

// New creates a watcher for the given data document. The parent directory is
// watched rather than the file itself so atomic replace-by-rename is seen.
func New(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      absPath,
		Events:    make(chan Event, 10),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.run()
}

// Stop stops the watcher
func (w *Watcher) Stop() {
	close(w.done)
	w.fsWatcher.Close()
}

func (w *Watcher) run() {
	// Editors and the store both write-then-rename; debounce so one logical
	// save produces one reload.
	var pending *time.Timer
	fire := func() {
		select {
		case w.Events <- Event{Path: w.path}:
		default:
			logger.Warn("Dropping file change event, channel full", "path", w.path)
		}
	}

	for {
		select {
		case <-w.done:
			if pending != nil {
				pending.Stop()
			}
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(100*time.Millisecond, fire)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Events <- Event{Path: w.path, Err: err}:
			default:
			}
		}
	}
}
