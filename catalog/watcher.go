package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher flags categories whose top-level ROM directory changed on disk
// so the file list can rescan. Events are reduced to category titles
// delivered on a buffered channel; the app drains it once per tick, which
// keeps all real work on the tick loop.
type Watcher struct {
	fs    *fsnotify.Watcher
	dirty chan string
	stop  chan struct{}
	byDir map[string]string // watched dir -> category title
	log   *logrus.Entry
}

// NewWatcher creates a watcher with nothing watched yet.
func NewWatcher(log *logrus.Entry) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Watcher{
		fs:    fs,
		dirty: make(chan string, 8),
		stop:  make(chan struct{}),
		byDir: make(map[string]string),
		log:   log,
	}, nil
}

// WatchCategory starts watching a category's top-level directory.
// Subdirectories are not watched; entering one always rescans anyway.
func (w *Watcher) WatchCategory(title, dir string) error {
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.byDir[filepath.Clean(dir)] = title
	return nil
}

// Dirty returns the channel of category titles with pending changes.
func (w *Watcher) Dirty() <-chan string {
	return w.dirty
}

// Start runs the event loop in the background until Close.
func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if title, ok := w.categoryFor(event.Name); ok {
				// Drop the event when the channel is full; a pending
				// flag for the category already exists.
				select {
				case w.dirty <- title:
				default:
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) categoryFor(path string) (string, bool) {
	dir := filepath.Clean(filepath.Dir(path))
	if title, ok := w.byDir[dir]; ok {
		return title, true
	}
	// Renames can report the directory itself.
	if title, ok := w.byDir[filepath.Clean(path)]; ok {
		return title, true
	}
	// Fall back to a prefix match for events deeper in the tree.
	for d, title := range w.byDir {
		if strings.HasPrefix(path, d+string(filepath.Separator)) {
			return title, true
		}
	}
	return "", false
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.stop)
	return w.fs.Close()
}
