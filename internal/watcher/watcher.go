// Package watcher turns raw fsnotify events into debounced "something
// changed under the root" notifications. Consumers receive on Events and
// rebuild from current disk state; no diffing is attempted.
package watcher

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher watches a directory tree recursively. It has an explicit
// Start/Stop lifecycle; events are delivered on a 1-buffered channel so
// rapid bursts coalesce into a single notification.
type Watcher struct {
	debounce time.Duration
	fsw      *fsnotify.Watcher
	events   chan struct{}
	done     chan struct{}
}

// New creates a watcher. It does nothing until Start is called.
func New() *Watcher {
	return &Watcher{
		debounce: defaultDebounce,
		events:   make(chan struct{}, 1),
	}
}

// Events returns the change notification channel. One receive means "the
// tree under the root may have changed"; the receiver rebuilds from disk.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Start begins watching root and all its subdirectories. Calling Start on a
// running watcher restarts it with the new root.
func (w *Watcher) Start(root string) error {
	if err := w.Stop(); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	if err := addRecursive(fsw, root); err != nil {
		fsw.Close()
		return err
	}

	w.fsw = fsw
	w.done = make(chan struct{})
	go w.run(fsw, w.done)
	return nil
}

// Stop stops the watcher. Safe to call when not running.
func (w *Watcher) Stop() error {
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	<-w.done
	w.fsw = nil
	w.done = nil
	return err
}

func (w *Watcher) run(fsw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			// New directories need their own watches.
			if ev.Op.Has(fsnotify.Create) {
				addRecursive(fsw, ev.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			select {
			case w.events <- struct{}{}:
			default: // a notification is already queued
			}

		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// addRecursive watches path and every directory below it. Unreadable
// subtrees are skipped.
func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("watching %s: %w", root, err)
			}
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if err := fsw.Add(path); err != nil && path == root {
			return fmt.Errorf("watching %s: %w", root, err)
		}
		return nil
	})
}
