// Package watcher reports content changes of the settings file.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"time"

	"github.com/TYTheBeast/wynn-builder-ui/internal/core/domain"
	"github.com/TYTheBeast/wynn-builder-ui/internal/core/ports"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const (
	eventChannelBuffer = 8

	// DefaultDebounceWindow coalesces the burst of events produced by a
	// single save.
	DefaultDebounceWindow = 50 * time.Millisecond
)

// Watcher implements ports.Watcher using fsnotify. It watches the parent
// directory of the file so that atomic replace-on-save is observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	cache     *ContentCache
	window    time.Duration
	target    string
	events    chan ports.WatchEvent
}

// NewWatcher creates a new settings watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		cache:     NewContentCache(),
		window:    DefaultDebounceWindow,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the file at path. Events stop when ctx is done or
// Stop is called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", path)
	}
	w.target = abs
	w.cache.Prime(abs)

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", path)
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of content changes. It ends when the watcher
// stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	timer := time.NewTimer(w.window)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				timer.Reset(w.window)
			}

		case <-timer.C:
			if !w.emit(ctx) {
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("settings watcher: " + err.Error())
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

// emit sends an event if the file content changed. It returns false once
// ctx is done.
func (w *Watcher) emit(ctx context.Context) bool {
	changed, removed, err := w.cache.Observe(w.target)
	if err != nil {
		w.logger.Warn("settings watcher: " + err.Error())
		return true
	}
	if !changed {
		return true
	}

	select {
	case w.events <- ports.WatchEvent{Path: w.target, Removed: removed}:
		return true
	case <-ctx.Done():
		return false
	}
}
