package ports

import (
	"context"
	"iter"
)

// WatchEvent represents a change of a watched file whose content differs from
// the last observed content.
type WatchEvent struct {
	// Path is the absolute path of the file that changed.
	Path string
	// Removed is true when the file no longer exists.
	Removed bool
}

// Watcher defines the interface for watching the settings file.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the file at path.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file change events.
	Events() iter.Seq[WatchEvent]
}
