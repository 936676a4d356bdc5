package watcher

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ContentCache remembers the xxhash of the last observed content of each
// file, so that editor save patterns (truncate, write, rename) that leave the
// content unchanged are not reported.
type ContentCache struct {
	mu     sync.Mutex
	hashes map[string]uint64
}

// NewContentCache creates an empty cache.
func NewContentCache() *ContentCache {
	return &ContentCache{hashes: make(map[string]uint64)}
}

// Prime records the current content of path without reporting a change.
func (c *ContentCache) Prime(path string) {
	_, _, _ = c.Observe(path)
}

// Observe hashes the file at path and reports whether its content changed
// since the previous observation. A missing file counts as removed; it is a
// change only if the file was present before.
func (c *ContentCache) Observe(path string) (changed, removed bool, err error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the watched settings file
	if errors.Is(err, fs.ErrNotExist) {
		c.mu.Lock()
		defer c.mu.Unlock()

		_, known := c.hashes[path]
		delete(c.hashes, path)
		return known, true, nil
	}
	if err != nil {
		return false, false, err
	}

	sum := xxhash.Sum64(data)

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, known := c.hashes[path]
	c.hashes[path] = sum
	return !known || prev != sum, false, nil
}
