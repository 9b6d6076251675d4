package catalog

import (
	"context"
	"sync"

	billy "github.com/go-git/go-billy/v5"
)

// Catalog holds the current snapshot of a workspace. Reloads may overlap;
// whichever completes last replaces the snapshot, and a stale result is
// corrected by the next reload.
type Catalog struct {
	fs     billy.Filesystem
	ignore []string

	mu      sync.RWMutex
	current *Snapshot
}

// New returns a Catalog with an empty snapshot.
func New(fs billy.Filesystem, ignore []string) *Catalog {
	return &Catalog{
		fs:      fs,
		ignore:  append([]string(nil), ignore...),
		current: &Snapshot{},
	}
}

// Reload loads a fresh snapshot and swaps it in. On error the current
// snapshot is kept.
func (c *Catalog) Reload(ctx context.Context) (*Snapshot, error) {
	snap, err := Load(ctx, c.fs, c.ignore)
	if err != nil {
		return nil, err
	}
	c.Swap(snap)
	return snap, nil
}

// Swap atomically replaces the current snapshot.
func (c *Catalog) Swap(s *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = s
}

// Snapshot returns the current snapshot.
func (c *Catalog) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// FS returns the workspace filesystem.
func (c *Catalog) FS() billy.Filesystem { return c.fs }
