// Package decorate produces file-explorer decorations for field-group files.
package decorate

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	billy "github.com/go-git/go-billy/v5"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agentic-research/acfkit/internal/catalog"
)

const (
	// Badge marks a field-group file.
	Badge = "⬡"
	// Color is the theme colour of the badge.
	Color = "charts.blue"
)

// Decoration is what the explorer shows next to a field-group file.
type Decoration struct {
	Badge   string
	Tooltip string
	Color   string
}

type entry struct {
	modTime time.Time
	size    int64
	deco    *Decoration
}

// Provider computes decorations, caching them per path until the file's
// mtime or size changes or Refresh is called.
type Provider struct {
	fs    billy.Filesystem
	cache *lru.Cache[string, entry]
}

// NewProvider returns a Provider that caches up to size decorations.
func NewProvider(fs billy.Filesystem, size int) (*Provider, error) {
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("decoration cache: %w", err)
	}
	return &Provider{fs: fs, cache: cache}, nil
}

// Decorate returns the decoration for path, or nil when path is not a
// field-group file. Read and parse failures are logged and yield nil.
func (p *Provider) Decorate(path string) *Decoration {
	if !catalog.IsFieldGroupPath(path) {
		return nil
	}

	info, err := p.fs.Stat(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("decorate: stat %s: %v", path, err)
		}
		p.cache.Remove(path)
		return nil
	}
	if e, ok := p.cache.Get(path); ok && e.modTime.Equal(info.ModTime()) && e.size == info.Size() {
		return e.deco
	}

	var deco *Decoration
	f, err := catalog.ReadFieldGroup(p.fs, path)
	switch {
	case err == nil:
		deco = &Decoration{Badge: Badge, Tooltip: "ACF: " + f.Title, Color: Color}
	case errors.Is(err, catalog.ErrNotFieldGroup):
	default:
		log.Printf("decorate: %v", err)
	}

	p.cache.Add(path, entry{modTime: info.ModTime(), size: info.Size(), deco: deco})
	return deco
}

// Refresh drops the cached decoration of path. Call it on change events.
func (p *Provider) Refresh(path string) {
	p.cache.Remove(path)
}

// Len returns the number of cached decorations.
func (p *Provider) Len() int { return p.cache.Len() }
