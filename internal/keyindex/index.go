// Package keyindex finds ACF keys declared by more than one field-group file.
package keyindex

import (
	"path/filepath"
	"sort"

	"github.com/RoaringBitmap/roaring"
	"github.com/ohler55/ojg/jp"

	"github.com/agentic-research/acfkit/internal/catalog"
)

var allKeys = jp.MustParseString("$..key")

// Collision is a key declared in more than one file.
type Collision struct {
	Key   string
	Files []catalog.FieldGroupFile
	// Shadowing is set when every file has the same filename, which is how a
	// child theme overrides its parent rather than an accidental copy.
	Shadowing bool
}

// Index maps every key to the set of files declaring it.
type Index struct {
	files []catalog.FieldGroupFile
	keys  map[string]*roaring.Bitmap
}

// Build indexes every group and field key of the snapshot.
func Build(snap *catalog.Snapshot) *Index {
	idx := &Index{keys: make(map[string]*roaring.Bitmap)}
	for _, f := range snap.Files() {
		idx.Add(f)
	}
	return idx
}

// Add registers f and all keys found anywhere in its document.
func (idx *Index) Add(f catalog.FieldGroupFile) {
	id := uint32(len(idx.files))
	idx.files = append(idx.files, f)
	for _, k := range Keys(f) {
		bm, ok := idx.keys[k]
		if !ok {
			bm = roaring.New()
			idx.keys[k] = bm
		}
		bm.Add(id)
	}
}

// Keys returns the distinct keys of f in document order.
func Keys(f catalog.FieldGroupFile) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(k string) {
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	add(f.Key)
	if f.Data != nil {
		for _, v := range allKeys.Get(f.Data) {
			if s, ok := v.(string); ok {
				add(s)
			}
		}
	}
	return out
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int { return len(idx.keys) }

// Files returns the indexed files, in ordinal order.
func (idx *Index) Files() []catalog.FieldGroupFile { return idx.files }

// Lookup returns the files declaring key.
func (idx *Index) Lookup(key string) []catalog.FieldGroupFile {
	bm, ok := idx.keys[key]
	if !ok {
		return nil
	}
	var out []catalog.FieldGroupFile
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, idx.files[it.Next()])
	}
	return out
}

// Collisions returns every key declared by two or more files, ordered by key.
func (idx *Index) Collisions() []Collision {
	var out []Collision
	for key, bm := range idx.keys {
		if bm.GetCardinality() < 2 {
			continue
		}
		files := idx.Lookup(key)
		out = append(out, Collision{Key: key, Files: files, Shadowing: sameBase(files)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func sameBase(files []catalog.FieldGroupFile) bool {
	for _, f := range files[1:] {
		if filepath.Base(f.Path) != filepath.Base(files[0].Path) {
			return false
		}
	}
	return true
}
