// Package theme resolves WordPress theme metadata and parent/child theme
// chains, and answers whether a child theme's field group overrides one
// shipped by an ancestor.
package theme

import (
	"path/filepath"
	"sort"

	billy "github.com/go-git/go-billy/v5"
)

// AcfDir is the directory ACF local JSON lives in, inside a theme.
const AcfDir = "acf-json"

// Stylesheet is a theme directory and the contents of its style.css.
// Text may be nil for a theme folder that has no stylesheet. Folder defaults
// to the base name of Dir.
type Stylesheet struct {
	Dir    string
	Folder string
	Text   []byte
}

// Metadata describes one theme folder.
type Metadata struct {
	Folder         string // directory name, stable identity
	DisplayName    string // "Theme Name" header, or Folder
	ParentTemplate string // "Template" header; empty for a root theme
	Dir            string // theme directory on the workspace filesystem
}

// Override is the result of an override check.
type Override struct {
	IsOverride bool
	Of         string // folder of the nearest ancestor holding the same file
}

// Hierarchy maps theme folder names to their metadata.
type Hierarchy struct {
	themes map[string]Metadata
}

// BuildHierarchy parses every stylesheet into a Hierarchy. When two
// directories share a folder name the later one wins.
func BuildHierarchy(sheets []Stylesheet) *Hierarchy {
	h := &Hierarchy{themes: make(map[string]Metadata, len(sheets))}
	for _, s := range sheets {
		folder := s.Folder
		if folder == "" {
			folder = filepath.Base(s.Dir)
		}
		hdr := ParseHeader(s.Text)
		meta := Metadata{
			Folder:         folder,
			DisplayName:    hdr.Name,
			ParentTemplate: hdr.Template,
			Dir:            s.Dir,
		}
		if meta.DisplayName == "" {
			meta.DisplayName = folder
		}
		h.themes[folder] = meta
	}
	return h
}

// Theme returns the metadata for folder.
func (h *Hierarchy) Theme(folder string) (Metadata, bool) {
	m, ok := h.themes[folder]
	return m, ok
}

// Themes returns all themes ordered by folder name.
func (h *Hierarchy) Themes() []Metadata {
	out := make([]Metadata, 0, len(h.themes))
	for _, m := range h.themes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Folder < out[j].Folder })
	return out
}

// Len returns the number of known themes.
func (h *Hierarchy) Len() int { return len(h.themes) }

// DisplayName returns the theme's display name, or folder for unknown themes.
func (h *Hierarchy) DisplayName(folder string) string {
	if m, ok := h.themes[folder]; ok {
		return m.DisplayName
	}
	return folder
}

// Ancestors returns the Template chain above folder, nearest first. The
// chain stops at a root theme, an unknown parent, or a theme already visited.
func (h *Hierarchy) Ancestors(folder string) []Metadata {
	cur, ok := h.themes[folder]
	if !ok {
		return nil
	}
	visited := map[string]bool{folder: true}
	var chain []Metadata
	for len(chain) < len(h.themes) {
		parent := cur.ParentTemplate
		if parent == "" || visited[parent] {
			break
		}
		visited[parent] = true
		meta, ok := h.themes[parent]
		if !ok {
			break
		}
		chain = append(chain, meta)
		cur = meta
	}
	return chain
}

// IsOverride reports whether an ancestor of folder ships acf-json/<filename>.
// Only existence is checked; contents and keys are not compared.
func (h *Hierarchy) IsOverride(fs billy.Basic, folder, filename string) Override {
	for _, anc := range h.Ancestors(folder) {
		if _, err := fs.Stat(filepath.Join(anc.Dir, AcfDir, filename)); err == nil {
			return Override{IsOverride: true, Of: anc.Folder}
		}
	}
	return Override{}
}
