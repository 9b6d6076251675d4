// Package catalog indexes the ACF field-group files of a workspace, attaches
// theme and override metadata, and orders them for presentation.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/acfkit/internal/theme"
)

// ErrNotFieldGroup is returned for JSON documents without a title.
var ErrNotFieldGroup = errors.New("not a field group: missing title")

// FieldGroupFile is one acf-json/*.json field group. It is never mutated
// after a snapshot is built.
type FieldGroupFile struct {
	Path        string         // workspace-relative path, used for I/O
	AbsPath     string         // Path joined to the workspace root
	Filename    string         // base name without .json
	Key         string         // "key" property, or Filename when absent
	Title       string         // "title" property
	Data        map[string]any // parsed document
	ThemeFolder string         // directory preceding acf-json
	IsOverride  bool           // an ancestor theme ships the same filename
	OverrideOf  string         // folder of that ancestor
}

// ThemeGroup is the field groups of one theme display name, ordered by title.
type ThemeGroup struct {
	DisplayName string
	Folders     []string
	Files       []FieldGroupFile
}

// Problem records a file that was skipped during a load.
type Problem struct {
	Path string
	Err  error
}

// Snapshot is the immutable result of one catalog load.
type Snapshot struct {
	Themes    []ThemeGroup
	Hierarchy *theme.Hierarchy
	Problems  []Problem
}

// Len returns the number of field groups in the snapshot.
func (s *Snapshot) Len() int {
	n := 0
	for _, g := range s.Themes {
		n += len(g.Files)
	}
	return n
}

// Files returns every field group in presentation order.
func (s *Snapshot) Files() []FieldGroupFile {
	out := make([]FieldGroupFile, 0, s.Len())
	for _, g := range s.Themes {
		out = append(out, g.Files...)
	}
	return out
}

// Find returns the field group stored at the workspace-relative path p.
func (s *Snapshot) Find(p string) (FieldGroupFile, bool) {
	p = filepath.Clean(p)
	for _, g := range s.Themes {
		for _, f := range g.Files {
			if f.Path == p {
				return f, true
			}
		}
	}
	return FieldGroupFile{}, false
}

// ReadFieldGroup reads and parses one field-group file. Documents that are
// not JSON objects or lack a string title fail.
func ReadFieldGroup(fs billy.Filesystem, p string) (*FieldGroupFile, error) {
	content, err := util.ReadFile(fs, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	parsed, err := oj.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p, err)
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFieldGroup)
	}
	title, _ := doc["title"].(string)
	if title == "" {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFieldGroup)
	}

	abs := filepath.Join(fs.Root(), p)
	f := &FieldGroupFile{
		Path:        filepath.Clean(p),
		AbsPath:     abs,
		Filename:    strings.TrimSuffix(filepath.Base(p), ".json"),
		Title:       title,
		Data:        doc,
		ThemeFolder: ThemeFolder(p),
	}
	f.Key, _ = doc["key"].(string)
	if f.Key == "" {
		f.Key = f.Filename
	}
	return f, nil
}

// Load builds a snapshot of every field group on fs. Files that cannot be
// read or parsed are logged and recorded in Problems; they never abort the
// load. Field groups of ignored theme folders are dropped.
func Load(ctx context.Context, fs billy.Filesystem, ignore []string) (*Snapshot, error) {
	ws, err := discover(ctx, fs)
	if err != nil {
		return nil, fmt.Errorf("scan workspace: %w", err)
	}

	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[strings.TrimSpace(name)] = true
	}

	h := theme.BuildHierarchy(ws.sheets)
	snap := &Snapshot{Hierarchy: h}
	byName := make(map[string]*ThemeGroup)
	var order []string

	for _, p := range ws.fieldGroups {
		folder := ThemeFolder(p)
		if folder == "" {
			folder = ws.rootFolder
		}
		if ignored[folder] {
			continue
		}
		f, err := ReadFieldGroup(fs, p)
		if err != nil {
			log.Printf("catalog: skip %s: %v", p, err)
			snap.Problems = append(snap.Problems, Problem{Path: p, Err: err})
			continue
		}
		f.ThemeFolder = folder

		ov := h.IsOverride(fs, f.ThemeFolder, filepath.Base(p))
		f.IsOverride, f.OverrideOf = ov.IsOverride, ov.Of

		name := displayName(h, f.ThemeFolder)
		g, ok := byName[name]
		if !ok {
			g = &ThemeGroup{DisplayName: name}
			byName[name] = g
			order = append(order, name)
		}
		if !slices.Contains(g.Folders, f.ThemeFolder) {
			g.Folders = append(g.Folders, f.ThemeFolder)
		}
		g.Files = append(g.Files, *f)
	}

	for _, name := range order {
		snap.Themes = append(snap.Themes, *byName[name])
	}
	sortSnapshot(snap)
	return snap, nil
}

// WorkspaceGroup names field groups that live in a root-level acf-json.
const WorkspaceGroup = "(workspace)"

func displayName(h *theme.Hierarchy, folder string) string {
	if folder == "" {
		return WorkspaceGroup
	}
	return h.DisplayName(folder)
}
