// Package commands implements the key-regeneration commands on top of the
// rekey scanner and the writeback editor.
package commands

import (
	"errors"
	"fmt"
	"path"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentic-research/acfkit/internal/catalog"
	"github.com/agentic-research/acfkit/internal/keygen"
	"github.com/agentic-research/acfkit/internal/rekey"
	"github.com/agentic-research/acfkit/internal/writeback"
)

// ErrNotFieldGroupFile is returned when a command targets a file outside acf-json.
var ErrNotFieldGroupFile = errors.New("not an ACF field group file")

// Editor applies an edit batch computed against snapshot to the file at path.
type Editor interface {
	ApplyEdits(path, snapshot string, edits []rekey.Edit) error
}

// KeyChange is one regenerated key.
type KeyChange struct {
	OldKey string
	NewKey string
}

// Result describes what a command changed.
type Result struct {
	Path    string
	Changes []KeyChange
	// Replacements counts edits beyond the key declarations.
	Replacements int
	// RenamedTo is the new path when the file was moved.
	RenamedTo string
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	var b strings.Builder
	switch len(r.Changes) {
	case 0:
		b.WriteString("No ACF keys changed")
	case 1:
		fmt.Fprintf(&b, "ACF key updated: %s → %s", r.Changes[0].OldKey, r.Changes[0].NewKey)
	default:
		fmt.Fprintf(&b, "Regenerated %d ACF field keys", len(r.Changes))
	}
	if r.Replacements > 0 {
		fmt.Fprintf(&b, " (%d replacements)", r.Replacements)
	}
	if r.RenamedTo != "" {
		fmt.Fprintf(&b, ", renamed to %s", path.Base(r.RenamedTo))
	}
	return b.String()
}

// Runner executes commands against a workspace filesystem.
type Runner struct {
	FS     billy.Filesystem
	Editor Editor
}

// NewRunner returns a Runner that writes through a writeback.FileEditor.
func NewRunner(fs billy.Filesystem) *Runner {
	return &Runner{FS: fs, Editor: &writeback.FileEditor{FS: fs}}
}

// GenerateFieldKey gives the object enclosing offset a new field key.
// References elsewhere in the document are left alone.
func (r *Runner) GenerateFieldKey(p string, offset int) (*Result, error) {
	return r.renameAt(p, offset, false)
}

// GenerateFieldKeyWithReferences is GenerateFieldKey plus replacement of every
// quoted occurrence of the old key in the document.
func (r *Runner) GenerateFieldKeyWithReferences(p string, offset int) (*Result, error) {
	return r.renameAt(p, offset, true)
}

func (r *Runner) renameAt(p string, offset int, propagate bool) (*Result, error) {
	text, err := r.read(p)
	if err != nil {
		return nil, err
	}
	span, err := rekey.FindEnclosingObject(text, offset)
	if err != nil {
		return nil, fmt.Errorf("%s offset %d: %w", p, offset, err)
	}
	var rn *rekey.Rename
	if propagate {
		rn, err = rekey.RenameKeyWithReferences(text, span, keygen.FieldPrefix)
	} else {
		rn, err = rekey.RenameKey(text, span, keygen.FieldPrefix)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	if err := r.Editor.ApplyEdits(p, text, rn.Edits); err != nil {
		return nil, err
	}
	return &Result{
		Path:         p,
		Changes:      []KeyChange{{OldKey: rn.OldKey, NewKey: rn.NewKey}},
		Replacements: rn.References(),
	}, nil
}

// GenerateGroupKey gives the document's root object a new group key. With
// rename set the file is then moved to <newKey>.json in the same directory.
// A failed move leaves the edited document in place.
func (r *Runner) GenerateGroupKey(p string, rename bool) (*Result, error) {
	text, err := r.read(p)
	if err != nil {
		return nil, err
	}
	span, err := rekey.RootSpan(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	rn, err := rekey.RenameKey(text, span, keygen.GroupPrefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	if err := r.Editor.ApplyEdits(p, text, rn.Edits); err != nil {
		return nil, err
	}

	res := &Result{Path: p, Changes: []KeyChange{{OldKey: rn.OldKey, NewKey: rn.NewKey}}}
	if rename {
		to := path.Join(path.Dir(p), rn.NewKey+".json")
		if err := writeback.Rename(r.FS, p, to); err != nil {
			return res, err
		}
		res.RenamedTo = to
	}
	return res, nil
}

// RegenerateAllFieldKeys gives every top-level field a new key and updates all
// references to the old keys in one write.
func (r *Runner) RegenerateAllFieldKeys(p string) (*Result, error) {
	text, err := r.read(p)
	if err != nil {
		return nil, err
	}
	batch, err := rekey.RenameAllFields(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	if err := r.Editor.ApplyEdits(p, text, batch.Edits); err != nil {
		return nil, err
	}

	res := &Result{Path: p}
	for _, c := range batch.Changes {
		res.Changes = append(res.Changes, KeyChange{OldKey: c.OldKey, NewKey: c.NewKey})
		res.Replacements += c.References()
	}
	return res, nil
}

func (r *Runner) read(p string) (string, error) {
	if !catalog.IsFieldGroupPath(p) {
		return "", fmt.Errorf("%s: %w", p, ErrNotFieldGroupFile)
	}
	content, err := util.ReadFile(r.FS, p)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	return string(content), nil
}
