package writeback

import (
	"errors"
	"fmt"
	"os"
	"path"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentic-research/acfkit/internal/rekey"
)

var (
	// ErrStaleDocument is returned when the file changed after its edits were computed.
	ErrStaleDocument = errors.New("document changed since edits were computed")
	// ErrExists is returned when a rename target is already present.
	ErrExists = errors.New("target file already exists")
)

// FileEditor applies edit batches to files on a billy filesystem.
type FileEditor struct {
	FS billy.Filesystem
}

// ApplyEdits applies edits, computed against snapshot, to the file at name.
// The file must still match snapshot. When snapshot parses as JSON the
// result must too.
// The write is atomic: content goes to a temp file first, then is renamed.
func (e *FileEditor) ApplyEdits(name, snapshot string, edits []rekey.Edit) error {
	current, err := util.ReadFile(e.FS, name)
	if err != nil {
		return fmt.Errorf("read source %s: %w", name, err)
	}
	if string(current) != snapshot {
		return fmt.Errorf("%s: %w", name, ErrStaleDocument)
	}

	result, err := rekey.Apply(snapshot, edits)
	if err != nil {
		return fmt.Errorf("apply edits to %s: %w", name, err)
	}
	// Only catch damage done by the edits; a snapshot that was already
	// loose JSON is written as the editor left it.
	if Validate([]byte(snapshot), name) == nil {
		if err := Validate([]byte(result), name); err != nil {
			return err
		}
	}

	return writeAtomic(e.FS, name, []byte(result))
}

// writeAtomic writes content to a temp file next to name, then renames it over name.
func writeAtomic(fs billy.Filesystem, name string, content []byte) error {
	tmp, err := fs.TempFile(path.Dir(name), ".acfkit-splice-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName) // best-effort cleanup
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName) // best-effort cleanup
		return fmt.Errorf("close temp: %w", err)
	}

	// Preserve original file permissions
	if ch, ok := fs.(billy.Change); ok {
		if info, err := fs.Stat(name); err == nil {
			_ = ch.Chmod(tmpName, info.Mode()) // best-effort permission sync
		}
	}

	if err := fs.Rename(tmpName, name); err != nil {
		_ = fs.Remove(tmpName) // best-effort cleanup
		return fmt.Errorf("rename temp to %s: %w", name, err)
	}
	return nil
}

// Rename moves from to to, refusing to overwrite an existing file.
func Rename(fs billy.Filesystem, from, to string) error {
	if _, err := fs.Stat(to); err == nil {
		return fmt.Errorf("rename %s: %s: %w", from, to, ErrExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", to, err)
	}
	if err := fs.Rename(from, to); err != nil {
		return fmt.Errorf("rename %s to %s: %w", from, to, err)
	}
	return nil
}
