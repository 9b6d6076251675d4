package writeback

import (
	"os"
	"path/filepath"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/acfkit/internal/rekey"
)

const groupJSON = `{"key": "group_old", "title": "Hero"}`

func memFile(t *testing.T, name, content string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
	return fs
}

func readString(t *testing.T, fs billy.Filesystem, name string) string {
	t.Helper()
	b, err := util.ReadFile(fs, name)
	require.NoError(t, err)
	return string(b)
}

func TestApplyEdits_ReplaceValue(t *testing.T) {
	fs := memFile(t, "acf-json/group_old.json", groupJSON)
	ed := &FileEditor{FS: fs}

	err := ed.ApplyEdits("acf-json/group_old.json", groupJSON, []rekey.Edit{
		{Start: 8, End: 19, Text: `"group_new"`},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"key": "group_new", "title": "Hero"}`, readString(t, fs, "acf-json/group_old.json"))
}

func TestApplyEdits_StaleSnapshot(t *testing.T) {
	fs := memFile(t, "a.json", groupJSON)
	ed := &FileEditor{FS: fs}

	err := ed.ApplyEdits("a.json", `{"key": "other"}`, []rekey.Edit{{Start: 0, End: 1, Text: "{"}})
	assert.ErrorIs(t, err, ErrStaleDocument)
	assert.Equal(t, groupJSON, readString(t, fs, "a.json"))
}

func TestApplyEdits_RejectsInvalidResult(t *testing.T) {
	fs := memFile(t, "a.json", groupJSON)
	ed := &FileEditor{FS: fs}

	err := ed.ApplyEdits("a.json", groupJSON, []rekey.Edit{{Start: 0, End: 1, Text: "["}})
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "a.json", ve.FilePath)
	assert.Equal(t, groupJSON, readString(t, fs, "a.json"))
}

func TestApplyEdits_LooseSnapshotStillRekeyed(t *testing.T) {
	const loose = `{"key": "group_old", "title": Hero}`
	fs := memFile(t, "a.json", loose)
	ed := &FileEditor{FS: fs}

	err := ed.ApplyEdits("a.json", loose, []rekey.Edit{{Start: 8, End: 19, Text: `"group_new"`}})
	require.NoError(t, err)
	assert.Equal(t, `{"key": "group_new", "title": Hero}`, readString(t, fs, "a.json"))
}

func TestApplyEdits_InvalidRange(t *testing.T) {
	fs := memFile(t, "a.json", groupJSON)
	ed := &FileEditor{FS: fs}
	err := ed.ApplyEdits("a.json", groupJSON, []rekey.Edit{{Start: 0, End: 500}})
	assert.Error(t, err)
}

func TestApplyEdits_NonexistentFile(t *testing.T) {
	ed := &FileEditor{FS: memfs.New()}
	err := ed.ApplyEdits("nope.json", "{}", nil)
	assert.Error(t, err)
}

func TestApplyEdits_PreservesPermissions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(groupJSON), 0o600))
	ed := &FileEditor{FS: osfs.New(dir)}

	err := ed.ApplyEdits("a.json", groupJSON, []rekey.Edit{{Start: 8, End: 19, Text: `"group_xyz"`}})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestRename(t *testing.T) {
	fs := memFile(t, "acf-json/group_old.json", groupJSON)
	require.NoError(t, Rename(fs, "acf-json/group_old.json", "acf-json/group_new.json"))

	_, err := fs.Stat("acf-json/group_old.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, groupJSON, readString(t, fs, "acf-json/group_new.json"))
}

func TestRename_RefusesOverwrite(t *testing.T) {
	fs := memFile(t, "a.json", groupJSON)
	require.NoError(t, util.WriteFile(fs, "b.json", []byte("{}"), 0o644))

	err := Rename(fs, "a.json", "b.json")
	assert.ErrorIs(t, err, ErrExists)
	assert.Equal(t, "{}", readString(t, fs, "b.json"))
}
