package keyindex

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/acfkit/internal/catalog"
)

func loadFixture(t *testing.T) *catalog.Snapshot {
	t.Helper()
	fs := memfs.New()
	files := map[string]string{
		"themes/a/style.css":          "/*\nTheme Name: Parent\n*/",
		"themes/b/style.css":          "/*\nTheme Name: Child\nTemplate: a\n*/",
		"themes/a/acf-json/hero.json": `{"key": "group_hero", "title": "Hero", "fields": [{"key": "field_title"}, {"key": "field_img"}]}`,
		"themes/b/acf-json/hero.json": `{"key": "group_hero", "title": "Hero", "fields": [{"key": "field_title"}]}`,
		"themes/b/acf-json/copy.json": `{"key": "group_copy", "title": "Copy", "fields": [{"key": "field_img", "sub_fields": [{"key": "field_nested"}]}]}`,
	}
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
	}
	snap, err := catalog.Load(context.Background(), fs, nil)
	require.NoError(t, err)
	require.Equal(t, 3, snap.Len())
	return snap
}

func paths(files []catalog.FieldGroupFile) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestKeys_IncludesNested(t *testing.T) {
	snap := loadFixture(t)
	f, ok := snap.Find("themes/b/acf-json/copy.json")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"group_copy", "field_img", "field_nested"}, Keys(f))
}

func TestCollisions(t *testing.T) {
	idx := Build(loadFixture(t))
	assert.Equal(t, 5, idx.Len())

	cs := idx.Collisions()
	require.Len(t, cs, 3)

	assert.Equal(t, "field_img", cs[0].Key)
	assert.False(t, cs[0].Shadowing)
	assert.ElementsMatch(t, []string{"themes/a/acf-json/hero.json", "themes/b/acf-json/copy.json"}, paths(cs[0].Files))

	assert.Equal(t, "field_title", cs[1].Key)
	assert.True(t, cs[1].Shadowing)

	assert.Equal(t, "group_hero", cs[2].Key)
	assert.True(t, cs[2].Shadowing)

	assert.Nil(t, idx.Lookup("field_missing"))
	assert.Len(t, idx.Lookup("group_copy"), 1)
}

func TestWriteSQLite_RoundTripsCollisions(t *testing.T) {
	idx := Build(loadFixture(t))
	dbPath := filepath.Join(t.TempDir(), "keys.db")
	require.NoError(t, WriteSQLite(dbPath, idx))
	// Second export overwrites the first.
	require.NoError(t, WriteSQLite(dbPath, idx))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&n))
	assert.Equal(t, 3, n)

	got, err := QueryCollisions(db)
	require.NoError(t, err)
	require.Len(t, got, 3)
	want := idx.Collisions()
	for i := range want {
		assert.Equal(t, want[i].Key, got[i].Key)
		assert.ElementsMatch(t, paths(want[i].Files), got[i].Paths)
	}
}
