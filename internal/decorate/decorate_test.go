package decorate

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorate(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "t/acf-json/a.json", []byte(`{"title": "Hero Block"}`), 0o644))
	require.NoError(t, util.WriteFile(fs, "t/acf-json/b.json", []byte(`{"nope": true}`), 0o644))
	require.NoError(t, util.WriteFile(fs, "t/acf-json/c.json", []byte(`{broken`), 0o644))
	require.NoError(t, util.WriteFile(fs, "t/other/d.json", []byte(`{"title": "X"}`), 0o644))

	p, err := NewProvider(fs, 16)
	require.NoError(t, err)

	d := p.Decorate("t/acf-json/a.json")
	require.NotNil(t, d)
	assert.Equal(t, Decoration{Badge: Badge, Tooltip: "ACF: Hero Block", Color: Color}, *d)

	assert.Nil(t, p.Decorate("t/acf-json/b.json"))
	assert.Nil(t, p.Decorate("t/acf-json/c.json"))
	assert.Nil(t, p.Decorate("t/other/d.json"))
	assert.Nil(t, p.Decorate("t/acf-json/missing.json"))
	assert.Equal(t, 3, p.Len())
}

func TestDecorate_RefreshPicksUpChanges(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "acf-json/a.json", []byte(`{"title": "Old"}`), 0o644))

	p, err := NewProvider(fs, 4)
	require.NoError(t, err)
	assert.Equal(t, "ACF: Old", p.Decorate("acf-json/a.json").Tooltip)

	require.NoError(t, util.WriteFile(fs, "acf-json/a.json", []byte(`{"title": "Renamed"}`), 0o644))
	p.Refresh("acf-json/a.json")
	assert.Equal(t, "ACF: Renamed", p.Decorate("acf-json/a.json").Tooltip)
}

func TestNewProvider_InvalidSize(t *testing.T) {
	_, err := NewProvider(memfs.New(), 0)
	assert.Error(t, err)
}
