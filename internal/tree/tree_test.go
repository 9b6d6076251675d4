package tree

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/acfkit/api"
	"github.com/agentic-research/acfkit/internal/catalog"
)

func snapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()
	fs := memfs.New()
	files := map[string]string{
		"themes/parent/style.css":             "/*\nTheme Name: Parent\n*/",
		"themes/child/style.css":              "/*\nTheme Name: Child\nTemplate: parent\n*/",
		"themes/parent/acf-json/hero.json":    `{"key": "group_hero", "title": "Hero Block"}`,
		"themes/child/acf-json/hero.json":     `{"key": "group_hero", "title": "Hero Block"}`,
		"themes/child/acf-json/settings.json": `{"key": "group_s", "title": "Site", "location": [[{"param": "options_page", "operator": "==", "value": "site"}]]}`,
		"themes/child/acf-json/misc.json":     `{"key": "group_m", "title": "Misc"}`,
	}
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
	}
	snap, err := catalog.Load(context.Background(), fs, nil)
	require.NoError(t, err)
	return snap
}

func child(t *testing.T, nodes []*ThemeNode, theme, title string) *FieldGroupNode {
	t.Helper()
	for _, tn := range nodes {
		if tn.DisplayName != theme {
			continue
		}
		for _, fn := range tn.Children {
			if fn.File.Title == title {
				return fn
			}
		}
	}
	t.Fatalf("no node %s / %s", theme, title)
	return nil
}

func TestBuild_Defaults(t *testing.T) {
	nodes := Build(snapshot(t), api.Settings{})
	require.Len(t, nodes, 2)
	assert.Equal(t, "Child", nodes[0].Label())
	assert.Equal(t, "folder", nodes[0].Icon)
	assert.Equal(t, "foreground", nodes[0].Color)

	opts := child(t, nodes, "Child", "Site")
	assert.Equal(t, "gear", opts.Icon)
	assert.Equal(t, "Options", opts.TypeLabel)
	assert.Equal(t, "settings.json • themes/child/acf-json", opts.Description)

	misc := child(t, nodes, "Child", "Misc")
	assert.Equal(t, "json", misc.Icon)
	assert.Equal(t, "charts.yellow", misc.Color)
	assert.Equal(t, "General Fields", misc.TypeLabel)

	parentHero := child(t, nodes, "Parent", "Hero Block")
	assert.Equal(t, "symbol-class", parentHero.Icon)
	assert.Equal(t, "charts.purple", parentHero.Color)

	hero := child(t, nodes, "Child", "Hero Block")
	assert.Equal(t, "git-compare", hero.Icon)
	assert.Equal(t, "charts.orange", hero.Color)
	assert.Equal(t, "Gutenberg Block", hero.TypeLabel)
	assert.Contains(t, hero.Tooltip, "**Overrides:** `parent`")
}

func TestBuild_Settings(t *testing.T) {
	settings := api.Settings{
		ThemeIcon:    "paintcan",
		OverrideIcon: "references",
		IconRules: []api.IconRule{
			{Name: "misc", Icon: "tag", Color: "charts.red", Weight: 200, TypeLabel: "Misc",
				Condition: &api.Condition{TitleContains: "MISC"}},
		},
	}
	nodes := Build(snapshot(t), settings)
	assert.Equal(t, "paintcan", nodes[1].Icon)

	misc := child(t, nodes, "Child", "Misc")
	assert.Equal(t, "tag", misc.Icon)
	assert.Equal(t, "Misc", misc.TypeLabel)

	hero := child(t, nodes, "Child", "Hero Block")
	assert.Equal(t, "references", hero.Icon)
	assert.Equal(t, "charts.orange", hero.Color)
}

func TestTooltip(t *testing.T) {
	f := catalog.FieldGroupFile{Path: "t/acf-json/a.json", Filename: "a", Title: "About"}
	assert.Equal(t, "## About\n\n📁 **File:** `a.json`\n\n📂 **Path:** `t/acf-json/a.json`\n\n🔧 **Type:** Page Fields\n\n_Click to open file_",
		Tooltip(f, "Page Fields"))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Build(snapshot(t), api.Settings{})))
	out := buf.String()
	assert.Contains(t, out, "Child (3)")
	assert.Contains(t, out, "├── Hero Block  hero.json • themes/child/acf-json  [Gutenberg Block]")
	assert.Contains(t, out, "└── Site  settings.json • themes/child/acf-json  [Options]")
	assert.Contains(t, out, "Parent (1)")
}
