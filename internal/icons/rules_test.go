package icons

import (
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/acfkit/api"
)

func parse(t *testing.T, s string) any {
	t.Helper()
	v, err := oj.ParseString(s)
	require.NoError(t, err)
	return v
}

const optionsDoc = `{"title": "x", "location": [[{"param": "post_type", "operator": "==", "value": "post"}], [{"param": "options_page", "operator": "==", "value": "theme-settings"}]]}`

func TestMatch_TitleAndLocationBothRequired(t *testing.T) {
	cond := &api.Condition{TitleContains: "block", LocationParam: "options_page"}
	options := parse(t, optionsDoc)
	plain := parse(t, `{"title": "x", "location": [[{"param": "block", "operator": "==", "value": "acf/hero"}]]}`)

	assert.True(t, Match(cond, "Hero BLOCK", options))
	assert.False(t, Match(cond, "Hero", options))
	assert.False(t, Match(cond, "Hero Block", plain))
}

func TestMatch_AndOr(t *testing.T) {
	doc := parse(t, optionsDoc)
	cond := &api.Condition{
		Or: []api.Condition{
			{TitleContains: "menu"},
			{And: []api.Condition{{TitleContains: "site"}, {LocationParam: "options_page"}}},
		},
	}
	assert.True(t, Match(cond, "Main Menu", nil))
	assert.True(t, Match(cond, "Site Settings", doc))
	assert.False(t, Match(cond, "Site Settings", nil))
	assert.False(t, Match(cond, "Footer", doc))

	assert.True(t, Match(nil, "anything", nil))
	assert.True(t, Match(&api.Condition{}, "anything", nil))
}

func TestIsOptionsPage(t *testing.T) {
	assert.True(t, IsOptionsPage(parse(t, optionsDoc)))
	assert.False(t, IsOptionsPage(parse(t, `{"title": "x"}`)))
	assert.False(t, IsOptionsPage(parse(t, `{"location": "broken"}`)))
	assert.False(t, IsOptionsPage(nil))
}

func TestResolve_Defaults(t *testing.T) {
	rules := Prepare(nil, Defaults())
	tests := []struct {
		title string
		doc   string
		icon  string
		label string
	}{
		{"Hero Block", `{}`, "symbol-class", "Gutenberg Block"},
		{"Clone: Buttons", `{}`, "git-branch", "Clone Field"},
		{"Post Page Extras", `{}`, "file-text", "Post Fields"},
		{"Landing page", `{}`, "browser", "Page Fields"},
		{"Mega Menu", `{}`, "list-unordered", "Menu Fields"},
		{"Hero Block", optionsDoc, "gear", "Options"},
		{"Misc", `{}`, "json", "General Fields"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			r := Resolve(rules, tt.title, parse(t, tt.doc))
			assert.Equal(t, tt.icon, r.Icon)
			assert.Equal(t, tt.label, r.TypeLabel)
		})
	}
}

func TestPrepare_DedupAndStableWeightOrder(t *testing.T) {
	user := []api.IconRule{
		{Name: "a", Weight: 5},
		{Name: "b", Weight: 10},
		{Name: "c", Weight: 5},
		{Name: "a", Weight: 99},
		{Name: "block", Icon: "zap", Weight: 1, Condition: &api.Condition{TitleContains: "block"}},
	}
	rules := Prepare(user, Defaults())

	var names []string
	for _, r := range rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"options", "clone", "post", "page", "menu", "b", "a", "c", "block", "general"}, names)

	r := Resolve(rules, "Hero Block", nil)
	// "b" has no condition and outranks the user "block" rule.
	assert.Equal(t, "b", r.Name)
	assert.Equal(t, Fallback.Icon, r.Icon)
}

func TestResolve_UserRuleOverridesDefault(t *testing.T) {
	user := []api.IconRule{{Name: "block", Icon: "zap", Color: "charts.red", Weight: 60, TypeLabel: "Block",
		Condition: &api.Condition{TitleContains: "block"}}}
	r := Resolve(Prepare(user, Defaults()), "Hero Block", nil)
	assert.Equal(t, "zap", r.Icon)
	assert.Equal(t, "Block", r.TypeLabel)
}

func TestResolve_NoRules(t *testing.T) {
	assert.Equal(t, Fallback, Resolve(nil, "x", nil))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("gear"))
	assert.False(t, Known("not-an-icon"))
	assert.True(t, KnownColor("charts.purple"))
	assert.False(t, KnownColor("charts.pink"))
	assert.NotEmpty(t, Icons())
	assert.NotEmpty(t, Colors())
}
