// Package icons decides how a field group is presented: icon, theme colour and
// type label, through an ordered list of weighted rules.
package icons

import (
	"slices"
	"sort"
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/agentic-research/acfkit/api"
)

// OptionsPageParam is the location param of an ACF options page.
const OptionsPageParam = "options_page"

var locationParams = jp.MustParseString("$.location[*][*].param")

// Fallback applies when no rule matches.
var Fallback = api.IconRule{
	Name:      "general",
	Icon:      "json",
	Color:     "charts.yellow",
	TypeLabel: "General Fields",
}

// Presentation of theme nodes and override files when settings leave it unset.
const (
	DefaultOverrideIcon  = "git-compare"
	DefaultOverrideColor = "charts.orange"
	DefaultThemeIcon     = "folder"
	DefaultThemeColor    = "foreground"
)

// Defaults returns the built-in rules. Options pages come first, then title
// keywords in the order block, clone, post, page, menu.
func Defaults() []api.IconRule {
	return []api.IconRule{
		{Name: "options", Icon: "gear", Color: "foreground", Weight: 100, TypeLabel: "Options",
			Condition: &api.Condition{LocationParam: OptionsPageParam}},
		{Name: "block", Icon: "symbol-class", Color: "charts.purple", Weight: 60, TypeLabel: "Gutenberg Block",
			Condition: &api.Condition{TitleContains: "block"}},
		{Name: "clone", Icon: "git-branch", Color: "charts.orange", Weight: 50, TypeLabel: "Clone Field",
			Condition: &api.Condition{TitleContains: "clone"}},
		{Name: "post", Icon: "file-text", Color: "charts.green", Weight: 40, TypeLabel: "Post Fields",
			Condition: &api.Condition{TitleContains: "post"}},
		{Name: "page", Icon: "browser", Color: "charts.blue", Weight: 30, TypeLabel: "Page Fields",
			Condition: &api.Condition{TitleContains: "page"}},
		{Name: "menu", Icon: "list-unordered", Color: "charts.red", Weight: 20, TypeLabel: "Menu Fields",
			Condition: &api.Condition{TitleContains: "menu"}},
		Fallback,
	}
}

// Prepare merges user rules ahead of defaults, keeps the first rule of each
// name, and orders by descending weight. Equal weights keep their order.
func Prepare(user, defaults []api.IconRule) []api.IconRule {
	seen := make(map[string]bool, len(user)+len(defaults))
	rules := make([]api.IconRule, 0, len(user)+len(defaults))
	for _, list := range [][]api.IconRule{user, defaults} {
		for _, r := range list {
			if seen[r.Name] {
				continue
			}
			seen[r.Name] = true
			rules = append(rules, r)
		}
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Weight > rules[j].Weight
	})
	return rules
}

// Resolve returns the first rule matching the field group, or Fallback.
// Rules are expected in Prepare order.
func Resolve(rules []api.IconRule, title string, doc any) api.IconRule {
	params := LocationParams(doc)
	for _, r := range rules {
		if match(r.Condition, strings.ToLower(title), params) {
			return withFallbacks(r)
		}
	}
	return Fallback
}

func withFallbacks(r api.IconRule) api.IconRule {
	if r.Icon == "" {
		r.Icon = Fallback.Icon
	}
	if r.Color == "" {
		r.Color = Fallback.Color
	}
	if r.TypeLabel == "" {
		r.TypeLabel = Fallback.TypeLabel
	}
	return r
}

// Match evaluates c against a field group's title and parsed document.
// A nil or empty condition matches everything.
func Match(c *api.Condition, title string, doc any) bool {
	return match(c, strings.ToLower(title), LocationParams(doc))
}

func match(c *api.Condition, lowerTitle string, params []string) bool {
	if c == nil {
		return true
	}
	if c.TitleContains != "" && !strings.Contains(lowerTitle, strings.ToLower(c.TitleContains)) {
		return false
	}
	if c.LocationParam != "" && !slices.Contains(params, c.LocationParam) {
		return false
	}
	for i := range c.And {
		if !match(&c.And[i], lowerTitle, params) {
			return false
		}
	}
	if len(c.Or) > 0 {
		matched := false
		for i := range c.Or {
			if match(&c.Or[i], lowerTitle, params) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// LocationParams returns every location rule param of a parsed field group.
func LocationParams(doc any) []string {
	if doc == nil {
		return nil
	}
	var params []string
	for _, v := range locationParams.Get(doc) {
		if s, ok := v.(string); ok {
			params = append(params, s)
		}
	}
	return params
}

// IsOptionsPage reports whether any location rule targets an options page.
func IsOptionsPage(doc any) bool {
	return slices.Contains(LocationParams(doc), OptionsPageParam)
}
