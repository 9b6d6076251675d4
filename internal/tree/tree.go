// Package tree turns a catalog snapshot into the theme / field-group tree
// shown to users, and renders it for the terminal.
package tree

import (
	"fmt"
	"path"
	"strings"

	"github.com/agentic-research/acfkit/api"
	"github.com/agentic-research/acfkit/internal/catalog"
	"github.com/agentic-research/acfkit/internal/icons"
)

// Node is a ThemeNode or a FieldGroupNode.
type Node interface {
	Label() string
	node()
}

// ThemeNode groups the field groups of one theme display name.
type ThemeNode struct {
	DisplayName string
	Icon        string
	Color       string
	Children    []*FieldGroupNode
}

// FieldGroupNode is one field-group file.
type FieldGroupNode struct {
	File        catalog.FieldGroupFile
	Icon        string
	Color       string
	TypeLabel   string
	Description string
	Tooltip     string
}

func (*ThemeNode) node()      {}
func (*FieldGroupNode) node() {}

// Label returns the theme display name.
func (t *ThemeNode) Label() string { return t.DisplayName }

// Label returns the field group title.
func (f *FieldGroupNode) Label() string { return f.File.Title }

// Build returns one ThemeNode per theme group of snap, in snapshot order.
func Build(snap *catalog.Snapshot, settings api.Settings) []*ThemeNode {
	rules := icons.Prepare(settings.IconRules, icons.Defaults())
	themeIcon := or(settings.ThemeIcon, icons.DefaultThemeIcon)
	themeColor := or(settings.ThemeColor, icons.DefaultThemeColor)
	overrideIcon := or(settings.OverrideIcon, icons.DefaultOverrideIcon)
	overrideColor := or(settings.OverrideColor, icons.DefaultOverrideColor)

	nodes := make([]*ThemeNode, 0, len(snap.Themes))
	for _, g := range snap.Themes {
		tn := &ThemeNode{DisplayName: g.DisplayName, Icon: themeIcon, Color: themeColor}
		for _, f := range g.Files {
			rule := icons.Resolve(rules, f.Title, f.Data)
			fn := &FieldGroupNode{
				File:        f,
				Icon:        rule.Icon,
				Color:       rule.Color,
				TypeLabel:   rule.TypeLabel,
				Description: Description(f),
			}
			if f.IsOverride {
				fn.Icon, fn.Color = overrideIcon, overrideColor
			}
			fn.Tooltip = Tooltip(f, fn.TypeLabel)
			tn.Children = append(tn.Children, fn)
		}
		nodes = append(nodes, tn)
	}
	return nodes
}

// Description is the secondary text of a field-group row.
func Description(f catalog.FieldGroupFile) string {
	return fmt.Sprintf("%s.json • %s", f.Filename, path.Dir(f.Path))
}

// Tooltip is the markdown hover text of a field-group row.
func Tooltip(f catalog.FieldGroupFile, typeLabel string) string {
	lines := []string{
		"## " + f.Title,
		"",
		fmt.Sprintf("📁 **File:** `%s.json`", f.Filename),
		"",
		fmt.Sprintf("📂 **Path:** `%s`", f.Path),
		"",
		"🔧 **Type:** " + typeLabel,
	}
	if f.IsOverride {
		lines = append(lines, "", fmt.Sprintf("↪ **Overrides:** `%s`", f.OverrideOf))
	}
	lines = append(lines, "", "_Click to open file_")
	return strings.Join(lines, "\n")
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
