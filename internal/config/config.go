// Package config loads acfkit settings from JSON or HCL files and the
// environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/ohler55/ojg/oj"
	"github.com/ohler55/ojg/sen"

	"github.com/agentic-research/acfkit/api"
	"github.com/agentic-research/acfkit/internal/icons"
)

// Environment variables read by the CLI.
const (
	EnvWorkspace   = "ACFKIT_WORKSPACE"
	EnvConfig      = "ACFKIT_CONFIG"
	EnvThemeIgnore = "ACFKIT_THEME_IGNORE"
)

// Defaults returns the settings used when no file sets a value.
func Defaults() api.Settings {
	return api.Settings{
		OverrideIcon:  icons.DefaultOverrideIcon,
		OverrideColor: icons.DefaultOverrideColor,
		ThemeIcon:     icons.DefaultThemeIcon,
		ThemeColor:    icons.DefaultThemeColor,
	}
}

// Load reads settings from name on fs. Files ending in .hcl are decoded as
// HCL; anything else as JSON, where comments and trailing commas are allowed
// as in editor settings files. An empty name returns Defaults.
func Load(fs billy.Filesystem, name string) (api.Settings, error) {
	s := Defaults()
	if name == "" {
		return s, nil
	}
	src, err := util.ReadFile(fs, name)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", name, err)
	}

	var loaded api.Settings
	if strings.EqualFold(path.Ext(name), ".hcl") {
		if err := hclsimple.Decode(path.Base(name), src, nil, &loaded); err != nil {
			return s, fmt.Errorf("decode config %s: %w", name, err)
		}
	} else {
		doc, err := sen.Parse(src)
		if err != nil {
			return s, fmt.Errorf("parse config %s: %w", name, err)
		}
		if err := json.Unmarshal([]byte(oj.JSON(doc)), &loaded); err != nil {
			return s, fmt.Errorf("decode config %s: %w", name, err)
		}
	}
	return merge(s, loaded), nil
}

// merge overlays the values set in over onto base.
func merge(base, over api.Settings) api.Settings {
	if len(over.IconRules) > 0 {
		base.IconRules = over.IconRules
	}
	if over.OverrideIcon != "" {
		base.OverrideIcon = over.OverrideIcon
	}
	if over.OverrideColor != "" {
		base.OverrideColor = over.OverrideColor
	}
	if over.ThemeIcon != "" {
		base.ThemeIcon = over.ThemeIcon
	}
	if over.ThemeColor != "" {
		base.ThemeColor = over.ThemeColor
	}
	if len(over.ThemeIgnoreList) > 0 {
		base.ThemeIgnoreList = over.ThemeIgnoreList
	}
	return base
}

// ApplyEnv appends the comma-separated theme folders of ACFKIT_THEME_IGNORE
// to the ignore list.
func ApplyEnv(s *api.Settings) {
	for _, name := range strings.Split(os.Getenv(EnvThemeIgnore), ",") {
		if name = strings.TrimSpace(name); name != "" {
			s.ThemeIgnoreList = append(s.ThemeIgnoreList, name)
		}
	}
}

// Check returns a warning for every icon or colour name that is not in the
// editor's catalogue. Unknown names still load; the editor falls back to a
// default icon for them.
func Check(s api.Settings) []string {
	var warnings []string
	icon := func(where, v string) {
		if v != "" && !icons.Known(v) {
			warnings = append(warnings, fmt.Sprintf("%s: unknown icon %q", where, v))
		}
	}
	color := func(where, v string) {
		if v != "" && !icons.KnownColor(v) {
			warnings = append(warnings, fmt.Sprintf("%s: unknown color %q", where, v))
		}
	}
	icon("overrideIcon", s.OverrideIcon)
	color("overrideColor", s.OverrideColor)
	icon("themeIcon", s.ThemeIcon)
	color("themeColor", s.ThemeColor)
	for _, r := range s.IconRules {
		where := fmt.Sprintf("iconRules[%s]", r.Name)
		if r.Name == "" {
			warnings = append(warnings, "iconRules: rule without a name")
		}
		icon(where, r.Icon)
		color(where, r.Color)
	}
	return warnings
}
