package api

// Settings is the configuration surface of acfkit. JSON names follow the
// editor's flattened settings keys so a workspace settings.json can be read
// as-is; HCL names are used by .hcl config files.
type Settings struct {
	// IconRules decide the icon, colour and type label of each field group.
	IconRules []IconRule `json:"acfJsonTreeView.iconRules,omitempty" hcl:"icon_rule,block"`
	// OverrideIcon replaces the rule icon for files overriding a parent theme.
	OverrideIcon string `json:"acfJsonTreeView.overrideIcon,omitempty" hcl:"override_icon,optional"`
	// OverrideColor is the theme colour used with OverrideIcon.
	OverrideColor string `json:"acfJsonTreeView.overrideColor,omitempty" hcl:"override_color,optional"`
	// ThemeIcon is the icon of theme group nodes.
	ThemeIcon string `json:"acfJsonTreeView.themeIcon,omitempty" hcl:"theme_icon,optional"`
	// ThemeColor is the theme colour of theme group nodes.
	ThemeColor string `json:"acfJsonTreeView.themeColor,omitempty" hcl:"theme_color,optional"`
	// ThemeIgnoreList names theme folders whose field groups are hidden.
	ThemeIgnoreList []string `json:"acfJsonTreeView.themeIgnoreList,omitempty" hcl:"theme_ignore,optional"`
}

// IconRule maps a condition on a field group to its presentation.
type IconRule struct {
	Name      string     `json:"name" hcl:"name,label"`
	Icon      string     `json:"icon,omitempty" hcl:"icon,optional"`
	Color     string     `json:"color,omitempty" hcl:"color,optional"`
	Weight    int        `json:"weight,omitempty" hcl:"weight,optional"`
	Condition *Condition `json:"condition,omitempty" hcl:"condition,block"`
	TypeLabel string     `json:"typeLabel,omitempty" hcl:"type_label,optional"`
}

// Condition is a small predicate over a field group. Every part that is set
// must hold.
type Condition struct {
	// TitleContains matches a case-insensitive substring of the title.
	TitleContains string `json:"titleContains,omitempty" hcl:"title_contains,optional"`
	// LocationParam matches any location rule whose param equals it.
	LocationParam string `json:"locationParam,omitempty" hcl:"location_param,optional"`
	// And holds when every child holds.
	And []Condition `json:"and,omitempty" hcl:"and,block"`
	// Or holds when any child holds.
	Or []Condition `json:"or,omitempty" hcl:"or,block"`
}
