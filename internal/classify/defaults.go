package classify

import "github.com/alexisbeaulieu97/propdeck/internal/schema"

var (
	colorKeywords   = []string{"color", "background"}
	spacingKeywords = []string{"padding", "margin", "gap"}
	borderKeywords  = []string{"border", "radius"}
)

// DefaultRules returns the built-in classification table.
func DefaultRules() Rules {
	return Rules{
		Overrides: Overrides{
			Exact: []NamedEditor{
				{Name: "navigationConfig", Editor: schema.EditorTree},
				{Name: "treeItems", Editor: schema.EditorTree},
				{Name: "tabs", Editor: schema.EditorList},
			},
			Suffixes: []SuffixRule{
				{Suffix: "Icons", Sibling: "Items", Editor: schema.EditorItemIcons},
				{Suffix: "Items", Editor: schema.EditorLabelBadge},
			},
		},
		Identities: []Identity{
			{
				Component: "MusicPlayer",
				ColorKeys: []string{"accentColor", "backgroundColor", "textColor", "progressColor", "buttonColor"},
			},
			{
				Component: "ProfileCard",
				ColorKeys: []string{"backgroundColor", "textColor", "accentColor", "avatarBorderColor", "buttonColor"},
			},
			{
				Component: "LoginForm",
				ColorKeys: []string{
					"backgroundColor", "textColor", "buttonColor", "buttonTextColor",
					"inputBorderColor", "linkColor", "accentColor",
				},
			},
		},
		Categories: defaultCategories(),
		Generic: Generic{
			Elements: []Element{
				{Prefix: "button", Label: "Button"},
				{Prefix: "cta", Label: "CTA"},
				{Prefix: "pill", Label: "Pill"},
				{Prefix: "badge", Label: "Badge"},
				{Prefix: "input", Label: "Input"},
				{Prefix: "card", Label: "Card"},
				{Prefix: "phone", Label: "Phone"},
				{Prefix: "icon", Label: "Icon"},
				{Prefix: "link", Label: "Link"},
				{Prefix: "menu", Label: "Menu"},
			},
			SkipPrefix:      "show",
			MinElementProps: 2,
			NavPrefixes:     []string{"nav", "link", "menu"},
			SubmenuPrefix:   "submenu",
			Buckets: []Bucket{
				{Name: "spacing", Label: "Spacing", Keywords: []string{"padding", "margin", "gap"}},
				{Name: "border", Label: "Border", Keywords: []string{"border"}},
				{Name: "shadow", Label: "Shadow", Keywords: []string{"shadow"}},
				{
					Name:     "typography",
					Label:    "Typography",
					Keywords: []string{"font", "lineheight", "letterspacing"},
					Compounds: []Compound{{
						Keyword: "text",
						With:    []string{"size", "align", "decoration", "transform", "indent", "overflow", "weight", "style"},
					}},
				},
				{Name: "animation", Label: "Animation", Keywords: []string{"transition", "duration", "timing", "ease"}},
				{Name: "layout", Label: "Layout", Keywords: []string{"flex", "justify", "align", "direction"}},
				{
					Name:     "other",
					Label:    "Other",
					Keywords: []string{"color", "background", "gradient", "opacity", "blur", "overlay"},
					Types:    []schema.PropType{schema.TypeColorVariant},
				},
			},
		},
	}
}

func defaultCategories() []Category {
	return []Category{
		{
			Name: "badges",
			Props: []string{
				"text", "label", "variant", "size", "count", "icon", "showIcon", "showDot", "dotColor", "pulse",
				"backgroundColor", "textColor", "borderColor", "borderWidth", "borderRadius",
				"padding", "paddingX", "paddingY", "fontSize", "fontWeight", "shadow",
			},
			Color:   colorKeywords,
			Spacing: spacingKeywords,
			Border:  borderKeywords,
			Style:   []string{"font", "shadow", "size", "pulse", "opacity"},
		},
		{
			Name: "inputs",
			Props: []string{
				"label", "placeholder", "helperText", "errorText", "value", "type", "disabled", "required",
				"icon", "showIcon", "backgroundColor", "textColor", "placeholderColor", "focusColor", "errorColor",
				"borderColor", "borderWidth", "borderRadius", "padding", "paddingX", "paddingY", "height",
				"fontSize", "shadow",
			},
			Color:   colorKeywords,
			Spacing: []string{"padding", "margin", "gap", "height"},
			Border:  borderKeywords,
			Style:   []string{"font", "shadow"},
		},
		{
			Name: "tabs-controls",
			Props: []string{
				"tabs", "activeTab", "activeIndex", "fullWidth", "size", "variant",
				"activeColor", "inactiveColor", "backgroundColor", "indicatorColor", "textColor", "activeTextColor",
				"padding", "gap", "borderRadius", "borderColor", "borderWidth", "fontSize", "fontWeight",
				"shadow", "animationDuration",
			},
			Color:   colorKeywords,
			Spacing: spacingKeywords,
			Border:  borderKeywords,
			Style:   []string{"font", "shadow", "duration", "animation"},
		},
		{
			Name: "sidebars",
			Props: []string{
				"title", "subtitle", "navItems", "navIcons", "treeItems", "activeItem", "collapsed", "expandAll",
				"showFooter", "footerText", "width", "indent",
				"backgroundColor", "textColor", "activeColor", "hoverColor", "accentColor", "iconColor",
				"padding", "itemGap", "itemPadding", "borderColor", "borderWidth", "borderRadius", "shadow", "fontSize",
			},
			Color:   colorKeywords,
			Spacing: []string{"padding", "margin", "gap", "indent"},
			Border:  borderKeywords,
			Style:   []string{"font", "shadow"},
		},
		{
			Name: "tabbars",
			Props: []string{
				"tabItems", "tabIcons", "activeTab", "showLabels", "position",
				"backgroundColor", "activeColor", "inactiveColor", "badgeColor", "textColor",
				"height", "padding", "paddingY", "gap", "borderColor", "borderWidth", "borderRadius",
				"shadow", "blur", "fontSize",
			},
			Color:   colorKeywords,
			Spacing: []string{"padding", "margin", "gap", "height"},
			Border:  borderKeywords,
			Style:   []string{"font", "shadow", "blur"},
		},
		{
			Name: "cards",
			Props: []string{
				"title", "subtitle", "description",
				"planName", "price", "period", "features", "ctaText", "highlighted",
				"name", "role", "avatar", "skills",
				"leftLabel", "rightLabel", "rows",
				"items",
				"location", "temperature", "unit", "condition", "forecast",
				"accentColor", "backgroundColor", "textColor", "mutedColor", "gradient",
				"padding", "gap", "borderRadius", "borderColor", "borderWidth", "shadow", "fontSize", "opacity",
			},
			Color:   []string{"color", "background", "gradient"},
			Spacing: spacingKeywords,
			Border:  borderKeywords,
			Style:   []string{"shadow", "font", "opacity"},
			Splits: []Split{
				{Match: "pricing", Prop: "features", Label: "Features", Editor: schema.EditorList},
				{Match: "skill", Prop: "skills", Label: "Skills", Editor: schema.EditorLabelBadge},
				{Match: "comparison", Prop: "rows", Label: "Rows", Editor: schema.EditorComparisonRows},
				{Match: "roadmap", Prop: "items", Label: "Milestones", Editor: schema.EditorRoadmap},
				{Match: "weather", Prop: "forecast", Label: "Forecast", Editor: schema.EditorForecast},
			},
		},
	}
}
