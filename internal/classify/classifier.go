// Package classify buckets a component's props into a navigable GroupingConfig.
//
// Classification is first-match-wins in a fixed precedence: explicit editor
// overrides, component identity overrides, category-scoped tables, and finally
// a keyword heuristic that works for any prop schema. All tables live in Rules.
package classify

import (
	"strings"

	"github.com/alexisbeaulieu97/propdeck/internal/logger"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// Group names and labels emitted by the classifier.
const (
	TabContent    = "content"
	TabStyle      = "style"
	TabComponents = "components"
	TabGeneral    = "general"
	TabColor      = "color"
	TabColors     = "colors"
	TabSpacing    = "spacing"
	TabBorder     = "border"

	SubNavbar  = "navbar"
	SubSubmenu = "submenu"
)

// Path identifies which classification branch produced a grouping.
type Path string

const (
	PathIdentity Path = "identity"
	PathCategory Path = "category"
	PathGeneric  Path = "generic"
)

// Input is one component's prop schema together with its identity hints.
type Input struct {
	Component string
	Category  string
	Props     schema.Props
}

// Classifier turns prop schemas into GroupingConfigs. It holds no mutable state.
type Classifier struct {
	rules Rules
	log   *logger.Logger
}

// New creates a Classifier over rules. A nil logger disables logging.
func New(rules Rules, log *logger.Logger) *Classifier {
	return &Classifier{rules: rules, log: log}
}

// Rules returns the classifier's rule table.
func (c *Classifier) Rules() Rules {
	return c.rules
}

// Classify groups in.Props. It never fails: unmatched props land in Content.
func (c *Classifier) Classify(in Input) schema.GroupingConfig {
	config, path := c.classify(in)
	c.log.WithFields(map[string]any{
		"component": in.Component,
		"category":  in.Category,
		"path":      string(path),
		"props":     len(in.Props),
		"groups":    len(config.Tabs) + len(config.Sections),
	}).Debug("classified props")
	return config
}

// PathFor reports which branch Classify takes for in.
func (c *Classifier) PathFor(in Input) Path {
	if _, ok := c.rules.Identity(in.Component); ok {
		return PathIdentity
	}
	if in.Category != "" {
		if _, ok := c.rules.Category(in.Category); ok {
			return PathCategory
		}
	}
	return PathGeneric
}

func (c *Classifier) classify(in Input) (schema.GroupingConfig, Path) {
	path := c.PathFor(in)
	switch path {
	case PathIdentity:
		id, _ := c.rules.Identity(in.Component)
		return c.byIdentity(id, in.Props), path
	case PathCategory:
		cat, _ := c.rules.Category(in.Category)
		return c.byCategory(cat, in), path
	default:
		return c.generic(in.Props), path
	}
}

// override resolves an explicit editor for name, consulting siblings for paired rules.
func (c *Classifier) override(name string, props schema.Props) (schema.EditorKind, bool) {
	for _, exact := range c.rules.Overrides.Exact {
		if exact.Name == name {
			return exact.Editor, true
		}
	}
	for _, rule := range c.rules.Overrides.Suffixes {
		stem, ok := strings.CutSuffix(name, rule.Suffix)
		if !ok || stem == "" {
			continue
		}
		if rule.Sibling != "" && !props.Has(stem+rule.Sibling) {
			continue
		}
		return rule.Editor, true
	}
	return "", false
}

func (c *Classifier) byIdentity(id Identity, props schema.Props) schema.GroupingConfig {
	colorKeys := make(map[string]struct{}, len(id.ColorKeys))
	for _, key := range id.ColorKeys {
		colorKeys[key] = struct{}{}
	}

	var general, colors []schema.Field
	for _, prop := range props {
		if editor, ok := c.override(prop.Name, props); ok {
			general = append(general, schema.Field{Key: prop.Name, Editor: editor})
			continue
		}
		field := schema.Field{Key: prop.Name, Editor: schema.EditorGeneric}
		if _, ok := colorKeys[prop.Name]; ok {
			colors = append(colors, field)
			continue
		}
		general = append(general, field)
	}

	var b builder
	b.tab(TabGeneral, "General", general)
	b.tab(TabColor, "Color", colors)
	return b.finish(props)
}

func (c *Classifier) byCategory(cat Category, in Input) schema.GroupingConfig {
	canonical := make(map[string]struct{}, len(cat.Props))
	for _, name := range cat.Props {
		canonical[name] = struct{}{}
	}

	component := strings.ToLower(in.Component)
	var content, colors, spacing, border, style []schema.Field
	var splits []schema.Subcategory

	for _, prop := range in.Props {
		if _, ok := canonical[prop.Name]; !ok {
			continue
		}

		if split, ok := matchSplit(cat.Splits, component, prop.Name); ok {
			splits = append(splits, schema.Subcategory{
				Name:   prop.Name,
				Label:  split.Label,
				Fields: []schema.Field{{Key: prop.Name, Editor: split.Editor}},
			})
			continue
		}

		if editor, ok := c.override(prop.Name, in.Props); ok {
			content = append(content, schema.Field{Key: prop.Name, Editor: editor})
			continue
		}

		field := schema.Field{Key: prop.Name, Editor: schema.EditorGeneric}
		lower := strings.ToLower(prop.Name)
		switch {
		case containsAny(lower, cat.Color):
			colors = append(colors, field)
		case containsAny(lower, cat.Spacing):
			spacing = append(spacing, field)
		case containsAny(lower, cat.Border):
			border = append(border, field)
		case containsAny(lower, cat.Style):
			style = append(style, field)
		default:
			content = append(content, field)
		}
	}

	var b builder
	if len(splits) > 0 {
		var subs []schema.Subcategory
		if len(content) > 0 {
			subs = append(subs, schema.Subcategory{Name: TabGeneral, Label: "General", Fields: content})
		}
		subs = append(subs, splits...)
		b.tabWithSubs(TabContent, "Content", subs)
	} else {
		b.tab(TabContent, "Content", content)
	}
	b.tab(TabColors, "Colors", colors)
	b.tab(TabSpacing, "Spacing", spacing)
	b.tab(TabBorder, "Border", border)
	b.tab(TabStyle, "Style", style)
	return b.finish(nil)
}

func matchSplit(splits []Split, component, prop string) (Split, bool) {
	for _, split := range splits {
		if split.Prop == prop && strings.Contains(component, strings.ToLower(split.Match)) {
			return split, true
		}
	}
	return Split{}, false
}

func (c *Classifier) generic(props schema.Props) schema.GroupingConfig {
	g := c.rules.Generic

	elementOf := make(map[string]int, len(props))
	counts := make([]int, len(g.Elements))
	for _, prop := range props {
		if _, ok := c.override(prop.Name, props); ok {
			continue
		}
		if i := g.element(strings.ToLower(prop.Name)); i >= 0 {
			elementOf[prop.Name] = i
			counts[i]++
		}
	}

	var content, navbar, submenu []schema.Field
	elements := make([][]schema.Field, len(g.Elements))
	buckets := make([][]schema.Field, len(g.Buckets))

	for _, prop := range props {
		if editor, ok := c.override(prop.Name, props); ok {
			content = append(content, schema.Field{Key: prop.Name, Editor: editor})
			continue
		}

		field := schema.Field{Key: prop.Name, Editor: schema.EditorGeneric}
		lower := strings.ToLower(prop.Name)

		if i, ok := elementOf[prop.Name]; ok && counts[i] >= g.MinElementProps {
			elements[i] = append(elements[i], field)
			continue
		}
		if g.SubmenuPrefix != "" && strings.HasPrefix(lower, g.SubmenuPrefix) {
			submenu = append(submenu, field)
			continue
		}
		if hasAnyPrefix(lower, g.NavPrefixes) {
			navbar = append(navbar, field)
			continue
		}
		if i := g.bucket(lower, prop.Type); i >= 0 {
			buckets[i] = append(buckets[i], field)
			continue
		}
		content = append(content, field)
	}

	var styleSubs []schema.Subcategory
	for i, bucket := range g.Buckets {
		if len(buckets[i]) > 0 {
			styleSubs = append(styleSubs, schema.Subcategory{Name: bucket.Name, Label: bucket.Label, Fields: buckets[i]})
		}
	}

	var componentSubs []schema.Subcategory
	for i, element := range g.Elements {
		if len(elements[i]) > 0 {
			componentSubs = append(componentSubs, schema.Subcategory{Name: element.Prefix, Label: element.Label, Fields: elements[i]})
		}
	}
	if len(navbar) > 0 {
		componentSubs = append(componentSubs, schema.Subcategory{Name: SubNavbar, Label: "Navbar", Fields: navbar})
	}
	if len(submenu) > 0 {
		componentSubs = append(componentSubs, schema.Subcategory{Name: SubSubmenu, Label: "Submenu", Fields: submenu})
	}

	var b builder
	b.tab(TabContent, "Content", content)
	b.tabWithSubs(TabStyle, "Style", styleSubs)
	b.tabWithSubs(TabComponents, "Components", componentSubs)
	return b.finish(props)
}

// element returns the index of the element whose prefix starts name, or -1.
func (g Generic) element(name string) int {
	if g.SkipPrefix != "" && strings.HasPrefix(name, g.SkipPrefix) {
		return -1
	}
	for i, element := range g.Elements {
		if strings.HasPrefix(name, strings.ToLower(element.Prefix)) {
			return i
		}
	}
	return -1
}

// bucket returns the index of the first style bucket matching name or t, or -1.
func (g Generic) bucket(name string, t schema.PropType) int {
	for i, bucket := range g.Buckets {
		if bucket.matches(name, t) {
			return i
		}
	}
	return -1
}

func (b Bucket) matches(name string, t schema.PropType) bool {
	if containsAny(name, b.Keywords) {
		return true
	}
	for _, compound := range b.Compounds {
		if strings.Contains(name, compound.Keyword) && containsAny(name, compound.With) {
			return true
		}
	}
	for _, typ := range b.Types {
		if typ == t {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// builder assembles tabs, dropping empty ones.
type builder struct {
	tabs []schema.Tab
}

func (b *builder) tab(name, label string, fields []schema.Field) {
	if len(fields) == 0 {
		return
	}
	b.tabs = append(b.tabs, schema.Tab{Name: name, Label: label, Fields: fields})
}

func (b *builder) tabWithSubs(name, label string, subs []schema.Subcategory) {
	if len(subs) == 0 {
		return
	}
	b.tabs = append(b.tabs, schema.Tab{Name: name, Label: label, Subcategories: subs})
}

// finish returns the tabs layout, or a single General section holding every
// prop in fallback when no tab was produced.
func (b *builder) finish(fallback schema.Props) schema.GroupingConfig {
	if len(b.tabs) > 0 {
		return schema.GroupingConfig{Type: schema.LayoutTabs, Tabs: b.tabs}
	}

	fields := make([]schema.Field, 0, len(fallback))
	for _, prop := range fallback {
		fields = append(fields, schema.Field{Key: prop.Name, Editor: schema.EditorGeneric})
	}
	return schema.GroupingConfig{
		Type:     schema.LayoutSections,
		Sections: []schema.Section{{Name: TabGeneral, Label: "General", Fields: fields}},
	}
}
