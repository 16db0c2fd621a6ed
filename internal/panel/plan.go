// Package panel renders a GroupingConfig as an editable customization panel.
//
// BuildPlan turns the grouping and the prop schema into a render plan with
// hidden props removed. Model is the bubbletea component that walks the plan,
// dispatching every field to a generic editor or to a structured list editor
// according to the editor kind resolved during grouping.
package panel

import (
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// Plan is the render plan for one component.
type Plan struct {
	Layout   schema.LayoutType
	ShowTabs bool
	Tabs     []TabPlan
	Sections []GroupPlan
}

// TabPlan is one entry of the tab strip.
type TabPlan struct {
	Name        string
	Label       string
	Fields      []FieldPlan
	Subtabs     []GroupPlan
	ShowSubtabs bool
}

// GroupPlan is a subcategory or section.
type GroupPlan struct {
	Name   string
	Label  string
	Fields []FieldPlan
}

// FieldPlan is one visible prop row.
type FieldPlan struct {
	Key        string
	Label      string
	Editor     schema.EditorKind
	Definition schema.PropDefinition
	// Separator is false for the last visible field of its group.
	Separator bool
}

// Specialized reports whether the field is edited by a structured list editor.
func (f FieldPlan) Specialized() bool {
	return f.Editor.Specialized()
}

// BuildPlan walks config in array order. Hidden props and keys with no
// definition are dropped before separators are computed, and groups left
// without visible fields are omitted.
func BuildPlan(config schema.GroupingConfig, props schema.Props) Plan {
	plan := Plan{Layout: config.Type}

	visible := func(fields []schema.Field) []FieldPlan {
		out := make([]FieldPlan, 0, len(fields))
		for _, f := range fields {
			if config.IsHidden(f.Key) {
				continue
			}
			def, ok := props.Lookup(f.Key)
			if !ok {
				continue
			}
			kind := f.Editor
			if kind == "" {
				kind = schema.EditorGeneric
			}
			out = append(out, FieldPlan{
				Key:        f.Key,
				Label:      Humanize(f.Key),
				Editor:     kind,
				Definition: def,
			})
		}
		for i := range out {
			out[i].Separator = i < len(out)-1
		}
		return out
	}

	for _, tab := range config.Tabs {
		tp := TabPlan{
			Name:   tab.Name,
			Label:  labelOr(tab.Label, tab.Name),
			Fields: visible(tab.Fields),
		}
		for _, sub := range tab.Subcategories {
			fields := visible(sub.Fields)
			if len(fields) == 0 {
				continue
			}
			tp.Subtabs = append(tp.Subtabs, GroupPlan{Name: sub.Name, Label: labelOr(sub.Label, sub.Name), Fields: fields})
		}
		if len(tp.Fields) == 0 && len(tp.Subtabs) == 0 {
			continue
		}
		tp.ShowSubtabs = len(tp.Subtabs) > 0
		plan.Tabs = append(plan.Tabs, tp)
	}

	for _, section := range config.Sections {
		fields := visible(section.Fields)
		if len(fields) == 0 {
			continue
		}
		plan.Sections = append(plan.Sections, GroupPlan{Name: section.Name, Label: labelOr(section.Label, section.Name), Fields: fields})
	}

	plan.ShowTabs = len(plan.Tabs) > 0
	return plan
}

// Keys lists every visible key in render order.
func (p Plan) Keys() []string {
	var keys []string
	add := func(fields []FieldPlan) {
		for _, f := range fields {
			keys = append(keys, f.Key)
		}
	}
	for _, tab := range p.Tabs {
		add(tab.Fields)
		for _, sub := range tab.Subtabs {
			add(sub.Fields)
		}
	}
	for _, section := range p.Sections {
		add(section.Fields)
	}
	return keys
}

// Field finds the plan entry for key.
func (p Plan) Field(key string) (FieldPlan, bool) {
	find := func(fields []FieldPlan) (FieldPlan, bool) {
		for _, f := range fields {
			if f.Key == key {
				return f, true
			}
		}
		return FieldPlan{}, false
	}
	for _, tab := range p.Tabs {
		if f, ok := find(tab.Fields); ok {
			return f, true
		}
		for _, sub := range tab.Subtabs {
			if f, ok := find(sub.Fields); ok {
				return f, true
			}
		}
	}
	for _, section := range p.Sections {
		if f, ok := find(section.Fields); ok {
			return f, true
		}
	}
	return FieldPlan{}, false
}

// Humanize turns a prop key such as backgroundColor into "Background Color".
func Humanize(key string) string {
	var b strings.Builder
	var prev rune
	for i, r := range key {
		switch {
		case r == '_' || r == '-':
			r = ' '
		case i == 0:
			r = unicode.ToUpper(r)
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			b.WriteRune(' ')
		case prev == ' ':
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func labelOr(label, name string) string {
	if strings.TrimSpace(label) != "" {
		return label
	}
	return Humanize(name)
}
