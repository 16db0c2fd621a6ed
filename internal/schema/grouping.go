package schema

import "strings"

// LayoutType selects how a GroupingConfig is presented.
type LayoutType string

const (
	LayoutTabs     LayoutType = "tabs"
	LayoutSections LayoutType = "sections"
)

// EditorKind names the editor a field is rendered with. It is resolved once,
// during grouping, so renderers dispatch on it instead of re-deriving identity.
type EditorKind string

const (
	// EditorGeneric selects an editor from the prop's declared type.
	EditorGeneric        EditorKind = "generic"
	EditorList           EditorKind = "list"
	EditorLabelBadge     EditorKind = "label-badge"
	EditorTree           EditorKind = "tree"
	EditorItemIcons      EditorKind = "item-icons"
	EditorComparisonRows EditorKind = "comparison-rows"
	EditorRoadmap        EditorKind = "roadmap"
	EditorForecast       EditorKind = "forecast"
)

// EditorKinds lists every editor kind.
var EditorKinds = []EditorKind{
	EditorGeneric, EditorList, EditorLabelBadge, EditorTree,
	EditorItemIcons, EditorComparisonRows, EditorRoadmap, EditorForecast,
}

// Specialized reports whether the kind maps to a structured-text list editor.
func (k EditorKind) Specialized() bool {
	return k != "" && k != EditorGeneric
}

// Valid reports whether k is a known editor kind.
func (k EditorKind) Valid() bool {
	for _, known := range EditorKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Field is one prop key inside a group together with its resolved editor.
type Field struct {
	Key    string     `yaml:"key" json:"key" toml:"key" validate:"required"`
	Editor EditorKind `yaml:"editor,omitempty" json:"editor,omitempty" toml:"editor,omitempty" validate:"editor_kind"`
}

// Subcategory is a nested group inside a tab. Sections share the same shape.
type Subcategory struct {
	Name   string  `yaml:"name" json:"name" toml:"name" validate:"required"`
	Label  string  `yaml:"label" json:"label" toml:"label"`
	Fields []Field `yaml:"fields" json:"fields" toml:"fields" validate:"dive"`
}

// Section is a flat group used by the sections layout.
type Section = Subcategory

// Tab is a top-level group. A tab either lists fields directly, has subcategories, or both.
type Tab struct {
	Name          string        `yaml:"name" json:"name" toml:"name" validate:"required"`
	Label         string        `yaml:"label" json:"label" toml:"label"`
	Fields        []Field       `yaml:"fields,omitempty" json:"fields,omitempty" toml:"fields,omitempty" validate:"dive"`
	Subcategories []Subcategory `yaml:"subcategories,omitempty" json:"subcategories,omitempty" toml:"subcategories,omitempty" validate:"dive"`
}

// GroupingConfig is the derived tab/subcategory tree for one component's props.
type GroupingConfig struct {
	Type        LayoutType `yaml:"type" json:"type" toml:"type" validate:"required,oneof=tabs sections"`
	Tabs        []Tab      `yaml:"tabs,omitempty" json:"tabs,omitempty" toml:"tabs,omitempty" validate:"dive"`
	Sections    []Section  `yaml:"sections,omitempty" json:"sections,omitempty" toml:"sections,omitempty" validate:"dive"`
	HiddenProps []string   `yaml:"hiddenProps,omitempty" json:"hiddenProps,omitempty" toml:"hiddenProps,omitempty"`
}

// Keys returns the field keys in order.
func Keys(fields []Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Keys returns every key in the tab, direct fields first, then subcategories in order.
func (t Tab) Keys() []string {
	keys := Keys(t.Fields)
	for _, sub := range t.Subcategories {
		keys = append(keys, Keys(sub.Fields)...)
	}
	return keys
}

// Tab returns the tab called name.
func (g GroupingConfig) Tab(name string) (Tab, bool) {
	for _, tab := range g.Tabs {
		if tab.Name == name {
			return tab, true
		}
	}
	return Tab{}, false
}

// AllKeys lists every key placed in the grouping, in walk order.
func (g GroupingConfig) AllKeys() []string {
	var keys []string
	for _, tab := range g.Tabs {
		keys = append(keys, tab.Keys()...)
	}
	for _, section := range g.Sections {
		keys = append(keys, Keys(section.Fields)...)
	}
	return keys
}

// EditorFor returns the editor kind recorded for key, or EditorGeneric.
func (g GroupingConfig) EditorFor(key string) EditorKind {
	find := func(fields []Field) (EditorKind, bool) {
		for _, f := range fields {
			if f.Key == key {
				if f.Editor == "" {
					return EditorGeneric, true
				}
				return f.Editor, true
			}
		}
		return "", false
	}
	for _, tab := range g.Tabs {
		if kind, ok := find(tab.Fields); ok {
			return kind
		}
		for _, sub := range tab.Subcategories {
			if kind, ok := find(sub.Fields); ok {
				return kind
			}
		}
	}
	for _, section := range g.Sections {
		if kind, ok := find(section.Fields); ok {
			return kind
		}
	}
	return EditorGeneric
}

// IconsSibling returns the items key an item-icons key is paired with, e.g.
// navIcons pairs with navItems.
func IconsSibling(key string) (string, bool) {
	stem, ok := strings.CutSuffix(key, "Icons")
	if !ok || stem == "" {
		return "", false
	}
	return stem + "Items", true
}

// IsHidden reports whether key is listed in HiddenProps.
func (g GroupingConfig) IsHidden(key string) bool {
	for _, hidden := range g.HiddenProps {
		if hidden == key {
			return true
		}
	}
	return false
}
