package classify

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/propdeck/internal/schema"
	propdeckerrors "github.com/alexisbeaulieu97/propdeck/pkg/errors"
)

// Rules is the complete, data-only classification table. DefaultRules returns
// the built-in table; a rules file can extend or replace parts of it.
type Rules struct {
	Overrides  Overrides  `yaml:"overrides"`
	Identities []Identity `yaml:"identities,omitempty" validate:"dive"`
	Categories []Category `yaml:"categories,omitempty" validate:"dive"`
	Generic    Generic    `yaml:"generic"`
}

// Overrides route props straight to a specialized editor.
type Overrides struct {
	// Exact names win over suffix rules.
	Exact []NamedEditor `yaml:"exact,omitempty" validate:"dive"`
	// Suffixes are tested in order after exact names.
	Suffixes []SuffixRule `yaml:"suffixes,omitempty" validate:"dive"`
}

// NamedEditor assigns an editor to one prop name.
type NamedEditor struct {
	Name   string            `yaml:"name" validate:"required"`
	Editor schema.EditorKind `yaml:"editor" validate:"required,editor_kind"`
}

// SuffixRule assigns an editor to names ending in Suffix. When Sibling is set
// the rule only applies if a prop named stem+Sibling also exists.
type SuffixRule struct {
	Suffix  string            `yaml:"suffix" validate:"required"`
	Sibling string            `yaml:"sibling,omitempty"`
	Editor  schema.EditorKind `yaml:"editor" validate:"required,editor_kind"`
}

// Identity hand-splits one component into General and Color tabs.
type Identity struct {
	Component string   `yaml:"component" validate:"required"`
	ColorKeys []string `yaml:"colorKeys" validate:"min=1"`
}

// Category drives the category-scoped path. Only Props are kept; keyword lists
// are tested in the order color, spacing, border, style.
type Category struct {
	Name    string   `yaml:"name" validate:"required"`
	Props   []string `yaml:"props" validate:"min=1"`
	Color   []string `yaml:"color,omitempty"`
	Spacing []string `yaml:"spacing,omitempty"`
	Border  []string `yaml:"border,omitempty"`
	Style   []string `yaml:"style,omitempty"`
	Splits  []Split  `yaml:"splits,omitempty" validate:"dive"`
}

// Split isolates one list-valued prop of matching components into its own
// Content subcategory. Match is a case-insensitive substring of the component name.
type Split struct {
	Match  string            `yaml:"match" validate:"required"`
	Prop   string            `yaml:"prop" validate:"required"`
	Label  string            `yaml:"label" validate:"required"`
	Editor schema.EditorKind `yaml:"editor" validate:"required,editor_kind"`
}

// Generic configures the fallback path used for every other component.
type Generic struct {
	Elements []Element `yaml:"elements,omitempty" validate:"dive"`
	// SkipPrefix exempts names from element routing, e.g. showIcon.
	SkipPrefix string `yaml:"skipPrefix,omitempty"`
	// MinElementProps is how many props must share an element prefix before
	// the element gets its own Components subgroup.
	MinElementProps int      `yaml:"minElementProps,omitempty" validate:"gte=0"`
	NavPrefixes     []string `yaml:"navPrefixes,omitempty"`
	SubmenuPrefix   string   `yaml:"submenuPrefix,omitempty"`
	Buckets         []Bucket `yaml:"buckets,omitempty" validate:"dive"`
}

// Element is a prefix-matched component part such as a button.
type Element struct {
	Prefix string `yaml:"prefix" validate:"required"`
	Label  string `yaml:"label" validate:"required"`
}

// Bucket is one Style subcategory. A lower-cased prop name matches when it
// contains any keyword, satisfies a compound, or the prop declares one of Types.
type Bucket struct {
	Name      string            `yaml:"name" validate:"required"`
	Label     string            `yaml:"label" validate:"required"`
	Keywords  []string          `yaml:"keywords,omitempty"`
	Compounds []Compound        `yaml:"compounds,omitempty" validate:"dive"`
	Types     []schema.PropType `yaml:"types,omitempty" validate:"dive,prop_type"`
}

// Compound matches names containing Keyword together with any of With.
type Compound struct {
	Keyword string   `yaml:"keyword" validate:"required"`
	With    []string `yaml:"with" validate:"min=1"`
}

// LoadRules reads a YAML rules file and merges it over DefaultRules.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, propdeckerrors.NewParseError(path, 0, err)
	}
	return ParseRules(path, data)
}

// ParseRules decodes YAML rules and merges them over DefaultRules.
func ParseRules(path string, data []byte) (Rules, error) {
	var override Rules
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Rules{}, propdeckerrors.NewYAMLParseError(path, err)
	}

	merged := DefaultRules().Merge(override)
	if err := ValidateRules(merged); err != nil {
		return Rules{}, err
	}
	return merged, nil
}

// ValidateRules checks a rule table for structural errors.
func ValidateRules(r Rules) error {
	if err := schema.Validator().Struct(r); err != nil {
		return schema.ConvertValidationError(err, "rules")
	}
	return nil
}

// Merge returns r with o layered on top. Identities and categories replace
// entries of the same name and append new ones; non-empty generic settings
// and override lists replace the defaults wholesale.
func (r Rules) Merge(o Rules) Rules {
	out := r.clone()

	if len(o.Overrides.Exact) > 0 {
		out.Overrides.Exact = append([]NamedEditor(nil), o.Overrides.Exact...)
	}
	if len(o.Overrides.Suffixes) > 0 {
		out.Overrides.Suffixes = append([]SuffixRule(nil), o.Overrides.Suffixes...)
	}

	for _, id := range o.Identities {
		if i := indexOf(out.Identities, func(x Identity) bool { return x.Component == id.Component }); i >= 0 {
			out.Identities[i] = id
			continue
		}
		out.Identities = append(out.Identities, id)
	}

	for _, cat := range o.Categories {
		if i := indexOf(out.Categories, func(x Category) bool { return x.Name == cat.Name }); i >= 0 {
			out.Categories[i] = cat
			continue
		}
		out.Categories = append(out.Categories, cat)
	}

	g := o.Generic
	if len(g.Elements) > 0 {
		out.Generic.Elements = g.Elements
	}
	if g.SkipPrefix != "" {
		out.Generic.SkipPrefix = g.SkipPrefix
	}
	if g.MinElementProps > 0 {
		out.Generic.MinElementProps = g.MinElementProps
	}
	if len(g.NavPrefixes) > 0 {
		out.Generic.NavPrefixes = g.NavPrefixes
	}
	if g.SubmenuPrefix != "" {
		out.Generic.SubmenuPrefix = g.SubmenuPrefix
	}
	if len(g.Buckets) > 0 {
		out.Generic.Buckets = g.Buckets
	}

	return out
}

// Identity returns the identity override for component.
func (r Rules) Identity(component string) (Identity, bool) {
	i := indexOf(r.Identities, func(x Identity) bool { return x.Component == component })
	if i < 0 {
		return Identity{}, false
	}
	return r.Identities[i], true
}

// Category returns the category rule called name.
func (r Rules) Category(name string) (Category, bool) {
	i := indexOf(r.Categories, func(x Category) bool { return x.Name == name })
	if i < 0 {
		return Category{}, false
	}
	return r.Categories[i], true
}

func (r Rules) clone() Rules {
	out := r
	out.Overrides.Exact = append([]NamedEditor(nil), r.Overrides.Exact...)
	out.Overrides.Suffixes = append([]SuffixRule(nil), r.Overrides.Suffixes...)
	out.Identities = append([]Identity(nil), r.Identities...)
	out.Categories = append([]Category(nil), r.Categories...)
	out.Generic.Elements = append([]Element(nil), r.Generic.Elements...)
	out.Generic.NavPrefixes = append([]string(nil), r.Generic.NavPrefixes...)
	out.Generic.Buckets = append([]Bucket(nil), r.Generic.Buckets...)
	return out
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
