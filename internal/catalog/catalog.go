// Package catalog holds the registry of playground components and their prop schemas.
package catalog

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/propdeck/internal/schema"
	propdeckerrors "github.com/alexisbeaulieu97/propdeck/pkg/errors"
)

// Component is one playground entry: a name, an optional category used by the
// classifier, and its ordered prop schema. Grouping, when set, bypasses the
// classifier entirely.
type Component struct {
	Name        string                 `yaml:"name" json:"name" toml:"name" validate:"required" jsonschema:"description=Component identifier used in generated code"`
	Category    string                 `yaml:"category,omitempty" json:"category,omitempty" toml:"category,omitempty" jsonschema:"description=Classifier category such as cards or sidebars"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Props       schema.Props           `yaml:"props" json:"props" toml:"props" validate:"dive"`
	HiddenProps []string               `yaml:"hiddenProps,omitempty" json:"hiddenProps,omitempty" toml:"hiddenProps,omitempty" jsonschema:"description=Props kept in generated code but never shown in the panel"`
	Grouping    *schema.GroupingConfig `yaml:"grouping,omitempty" json:"grouping,omitempty" toml:"grouping,omitempty" jsonschema:"description=Hand-authored grouping that replaces classification"`
}

// Catalog is an ordered set of components.
type Catalog struct {
	Components []Component `yaml:"components" json:"components" toml:"components" validate:"dive"`
}

// Lookup returns the component called name.
func (c *Catalog) Lookup(name string) (Component, bool) {
	if c == nil {
		return Component{}, false
	}
	for _, comp := range c.Components {
		if comp.Name == name {
			return comp, true
		}
	}
	return Component{}, false
}

// Names returns component names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Components))
	for _, comp := range c.Components {
		names = append(names, comp.Name)
	}
	return names
}

// Categories returns the distinct non-empty categories, sorted.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	seen := map[string]struct{}{}
	for _, comp := range c.Components {
		if comp.Category != "" {
			seen[comp.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Validate performs structural and cross-field validation on a catalog.
func Validate(c *Catalog) error {
	if c == nil {
		return propdeckerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := schema.Validator().Struct(c); err != nil {
		return schema.ConvertValidationError(err, "catalog")
	}

	names := make(map[string]struct{}, len(c.Components))
	for i, comp := range c.Components {
		if _, exists := names[comp.Name]; exists {
			return propdeckerrors.NewValidationError(fieldForComponent(i, "name"), fmt.Sprintf("duplicate component %q", comp.Name), nil)
		}
		names[comp.Name] = struct{}{}

		if err := validateComponent(i, comp); err != nil {
			return err
		}
	}

	return nil
}

func validateComponent(index int, comp Component) error {
	props := make(map[string]struct{}, len(comp.Props))
	for j, prop := range comp.Props {
		if _, exists := props[prop.Name]; exists {
			return propdeckerrors.NewValidationError(fieldForProp(index, j, "name"), fmt.Sprintf("duplicate prop %q", prop.Name), nil)
		}
		props[prop.Name] = struct{}{}

		if prop.Type == schema.TypeSelect && len(prop.Options) == 0 {
			return propdeckerrors.NewValidationError(fieldForProp(index, j, "options"), "select props require options", nil)
		}
		if prop.Min != nil && prop.Max != nil && *prop.Min > *prop.Max {
			return propdeckerrors.NewValidationError(fieldForProp(index, j, "min"), fmt.Sprintf("min %v exceeds max %v", *prop.Min, *prop.Max), nil)
		}
	}

	for _, hidden := range comp.HiddenProps {
		if _, ok := props[hidden]; !ok {
			return propdeckerrors.NewValidationError(fieldForComponent(index, "hiddenProps"), fmt.Sprintf("references unknown prop %q", hidden), nil)
		}
	}

	if comp.Grouping != nil {
		for _, key := range comp.Grouping.AllKeys() {
			if _, ok := props[key]; !ok {
				return propdeckerrors.NewValidationError(fieldForComponent(index, "grouping"), fmt.Sprintf("references unknown prop %q", key), nil)
			}
		}
	}

	return nil
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}

func fieldForProp(component, prop int, field string) string {
	return fmt.Sprintf("components[%d].props[%d].%s", component, prop, field)
}
