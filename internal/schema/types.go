package schema

// PropType enumerates the editor-facing types a prop can declare.
type PropType string

const (
	TypeText         PropType = "text"
	TypeTextarea     PropType = "textarea"
	TypeNumber       PropType = "number"
	TypeSlider       PropType = "slider"
	TypeBoolean      PropType = "boolean"
	TypeSelect       PropType = "select"
	TypeColor        PropType = "color"
	TypeColorVariant PropType = "color-variant"
	TypeFile         PropType = "file"
)

// PropTypes lists every supported PropType in declaration order.
var PropTypes = []PropType{
	TypeText, TypeTextarea, TypeNumber, TypeSlider, TypeBoolean,
	TypeSelect, TypeColor, TypeColorVariant, TypeFile,
}

// Valid reports whether t is a known prop type.
func (t PropType) Valid() bool {
	for _, known := range PropTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PropDefinition is the immutable, per-component declaration of a single prop.
type PropDefinition struct {
	Type        PropType `yaml:"type" json:"type" toml:"type" validate:"required,prop_type" jsonschema:"enum=text,enum=textarea,enum=number,enum=slider,enum=boolean,enum=select,enum=color,enum=color-variant,enum=file"`
	Default     any      `yaml:"default,omitempty" json:"default,omitempty" toml:"default,omitempty"`
	Options     []string `yaml:"options,omitempty" json:"options,omitempty" toml:"options,omitempty"`
	Min         *float64 `yaml:"min,omitempty" json:"min,omitempty" toml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty" json:"max,omitempty" toml:"max,omitempty"`
	Step        float64  `yaml:"step,omitempty" json:"step,omitempty" toml:"step,omitempty" validate:"omitempty,gt=0"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
}

// Prop pairs a prop name with its definition.
type Prop struct {
	Name           string `yaml:"name" json:"name" toml:"name" validate:"required,prop_name"`
	PropDefinition `yaml:",inline"`
}

// Props is an ordered prop schema. Order is significant: it decides field order inside every group.
type Props []Prop

// Lookup returns the definition for name.
func (p Props) Lookup(name string) (PropDefinition, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.PropDefinition, true
		}
	}
	return PropDefinition{}, false
}

// Names returns prop names in declaration order.
func (p Props) Names() []string {
	names := make([]string, 0, len(p))
	for _, prop := range p {
		names = append(names, prop.Name)
	}
	return names
}

// Has reports whether a prop called name is declared.
func (p Props) Has(name string) bool {
	_, ok := p.Lookup(name)
	return ok
}

// PropsMap holds the current value of every prop. Values are primitives only:
// string, float64, int or bool.
type PropsMap map[string]any

// Defaults builds a PropsMap from each prop's declared default.
func (p Props) Defaults() PropsMap {
	values := make(PropsMap, len(p))
	for _, prop := range p {
		values[prop.Name] = normalizeDefault(prop.PropDefinition)
	}
	return values
}

// Clone returns a shallow copy; values are primitives so this is a full copy.
func (m PropsMap) Clone() PropsMap {
	out := make(PropsMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// String returns the value for key formatted as a string, or "" when absent.
func (m PropsMap) String(key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return FormatValue(v)
	}
}

func normalizeDefault(def PropDefinition) any {
	switch def.Type {
	case TypeBoolean:
		b, _ := def.Default.(bool)
		return b
	case TypeNumber, TypeSlider:
		if n, ok := ToFloat(def.Default); ok {
			return n
		}
		if def.Min != nil {
			return *def.Min
		}
		return 0.0
	default:
		switch v := def.Default.(type) {
		case nil:
			if def.Type == TypeSelect && len(def.Options) > 0 {
				return def.Options[0]
			}
			return ""
		case string:
			return v
		default:
			return FormatValue(v)
		}
	}
}
