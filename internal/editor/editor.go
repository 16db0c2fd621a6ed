// Package editor implements the value-in/value-out editors used for props that
// have no specialized list editor. Each editor takes the current value and the
// user's input and returns the value to store.
package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// Inline reports whether props of type t are edited by typing text. Other
// types are changed in place with Adjust.
func Inline(def schema.PropDefinition) bool {
	switch def.Type {
	case schema.TypeBoolean, schema.TypeSelect, schema.TypeSlider:
		return false
	case schema.TypeColorVariant:
		return len(def.Options) == 0
	default:
		return true
	}
}

// Apply converts typed input into the value to store for def.
func Apply(def schema.PropDefinition, current any, input string) (any, error) {
	switch def.Type {
	case schema.TypeTextarea:
		return Textarea(input), nil
	case schema.TypeNumber:
		return Number(def, input), nil
	case schema.TypeSlider:
		return Number(def, input), nil
	case schema.TypeBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(input))
		if err != nil {
			return current, fmt.Errorf("parse boolean: %w", err)
		}
		return b, nil
	case schema.TypeSelect:
		return Select(def.Options, input)
	case schema.TypeColor:
		return Color(input, schema.FormatValue(current))
	case schema.TypeColorVariant:
		if len(def.Options) > 0 {
			return Select(def.Options, input)
		}
		return Text(input), nil
	case schema.TypeFile:
		return File(input)
	default:
		return Text(input), nil
	}
}

// Adjust nudges a value by delta steps: sliders move by Step, toggles flip,
// selects cycle and colors lighten or darken. It reports false for types that
// are only edited inline.
func Adjust(def schema.PropDefinition, current any, delta int) (any, bool) {
	switch def.Type {
	case schema.TypeBoolean:
		return Toggle(current), true
	case schema.TypeSlider, schema.TypeNumber:
		return Slider(def, current, delta), true
	case schema.TypeSelect:
		return Cycle(def.Options, schema.FormatValue(current), delta), true
	case schema.TypeColorVariant:
		if len(def.Options) == 0 {
			return current, false
		}
		return Cycle(def.Options, schema.FormatValue(current), delta), true
	case schema.TypeColor:
		next, err := Lighten(schema.FormatValue(current), float64(delta)*lightnessStep)
		if err != nil {
			return current, false
		}
		return next, true
	default:
		return current, false
	}
}

// Display renders value for a single-line panel row.
func Display(def schema.PropDefinition, value any) string {
	switch def.Type {
	case schema.TypeTextarea:
		return EscapeNewlines(schema.FormatValue(value))
	case schema.TypeBoolean:
		if b, _ := value.(bool); b {
			return "on"
		}
		return "off"
	case schema.TypeFile:
		s := schema.FormatValue(value)
		if strings.HasPrefix(s, "data:") {
			mime, _, _ := strings.Cut(strings.TrimPrefix(s, "data:"), ";")
			return fmt.Sprintf("<%s, %d bytes>", mime, len(s))
		}
		return s
	default:
		return schema.FormatValue(value)
	}
}

// Text returns input unchanged.
func Text(input string) string {
	return input
}

// Textarea turns literal \n sequences typed into a single-line input into newlines.
func Textarea(input string) string {
	return strings.ReplaceAll(input, `\n`, "\n")
}

// EscapeNewlines is the inverse of Textarea, used to seed single-line inputs.
func EscapeNewlines(value string) string {
	return strings.ReplaceAll(strings.ReplaceAll(value, "\r\n", "\n"), "\n", `\n`)
}

// Number parses input, falling back to 0, and clamps it to the prop's range.
func Number(def schema.PropDefinition, input string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	return Clamp(def, n)
}

// Clamp limits n to [Min, Max] where those bounds are declared.
func Clamp(def schema.PropDefinition, n float64) float64 {
	if def.Min != nil && n < *def.Min {
		n = *def.Min
	}
	if def.Max != nil && n > *def.Max {
		n = *def.Max
	}
	return n
}

// Slider moves current by delta steps and clamps the result.
func Slider(def schema.PropDefinition, current any, delta int) float64 {
	step := def.Step
	if step <= 0 {
		step = 1
	}
	n, _ := schema.ToFloat(current)
	n += float64(delta) * step
	// Keep repeated decimal steps from accumulating float noise.
	n = math.Round(n*1e6) / 1e6
	return Clamp(def, n)
}

// Toggle flips a boolean value. Non-boolean values become true.
func Toggle(current any) bool {
	b, _ := current.(bool)
	return !b
}

// Select returns the option matching input, ignoring case.
func Select(options []string, input string) (string, error) {
	input = strings.TrimSpace(input)
	for _, option := range options {
		if strings.EqualFold(option, input) {
			return option, nil
		}
	}
	return "", fmt.Errorf("%q is not one of %s", input, strings.Join(options, ", "))
}

// Cycle returns the option delta positions away from current, wrapping around.
// An unknown current value starts from the first option.
func Cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	index := 0
	for i, option := range options {
		if option == current {
			index = i
			break
		}
	}
	n := len(options)
	return options[((index+delta)%n+n)%n]
}
