package editor

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const lightnessStep = 0.05

// ColorFormat is the textual notation of a color value.
type ColorFormat string

const (
	FormatHex ColorFormat = "hex"
	FormatRGB ColorFormat = "rgb"
	FormatHSL ColorFormat = "hsl"
)

// DetectColorFormat returns the notation value is written in. Unknown values are hex.
func DetectColorFormat(value string) ColorFormat {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(v, "rgb"):
		return FormatRGB
	case strings.HasPrefix(v, "hsl"):
		return FormatHSL
	default:
		return FormatHex
	}
}

// ParseColor accepts #rgb, #rrggbb, rgb(r, g, b) and hsl(h, s%, l%).
func ParseColor(value string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch DetectColorFormat(v) {
	case FormatRGB:
		var r, g, b float64
		if _, err := fmt.Sscanf(compactColor(v), "rgb(%g,%g,%g)", &r, &g, &b); err != nil {
			return colorful.Color{}, fmt.Errorf("parse color %q: %w", value, err)
		}
		return colorful.Color{R: clampUnit(r / 255), G: clampUnit(g / 255), B: clampUnit(b / 255)}, nil
	case FormatHSL:
		var h, s, l float64
		if _, err := fmt.Sscanf(compactColor(v), "hsl(%g,%g%%,%g%%)", &h, &s, &l); err != nil {
			return colorful.Color{}, fmt.Errorf("parse color %q: %w", value, err)
		}
		return colorful.Hsl(math.Mod(h, 360), clampUnit(s/100), clampUnit(l/100)).Clamped(), nil
	default:
		if !strings.HasPrefix(v, "#") {
			v = "#" + v
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("parse color %q: %w", value, err)
		}
		return c, nil
	}
}

// FormatColor writes c in the given notation.
func FormatColor(c colorful.Color, format ColorFormat) string {
	switch format {
	case FormatRGB:
		r, g, b := c.Clamped().RGB255()
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case FormatHSL:
		h, s, l := c.Clamped().Hsl()
		return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
	default:
		return c.Clamped().Hex()
	}
}

// Color parses input in any supported notation and writes it back in the
// notation of current, so a prop keeps the format it was declared with.
func Color(input, current string) (string, error) {
	c, err := ParseColor(input)
	if err != nil {
		return current, err
	}
	return FormatColor(c, DetectColorFormat(current)), nil
}

// Lighten shifts the HSL lightness of value by amount (negative darkens).
func Lighten(value string, amount float64) (string, error) {
	c, err := ParseColor(value)
	if err != nil {
		return value, err
	}
	h, s, l := c.Hsl()
	return FormatColor(colorful.Hsl(h, s, clampUnit(l+amount)), DetectColorFormat(value)), nil
}

func compactColor(v string) string {
	return strings.Join(strings.Fields(v), "")
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
