package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/propdeck/internal/editor"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// Theme is the look of a preview card, derived from the component's own color
// and spacing props.
type Theme struct {
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Accent     lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Padding    int
	Rounded    bool
	Shadow     bool

	// consumed lists the props that went into the theme rather than the body.
	consumed map[string]bool
}

// StyleFunc applies one aspect of a Theme to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

var (
	themeBackground = []string{"backgroundcolor", "background", "gradient"}
	themeForeground = []string{"textcolor", "color"}
	themeAccent     = []string{"accentcolor", "activecolor", "primarycolor", "buttoncolor", "ctacolor", "focuscolor", "positivecolor"}
	themeBorder     = []string{"bordercolor"}
)

// DefaultTheme is used for props a component does not declare.
func DefaultTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("252"),
		Accent:     lipgloss.Color("99"),
		Border:     lipgloss.Color("240"),
		Padding:    1,
		Rounded:    true,
		consumed:   map[string]bool{},
	}
}

// ThemeFrom reads colors, padding, radius and shadow from the prop values.
// Values that do not parse are ignored.
func ThemeFrom(props schema.Props, values schema.PropsMap) Theme {
	theme := DefaultTheme()

	for _, prop := range props {
		name := strings.ToLower(prop.Name)
		value := values[prop.Name]

		switch prop.Type {
		case schema.TypeColor:
			color, ok := terminalColor(schema.FormatValue(value))
			if !ok {
				continue
			}
			switch {
			case matchesAny(name, themeBackground):
				theme.Background = color
			case matchesAny(name, themeAccent):
				theme.Accent = color
			case matchesAny(name, themeBorder):
				theme.Border = color
			case matchesAny(name, themeForeground):
				theme.Foreground = color
			default:
				continue
			}
			theme.consumed[prop.Name] = true
		case schema.TypeNumber, schema.TypeSlider:
			n, ok := schema.ToFloat(value)
			if !ok {
				continue
			}
			switch name {
			case "padding":
				theme.Padding = clampInt(int(n/8), 0, 4)
			case "borderradius":
				theme.Rounded = n > 0
			default:
				continue
			}
			theme.consumed[prop.Name] = true
		case schema.TypeSelect:
			if name == "shadow" {
				theme.Shadow = schema.FormatValue(value) != "none"
				theme.consumed[prop.Name] = true
			}
		}
	}
	return theme
}

// Consumed reports whether key was folded into the theme.
func (t Theme) Consumed(key string) bool {
	return t.consumed[key]
}

func terminalColor(value string) (lipgloss.TerminalColor, bool) {
	c, err := editor.ParseColor(value)
	if err != nil {
		return nil, false
	}
	return lipgloss.Color(c.Clamped().Hex()), true
}

func matchesAny(name string, candidates []string) bool {
	for _, c := range candidates {
		if name == c {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Card frames content with the theme's border, padding and colors.
func Card(base lipgloss.Style, t Theme) lipgloss.Style {
	border := lipgloss.NormalBorder()
	if t.Rounded {
		border = lipgloss.RoundedBorder()
	}
	if t.Shadow {
		border = lipgloss.ThickBorder()
	}
	style := base.
		BorderStyle(border).
		BorderForeground(t.Border).
		Foreground(t.Foreground).
		Padding(t.Padding/2, t.Padding)
	if t.Background != nil {
		style = style.Background(t.Background)
	}
	return style
}

// Title styles the card heading.
func Title(base lipgloss.Style, t Theme) lipgloss.Style {
	return base.Bold(true).Foreground(t.Accent)
}

// Accent highlights badges and markers.
func Accent(base lipgloss.Style, t Theme) lipgloss.Style {
	return base.Foreground(t.Accent)
}

// Muted styles secondary lines.
func Muted(base lipgloss.Style, _ Theme) lipgloss.Style {
	return base.Foreground(lipgloss.Color("245"))
}

// Apply runs fns over a fresh style.
func (t Theme) Apply(fns ...StyleFunc) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, fn := range fns {
		style = fn(style, t)
	}
	return style
}
