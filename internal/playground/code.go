package playground

import (
	"strings"

	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// RenderCode writes a component as JSX-style source with one prop per line.
// Strings that are safe as attributes are quoted; anything containing a
// newline or quote becomes a template literal so structured values survive
// copy and paste.
func RenderCode(name string, props schema.Props, values schema.PropsMap) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)

	for _, prop := range props {
		value, ok := values[prop.Name]
		if !ok {
			continue
		}
		b.WriteString("\n  ")
		b.WriteString(prop.Name)
		b.WriteString("=")
		b.WriteString(attribute(value))
	}

	if len(props) > 0 {
		b.WriteString("\n")
	} else {
		b.WriteString(" ")
	}
	b.WriteString("/>")
	return b.String()
}

func attribute(value any) string {
	switch v := value.(type) {
	case string:
		if strings.ContainsAny(v, "\n\"") {
			return "{`" + escapeTemplate(v) + "`}"
		}
		return `"` + v + `"`
	case bool, int, int64, float64, float32:
		return "{" + schema.FormatValue(v) + "}"
	default:
		return `"` + schema.FormatValue(v) + `"`
	}
}

func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return strings.ReplaceAll(s, "${", "\\${")
}
