// Package preview draws a live terminal rendition of the selected component
// from its current props. Structured props are decoded with the same codecs
// the list editors use, so the preview shows exactly what will be exported.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/propdeck/internal/codec"
	"github.com/alexisbeaulieu97/propdeck/internal/editor"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// MinWidth is the narrowest card the renderer will draw.
const MinWidth = 20

// titleKeys are tried in order when picking the card heading.
var titleKeys = []string{"title", "name", "heading", "headline", "planName", "trackTitle", "brand", "label", "location", "text"}

// roadmapColors maps milestone color names to terminal colors.
var roadmapColors = map[string]lipgloss.Color{
	"green":  lipgloss.Color("42"),
	"yellow": lipgloss.Color("226"),
	"amber":  lipgloss.Color("214"),
	"orange": lipgloss.Color("208"),
	"red":    lipgloss.Color("196"),
	"blue":   lipgloss.Color("33"),
	"purple": lipgloss.Color("99"),
	"gray":   lipgloss.Color("245"),
}

// Input is everything the renderer reads.
type Input struct {
	Name     string
	Props    schema.Props
	Grouping schema.GroupingConfig
	Values   schema.PropsMap
}

// Render draws the component as a card of the given total width.
func Render(in Input, width int) string {
	if width < MinWidth {
		width = MinWidth
	}

	theme := ThemeFrom(in.Props, in.Values)
	frame := theme.Apply(Card)
	inner := width - frame.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	titleKey := pickTitle(in.Props, in.Grouping)
	title := in.Name
	if titleKey != "" {
		if v := strings.TrimSpace(in.Values.String(titleKey)); v != "" {
			title = v
		}
	}

	blocks := []string{theme.Apply(Title).Render(wordwrap.String(title, inner))}
	for _, prop := range in.Props {
		if prop.Name == titleKey || in.Grouping.IsHidden(prop.Name) || theme.Consumed(prop.Name) {
			continue
		}
		var block string
		if kind := in.Grouping.EditorFor(prop.Name); kind == schema.EditorItemIcons {
			block = itemIcons(codec.DecodeList(schema.FormatValue(in.Values[prop.Name])), iconLabels(in, prop.Name), theme, inner)
		} else {
			block = renderProp(prop, kind, in.Values[prop.Name], theme, inner)
		}
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	return frame.Width(width - frame.GetHorizontalBorderSize()).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func pickTitle(props schema.Props, grouping schema.GroupingConfig) string {
	for _, key := range titleKeys {
		def, ok := props.Lookup(key)
		if ok && def.Type == schema.TypeText && !grouping.IsHidden(key) {
			return key
		}
	}
	return ""
}

func renderProp(prop schema.Prop, kind schema.EditorKind, value any, theme Theme, width int) string {
	raw := schema.FormatValue(value)

	switch kind {
	case schema.EditorList:
		return bullets(codec.DecodeList(raw), theme, width)
	case schema.EditorLabelBadge:
		return labelBadges(codec.DecodeLabelBadges(raw), theme)
	case schema.EditorTree:
		return tree(codec.DecodeTree(raw), theme)
	case schema.EditorComparisonRows:
		return comparison(codec.DecodeComparisonRows(raw), theme)
	case schema.EditorRoadmap:
		return roadmap(codec.DecodeRoadmap(raw))
	case schema.EditorForecast:
		return forecast(codec.DecodeForecast(raw), theme)
	}

	label := humanLabel(prop.Name)
	muted := theme.Apply(Muted)

	switch prop.Type {
	case schema.TypeText, schema.TypeTextarea:
		if strings.TrimSpace(raw) == "" {
			return ""
		}
		return wordwrap.String(raw, width)
	case schema.TypeBoolean:
		mark := "✗"
		if b, _ := value.(bool); b {
			mark = theme.Apply(Accent).Render("✓")
		}
		return fmt.Sprintf("%s %s", mark, muted.Render(label))
	case schema.TypeColor:
		color, ok := terminalColor(raw)
		if !ok {
			return muted.Render(fmt.Sprintf("%s: %s", label, raw))
		}
		return lipgloss.NewStyle().Foreground(color).Render("■") + " " + muted.Render(fmt.Sprintf("%s %s", label, raw))
	case schema.TypeFile:
		if raw == "" {
			return muted.Render(fmt.Sprintf("[%s]", label))
		}
		return muted.Render(fmt.Sprintf("[%s %s]", label, editor.Display(prop.PropDefinition, value)))
	default:
		return muted.Render(fmt.Sprintf("%s: %s", label, raw))
	}
}

func bullets(items []string, theme Theme, width int) string {
	marker := theme.Apply(Accent).Render("•")
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, marker+" "+wordwrap.String(item, width-2))
	}
	return strings.Join(lines, "\n")
}

// iconLabels reads the labels of the items prop paired with an icons key.
func iconLabels(in Input, key string) []string {
	sibling, ok := schema.IconsSibling(key)
	if !ok {
		return nil
	}
	raw := schema.FormatValue(in.Values[sibling])
	return codec.ItemLabels(raw, in.Grouping.EditorFor(sibling) != schema.EditorList)
}

// itemIcons draws each icon beside the item it belongs to. Icons without a
// matching item are listed on their own.
func itemIcons(icons, labels []string, theme Theme, width int) string {
	if len(icons) == 0 {
		return ""
	}
	icon := theme.Apply(Accent)
	lines := make([]string, 0, len(icons))
	for i, name := range icons {
		line := icon.Render(name)
		if i < len(labels) {
			line += " " + labels[i]
		}
		lines = append(lines, wordwrap.String(line, width))
	}
	return strings.Join(lines, "\n")
}

func labelBadges(records []codec.LabelBadge, theme Theme) string {
	badge := theme.Apply(Accent).Bold(true)
	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := r.Label
		if r.Badge != "" {
			line += " " + badge.Render("("+r.Badge+")")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func tree(nodes []codec.TreeNode, theme Theme) string {
	parent := lipgloss.NewStyle().Bold(true)
	child := theme.Apply(Muted)
	var lines []string
	for _, n := range nodes {
		lines = append(lines, parent.Render(n.Parent))
		for _, c := range n.Children {
			lines = append(lines, child.Render("  └ "+c))
		}
	}
	return strings.Join(lines, "\n")
}

func comparison(rows []codec.ComparisonRow, theme Theme) string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	label := lipgloss.NewStyle().Width(labelWidth + 2)
	accent := theme.Apply(Accent)
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, label.Render(r.Label)+r.Left+" │ "+accent.Render(r.Right))
	}
	return strings.Join(lines, "\n")
}

func roadmap(items []codec.RoadmapItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		color, ok := roadmapColors[strings.ToLower(item.Color)]
		if !ok {
			color = roadmapColors[codec.DefaultRoadmapColor]
		}
		line := lipgloss.NewStyle().Foreground(color).Render("●") + " " + item.Title
		if item.Status != "" {
			line += " (" + item.Status + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func forecast(entries []codec.ForecastEntry, theme Theme) string {
	if len(entries) == 0 {
		return ""
	}
	cell := lipgloss.NewStyle().PaddingRight(2).Align(lipgloss.Center)
	cols := make([]string, 0, len(entries))
	for _, e := range entries {
		cols = append(cols, cell.Render(theme.Apply(Muted).Render(e.Time)+"\n"+fmt.Sprintf("%d°", e.Temp)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// humanLabel splits a camelCase key into lower-case words.
func humanLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
