package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/alexisbeaulieu97/propdeck/internal/codec"
	"github.com/alexisbeaulieu97/propdeck/internal/editor"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// View renders the panel.
func (m Model) View() string {
	if len(m.plan.Tabs) == 0 && len(m.plan.Sections) == 0 {
		return emptyStyle.Render("No editable props")
	}

	var sections []string
	index := 0

	if m.plan.ShowTabs {
		tab := m.plan.Tabs[m.tab]
		sections = append(sections, m.renderTabs())
		if tab.ShowSubtabs {
			sections = append(sections, m.renderSubtabs(tab))
		}
		sections = append(sections, m.renderFields(tab.Fields, &index)...)
		if tab.ShowSubtabs {
			sections = append(sections, m.renderFields(tab.Subtabs[m.sub].Fields, &index)...)
		}
	} else {
		for _, section := range m.plan.Sections {
			sections = append(sections, sectionStyle.Render(section.Label))
			sections = append(sections, m.renderFields(section.Fields, &index)...)
		}
	}

	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.plan.Tabs))
	for i, tab := range m.plan.Tabs {
		style := tabStyle
		if i == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(tab.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderSubtabs(tab TabPlan) string {
	subs := make([]string, 0, len(tab.Subtabs))
	for i, sub := range tab.Subtabs {
		style := subtabStyle
		if i == m.sub {
			style = activeSubtabStyle
		}
		subs = append(subs, style.Render(sub.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, subs...)
}

func (m Model) renderFields(fields []FieldPlan, index *int) []string {
	var lines []string
	for _, field := range fields {
		focused := *index == m.cursor
		lines = append(lines, m.renderField(field, focused))
		if focused && m.mode == modeList {
			lines = append(lines, m.renderList(field))
		}
		if field.Separator {
			lines = append(lines, separatorStyle.Render(strings.Repeat("─", m.width)))
		}
		*index++
	}
	return lines
}

func (m Model) renderField(field FieldPlan, focused bool) string {
	marker, label := "  ", labelStyle
	if focused {
		marker, label = "› ", focusedLabelStyle
	}

	var value string
	switch {
	case focused && m.mode == modeInput:
		value = m.input.View()
	case field.Specialized():
		value = valueStyle.Render(summarize(m.encoded(field.Key)))
	default:
		width := m.width - labelWidth - len(marker)
		if width < 4 {
			width = 4
		}
		display := editor.Display(field.Definition, m.store.Value(field.Key))
		value = valueStyle.Render(truncate.StringWithTail(display, uint(width), "…"))
	}

	return marker + label.Render(field.Label) + value
}

func summarize(encoded string) string {
	n := len(codec.DecodeList(encoded))
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}

func (m Model) renderList(field FieldPlan) string {
	ed, ok := m.lists[field.Key]
	if !ok {
		return ""
	}

	labels := m.iconLabels(field)
	var lines []string
	for i, row := range ed.Rows() {
		indent := "    "
		if row.IsChild() {
			indent = "      └ "
		}
		if field.Editor == schema.EditorItemIcons {
			indent += pairLabel(labels, row.Record)
		}

		names := ed.Fields(row)
		cells := make([]string, 0, len(names))
		for j, name := range names {
			text := ed.Get(row, name)
			active := i == m.row && j == m.col
			switch {
			case active:
				cells = append(cells, activeCellStyle.Render(text+"▏"))
			case text == "":
				cells = append(cells, placeholderStyle.Render(name))
			default:
				cells = append(cells, cellStyle.Render(text))
			}
		}
		lines = append(lines, indent+strings.Join(cells, separatorStyle.Render(" : ")))
	}
	return strings.Join(lines, "\n")
}

// iconLabels returns the labels of the items prop an item-icons field is
// paired with. The sibling is read as label:badge records unless the panel
// edits it as a plain list.
func (m Model) iconLabels(field FieldPlan) []string {
	sibling, ok := schema.IconsSibling(field.Key)
	if !ok {
		return nil
	}
	badges := true
	if f, ok := m.plan.Field(sibling); ok {
		badges = f.Editor != schema.EditorList
	}
	return codec.ItemLabels(m.encoded(sibling), badges)
}

func pairLabel(labels []string, i int) string {
	if i < len(labels) {
		return pairStyle.Render(labels[i]) + separatorStyle.Render(" → ")
	}
	return placeholderStyle.Render("no item") + separatorStyle.Render(" → ")
}
