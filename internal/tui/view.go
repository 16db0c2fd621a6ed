package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/propdeck/internal/preview"
)

// View renders the current state of the model.
func (m Model) View() string {
	header := titleStyle.Render("propdeck")
	if name := m.Selected(); name != "" {
		header = fmt.Sprintf("%s %s", header, subtleStyle.Render("• "+name))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.frame(paneComponents, listWidth).Render(m.renderComponents()),
		m.frame(panePanel, m.columnWidth()).Render(m.panel.View()),
		m.frame(panePreview, m.previewWidth()).Render(m.renderPreview()),
	)

	var footer []string
	if m.status != "" {
		footer = append(footer, statusStyle.Render(m.status))
	}
	if status := m.panel.Status(); status != "" && m.focus == panePanel {
		footer = append(footer, statusStyle.Render(status))
	}
	footer = append(footer, m.help.View(m.helpKeys()))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, strings.Join(footer, "\n"))
}

func (m Model) frame(p pane, width int) lipgloss.Style {
	style := paneStyle
	if m.focus == p {
		style = focusedPaneStyle
	}
	return style.Width(width)
}

func (m Model) renderComponents() string {
	if len(m.names) == 0 {
		return subtleStyle.Render("No components")
	}

	selected := m.Selected()
	lines := make([]string, 0, len(m.names))
	for i, name := range m.names {
		prefix := "  "
		if i == m.cursor && m.focus == paneComponents {
			prefix = cursorStyle.Render("› ")
		}
		if name == selected {
			name = currentStyle.Render(name)
		}
		lines = append(lines, prefix+name)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview() string {
	comp, ok := m.store.Selected()
	if !ok {
		return subtleStyle.Render("Nothing selected")
	}
	return preview.Render(preview.Input{
		Name:     comp.Name,
		Props:    comp.Props,
		Grouping: m.store.Grouping(),
		Values:   m.store.Props(),
	}, m.previewWidth()-paneStyle.GetHorizontalPadding())
}

func (m Model) helpKeys() paneHelp {
	keys := paneHelp{app: m.keys}
	if m.focus == panePanel {
		keys.extra = m.panel.KeyMap().FullHelp()
	}
	return keys
}

// columnWidth is the width given to the panel column.
func (m Model) columnWidth() int {
	if m.width == 0 {
		return panelWidth
	}
	return max(panelWidth, (m.width-listWidth)/2)
}

func (m Model) previewWidth() int {
	if m.width == 0 {
		return minPreviewWidth + 10
	}
	frames := 3 * paneStyle.GetHorizontalBorderSize()
	return max(minPreviewWidth, m.width-listWidth-m.columnWidth()-frames)
}
