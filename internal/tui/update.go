package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.panel.SetWidth(m.columnWidth() - paneStyle.GetHorizontalPadding())
		return m, nil
	case CatalogReloadedMsg:
		m.reload(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.focus == panePanel {
		return m.forwardToPanel(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// While the panel is editing every key belongs to it.
	if m.focus == panePanel && m.panel.Editing() {
		return m.forwardToPanel(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPane):
		m.focus = (m.focus + 1) % paneCount
		return m, nil
	case key.Matches(msg, m.keys.PrevPane):
		m.focus = (m.focus + paneCount - 1) % paneCount
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.store.Reset()
		m.panel.Sync()
		m.status = "Props reset to defaults"
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyCode()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.focus {
	case paneComponents:
		return m.handleComponentKeys(msg)
	case panePanel:
		return m.forwardToPanel(msg)
	}
	return m, nil
}

func (m Model) handleComponentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.status = ""
		m.selectComponent(m.cursor)
		m.focus = panePanel
	}
	return m, nil
}

func (m Model) forwardToPanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}
