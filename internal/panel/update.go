package panel

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/propdeck/internal/editor"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// Update handles a message routed to the panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.mode {
	case modeInput:
		return m.handleInputKeys(keyMsg)
	case modeList:
		return m.handleListKeys(keyMsg)
	default:
		return m.handleBrowseKeys(keyMsg)
	}
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
	case key.Matches(msg, m.keys.PrevSub):
		m.switchSub(-1)
	case key.Matches(msg, m.keys.NextSub):
		m.switchSub(1)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Increase), key.Matches(msg, m.keys.Toggle):
		m.adjust(1)
	case key.Matches(msg, m.keys.Edit):
		return m.edit()
	}
	return m, nil
}

func (m *Model) adjust(delta int) {
	field, ok := m.Focused()
	if !ok || field.Specialized() {
		return
	}
	next, ok := editor.Adjust(field.Definition, m.store.Value(field.Key), delta)
	if !ok {
		return
	}
	m.commit(field.Key, next)
}

func (m Model) edit() (Model, tea.Cmd) {
	field, ok := m.Focused()
	if !ok {
		return m, nil
	}

	if field.Specialized() {
		ed, ok := m.lists[field.Key]
		if !ok {
			return m, nil
		}
		ed.Sync(m.encoded(field.Key), m.store.Version(field.Key))
		m.mode = modeList
		m.row, m.col = 0, 0
		return m, nil
	}

	if !editor.Inline(field.Definition) {
		m.adjust(1)
		return m, nil
	}

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.SetValue(seed(field, m.store.Value(field.Key)))
	m.input.CursorEnd()
	m.mode = modeInput
	cmd := m.input.Focus()
	return m, cmd
}

// seed is the text an inline input starts from.
func seed(field FieldPlan, value any) string {
	if field.Definition.Type == schema.TypeFile {
		return ""
	}
	return editor.Display(field.Definition, value)
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		field, ok := m.Focused()
		if !ok {
			m.mode = modeBrowse
			return m, nil
		}
		value, err := editor.Apply(field.Definition, m.store.Value(field.Key), m.input.Value())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.commit(field.Key, value)
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.status = ""
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	field, ed, ok := m.activeList()
	if !ok {
		m.mode = modeBrowse
		return m, nil
	}
	m.clampList()
	rows := ed.Rows()
	row := rows[m.row]
	fields := ed.Fields(row)
	name := fields[m.col]

	switch msg.Type {
	case tea.KeyEsc:
		m.persist(field.Key, ed, ed.Commit())
		m.mode = modeBrowse
	case tea.KeyUp:
		if m.row > 0 {
			m.row--
		}
		m.clampList()
	case tea.KeyDown:
		if m.row < len(rows)-1 {
			m.row++
		}
		m.clampList()
	case tea.KeyTab:
		m.col = (m.col + 1) % len(fields)
	case tea.KeyShiftTab:
		m.col = (m.col - 1 + len(fields)) % len(fields)
	case tea.KeyEnter:
		focus, _ := ed.Enter(row)
		m.focusRow(ed, focus)
	case tea.KeyBackspace:
		current := ed.Get(row, name)
		if current == "" {
			// Only an empty primary field removes its row; other columns stay put.
			if m.col > 0 {
				break
			}
			focus, encoded, removed := ed.Backspace(row)
			if removed {
				m.persist(field.Key, ed, encoded)
				m.focusRow(ed, focus)
			}
			break
		}
		runes := []rune(current)
		m.persist(field.Key, ed, ed.Set(row, name, string(runes[:len(runes)-1])))
	case tea.KeySpace:
		m.persist(field.Key, ed, ed.Set(row, name, ed.Get(row, name)+" "))
	case tea.KeyRunes:
		m.persist(field.Key, ed, ed.Set(row, name, ed.Get(row, name)+string(msg.Runes)))
	}
	return m, nil
}
