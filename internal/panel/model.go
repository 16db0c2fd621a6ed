package panel

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/alexisbeaulieu97/propdeck/internal/logger"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// Store is the state the panel edits. UpdateProp is the panel's only write
// path; the returned version lets list editors tell their own writes apart
// from external ones.
type Store interface {
	Value(key string) any
	Version(key string) uint64
	UpdateProp(key string, value any) uint64
}

type mode int

const (
	modeBrowse mode = iota
	modeInput
	modeList
)

// Model is the bubbletea component for the customization panel.
type Model struct {
	store Store
	log   *logger.Logger
	keys  KeyMap

	plan  Plan
	lists map[string]listEditor

	// Focus
	tab    int
	sub    int
	cursor int
	row    int
	col    int

	mode   mode
	input  textinput.Model
	status string
	width  int
}

// New creates an empty panel bound to store.
func New(store Store, log *logger.Logger) Model {
	return Model{
		store: store,
		log:   log,
		keys:  DefaultKeyMap(),
		lists: make(map[string]listEditor),
		input: textinput.New(),
		width: defaultWidth,
	}
}

// Load replaces the panel contents with a new grouping. Focus returns to the
// first field and one list controller is created per specialized key.
func (m *Model) Load(grouping schema.GroupingConfig, props schema.Props) {
	m.plan = BuildPlan(grouping, props)
	m.lists = make(map[string]listEditor)
	m.tab, m.sub, m.cursor, m.row, m.col = 0, 0, 0, 0, 0
	m.mode = modeBrowse
	m.status = ""
	m.input.Blur()

	for _, key := range m.plan.Keys() {
		field, _ := m.plan.Field(key)
		ed, ok := newListEditor(field.Editor, m.encoded(key))
		if !ok {
			continue
		}
		ed.Acknowledge(m.store.Version(key))
		m.lists[key] = ed
	}

	m.log.WithFields(map[string]any{
		"fields": len(m.plan.Keys()),
		"lists":  len(m.lists),
		"tabs":   len(m.plan.Tabs),
	}).Debug("panel loaded")
}

// Sync delivers external updates to every list editor. Editors whose key has
// a newer version than they have seen rebuild from the store's value.
func (m *Model) Sync() {
	rebuilt := 0
	for key, ed := range m.lists {
		if ed.Sync(m.encoded(key), m.store.Version(key)) {
			rebuilt++
		}
	}
	if m.mode == modeList {
		m.clampList()
	}
	if rebuilt > 0 {
		m.log.WithFields(map[string]any{"rebuilt": rebuilt}).Debug("list editors synced")
	}
}

// Plan returns the current render plan.
func (m Model) Plan() Plan {
	return m.plan
}

// KeyMap returns the browse-mode bindings.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Editing reports whether the panel is capturing raw keystrokes.
func (m Model) Editing() bool {
	return m.mode != modeBrowse
}

// Status returns the last edit error, if any.
func (m Model) Status() string {
	return m.status
}

// SetWidth sets the rendering width.
func (m *Model) SetWidth(width int) {
	if width > 0 {
		m.width = width
	}
}

// Focused returns the field under the cursor.
func (m Model) Focused() (FieldPlan, bool) {
	fields := m.visibleFields()
	if m.cursor < 0 || m.cursor >= len(fields) {
		return FieldPlan{}, false
	}
	return fields[m.cursor], true
}

// visibleFields lists the fields on screen in cursor order: the current tab's
// own fields then its current subtab, or every section.
func (m Model) visibleFields() []FieldPlan {
	if len(m.plan.Tabs) == 0 {
		var fields []FieldPlan
		for _, section := range m.plan.Sections {
			fields = append(fields, section.Fields...)
		}
		return fields
	}
	tab := m.plan.Tabs[m.tab]
	fields := append([]FieldPlan(nil), tab.Fields...)
	if tab.ShowSubtabs {
		fields = append(fields, tab.Subtabs[m.sub].Fields...)
	}
	return fields
}

func (m Model) encoded(key string) string {
	return schema.FormatValue(m.store.Value(key))
}

func (m *Model) commit(key string, value any) uint64 {
	version := m.store.UpdateProp(key, value)
	m.status = ""
	m.log.WithFields(map[string]any{"key": key, "version": version}).Debug("prop updated")
	return version
}

// persist writes a list editor's encoding and acknowledges the resulting version.
func (m *Model) persist(key string, ed listEditor, encoded string) {
	ed.Acknowledge(m.commit(key, encoded))
}

func (m *Model) moveCursor(delta int) {
	n := len(m.visibleFields())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) switchTab(delta int) {
	n := len(m.plan.Tabs)
	if n == 0 {
		return
	}
	m.tab = (m.tab + delta + n) % n
	m.sub = 0
	m.cursor = 0
}

func (m *Model) switchSub(delta int) {
	if len(m.plan.Tabs) == 0 {
		return
	}
	n := len(m.plan.Tabs[m.tab].Subtabs)
	if n == 0 {
		return
	}
	m.sub = (m.sub + delta + n) % n
	m.cursor = len(m.plan.Tabs[m.tab].Fields)
}

func (m *Model) activeList() (FieldPlan, listEditor, bool) {
	field, ok := m.Focused()
	if !ok {
		return FieldPlan{}, nil, false
	}
	ed, ok := m.lists[field.Key]
	return field, ed, ok
}

func (m *Model) focusRow(ed listEditor, row Row) {
	rows := ed.Rows()
	idx := indexOfRow(rows, row)
	if idx < 0 {
		idx = m.row
	}
	m.row = idx
	m.col = 0
	m.clampList()
}

func (m *Model) clampList() {
	_, ed, ok := m.activeList()
	if !ok {
		m.mode = modeBrowse
		return
	}
	rows := ed.Rows()
	if m.row >= len(rows) {
		m.row = len(rows) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if fields := ed.Fields(rows[m.row]); m.col >= len(fields) {
		m.col = len(fields) - 1
	}
}
