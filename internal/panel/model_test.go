package panel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/propdeck/internal/logger"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

type fakeStore struct {
	values   schema.PropsMap
	versions map[string]uint64
	clock    uint64
	writes   int
}

func newFakeStore(values schema.PropsMap) *fakeStore {
	s := &fakeStore{values: values, versions: map[string]uint64{}, clock: 1}
	for key := range values {
		s.versions[key] = s.clock
	}
	return s
}

func (s *fakeStore) Value(key string) any      { return s.values[key] }
func (s *fakeStore) Version(key string) uint64 { return s.versions[key] }

func (s *fakeStore) UpdateProp(key string, value any) uint64 {
	s.values[key] = value
	s.clock++
	s.versions[key] = s.clock
	s.writes++
	return s.clock
}

func fixtureProps() schema.Props {
	lo, hi := 0.0, 64.0
	return schema.Props{
		{Name: "title", PropDefinition: schema.PropDefinition{Type: schema.TypeText}},
		{Name: "highlighted", PropDefinition: schema.PropDefinition{Type: schema.TypeBoolean}},
		{Name: "secret", PropDefinition: schema.PropDefinition{Type: schema.TypeText}},
		{Name: "features", PropDefinition: schema.PropDefinition{Type: schema.TypeTextarea}},
		{Name: "navItems", PropDefinition: schema.PropDefinition{Type: schema.TypeTextarea}},
		{Name: "treeItems", PropDefinition: schema.PropDefinition{Type: schema.TypeTextarea}},
		{Name: "padding", PropDefinition: schema.PropDefinition{Type: schema.TypeNumber, Min: &lo, Max: &hi}},
		{Name: "accentColor", PropDefinition: schema.PropDefinition{Type: schema.TypeColor}},
	}
}

func fixtureGrouping() schema.GroupingConfig {
	return schema.GroupingConfig{
		Type: schema.LayoutTabs,
		Tabs: []schema.Tab{
			{Name: "content", Label: "Content", Subcategories: []schema.Subcategory{
				{Name: "general", Label: "General", Fields: fields("title", "highlighted", "secret")},
				{Name: "lists", Label: "Lists", Fields: []schema.Field{
					{Key: "features", Editor: schema.EditorList},
					{Key: "navItems", Editor: schema.EditorLabelBadge},
					{Key: "treeItems", Editor: schema.EditorTree},
				}},
			}},
			{Name: "style", Label: "Style", Fields: fields("padding", "accentColor")},
		},
		HiddenProps: []string{"secret"},
	}
}

func newTestPanel(t *testing.T) (Model, *fakeStore) {
	t.Helper()

	store := newFakeStore(schema.PropsMap{
		"title":       "Hello",
		"highlighted": false,
		"secret":      "x",
		"features":    "A\nB",
		"navItems":    "Dashboard\nMessages:3",
		"treeItems":   "Favorites:Airdrop",
		"padding":     24.0,
		"accentColor": "#000000",
	})
	m := New(store, logger.Nop())
	m.Load(fixtureGrouping(), fixtureProps())
	return m, store
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyTab       = tea.KeyMsg{Type: tea.KeyTab}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keySpace     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyClearLine = tea.KeyMsg{Type: tea.KeyCtrlU}
	keyLeft      = tea.KeyMsg{Type: tea.KeyLeft}
)

func focusedKey(t *testing.T, m Model) string {
	t.Helper()
	field, ok := m.Focused()
	require.True(t, ok)
	return field.Key
}

func TestLoadCreatesControllersForSpecializedKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestPanel(t)
	require.Len(t, m.lists, 3)
	require.Contains(t, m.lists, "features")
	require.Contains(t, m.lists, "navItems")
	require.Contains(t, m.lists, "treeItems")
	require.Equal(t, "title", focusedKey(t, m))
}

func TestBrowseNavigation(t *testing.T) {
	t.Parallel()

	m, _ := newTestPanel(t)

	m = press(m, keyDown)
	require.Equal(t, "highlighted", focusedKey(t, m))
	m = press(m, keyDown)
	require.Equal(t, "title", focusedKey(t, m), "hidden secret is skipped and the cursor wraps")

	m = press(m, runes("}"))
	require.Equal(t, "features", focusedKey(t, m))

	m = press(m, runes("]"))
	require.Equal(t, "padding", focusedKey(t, m))
	m = press(m, runes("]"))
	require.Equal(t, "title", focusedKey(t, m))
}

func TestToggleAndAdjust(t *testing.T) {
	t.Parallel()

	m, store := newTestPanel(t)

	m = press(m, keyDown, keySpace)
	require.Equal(t, true, store.Value("highlighted"))
	m = press(m, keyEnter)
	require.Equal(t, false, store.Value("highlighted"), "enter adjusts non-inline fields")
	require.False(t, m.Editing())

	m = press(m, runes("]"), keyLeft)
	require.Equal(t, 23.0, store.Value("padding"))
}

func TestInlineTextEdit(t *testing.T) {
	t.Parallel()

	m, store := newTestPanel(t)

	m = press(m, keyEnter)
	require.True(t, m.Editing())
	m = press(m, keyClearLine, runes("Hi there"), keyEnter)

	require.False(t, m.Editing())
	require.Equal(t, "Hi there", store.Value("title"))
}

func TestInlineNumberIsClamped(t *testing.T) {
	t.Parallel()

	m, store := newTestPanel(t)

	m = press(m, runes("]"), keyEnter, keyClearLine, runes("100"), keyEnter)
	require.Equal(t, 64.0, store.Value("padding"))
}

func TestInlineErrorKeepsEditing(t *testing.T) {
	t.Parallel()

	m, store := newTestPanel(t)

	m = press(m, runes("]"), keyDown, keyEnter, keyClearLine, runes("nope"), keyEnter)
	require.True(t, m.Editing())
	require.NotEmpty(t, m.Status())
	require.Equal(t, "#000000", store.Value("accentColor"))

	m = press(m, keyEsc)
	require.False(t, m.Editing())
	require.Empty(t, m.Status())
}

func TestListEditing(t *testing.T) {
	t.Parallel()

	m, store := newTestPanel(t)

	m = press(m, runes("}"), keyEnter)
	require.True(t, m.Editing())
	require.Len(t, m.lists["features"].Rows(), 3)

	m = press(m, keyDown, keyDown, runes("C"))
	require.Equal(t, "A\nB\nC", store.Value("features"))

	m.Sync()
	require.Len(t, m.lists["features"].Rows(), 3, "own writes do not rebuild the display list")

	m = press(m, keyEnter, runes("D"))
	require.Equal(t, "A\nB\nC\nD", store.Value("features"))

	m = press(m, keyBackspace)
	require.Equal(t, "A\nB\nC", store.Value("features"))

	m = press(m, keyBackspace)
	require.Equal(t, "A\nB\nC", store.Value("features"))
	require.Len(t, m.lists["features"].Rows(), 4)
	require.Equal(t, 2, m.row)

	m = press(m, keyEsc)
	require.False(t, m.Editing())
	require.Equal(t, "A\nB\nC", store.Value("features"))
}

func TestListEditorSyncsExternalUpdates(t *testing.T) {
	t.Parallel()

	m, store := newTestPanel(t)

	store.UpdateProp("features", "X")
	m.Sync()

	rows := m.lists["features"].Rows()
	require.Len(t, rows, 2)
	require.Equal(t, "X", m.lists["features"].Get(rows[0], "value"))
}

func TestLabelBadgeEditing(t *testing.T) {
	t.Parallel()

	m, store := newTestPanel(t)

	m = press(m, runes("}"), keyDown, keyEnter, keyTab, runes("5"))
	require.Equal(t, "Dashboard:5\nMessages:3", store.Value("navItems"))

	m = press(m, keyBackspace, keyBackspace)
	require.Equal(t, "Dashboard\nMessages:3", store.Value("navItems"))
	require.Equal(t, 1, m.col, "backspace on an empty badge stays in the badge column")

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, keyBackspace)
	require.Equal(t, "Dashboar\nMessages:3", store.Value("navItems"))
}

func TestTreeEditing(t *testing.T) {
	t.Parallel()

	m, store := newTestPanel(t)

	m = press(m, runes("}"), keyDown, keyDown, keyEnter)
	rows := m.lists["treeItems"].Rows()
	require.Equal(t, []Row{{Record: 0, Child: -1}, {Record: 0, Child: 0}, {Record: 0, Child: 1}, {Record: 1, Child: -1}}, rows)

	m = press(m, keyDown, keyDown, runes("Recents"))
	require.Equal(t, "Favorites:Airdrop,Recents", store.Value("treeItems"))

	m = press(m, keyEnter)
	require.Len(t, m.lists["treeItems"].Rows(), 5)
	require.Equal(t, Row{Record: 0, Child: 2}, m.lists["treeItems"].Rows()[m.row])
}

func TestViewHidesHiddenProps(t *testing.T) {
	t.Parallel()

	m, _ := newTestPanel(t)
	view := m.View()

	require.Contains(t, view, "Content")
	require.Contains(t, view, "Style")
	require.Contains(t, view, "General")
	require.Contains(t, view, "Title")
	require.Contains(t, view, "Hello")
	require.NotContains(t, view, "Secret")
}

func TestViewListMode(t *testing.T) {
	t.Parallel()

	m, _ := newTestPanel(t)
	m = press(m, runes("}"))
	require.Contains(t, m.View(), "2 entries")

	m = press(m, keyEnter)
	view := m.View()
	require.Contains(t, view, "A")
	require.Contains(t, view, "B")
}

func TestEmptyPanel(t *testing.T) {
	t.Parallel()

	m := New(newFakeStore(schema.PropsMap{}), logger.Nop())
	m.Load(schema.GroupingConfig{Type: schema.LayoutSections}, nil)

	_, ok := m.Focused()
	require.False(t, ok)
	m = press(m, keyEnter, keyDown, runes("]"))
	require.False(t, m.Editing())
	require.Contains(t, m.View(), "No editable props")
}
