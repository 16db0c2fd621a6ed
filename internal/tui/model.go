// Package tui is the interactive playground: a component list, the customize
// panel and a live preview side by side.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/propdeck/internal/catalog"
	"github.com/alexisbeaulieu97/propdeck/internal/logger"
	"github.com/alexisbeaulieu97/propdeck/internal/panel"
	"github.com/alexisbeaulieu97/propdeck/internal/playground"
)

// CatalogReloadedMsg carries the result of a catalog file reload.
type CatalogReloadedMsg struct {
	Catalog *catalog.Catalog
	Err     error
}

type pane int

const (
	paneComponents pane = iota
	panePanel
	panePreview
	paneCount
)

// Model is the root Bubbletea model.
type Model struct {
	store *playground.Store
	panel panel.Model
	log   *logger.Logger
	keys  KeyMap
	help  help.Model

	names  []string
	cursor int
	focus  pane
	status string

	width  int
	height int

	copy func(string) error
}

// Option customises a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copy = fn
	}
}

// NewModel builds the playground around store and selects the first
// component.
func NewModel(store *playground.Store, log *logger.Logger, opts ...Option) Model {
	m := Model{
		store: store,
		panel: panel.New(store, log),
		log:   log,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		names: store.Catalog().Names(),
		copy:  clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.panel.SetWidth(panelWidth - paneStyle.GetHorizontalPadding())

	if len(m.names) > 0 {
		m.selectComponent(0)
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Status returns the footer message.
func (m Model) Status() string {
	return m.status
}

// Selected returns the name of the component being customised.
func (m Model) Selected() string {
	comp, ok := m.store.Selected()
	if !ok {
		return ""
	}
	return comp.Name
}

func (m *Model) selectComponent(index int) {
	if index < 0 || index >= len(m.names) {
		return
	}
	m.cursor = index
	if err := m.store.Select(m.names[index]); err != nil {
		m.log.Error(err, "select component")
		m.status = err.Error()
		return
	}
	m.loadPanel()
}

func (m *Model) loadPanel() {
	comp, ok := m.store.Selected()
	if !ok {
		m.panel.Load(m.store.Grouping(), nil)
		return
	}
	m.panel.Load(m.store.Grouping(), comp.Props)
}

func (m *Model) reload(msg CatalogReloadedMsg) {
	if msg.Err != nil {
		m.status = "Catalog reload failed: " + msg.Err.Error()
		return
	}

	err := m.store.Reload(msg.Catalog)
	m.names = m.store.Catalog().Names()
	m.status = "Catalog reloaded"
	if err != nil {
		m.status = err.Error()
	}

	comp, ok := m.store.Selected()
	if !ok {
		m.cursor = 0
		if len(m.names) > 0 {
			m.selectComponent(0)
			return
		}
		m.loadPanel()
		return
	}
	for i, name := range m.names {
		if name == comp.Name {
			m.cursor = i
		}
	}
	m.loadPanel()
}

func (m *Model) copyCode() {
	if _, ok := m.store.Selected(); !ok {
		return
	}
	if err := m.copy(m.store.Code()); err != nil {
		m.log.Error(err, "copy code")
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = "Copied code to clipboard"
}
