package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-level bindings. Panel bindings are reported by
// the panel itself and appended to the help footer when it has focus.
type KeyMap struct {
	NextPane key.Binding
	PrevPane key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Reset    key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard application bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous pane")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset props")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy code")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Select, k.Reset, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPane, k.PrevPane, k.Up, k.Down, k.Select},
		{k.Reset, k.Copy, k.Help, k.Quit},
	}
}

// paneHelp merges the application bindings with the focused panel's.
type paneHelp struct {
	app   KeyMap
	extra [][]key.Binding
}

func (p paneHelp) ShortHelp() []key.Binding {
	return p.app.ShortHelp()
}

func (p paneHelp) FullHelp() [][]key.Binding {
	return append(p.app.FullHelp(), p.extra...)
}
