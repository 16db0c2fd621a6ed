package panel

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the panel's browse-mode bindings. Inline and list editing read
// raw key types so that letters are always typed, never interpreted.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevTab  key.Binding
	NextTab  key.Binding
	PrevSub  key.Binding
	NextSub  key.Binding
	Decrease key.Binding
	Increase key.Binding
	Edit     key.Binding
	Toggle   key.Binding
}

// DefaultKeyMap returns the standard panel bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous prop")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next prop")),
		PrevTab:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous tab")),
		NextTab:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
		PrevSub:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "previous subtab")),
		NextSub:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next subtab")),
		Decrease: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
		Increase: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
		Edit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.NextTab}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.Toggle},
		{k.PrevTab, k.NextTab, k.PrevSub, k.NextSub},
		{k.Decrease, k.Increase},
	}
}
