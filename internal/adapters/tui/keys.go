package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the builder screen.
type KeyMap struct {
	Start key.Binding
	Stop  key.Binding
	More  key.Binding
	Fewer key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start")),
		Stop:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		More:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more lines")),
		Fewer: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer lines")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.More, k.Fewer, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
