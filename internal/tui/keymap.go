package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker keybindings on top of the list's own navigation
// and filter keys.
type KeyMap struct {
	Choose key.Binding
	Back   key.Binding // clears an applied filter, otherwise quits
	Quit   key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the list's help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Back, k.Quit}
}
