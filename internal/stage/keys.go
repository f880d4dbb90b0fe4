package stage

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the player's key bindings.
type KeyMap struct {
	Play  key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings. Reset starts disabled; the
// model enables it only while the reset control is on screen.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		Play: key.NewBinding(
			key.WithKeys("p", "enter", " "),
			key.WithHelp("p/enter", "play"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.Reset.SetEnabled(false)
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Reset},
		{k.Help, k.Quit},
	}
}
