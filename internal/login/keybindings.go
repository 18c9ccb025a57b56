package login

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/rileyhilliard/simplelogin/internal/ui"
)

// keyMap defines key bindings for the login screen.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Press    key.Binding
	Reveal   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	// Space only presses buttons; inside an input it is a character.
	Press: key.NewBinding(
		key.WithKeys(" "),
	),
	Reveal: ui.TextInputKeys.Reveal,
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Activate, k.Reveal, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
