package tabs

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the tab selector key bindings.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
}

// DefaultKeyMap returns arrow-key navigation matching the orientation:
// left/right for a tab row, up/down for a stacked column.
func DefaultKeyMap(vertical bool) KeyMap {
	next, prev := "right", "left"
	if vertical {
		next, prev = "down", "up"
	}
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys(next),
			key.WithHelp(next, "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys(prev),
			key.WithHelp(prev, "previous tab"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first tab"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last tab"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select tab"),
		),
	}
}
