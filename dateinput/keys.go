package dateinput

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the date-range input key bindings. Anything not bound here
// is routed to the active text field (or the calendar while picking).
type KeyMap struct {
	NextField   key.Binding
	PrevField   key.Binding
	Accept      key.Binding
	Dismiss     key.Binding
	OpenPicker  key.Binding
	ClosePicker key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "other boundary"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "other boundary"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "commit and leave"),
		),
		OpenPicker: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "open calendar"),
		),
		ClosePicker: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to text"),
		),
	}
}
