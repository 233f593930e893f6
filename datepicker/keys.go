package datepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the calendar key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Pick      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup", "["),
			key.WithHelp("pgup", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown", "]"),
			key.WithHelp("pgdn", "next month"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick day"),
		),
	}
}
