package gallery

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the gallery's global bindings. Widget-level bindings live in
// the widget packages.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Interact key.Binding
	Back     key.Binding
	Calendar key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Interact: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "focus panel"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to tab bar"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "calendar page"),
		),
	}
}
