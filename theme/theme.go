// Package theme holds the color palette the widgets draw from. Each widget
// package builds its default Styles from the active palette, so swapping the
// skin restyles every widget without touching widget state.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette names the colors widgets use. Values are lipgloss colors, so both
// ANSI-256 indexes and hex strings work.
type Palette struct {
	Accent     lipgloss.Color // selection indicator, active tab, picked day
	AccentText lipgloss.Color // text rendered on top of Accent
	Text       lipgloss.Color
	Muted      lipgloss.Color // inactive titles, weekday header, help text
	Disabled   lipgloss.Color // disabled tabs, out-of-range days
	Border     lipgloss.Color
	Focus      lipgloss.Color // focused field/tab border
	Error      lipgloss.Color
	Today      lipgloss.Color
}

func builtins() map[string]Palette {
	return map[string]Palette{
		"default": {
			Accent:     lipgloss.Color("39"),
			AccentText: lipgloss.Color("231"),
			Text:       lipgloss.Color("252"),
			Muted:      lipgloss.Color("244"),
			Disabled:   lipgloss.Color("238"),
			Border:     lipgloss.Color("240"),
			Focus:      lipgloss.Color("39"),
			Error:      lipgloss.Color("196"),
			Today:      lipgloss.Color("208"),
		},
		"light": {
			Accent:     lipgloss.Color("25"),
			AccentText: lipgloss.Color("231"),
			Text:       lipgloss.Color("235"),
			Muted:      lipgloss.Color("243"),
			Disabled:   lipgloss.Color("250"),
			Border:     lipgloss.Color("248"),
			Focus:      lipgloss.Color("25"),
			Error:      lipgloss.Color("124"),
			Today:      lipgloss.Color("166"),
		},
		"mono": {
			Accent:     lipgloss.Color("255"),
			AccentText: lipgloss.Color("16"),
			Text:       lipgloss.Color("252"),
			Muted:      lipgloss.Color("245"),
			Disabled:   lipgloss.Color("240"),
			Border:     lipgloss.Color("243"),
			Focus:      lipgloss.Color("255"),
			Error:      lipgloss.Color("252"),
			Today:      lipgloss.Color("255"),
		},
	}
}

var current = builtins()["default"]

// Current returns the active palette.
func Current() Palette { return current }

// Set replaces the active palette directly. Mostly useful in tests.
func Set(p Palette) { current = p }
