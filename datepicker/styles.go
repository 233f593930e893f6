package datepicker

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Binck360/blueprint/theme"
)

// Styles holds the lipgloss styles for the calendar's parts.
type Styles struct {
	Header   lipgloss.Style
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Disabled lipgloss.Style
}

// DefaultStyles builds styles from the active theme palette.
func DefaultStyles() Styles {
	p := theme.Current()
	return Styles{
		Header:   lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Weekday:  lipgloss.NewStyle().Foreground(p.Muted),
		Day:      lipgloss.NewStyle().Foreground(p.Text),
		Today:    lipgloss.NewStyle().Foreground(p.Today),
		Selected: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(p.AccentText).Background(p.Accent),
		Disabled: lipgloss.NewStyle().Foreground(p.Disabled),
	}
}
