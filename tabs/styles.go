package tabs

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Binck360/blueprint/theme"
)

// Styles holds the lipgloss styles for the widget's parts.
type Styles struct {
	Title         lipgloss.Style
	ActiveTitle   lipgloss.Style
	FocusedTitle  lipgloss.Style
	DisabledTitle lipgloss.Style
	Indicator     lipgloss.Style
	Track         lipgloss.Style // indicator row outside the indicator span
	Panel         lipgloss.Style

	// Gap is the spacing between titles, in cells (horizontal layout only).
	Gap int
}

// DefaultStyles builds styles from the active theme palette.
func DefaultStyles() Styles {
	p := theme.Current()
	return Styles{
		Title:         lipgloss.NewStyle().Foreground(p.Muted),
		ActiveTitle:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		FocusedTitle:  lipgloss.NewStyle().Foreground(p.Text).Underline(true),
		DisabledTitle: lipgloss.NewStyle().Foreground(p.Disabled),
		Indicator:     lipgloss.NewStyle().Foreground(p.Accent),
		Track:         lipgloss.NewStyle().Foreground(p.Border),
		Panel:         lipgloss.NewStyle(),
		Gap:           2,
	}
}
