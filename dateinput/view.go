package dateinput

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Binck360/blueprint/datetime"
	"github.com/Binck360/blueprint/theme"
)

// Styles holds the lipgloss styles for the widget's parts.
type Styles struct {
	Field        lipgloss.Style // boundary field box
	FocusedField lipgloss.Style
	ErrorField   lipgloss.Style
	Text         lipgloss.Style
	ErrorText    lipgloss.Style
	Placeholder  lipgloss.Style
	Separator    lipgloss.Style
	Popover      lipgloss.Style
}

// DefaultStyles builds styles from the active theme palette.
func DefaultStyles() Styles {
	p := theme.Current()
	border := lipgloss.RoundedBorder()
	return Styles{
		Field:        lipgloss.NewStyle().Border(border).BorderForeground(p.Border).Padding(0, 1),
		FocusedField: lipgloss.NewStyle().Border(border).BorderForeground(p.Focus).Padding(0, 1),
		ErrorField:   lipgloss.NewStyle().Border(border).BorderForeground(p.Error).Padding(0, 1),
		Text:         lipgloss.NewStyle().Foreground(p.Text),
		ErrorText:    lipgloss.NewStyle().Foreground(p.Error),
		Placeholder:  lipgloss.NewStyle().Foreground(p.Disabled),
		Separator:    lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		Popover:      lipgloss.NewStyle().Border(border).BorderForeground(p.Border).Padding(0, 1),
	}
}

// restyle pushes the current state's styles into the text inputs.
func (m *Model) restyle() {
	for _, b := range [2]datetime.Boundary{datetime.Start, datetime.End} {
		f := m.fieldFor(b)
		f.input.PlaceholderStyle = m.styles.Placeholder
		if f.showingError {
			f.input.TextStyle = m.styles.ErrorText
		} else {
			f.input.TextStyle = m.styles.Text
		}
	}
}

// View renders the two boundary fields and, while editing, the calendar
// popover beneath them.
func (m Model) View() string {
	m.restyle()

	boxes := make([]string, 0, 3)
	for _, b := range [2]datetime.Boundary{datetime.Start, datetime.End} {
		f := m.fieldFor(b)
		box := m.styles.Field
		switch {
		case f.showingError:
			box = m.styles.ErrorField
		case m.focused && m.active == b:
			box = m.styles.FocusedField
		}
		boxes = append(boxes, box.Render(f.input.View()))
		if b == datetime.Start {
			boxes = append(boxes, m.styles.Separator.Render("→"))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, boxes...)

	if !m.popover {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, m.styles.Popover.Render(m.picker.View()))
}
