package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Binck360/blueprint/datepicker"
	"github.com/Binck360/blueprint/datetime"
	"github.com/Binck360/blueprint/theme"
)

// Page IDs used for navigation.
const (
	pageDashboard = "dashboard"
	pageCalendar  = "calendar"
)

// CalendarPage shows the datepicker on its own, outside the date-range
// input's popover.
type CalendarPage struct {
	picker datepicker.Model
	keys   KeyMap

	lastPicked datetime.Date
	width      int
	height     int
}

// NewCalendarPage builds the standalone calendar page.
func NewCalendarPage(cfg Config) *CalendarPage {
	p := datepicker.New(datepicker.WithBounds(cfg.MinDate, cfg.MaxDate))
	p.Focus()
	return &CalendarPage{
		picker: p,
		keys:   DefaultKeyMap(),
	}
}

func (c *CalendarPage) ID() string { return pageCalendar }

func (c *CalendarPage) Init() tea.Cmd { return nil }

func (c *CalendarPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		return nil, nil

	case datepicker.PickedMsg:
		c.lastPicked = msg.Date
		return nil, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keys.Quit):
			return tea.Quit, nil
		case key.Matches(msg, c.keys.Back):
			return nil, &PageNav{PageID: pageDashboard}
		}
		var cmd tea.Cmd
		c.picker, cmd = c.picker.Update(msg)
		return cmd, nil
	}
	return nil, nil
}

func (c *CalendarPage) View(width, height int) string {
	pal := theme.Current()
	title := lipgloss.NewStyle().Foreground(pal.Accent).Bold(true).
		Render("Standalone Calendar")

	readout := lipgloss.NewStyle().Foreground(pal.Muted).
		Render(fmt.Sprintf("Picked: %s", displayDate(c.lastPicked)))

	hints := lipgloss.NewStyle().Foreground(pal.Muted).
		Render(strings.Join([]string{
			"arrows: move", "pgup/pgdn: month", "enter: pick",
			"esc: back to gallery", "q: quit",
		}, " | "))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		c.picker.View(),
		readout,
		hints,
	)
}
