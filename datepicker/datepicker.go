// Package datepicker implements a month-grid calendar widget. The date-range
// input uses it as popover content; it also works standalone. Picking a day
// is reported through PickedMsg, never by mutating shared state.
package datepicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Binck360/blueprint/datetime"
)

// PickedMsg reports that the user committed the cursor day.
type PickedMsg struct {
	Date datetime.Date
}

// Model holds calendar state: the displayed month, the cursor day, the
// marked value, and the pickable bounds.
type Model struct {
	month  time.Time // first day of the displayed month
	cursor time.Time // focused day, midnight local
	value  datetime.Date

	min, max time.Time
	focused  bool

	keys   KeyMap
	styles Styles
}

// Option configures a Model at construction.
type Option func(*Model)

// WithBounds restricts pickable days to [min, max]. Zero bounds are open.
func WithBounds(min, max time.Time) Option {
	return func(m *Model) {
		m.min = min
		m.max = max
	}
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) Option { return func(m *Model) { m.keys = k } }

// WithStyles replaces the styles.
func WithStyles(s Styles) Option { return func(m *Model) { m.styles = s } }

// New builds a calendar showing the current month with the cursor on today,
// clamped into the bounds.
func New(opts ...Option) Model {
	m := Model{
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		focused: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.setCursor(dayFloor(time.Now()))
	return m
}

// Value returns the marked day.
func (m Model) Value() datetime.Date { return m.value }

// Cursor returns the focused day.
func (m Model) Cursor() time.Time { return m.cursor }

// Month returns the first day of the displayed month.
func (m Model) Month() time.Time { return m.month }

// Focused reports whether the widget receives key events.
func (m Model) Focused() bool { return m.focused }

// Focus enables key handling.
func (m *Model) Focus() { m.focused = true }

// Blur disables key handling.
func (m *Model) Blur() { m.focused = false }

// SetValue marks a day and, when it is a real date, moves the cursor and
// displayed month to it. Null and Invalid only clear the mark.
func (m *Model) SetValue(d datetime.Date) {
	m.value = d
	if d.IsValid() {
		m.setCursor(dayFloor(d.Time()))
	}
}

// SetMonth displays the month containing t without touching value or bounds.
func (m *Model) SetMonth(t time.Time) {
	m.month = monthFloor(t)
	if !sameMonth(m.cursor, m.month) {
		m.setCursor(m.clampToBounds(m.month))
	}
}

func (m *Model) setCursor(day time.Time) {
	m.cursor = m.clampToBounds(day)
	m.month = monthFloor(m.cursor)
}

// clampToBounds pulls a day inside [min, max] when it falls outside.
func (m *Model) clampToBounds(day time.Time) time.Time {
	if !m.min.IsZero() && day.Before(dayFloor(m.min)) {
		return dayFloor(m.min)
	}
	if !m.max.IsZero() && day.After(dayFloor(m.max)) {
		return dayFloor(m.max)
	}
	return day
}

func (m *Model) pickable(day time.Time) bool {
	return datetime.InRange(datetime.Of(day), m.min, m.max)
}

// Update handles host events. Cursor movement never leaves the bounds; a
// blocked move simply stays put and waits for the next input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(keyMsg, m.keys.NextMonth):
		m.shiftMonth(1)
	case key.Matches(keyMsg, m.keys.Pick):
		if m.pickable(m.cursor) {
			picked := datetime.Of(m.cursor)
			m.value = picked
			return m, func() tea.Msg { return PickedMsg{Date: picked} }
		}
	}
	return m, nil
}

func (m *Model) moveCursor(days int) {
	cand := m.cursor.AddDate(0, 0, days)
	if !m.pickable(cand) {
		return
	}
	m.cursor = cand
	m.month = monthFloor(m.cursor)
}

func (m *Model) shiftMonth(months int) {
	cand := m.month.AddDate(0, months, 0)
	day := time.Date(cand.Year(), cand.Month(), m.cursor.Day(), 0, 0, 0, 0, time.Local)
	// Months are shorter than the cursor day sometimes; fall back to the
	// month's last day.
	if day.Month() != cand.Month() {
		day = cand.AddDate(0, 1, -1)
	}
	day = m.clampToBounds(day)
	if !sameMonth(day, cand) {
		return // entire month is out of bounds
	}
	m.cursor = day
	m.month = cand
}

// View renders the month header, weekday row, and day grid.
func (m Model) View() string {
	var b strings.Builder

	header := m.month.Format("January 2006")
	b.WriteString(m.styles.Header.Render(centerText(header, 20)))
	b.WriteString("\n")
	b.WriteString(m.styles.Weekday.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	first := monthFloor(m.month)
	offset := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := dayFloor(time.Now())

	cell := offset
	b.WriteString(strings.Repeat("   ", offset))
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		day := first.AddDate(0, 0, dayNum-1)
		b.WriteString(m.renderDay(day, today))
		cell++
		if cell%7 == 0 && dayNum < daysInMonth {
			b.WriteString("\n")
		} else if dayNum < daysInMonth {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m Model) renderDay(day, today time.Time) string {
	label := fmt.Sprintf("%2d", day.Day())
	switch {
	case m.focused && day.Equal(m.cursor):
		return m.styles.Cursor.Render(label)
	case m.value.IsValid() && m.value.SameDay(datetime.Of(day)):
		return m.styles.Selected.Render(label)
	case !m.pickable(day):
		return m.styles.Disabled.Render(label)
	case day.Equal(today):
		return m.styles.Today.Render(label)
	default:
		return m.styles.Day.Render(label)
	}
}

func centerText(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s
}

func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func monthFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
