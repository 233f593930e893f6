// Package dateinput implements a date-range input widget: two free-text
// boundary fields with live parse/validation against a display format and
// min/max bounds, plus a calendar popover for picking days. Committed values
// are reported through ChangedMsg; rejected text is reported through
// ErrorMsg and never raises a Go error.
package dateinput

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Binck360/blueprint/datepicker"
	"github.com/Binck360/blueprint/datetime"
)

// ChangedMsg reports a committed range change.
type ChangedMsg struct {
	Range datetime.Range
}

// ErrorMsg reports rejected boundary text on blur. The offending boundary
// carries the parsed-but-rejected date for out-of-range text, or the Invalid
// sentinel for unparseable text; the other boundary carries its last
// committed value.
type ErrorMsg struct {
	Range    datetime.Range
	Boundary datetime.Boundary
	Kind     datetime.ErrorKind
}

// Default user-facing messages shown in a blurred field holding bad text.
const (
	DefaultInvalidMessage    = "Invalid date"
	DefaultOutOfRangeMessage = "Out of range"
)

type valueSource int

const (
	uncontrolled valueSource = iota
	controlled
)

// mode says where key events go while the widget is focused: the text field,
// or the calendar popover.
type mode int

const (
	modeEdit mode = iota
	modePick
)

// fieldState is one boundary's state: the text input plus the last committed
// value. showingError marks blurred text that is an error message rather
// than a formatted value.
type fieldState struct {
	input        textinput.Model
	value        datetime.Date
	showingError bool
}

// Model holds the date-range input state. Boundary fields live in an
// enum-indexed array; fieldFor is the only way state slots are chosen.
type Model struct {
	fields [2]fieldState

	format        string
	min, max      time.Time
	invalidMsg    string
	outOfRangeMsg string
	source        valueSource

	focused bool
	active  datetime.Boundary // which boundary is being edited while focused
	mode    mode
	picker  datepicker.Model
	popover bool // calendar popover visible
	keys    KeyMap
	styles  Styles
}

// Option configures a Model at construction.
type Option func(*Model)

// WithFormat sets the display format (datetime tokens, e.g. "YYYY-MM-DD").
func WithFormat(format string) Option { return func(m *Model) { m.format = format } }

// WithBounds restricts accepted dates to [min, max], inclusive.
func WithBounds(min, max time.Time) Option {
	return func(m *Model) {
		m.min = min
		m.max = max
	}
}

// WithMessages sets the user-facing text shown in a blurred field whose
// input was rejected.
func WithMessages(invalid, outOfRange string) Option {
	return func(m *Model) {
		m.invalidMsg = invalid
		m.outOfRangeMsg = outOfRange
	}
}

// WithDefaultValue sets the initial committed range.
func WithDefaultValue(r datetime.Range) Option {
	return func(m *Model) { m.applyValue(r) }
}

// Controlled puts the model in controlled mode: edits emit messages but the
// committed range only moves when the owner echoes it back via SetValue.
func Controlled() Option { return func(m *Model) { m.source = controlled } }

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) Option { return func(m *Model) { m.keys = k } }

// WithStyles replaces the styles.
func WithStyles(s Styles) Option { return func(m *Model) { m.styles = s } }

// New builds a date-range input.
func New(opts ...Option) Model {
	m := Model{
		format:        datetime.DefaultFormat,
		invalidMsg:    DefaultInvalidMessage,
		outOfRangeMsg: DefaultOutOfRangeMessage,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
	}
	for i, placeholder := range [2]string{"start", "end"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		m.fields[i] = fieldState{input: ti}
	}
	for _, opt := range opts {
		opt(&m)
	}
	for i := range m.fields {
		m.fields[i].input.Placeholder = m.format
		m.fields[i].input.Width = len(m.format) + 2
		m.fields[i].input.CharLimit = 64
	}
	m.picker = datepicker.New(datepicker.WithBounds(m.min, m.max))
	m.picker.Blur()
	m.restyle()
	return m
}

// fieldFor returns the state slot for a boundary. All boundary dispatch goes
// through here instead of ad hoc index math.
func (m *Model) fieldFor(b datetime.Boundary) *fieldState {
	return &m.fields[b]
}

// Value returns the committed range.
func (m Model) Value() datetime.Range {
	return datetime.Range{
		Start: m.fields[datetime.Start].value,
		End:   m.fields[datetime.End].value,
	}
}

// ActiveBoundary returns the boundary being edited while focused.
func (m Model) ActiveBoundary() datetime.Boundary { return m.active }

// Focused reports whether the widget receives key events.
func (m Model) Focused() bool { return m.focused }

// PopoverOpen reports whether the calendar popover is visible.
func (m Model) PopoverOpen() bool { return m.popover }

// SetValue applies an owner-supplied range. Invalid sentinels are coerced to
// Null; blurred fields re-render their formatted text.
func (m *Model) SetValue(r datetime.Range) {
	m.applyValue(r)
}

func (m *Model) applyValue(r datetime.Range) {
	for _, b := range [2]datetime.Boundary{datetime.Start, datetime.End} {
		d := r.At(b)
		if d.IsInvalid() {
			d = datetime.Null()
		}
		f := m.fieldFor(b)
		f.value = d
		if !(m.focused && m.active == b) {
			f.input.SetValue(datetime.Format(d, m.format))
			f.showingError = false
		}
	}
}

// Focus puts the widget in edit mode on the start boundary.
func (m *Model) Focus() tea.Cmd { return m.FocusBoundary(datetime.Start) }

// FocusBoundary switches the given boundary into edit mode: it seeds the text
// from the committed value's formatted rendering (never from a displayed
// error message) and opens the calendar popover on that value.
func (m *Model) FocusBoundary(b datetime.Boundary) tea.Cmd {
	m.focused = true
	m.mode = modeEdit
	m.active = b

	f := m.fieldFor(b)
	f.input.SetValue(datetime.Format(f.value, m.format))
	f.input.CursorEnd()
	f.showingError = false

	other := m.fieldFor(b.Other())
	other.input.Blur()

	m.popover = true
	m.picker.Blur()
	if f.value.IsValid() {
		m.picker.SetValue(f.value)
	} else {
		m.picker.SetValue(datetime.Null())
		m.picker.SetMonth(time.Now())
	}

	m.restyle()
	return f.input.Focus()
}

// Blur commits the active field and takes the widget out of edit mode.
// The returned command carries the commit's ChangedMsg or ErrorMsg, if any.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	cmd := m.commitActive()
	m.focused = false
	m.popover = false
	m.mode = modeEdit
	m.fieldFor(m.active).input.Blur()
	m.restyle()
	return cmd
}

// Update handles host events.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case datepicker.PickedMsg:
		if !m.popover {
			return m, nil
		}
		return m, m.pickDate(msg.Date)

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.mode == modePick {
			return m.updatePicking(msg)
		}
		return m.updateEditing(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		cmd := m.commitActive()
		focusCmd := m.FocusBoundary(m.active.Other())
		return m, tea.Batch(cmd, focusCmd)

	case key.Matches(msg, m.keys.PrevField):
		cmd := m.commitActive()
		focusCmd := m.FocusBoundary(m.active.Other())
		return m, tea.Batch(cmd, focusCmd)

	case key.Matches(msg, m.keys.Accept):
		return m, m.Blur()

	case key.Matches(msg, m.keys.Dismiss):
		return m, m.Blur()

	case key.Matches(msg, m.keys.OpenPicker):
		m.mode = modePick
		m.picker.Focus()
		return m, nil
	}

	// Everything else edits the active field, re-validating on every change.
	f := m.fieldFor(m.active)
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.liveValidate())
}

func (m Model) updatePicking(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ClosePicker) {
		m.mode = modeEdit
		m.picker.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// liveValidate re-parses the active field's text after a keystroke. Empty
// text resets the boundary immediately; a valid in-range date commits
// immediately; anything else stays as typed with no commit and no message.
func (m *Model) liveValidate() tea.Cmd {
	f := m.fieldFor(m.active)
	text := f.input.Value()

	d, _, ok := datetime.Validate(text, m.format, m.min, m.max)
	if !ok {
		return nil
	}
	if d.IsNull() {
		return m.commit(m.active, datetime.Null())
	}
	m.picker.SetValue(d)
	return m.commit(m.active, d)
}

// commitActive finalizes the active field's text: empty collapses to "no
// date", rejected text swaps in the error message and reports the error
// range, valid text commits.
func (m *Model) commitActive() tea.Cmd {
	f := m.fieldFor(m.active)
	text := f.input.Value()

	d, kind, ok := datetime.Validate(text, m.format, m.min, m.max)
	if ok {
		f.showingError = false
		f.input.SetValue(datetime.Format(d, m.format))
		return m.commit(m.active, d)
	}

	display := m.invalidMsg
	if kind == datetime.OutOfRange {
		display = m.outOfRangeMsg
	}
	f.showingError = true
	f.input.SetValue(display)

	errRange := m.Value().With(m.active, d)
	boundary, k := m.active, kind
	return func() tea.Msg {
		return ErrorMsg{Range: errRange, Boundary: boundary, Kind: k}
	}
}

// commit records a new committed value for a boundary and reports the
// updated range. Unchanged values emit nothing, so re-committing is
// idempotent. Controlled models emit without mutating.
func (m *Model) commit(b datetime.Boundary, d datetime.Date) tea.Cmd {
	f := m.fieldFor(b)
	if sameValue(f.value, d) {
		return nil
	}
	updated := m.Value().With(b, d)
	if m.source == uncontrolled {
		f.value = d
	}
	return func() tea.Msg { return ChangedMsg{Range: updated} }
}

// pickDate commits a calendar pick into the active boundary, reformats the
// field, and closes the popover.
func (m *Model) pickDate(d datetime.Date) tea.Cmd {
	f := m.fieldFor(m.active)
	f.input.SetValue(datetime.Format(d, m.format))
	f.showingError = false
	cmd := m.commit(m.active, d)
	m.mode = modeEdit
	m.popover = false
	m.picker.Blur()
	return cmd
}

func sameValue(a, b datetime.Date) bool {
	switch {
	case a.IsNull():
		return b.IsNull()
	case a.IsInvalid():
		return b.IsInvalid()
	default:
		return b.IsValid() && a.Time().Equal(b.Time())
	}
}
