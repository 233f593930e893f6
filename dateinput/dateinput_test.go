package dateinput

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Binck360/blueprint/datepicker"
	"github.com/Binck360/blueprint/datetime"
)

var (
	min2020 = time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	max2020 = time.Date(2020, 12, 31, 0, 0, 0, 0, time.Local)
)

func newInput(opts ...Option) Model {
	base := []Option{
		WithFormat("YYYY-MM-DD"),
		WithBounds(min2020, max2020),
	}
	return New(append(base, opts...)...)
}

// drain executes a command tree and returns the widget's own messages,
// ignoring cursor-blink and other library plumbing.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
	case ChangedMsg, ErrorMsg:
		out = append(out, msg)
	}
	return out
}

func typeText(t *testing.T, m Model, text string) (Model, []tea.Msg) {
	t.Helper()
	var msgs []tea.Msg
	for _, r := range text {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		msgs = append(msgs, drain(cmd)...)
	}
	return m, msgs
}

func changedMsgs(msgs []tea.Msg) []ChangedMsg {
	var out []ChangedMsg
	for _, msg := range msgs {
		if c, ok := msg.(ChangedMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

func errorMsgs(msgs []tea.Msg) []ErrorMsg {
	var out []ErrorMsg
	for _, msg := range msgs {
		if e, ok := msg.(ErrorMsg); ok {
			out = append(out, e)
		}
	}
	return out
}

func day(y int, mo time.Month, d int) datetime.Date {
	return datetime.Of(time.Date(y, mo, d, 0, 0, 0, 0, time.Local))
}

func TestTypingValidDate_FiresChangedImmediately(t *testing.T) {
	t.Parallel()

	end := day(2020, 8, 1)
	m := newInput(WithDefaultValue(datetime.Range{End: end}))
	drain(m.Focus())

	m, msgs := typeText(t, m, "2020-06-15")
	changes := changedMsgs(msgs)
	if len(changes) == 0 {
		t.Fatal("typing a valid in-range date fired no ChangedMsg")
	}
	last := changes[len(changes)-1].Range
	if !last.Start.SameDay(day(2020, 6, 15)) {
		t.Errorf("start = %v, want 2020-06-15", last.Start)
	}
	if !last.End.SameDay(end) {
		t.Errorf("end = %v, want preserved %v", last.End, end)
	}
	if len(errorMsgs(msgs)) != 0 {
		t.Error("live typing of a valid date fired ErrorMsg")
	}
}

func TestTypingOutOfRange_BlurFiresErrorNotChanged(t *testing.T) {
	t.Parallel()

	end := day(2020, 8, 1)
	m := newInput(WithDefaultValue(datetime.Range{End: end}))
	drain(m.Focus())

	m, msgs := typeText(t, m, "2021-01-01")
	if len(changedMsgs(msgs)) != 0 {
		t.Fatal("out-of-range date fired ChangedMsg while typing")
	}

	blurMsgs := drain(m.Blur())
	errs := errorMsgs(blurMsgs)
	if len(errs) != 1 {
		t.Fatalf("blur fired %d ErrorMsg, want 1", len(errs))
	}
	if len(changedMsgs(blurMsgs)) != 0 {
		t.Error("blur on out-of-range text fired ChangedMsg")
	}

	err := errs[0]
	if err.Kind != datetime.OutOfRange {
		t.Errorf("kind = %v, want OutOfRange", err.Kind)
	}
	if err.Boundary != datetime.Start {
		t.Errorf("boundary = %v, want start", err.Boundary)
	}
	// The offending boundary carries the parsed-but-rejected date.
	if !err.Range.Start.SameDay(day(2021, 1, 1)) {
		t.Errorf("error range start = %v, want the rejected 2021-01-01", err.Range.Start)
	}
	if !err.Range.End.SameDay(end) {
		t.Errorf("error range end = %v, want last valid %v", err.Range.End, end)
	}
}

func TestUnparseableText_BlurCarriesInvalidSentinel(t *testing.T) {
	t.Parallel()

	m := newInput()
	drain(m.Focus())

	m, _ = typeText(t, m, "not a date")
	blurMsgs := drain(m.Blur())
	errs := errorMsgs(blurMsgs)
	if len(errs) != 1 {
		t.Fatalf("blur fired %d ErrorMsg, want 1", len(errs))
	}
	if errs[0].Kind != datetime.ParseFailure {
		t.Errorf("kind = %v, want ParseFailure", errs[0].Kind)
	}
	if !errs[0].Range.Start.IsInvalid() {
		t.Errorf("error range start = %v, want the invalid sentinel", errs[0].Range.Start)
	}

	// The blurred field shows the user-facing message, not the raw text.
	if got := m.fields[datetime.Start].input.Value(); got != DefaultInvalidMessage {
		t.Errorf("blurred field shows %q, want %q", got, DefaultInvalidMessage)
	}
}

func TestClearingField_FiresChangedWithNull(t *testing.T) {
	t.Parallel()

	end := day(2020, 8, 1)
	m := newInput(WithDefaultValue(datetime.Range{Start: day(2020, 6, 15), End: end}))
	drain(m.Focus())

	// Focus seeds the formatted value; delete it all.
	var msgs []tea.Msg
	for i := 0; i < len("2020-06-15"); i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		msgs = append(msgs, drain(cmd)...)
	}

	changes := changedMsgs(msgs)
	if len(changes) != 1 {
		t.Fatalf("clearing fired %d ChangedMsg, want exactly 1", len(changes))
	}
	if !changes[0].Range.Start.IsNull() {
		t.Errorf("start = %v, want null", changes[0].Range.Start)
	}
	if !changes[0].Range.End.SameDay(end) {
		t.Errorf("end = %v, want preserved", changes[0].Range.End)
	}
}

func TestClearingBothSides_DegeneratesToNullNull(t *testing.T) {
	t.Parallel()

	m := newInput(WithDefaultValue(datetime.Range{Start: day(2020, 6, 15)}))
	drain(m.Focus())

	var msgs []tea.Msg
	for i := 0; i < len("2020-06-15"); i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		msgs = append(msgs, drain(cmd)...)
	}
	changes := changedMsgs(msgs)
	if len(changes) != 1 {
		t.Fatalf("got %d ChangedMsg, want 1", len(changes))
	}
	r := changes[0].Range
	if !r.Start.IsNull() || !r.End.IsNull() {
		t.Errorf("range = %v/%v, want null/null", r.Start, r.End)
	}
}

func TestFocus_SeedsFromCommittedValue(t *testing.T) {
	t.Parallel()

	m := newInput(WithDefaultValue(datetime.Range{Start: day(2020, 6, 15)}))
	drain(m.Focus())
	if got := m.fields[datetime.Start].input.Value(); got != "2020-06-15" {
		t.Errorf("focus seeded %q, want formatted committed value", got)
	}

	// After a rejected blur the committed value stands; refocusing seeds the
	// committed value, never the error message.
	m, _ = typeText(t, m, "garbage")
	drain(m.Blur())
	drain(m.FocusBoundary(datetime.Start))
	if got := m.fields[datetime.Start].input.Value(); got != "2020-06-15" {
		t.Errorf("refocus seeded %q, want last committed value", got)
	}
}

func TestBlurredField_ShowsFormattedValue(t *testing.T) {
	t.Parallel()

	m := newInput()
	drain(m.Focus())
	m, _ = typeText(t, m, "2020-06-15")
	drain(m.Blur())

	if got := m.fields[datetime.Start].input.Value(); got != "2020-06-15" {
		t.Errorf("blurred field shows %q, want canonical formatted value", got)
	}
	if m.PopoverOpen() {
		t.Error("popover still open after blur")
	}
}

func TestTab_SwitchesBoundary(t *testing.T) {
	t.Parallel()

	m := newInput()
	drain(m.Focus())
	if got := m.ActiveBoundary(); got != datetime.Start {
		t.Fatalf("initial boundary = %v, want start", got)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	drain(cmd)
	if got := m.ActiveBoundary(); got != datetime.End {
		t.Errorf("boundary after tab = %v, want end", got)
	}
	if !m.Focused() {
		t.Error("tab blurred the widget")
	}
}

func TestPickerPick_CommitsAndCloses(t *testing.T) {
	t.Parallel()

	m := newInput()
	drain(m.Focus())
	if !m.PopoverOpen() {
		t.Fatal("focus did not open the popover")
	}

	picked := day(2020, 6, 15)
	m, cmd := m.Update(datepicker.PickedMsg{Date: picked})
	changes := changedMsgs(drain(cmd))
	if len(changes) != 1 {
		t.Fatalf("pick fired %d ChangedMsg, want 1", len(changes))
	}
	if !changes[0].Range.Start.SameDay(picked) {
		t.Errorf("picked range start = %v, want %v", changes[0].Range.Start, picked)
	}
	if m.PopoverOpen() {
		t.Error("popover still open after pick")
	}
	if got := m.fields[datetime.Start].input.Value(); got != "2020-06-15" {
		t.Errorf("field text = %q, want formatted pick", got)
	}
}

func TestControlled_EmitsWithoutCommitting(t *testing.T) {
	t.Parallel()

	m := newInput(Controlled())
	drain(m.Focus())

	m, msgs := typeText(t, m, "2020-06-15")
	if len(changedMsgs(msgs)) == 0 {
		t.Fatal("controlled model emitted no ChangedMsg")
	}
	if !m.Value().Start.IsNull() {
		t.Errorf("controlled model committed %v", m.Value().Start)
	}

	m.SetValue(datetime.Range{Start: day(2020, 6, 15)})
	if !m.Value().Start.SameDay(day(2020, 6, 15)) {
		t.Error("SetValue did not apply the echoed range")
	}
}

func TestCustomMessages(t *testing.T) {
	t.Parallel()

	m := newInput(WithMessages("bad date", "outside window"))
	drain(m.Focus())
	m, _ = typeText(t, m, "2021-06-15")
	drain(m.Blur())
	if got := m.fields[datetime.Start].input.Value(); got != "outside window" {
		t.Errorf("field shows %q, want custom out-of-range message", got)
	}
}

func TestView_ShowsBothFieldsAndPopover(t *testing.T) {
	t.Parallel()

	m := newInput(WithDefaultValue(datetime.Range{Start: day(2020, 6, 15)}))
	out := m.View()
	if !strings.Contains(out, "2020-06-15") {
		t.Error("view is missing the formatted start value")
	}
	if strings.Contains(out, "June 2020") {
		t.Error("popover rendered while blurred")
	}

	drain(m.Focus())
	out = m.View()
	if !strings.Contains(out, "June 2020") {
		t.Error("focused view is missing the calendar popover")
	}
}
