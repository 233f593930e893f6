package gallery

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Binck360/blueprint/dateinput"
	"github.com/Binck360/blueprint/datepicker"
	"github.com/Binck360/blueprint/datetime"
	"github.com/Binck360/blueprint/tabs"
)

func testConfig() Config {
	return Config{
		Format:  "YYYY-MM-DD",
		MinDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local),
		MaxDate: time.Date(2020, 12, 31, 0, 0, 0, 0, time.Local),
	}
}

func sized(d *DashboardPage) *DashboardPage {
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return d
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewDashboard_StartsOnDateRangeTab(t *testing.T) {
	t.Parallel()

	d := NewDashboard(testConfig())
	if got := d.tabs.SelectedID(); got != tabDateRange {
		t.Errorf("selected = %q, want %q", got, tabDateRange)
	}
	if !d.tabs.Focused() {
		t.Error("tab strip should own focus at startup")
	}
}

func TestDashboard_ViewListsAllTabs(t *testing.T) {
	t.Parallel()

	d := sized(NewDashboard(testConfig()))
	out := d.View(100, 32)
	for _, title := range []string{"Date Range", "Nested Tabs", "Months Chart", "About"} {
		if !strings.Contains(out, title) {
			t.Errorf("view is missing tab title %q", title)
		}
	}
}

func TestDashboard_QuitFromStrip(t *testing.T) {
	t.Parallel()

	d := sized(NewDashboard(testConfig()))
	cmd, _ := d.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit from the tab strip")
	}
}

func TestDashboard_HelpOverlayToggles(t *testing.T) {
	t.Parallel()

	d := sized(NewDashboard(testConfig()))
	d.Update(keyRune('?'))
	if !d.showHelp {
		t.Fatal("? did not open help")
	}
	if out := d.View(100, 32); !strings.Contains(out, "Keys") {
		t.Error("help overlay is missing its header")
	}

	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.showHelp {
		t.Error("esc did not close help")
	}
}

func TestDashboard_InteractFocusesDateFields(t *testing.T) {
	t.Parallel()

	d := sized(NewDashboard(testConfig()))
	d.Update(keyRune('i'))
	if d.zone != focusPanel {
		t.Fatal("i did not move focus into the panel")
	}
	if !d.input.Focused() {
		t.Error("date input not focused")
	}
	if d.tabs.Focused() {
		t.Error("tab strip kept focus")
	}

	// esc blurs the input, which hands focus back to the strip.
	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.input.Focused() {
		t.Error("esc did not blur the date input")
	}
	if d.zone != focusStrip || !d.tabs.Focused() {
		t.Error("focus did not return to the tab strip")
	}
}

func TestDashboard_TabChangeWhilePanelFocused_ReturnsToStrip(t *testing.T) {
	t.Parallel()

	d := sized(NewDashboard(testConfig()))
	d.Update(keyRune('i'))

	d.Update(tabs.ChangedMsg{ID: tabAbout, PreviousID: tabDateRange})
	if d.zone != focusStrip {
		t.Error("tab switch while a panel held focus should return to the strip")
	}
	if d.input.Focused() {
		t.Error("date input stayed focused across a tab switch")
	}
}

func TestDashboard_RangeChangeShowsInStatusLine(t *testing.T) {
	t.Parallel()

	d := sized(NewDashboard(testConfig()))
	r := datetime.Range{
		Start: datetime.Of(time.Date(2020, 6, 15, 0, 0, 0, 0, time.Local)),
	}
	d.Update(dateinput.ChangedMsg{Range: r})

	out := d.View(100, 32)
	if !strings.Contains(out, "2020-06-15") {
		t.Error("status line is missing the changed range")
	}
}

func TestDashboard_ErrorShowsInStatusLine(t *testing.T) {
	t.Parallel()

	d := sized(NewDashboard(testConfig()))
	d.Update(dateinput.ErrorMsg{
		Boundary: datetime.Start,
		Kind:     datetime.OutOfRange,
	})
	if !strings.Contains(d.lastEvent, "rejected") {
		t.Errorf("lastEvent = %q, want a rejection readout", d.lastEvent)
	}
}

func TestApp_RoutesToFirstPage(t *testing.T) {
	t.Parallel()

	d := NewDashboard(testConfig())
	app := NewApp(d, NewCalendarPage(testConfig()))
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 32})

	if out := app.View(); !strings.Contains(out, "Blueprint Widget Gallery") {
		t.Error("app view does not delegate to the dashboard page")
	}
}

func TestApp_NavigatesToCalendarAndBack(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	app := NewApp(NewDashboard(cfg), NewCalendarPage(cfg))
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 32})

	app.Update(keyRune('c'))
	if app.active != pageCalendar {
		t.Fatalf("active page = %q, want %q", app.active, pageCalendar)
	}
	if out := app.View(); !strings.Contains(out, "Standalone Calendar") {
		t.Error("calendar page did not render after navigation")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.active != pageDashboard {
		t.Errorf("active page = %q, want %q after esc", app.active, pageDashboard)
	}
}

func TestApp_UnknownNavTargetIgnored(t *testing.T) {
	t.Parallel()

	app := NewApp(NewDashboard(testConfig()))
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 32})

	// Only the dashboard is registered, so its calendar request goes nowhere.
	app.Update(keyRune('c'))
	if app.active != pageDashboard {
		t.Errorf("active page = %q, want %q", app.active, pageDashboard)
	}
}

func TestCalendarPage_PickReadout(t *testing.T) {
	t.Parallel()

	c := NewCalendarPage(testConfig())
	c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	picked := datetime.Of(time.Date(2020, 6, 15, 0, 0, 0, 0, time.Local))
	c.Update(datepicker.PickedMsg{Date: picked})

	if out := c.View(80, 24); !strings.Contains(out, "2020-06-15") {
		t.Error("calendar readout is missing the picked date")
	}
}

func TestOverlapDays(t *testing.T) {
	t.Parallel()

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}
	tests := []struct {
		name           string
		a1, a2, b1, b2 time.Time
		want           int
	}{
		{"disjoint", day(2020, 6, 1), day(2020, 6, 10), day(2020, 7, 1), day(2020, 7, 31), 0},
		{"contained", day(2020, 6, 5), day(2020, 6, 7), day(2020, 6, 1), day(2020, 6, 30), 3},
		{"straddles month end", day(2020, 6, 29), day(2020, 7, 2), day(2020, 6, 1), day(2020, 6, 30), 2},
		{"single day", day(2020, 6, 15), day(2020, 6, 15), day(2020, 6, 1), day(2020, 6, 30), 1},
	}
	for _, tt := range tests {
		if got := overlapDays(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
			t.Errorf("%s: overlapDays = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	t.Parallel()

	min := time.Date(2020, 1, 15, 0, 0, 0, 0, time.Local)
	max := time.Date(2020, 4, 2, 0, 0, 0, 0, time.Local)
	months := monthsBetween(min, max)
	if len(months) != 4 {
		t.Fatalf("got %d months, want 4", len(months))
	}
	if months[0].Month() != time.January || months[3].Month() != time.April {
		t.Errorf("months span %v to %v, want January to April", months[0], months[3])
	}
}

func TestRangeChart_EmptyRangePrompt(t *testing.T) {
	t.Parallel()

	c := newRangeChart(testConfig().MinDate, testConfig().MaxDate)
	out := c.render(datetime.Range{}, 80, 12)
	if !strings.Contains(out, "Pick a range") {
		t.Error("empty range should render the prompt")
	}
}
