package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Binck360/blueprint/dateinput"
	"github.com/Binck360/blueprint/datetime"
	"github.com/Binck360/blueprint/tabs"
	"github.com/Binck360/blueprint/theme"
)

// Tab IDs on the dashboard's top-level strip.
const (
	tabDateRange = "date-range"
	tabNested    = "nested-tabs"
	tabChart     = "months-chart"
	tabAbout     = "about"
)

// Config carries the widget settings resolved by the binary.
type Config struct {
	Format           string
	MinDate, MaxDate time.Time

	Vertical        bool
	Animate         bool
	ActivePanelOnly bool
}

// focusZone says where key events go: the tab strip, or the active panel's
// content.
type focusZone int

const (
	focusStrip focusZone = iota
	focusPanel
)

// DashboardPage composes the widgets into a demo screen: a top-level tab
// strip whose panels exercise the date-range input, nested tabs, the months
// chart, and a scrollable about page.
type DashboardPage struct {
	cfg  Config
	keys KeyMap

	tabs   tabs.Model
	input  dateinput.Model
	nested tabs.Model
	chart  *rangeChart
	about  viewport.Model
	help   viewport.Model

	zone     focusZone
	showHelp bool

	lastEvent string
	width     int
	height    int
}

// NewDashboard builds the dashboard page from resolved config.
func NewDashboard(cfg Config) *DashboardPage {
	d := &DashboardPage{
		cfg:   cfg,
		keys:  DefaultKeyMap(),
		chart: newRangeChart(cfg.MinDate, cfg.MaxDate),
	}

	d.input = dateinput.New(
		dateinput.WithFormat(cfg.Format),
		dateinput.WithBounds(cfg.MinDate, cfg.MaxDate),
	)

	d.nested = tabs.New([]tabs.Tab{
		{Title: "Overview", Content: tabs.Text(nestedOverviewText)},
		{Title: "Keyboard", Content: tabs.Text(nestedKeyboardText)},
		{Title: "Disabled", Disabled: true, Content: tabs.Text("unreachable")},
	}, tabs.WithVertical())

	d.about = viewport.New(40, 10)
	d.about.SetContent(aboutText)
	d.help = viewport.New(40, 10)
	d.help.SetContent(helpText())

	opts := []tabs.Option{}
	if cfg.Vertical {
		opts = append(opts, tabs.WithVertical())
	}
	if cfg.Animate {
		opts = append(opts, tabs.WithAnimate())
	}
	if cfg.ActivePanelOnly {
		opts = append(opts, tabs.WithRenderActivePanelOnly())
	}
	d.tabs = tabs.New([]tabs.Tab{
		{ID: tabDateRange, Title: "Date Range", Content: tabs.RenderFunc(d.renderDatePanel)},
		{ID: tabNested, Title: "Nested Tabs", Content: tabs.RenderFunc(d.renderNestedPanel)},
		{ID: tabChart, Title: "Months Chart", Content: tabs.RenderFunc(d.renderChartPanel)},
		{ID: tabAbout, Title: "About", Content: tabs.RenderFunc(d.renderAboutPanel)},
	}, opts...)
	d.tabs.Focus()

	return d
}

func (d *DashboardPage) ID() string { return pageDashboard }

func (d *DashboardPage) Init() tea.Cmd { return nil }

func (d *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		d.layout()
		return nil, nil

	case tabs.ChangedMsg:
		d.lastEvent = fmt.Sprintf("selected tab %q", msg.ID)
		if isTopTab(msg.PreviousID) && d.zone == focusPanel {
			// Mouse can switch tabs while a panel holds focus.
			var cmd tea.Cmd
			if d.input.Focused() {
				cmd = d.input.Blur()
			}
			d.leavePanel()
			return cmd, nil
		}
		return nil, nil

	case dateinput.ChangedMsg:
		d.lastEvent = fmt.Sprintf("range changed: %s to %s",
			displayDate(msg.Range.Start), displayDate(msg.Range.End))
		return nil, nil

	case dateinput.ErrorMsg:
		d.lastEvent = fmt.Sprintf("%s boundary rejected (%s)", msg.Boundary, msg.Kind)
		return nil, nil

	case tea.KeyMsg:
		return d.handleKey(msg)

	case tea.MouseMsg:
		// The strip renders one line below the gallery title.
		msg.Y--
		var cmd tea.Cmd
		d.tabs, cmd = d.tabs.Update(msg)
		return cmd, nil
	}

	// Animation frames, mouse events, and picker messages go to every widget
	// that might own them.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	d.tabs, cmd = d.tabs.Update(msg)
	cmds = append(cmds, cmd)
	d.nested, cmd = d.nested.Update(msg)
	cmds = append(cmds, cmd)
	d.input, cmd = d.input.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...), nil
}

func (d *DashboardPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	if d.showHelp {
		switch {
		case key.Matches(msg, d.keys.Help), key.Matches(msg, d.keys.Back),
			key.Matches(msg, d.keys.Quit):
			d.showHelp = false
		default:
			var cmd tea.Cmd
			d.help, cmd = d.help.Update(msg)
			return cmd, nil
		}
		return nil, nil
	}

	if d.zone == focusPanel {
		return d.handlePanelKey(msg)
	}

	switch {
	case key.Matches(msg, d.keys.Quit):
		return tea.Quit, nil
	case key.Matches(msg, d.keys.Help):
		d.showHelp = true
		return nil, nil
	case key.Matches(msg, d.keys.Interact):
		return d.enterPanel(), nil
	case key.Matches(msg, d.keys.Calendar):
		return nil, &PageNav{PageID: pageCalendar}
	}

	var cmd tea.Cmd
	d.tabs, cmd = d.tabs.Update(msg)
	return cmd, nil
}

// enterPanel moves focus from the tab strip into the active panel's content.
func (d *DashboardPage) enterPanel() tea.Cmd {
	d.zone = focusPanel
	d.tabs.Blur()
	switch d.tabs.SelectedID() {
	case tabDateRange:
		return d.input.Focus()
	case tabNested:
		d.nested.Focus()
	}
	return nil
}

// leavePanel hands key routing back to the tab strip.
func (d *DashboardPage) leavePanel() {
	d.zone = focusStrip
	d.nested.Blur()
	d.tabs.Focus()
}

func (d *DashboardPage) handlePanelKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	switch d.tabs.SelectedID() {
	case tabDateRange:
		// The input owns esc (it blurs itself); leave the panel when it does.
		wasFocused := d.input.Focused()
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		if wasFocused && !d.input.Focused() {
			d.leavePanel()
		}
		return cmd, nil

	case tabNested:
		if key.Matches(msg, d.keys.Back) {
			d.leavePanel()
			return nil, nil
		}
		var cmd tea.Cmd
		d.nested, cmd = d.nested.Update(msg)
		return cmd, nil

	case tabAbout:
		if key.Matches(msg, d.keys.Back) {
			d.leavePanel()
			return nil, nil
		}
		var cmd tea.Cmd
		d.about, cmd = d.about.Update(msg)
		return cmd, nil
	}

	if key.Matches(msg, d.keys.Back) {
		d.leavePanel()
	}
	return nil, nil
}

func (d *DashboardPage) layout() {
	// One line of title above the strip, one status line below it.
	d.tabs.SetSize(d.width, d.height-2)

	d.about.Width = clampMin(d.width-6, 20)
	d.about.Height = clampMin(d.height-9, 4)
	d.help.Width = clampMin(d.width-12, 20)
	d.help.Height = clampMin(d.height-10, 4)
}

func (d *DashboardPage) View(width, height int) string {
	if width != d.width || height != d.height {
		d.width = width
		d.height = height
		d.layout()
	}
	if d.showHelp {
		return d.renderHelp(width, height)
	}

	pal := theme.Current()
	title := lipgloss.NewStyle().Foreground(pal.Accent).Bold(true).
		Render("Blueprint Widget Gallery")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		d.tabs.View(),
		d.renderStatusLine(width),
	)
}

func (d *DashboardPage) renderStatusLine(width int) string {
	pal := theme.Current()
	hintStyle := lipgloss.NewStyle().Foreground(pal.Muted)

	var hints []string
	if d.zone == focusStrip {
		hints = []string{"arrows: move", "enter: select", "i: focus panel", "?: help", "q: quit"}
	} else {
		hints = []string{"esc: back to tab bar"}
	}
	left := hintStyle.Render(strings.Join(hints, " | "))

	right := ""
	if d.lastEvent != "" {
		right = hintStyle.Render(d.lastEvent)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (d *DashboardPage) renderDatePanel(width, height int) string {
	pal := theme.Current()
	label := lipgloss.NewStyle().Foreground(pal.Muted)

	r := d.input.Value()
	readout := label.Render(fmt.Sprintf("Committed: %s to %s",
		displayDate(r.Start), displayDate(r.End)))

	hint := label.Render("i: edit fields | tab: other boundary | down: calendar | enter: accept")
	return lipgloss.JoinVertical(lipgloss.Left, d.input.View(), "", readout, hint)
}

func (d *DashboardPage) renderNestedPanel(width, height int) string {
	d.nested.SetSize(width, height)
	return d.nested.View()
}

func (d *DashboardPage) renderChartPanel(width, height int) string {
	return d.chart.render(d.input.Value(), width, height)
}

func (d *DashboardPage) renderAboutPanel(width, height int) string {
	d.about.Width = clampMin(width, 20)
	d.about.Height = clampMin(height, 4)
	return d.about.View()
}

func isTopTab(id string) bool {
	switch id {
	case tabDateRange, tabNested, tabChart, tabAbout:
		return true
	}
	return false
}

func displayDate(v datetime.Date) string {
	if v.IsNull() {
		return "(none)"
	}
	return datetime.Format(v, datetime.DefaultFormat)
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

const nestedOverviewText = `Tabs nest: this panel is itself a vertical tab
strip hosted inside the dashboard's horizontal one. Each strip keeps its own
selection and focus state.`

const nestedKeyboardText = `Up/down move focus along a vertical strip and
wrap past the edges, skipping disabled tabs. Home and end jump to the first
and last enabled tab. Enter or space activates the focused tab.`

const aboutText = `Blueprint widgets for terminal interfaces.

tabs       selectable tab strips with keyboard and mouse navigation,
           an animated selection indicator, and nested-content panels.
dateinput  a two-field date-range input with live validation, bounds
           checking, and a calendar popover.
datepicker the calendar grid behind the popover, usable on its own.

Widgets follow the Bubble Tea composition model: hosts forward messages to
widget Update methods and read state changes off emitted messages.`
