// Package tabs implements a tab selector widget: a row (or column) of
// clickable titles, a sliding selection indicator, and a panel area showing
// the active tab's content. Selection state lives here; rendering of panel
// content is delegated through the Renderable interface so the widget never
// depends on what the panels contain.
package tabs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gosimple/slug"
)

// Renderable produces panel content for the given area.
type Renderable interface {
	Render(width, height int) string
}

// RenderFunc adapts a function to the Renderable interface.
type RenderFunc func(width, height int) string

func (f RenderFunc) Render(width, height int) string { return f(width, height) }

// Text is a fixed-string panel content.
type Text string

func (t Text) Render(_, _ int) string { return string(t) }

// Tab is one declared tab. Disabled tabs are rendered but cannot be selected
// or reached by keyboard focus.
type Tab struct {
	ID       string
	Title    string
	Disabled bool
	Content  Renderable
}

// ChangedMsg reports a committed selection change. It is emitted exactly once
// per actual change; re-selecting the current tab emits nothing.
type ChangedMsg struct {
	ID         string
	PreviousID string
}

// valueSource tells whether the owner supplies the selected value (controlled)
// or the widget manages it internally (uncontrolled). Resolved once per
// update, never branched on ad hoc at call sites.
type valueSource int

const (
	uncontrolled valueSource = iota
	controlled
)

// Model holds tab selection and keyboard focus state.
type Model struct {
	tabs       []Tab
	selectedID string // "" = none
	focusedID  string // keyboard focus among titles; "" when no enabled tab
	source     valueSource

	vertical        bool
	animate         bool
	activePanelOnly bool
	focused         bool

	keys   KeyMap
	styles Styles
	ind    indicator

	width  int
	height int
}

// Option configures a Model at construction.
type Option func(*Model)

// WithVertical stacks titles in a column instead of a row.
func WithVertical() Option { return func(m *Model) { m.vertical = true } }

// WithAnimate makes the selection indicator slide between titles.
func WithAnimate() Option { return func(m *Model) { m.animate = true } }

// WithRenderActivePanelOnly sizes the panel area to the active tab only.
// When unset the panel area reserves the maximum height over all tabs so the
// layout stays stable across selection changes.
func WithRenderActivePanelOnly() Option { return func(m *Model) { m.activePanelOnly = true } }

// WithDefaultSelected overrides the initial selection. Unknown or disabled
// IDs fall back to the first enabled tab.
func WithDefaultSelected(id string) Option {
	return func(m *Model) {
		if t, ok := m.tab(id); ok && !t.Disabled {
			m.selectedID = id
		}
	}
}

// Controlled puts the model in controlled mode: Select emits ChangedMsg but
// never mutates the selection; the owner echoes the value back via SetValue.
func Controlled() Option { return func(m *Model) { m.source = controlled } }

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) Option { return func(m *Model) { m.keys = k } }

// WithStyles replaces the styles.
func WithStyles(s Styles) Option { return func(m *Model) { m.styles = s } }

// New builds a tab selector. Tabs with an empty ID get one derived from their
// title; duplicate IDs are suffixed to stay unique. The first enabled tab is
// selected by default.
func New(declared []Tab, opts ...Option) Model {
	m := Model{
		tabs:    assignIDs(declared),
		focused: true,
		styles:  DefaultStyles(),
	}
	m.selectedID = m.firstEnabledID()

	for _, opt := range opts {
		opt(&m)
	}
	if m.keys.Next.Keys() == nil {
		m.keys = DefaultKeyMap(m.vertical)
	}
	m.focusedID = m.selectedID
	if m.focusedID == "" {
		m.focusedID = m.firstEnabledID()
	}
	m.retargetIndicator(true)
	return m
}

func assignIDs(declared []Tab) []Tab {
	out := append([]Tab(nil), declared...)
	seen := make(map[string]bool, len(out))
	for i := range out {
		id := out[i].ID
		if id == "" {
			id = slug.Make(out[i].Title)
		}
		base := id
		for n := 2; seen[id]; n++ {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		seen[id] = true
		out[i].ID = id
	}
	return out
}

func (m *Model) tab(id string) (Tab, bool) {
	for _, t := range m.tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

func (m *Model) firstEnabledID() string {
	for _, t := range m.tabs {
		if !t.Disabled {
			return t.ID
		}
	}
	return ""
}

// Tabs returns the declared tabs in order.
func (m Model) Tabs() []Tab { return append([]Tab(nil), m.tabs...) }

// SelectedID returns the active tab's ID, or "" when none is selected.
func (m Model) SelectedID() string { return m.selectedID }

// FocusedID returns the keyboard-focused title's ID.
func (m Model) FocusedID() string { return m.focusedID }

// Focused reports whether the widget receives key events.
func (m Model) Focused() bool { return m.focused }

// Focus enables key handling.
func (m *Model) Focus() { m.focused = true }

// Blur disables key handling.
func (m *Model) Blur() { m.focused = false }

// SetSize sets the area available to the widget.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.retargetIndicator(true)
}

// Select requests selection of the given tab. Undeclared IDs, disabled tabs
// and the already-selected tab are no-ops returning nil. Otherwise the
// returned command emits ChangedMsg exactly once; uncontrolled models commit
// the new selection immediately, controlled models wait for SetValue.
func (m *Model) Select(id string) tea.Cmd {
	t, ok := m.tab(id)
	if !ok || t.Disabled || id == m.selectedID {
		return nil
	}

	prev := m.selectedID
	m.focusedID = id
	if m.source == uncontrolled {
		m.selectedID = id
		m.retargetIndicator(!m.animate)
	}

	changed := func() tea.Msg { return ChangedMsg{ID: id, PreviousID: prev} }
	if m.source == uncontrolled && m.animate {
		return tea.Batch(changed, m.ind.frameCmd())
	}
	return changed
}

// SetValue applies an owner-supplied selection. Unknown IDs are ignored, so
// the invariant that the selection always names a declared tab holds. On
// animated models the returned command drives the indicator slide; this is
// the only commit path on controlled models, so dropping it strands the
// indicator mid-track.
func (m *Model) SetValue(id string) tea.Cmd {
	if _, ok := m.tab(id); !ok {
		return nil
	}
	if id == m.selectedID {
		return nil
	}
	m.selectedID = id
	m.focusedID = id
	m.retargetIndicator(!m.animate)
	if m.animate {
		return m.ind.frameCmd()
	}
	return nil
}

// moveFocus shifts keyboard focus by delta among enabled tabs, wrapping
// around both ends. Disabled tabs are skipped but keep their place in the
// rendered order.
func (m *Model) moveFocus(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	cur := -1
	for i, t := range m.tabs {
		if t.ID == m.focusedID {
			cur = i
			break
		}
	}
	if cur < 0 {
		m.focusedID = m.firstEnabledID()
		return
	}
	n := len(m.tabs)
	for step := 1; step <= n; step++ {
		i := ((cur+delta*step)%n + n) % n
		if !m.tabs[i].Disabled {
			m.focusedID = m.tabs[i].ID
			return
		}
	}
}

func (m *Model) focusEdge(last bool) {
	if last {
		for i := len(m.tabs) - 1; i >= 0; i-- {
			if !m.tabs[i].Disabled {
				m.focusedID = m.tabs[i].ID
				return
			}
		}
		return
	}
	m.focusedID = m.firstEnabledID()
}

// Update handles host events. Key events are consumed only while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if msg.gen != m.ind.gen {
			return m, nil // superseded by a newer selection
		}
		if m.ind.step() {
			return m, nil
		}
		return m, m.ind.frameCmd()

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
		case key.Matches(msg, m.keys.First):
			m.focusEdge(false)
		case key.Matches(msg, m.keys.Last):
			m.focusEdge(true)
		case key.Matches(msg, m.keys.Activate):
			return m, m.Select(m.focusedID)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, ok := m.titleAt(msg.X, msg.Y); ok {
			return m, m.Select(id)
		}
		return m, nil
	}
	return m, nil
}

// View renders titles, indicator and the active panel.
func (m Model) View() string {
	if len(m.tabs) == 0 {
		return ""
	}
	var header string
	if m.vertical {
		header = m.renderColumn()
	} else {
		header = m.renderRow()
	}

	panel := m.renderPanel(lipgloss.Height(header))
	if panel == "" {
		return header
	}
	if m.vertical {
		return lipgloss.JoinHorizontal(lipgloss.Top, header, panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, panel)
}

func (m Model) titleStyle(t Tab) lipgloss.Style {
	switch {
	case t.Disabled:
		return m.styles.DisabledTitle
	case t.ID == m.selectedID:
		return m.styles.ActiveTitle
	case t.ID == m.focusedID && m.focused:
		return m.styles.FocusedTitle
	default:
		return m.styles.Title
	}
}

func (m Model) renderPanel(headerHeight int) string {
	active, ok := m.tab(m.selectedID)
	if !ok || active.Content == nil {
		return ""
	}

	w := m.panelWidth()
	h := 0
	if m.height > 0 {
		h = max(0, m.height-headerHeight)
	}

	content := active.Content.Render(w, h)
	if m.activePanelOnly {
		return m.styles.Panel.Render(content)
	}

	// Reserve the max height over all panels so switching tabs does not
	// reflow the layout around the widget.
	maxH := lipgloss.Height(content)
	for _, t := range m.tabs {
		if t.ID == active.ID || t.Content == nil {
			continue
		}
		if th := lipgloss.Height(t.Content.Render(w, h)); th > maxH {
			maxH = th
		}
	}
	return m.styles.Panel.Height(maxH).Render(content)
}

func (m Model) panelWidth() int {
	if !m.vertical {
		return m.width
	}
	if m.width == 0 {
		return 0
	}
	return max(0, m.width-m.titleColumnWidth())
}
