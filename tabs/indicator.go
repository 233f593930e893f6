package tabs

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const frameInterval = 25 * time.Millisecond

// frameMsg drives one step of the indicator slide. gen identifies the
// selection change that started the animation so stale frames are dropped.
type frameMsg struct{ gen int }

// indicator tracks the selection marker's place along the main axis: an
// underline span under a title row, or a bar beside a title column. Position
// and width are in cells; fractional values exist only mid-animation.
type indicator struct {
	pos, width             float64
	targetPos, targetWidth float64
	gen                    int
}

func (ind *indicator) retarget(pos, width int, snap bool) {
	ind.gen++
	ind.targetPos = float64(pos)
	ind.targetWidth = float64(width)
	if snap {
		ind.pos = ind.targetPos
		ind.width = ind.targetWidth
	}
}

// step advances toward the target and reports whether it arrived.
func (ind *indicator) step() bool {
	ind.pos = approach(ind.pos, ind.targetPos)
	ind.width = approach(ind.width, ind.targetWidth)
	return ind.pos == ind.targetPos && ind.width == ind.targetWidth
}

func approach(cur, target float64) float64 {
	d := target - cur
	if d > -0.5 && d < 0.5 {
		return target
	}
	return cur + d*0.4
}

func (ind *indicator) frameCmd() tea.Cmd {
	gen := ind.gen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

// span is the cell-geometry of one rendered title along the main axis.
type span struct {
	id    string
	pos   int
	width int
}

// titleSpans computes title geometry from the declared tabs. Widths come from
// runewidth so double-width runes land the indicator correctly.
func (m *Model) titleSpans() []span {
	spans := make([]span, 0, len(m.tabs))
	if m.vertical {
		for i, t := range m.tabs {
			spans = append(spans, span{id: t.ID, pos: i, width: 1})
		}
		return spans
	}
	x := 0
	for i, t := range m.tabs {
		if i > 0 {
			x += m.styles.Gap
		}
		w := runewidth.StringWidth(t.Title)
		spans = append(spans, span{id: t.ID, pos: x, width: w})
		x += w
	}
	return spans
}

// retargetIndicator points the indicator at the selected title's span. It
// runs after every selection change and resize; snap skips the slide.
func (m *Model) retargetIndicator(snap bool) {
	for _, s := range m.titleSpans() {
		if s.id == m.selectedID {
			m.ind.retarget(s.pos, s.width, snap)
			return
		}
	}
	m.ind.retarget(0, 0, snap)
}

// titleAt resolves widget-local coordinates to a title's tab ID.
func (m *Model) titleAt(x, y int) (string, bool) {
	if m.vertical {
		if x >= m.titleColumnWidth() {
			return "", false
		}
		for _, s := range m.titleSpans() {
			if s.pos == y {
				return s.id, true
			}
		}
		return "", false
	}
	if y != 0 {
		return "", false
	}
	for _, s := range m.titleSpans() {
		if x >= s.pos && x < s.pos+s.width {
			return s.id, true
		}
	}
	return "", false
}

func (m *Model) titleColumnWidth() int {
	w := 0
	for _, t := range m.tabs {
		if tw := runewidth.StringWidth(t.Title); tw > w {
			w = tw
		}
	}
	return w + 2 // indicator bar + space
}

// renderRow renders the horizontal layout: a title row and an indicator row.
func (m Model) renderRow() string {
	var titles strings.Builder
	gap := strings.Repeat(" ", m.styles.Gap)
	for i, t := range m.tabs {
		if i > 0 {
			titles.WriteString(gap)
		}
		titles.WriteString(m.titleStyle(t).Render(t.Title))
	}

	spans := m.titleSpans()
	total := 0
	if len(spans) > 0 {
		last := spans[len(spans)-1]
		total = last.pos + last.width
	}

	start := clampInt(int(m.ind.pos+0.5), 0, total)
	width := clampInt(int(m.ind.width+0.5), 0, total-start)

	var line strings.Builder
	if start > 0 {
		line.WriteString(m.styles.Track.Render(strings.Repeat("─", start)))
	}
	if width > 0 {
		line.WriteString(m.styles.Indicator.Render(strings.Repeat("━", width)))
	}
	if rest := total - start - width; rest > 0 {
		line.WriteString(m.styles.Track.Render(strings.Repeat("─", rest)))
	}

	return titles.String() + "\n" + line.String()
}

// renderColumn renders the vertical layout: a bar beside the selected title.
func (m Model) renderColumn() string {
	row := clampInt(int(m.ind.pos+0.5), 0, max(0, len(m.tabs)-1))
	hasSelection := m.ind.targetWidth > 0

	width := m.titleColumnWidth() - 2
	lines := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		bar := m.styles.Track.Render("│")
		if hasSelection && i == row {
			bar = m.styles.Indicator.Render("┃")
		}
		title := m.titleStyle(t).Render(runewidth.FillRight(t.Title, width))
		lines = append(lines, bar+" "+title)
	}
	return strings.Join(lines, "\n")
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
