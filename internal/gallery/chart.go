package gallery

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/Binck360/blueprint/datetime"
	"github.com/Binck360/blueprint/theme"
)

// rangeChart draws a stacked bar per calendar month showing how many of that
// month's days fall inside the committed range.
type rangeChart struct {
	min, max time.Time
}

func newRangeChart(min, max time.Time) *rangeChart {
	return &rangeChart{min: min, max: max}
}

func (c *rangeChart) render(r datetime.Range, width, height int) string {
	pal := theme.Current()
	muted := lipgloss.NewStyle().Foreground(pal.Muted)

	start, end, ok := effectiveSpan(r)
	if !ok {
		return muted.Render("Pick a range on the Date Range tab to populate the chart.")
	}

	months := monthsBetween(c.min, c.max)
	if len(months) > 12 {
		months = months[:12]
	}

	legendWidth := 24
	chartHeight := height - 1
	if chartHeight < 4 {
		chartHeight = 4
	}
	chartWidth := width - legendWidth - 2
	if chartWidth < 20 {
		chartWidth = 20
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(2),
		barchart.WithNoAxis(),
	)

	barStyle := lipgloss.NewStyle().Foreground(pal.Accent).Background(pal.Accent)
	totalDays := 0
	for _, month := range months {
		days := overlapDays(start, end, month, month.AddDate(0, 1, -1))
		totalDays += days
		bc.Push(barchart.BarData{
			Label: month.Format("Jan"),
			Values: []barchart.BarValue{
				{Name: month.Format("Jan"), Value: float64(days), Style: barStyle},
			},
		})
	}
	bc.Draw()

	legend := lipgloss.JoinVertical(lipgloss.Left,
		muted.Render(fmt.Sprintf("Start: %s", datetime.Format(r.Start, datetime.DefaultFormat))),
		muted.Render(fmt.Sprintf("End:   %s", datetime.Format(r.End, datetime.DefaultFormat))),
		muted.Render(fmt.Sprintf("Days:  %d", totalDays)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, bc.View(), "  ", legend)
}

// effectiveSpan collapses a partial range to a drawable [start, end] window.
// A single valid boundary counts as a one-day range.
func effectiveSpan(r datetime.Range) (start, end time.Time, ok bool) {
	switch {
	case r.Start.IsValid() && r.End.IsValid():
		return r.Start.Time(), r.End.Time(), true
	case r.Start.IsValid():
		return r.Start.Time(), r.Start.Time(), true
	case r.End.IsValid():
		return r.End.Time(), r.End.Time(), true
	}
	return time.Time{}, time.Time{}, false
}

func monthsBetween(min, max time.Time) []time.Time {
	if min.IsZero() || max.IsZero() || max.Before(min) {
		return nil
	}
	first := time.Date(min.Year(), min.Month(), 1, 0, 0, 0, 0, time.Local)
	var months []time.Time
	for m := first; !m.After(max); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// overlapDays counts whole days shared by [a1, a2] and [b1, b2], inclusive.
func overlapDays(a1, a2, b1, b2 time.Time) int {
	lo := a1
	if b1.After(lo) {
		lo = b1
	}
	hi := a2
	if b2.Before(hi) {
		hi = b2
	}
	lo = time.Date(lo.Year(), lo.Month(), lo.Day(), 0, 0, 0, 0, time.Local)
	hi = time.Date(hi.Year(), hi.Month(), hi.Day(), 0, 0, 0, 0, time.Local)
	if hi.Before(lo) {
		return 0
	}
	// Round absorbs DST-shortened or -lengthened days.
	return int(hi.Sub(lo).Round(24*time.Hour).Hours()/24) + 1
}
