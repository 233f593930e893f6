package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Binck360/blueprint/theme"
)

// renderHelp draws the help overlay centered over the dashboard.
func (d *DashboardPage) renderHelp(width, height int) string {
	pal := theme.Current()

	modalWidth := width - 8
	modalHeight := height - 6
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	d.help.Width = clampMin(contentWidth, 20)
	d.help.Height = clampMin(contentHeight, 4)

	header := lipgloss.NewStyle().
		Width(d.help.Width).
		Foreground(pal.Accent).
		Bold(true).
		Render("Keys")

	contentPane := lipgloss.NewStyle().
		Width(d.help.Width).
		Height(d.help.Height).
		Border(lipgloss.NormalBorder()).
		BorderForeground(pal.Border).
		Render(d.help.View())

	statusBar := lipgloss.NewStyle().
		Foreground(pal.Muted).
		Render(strings.Join([]string{"up/down: scroll", "esc: close"}, " | "))

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	framed := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Accent).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}

func helpText() string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Tab bar", [][2]string{
			{"left/right (up/down when vertical)", "move focus"},
			{"home / end", "first / last enabled tab"},
			{"enter / space", "activate focused tab"},
			{"click a title", "activate it"},
			{"i", "focus the active panel"},
		}},
		{"Date range panel", [][2]string{
			{"type a date", "validates as you type"},
			{"tab / shift+tab", "switch start and end fields"},
			{"down", "move into the calendar popover"},
			{"enter", "accept and leave the fields"},
			{"esc", "leave the fields"},
		}},
		{"Calendar popover", [][2]string{
			{"arrows / hjkl", "move the cursor by day and week"},
			{"pgup / pgdn, [ / ]", "previous / next month"},
			{"enter / space", "pick the highlighted day"},
			{"esc", "back to the text field"},
		}},
		{"Global", [][2]string{
			{"?", "toggle this help"},
			{"c", "standalone calendar page (esc returns)"},
			{"q / ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.title + "\n")
		for _, row := range s.rows {
			b.WriteString("  " + padRight(row[0], 38) + row[1] + "\n")
		}
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
