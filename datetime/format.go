package datetime

import (
	"strings"
	"time"
)

// Display formats use field tokens rather than Go's reference time, so
// configuration like "YYYY-MM-DD" reads the way users expect. Unrecognized
// characters pass through as literals.
var formatTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
}

// DefaultFormat is used when a widget is configured with an empty format.
const DefaultFormat = "YYYY-MM-DD"

// Layout translates a token format string into a Go reference-time layout.
func Layout(format string) string {
	if format == "" {
		format = DefaultFormat
	}
	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); {
		matched := false
		for _, ft := range formatTokens {
			if strings.HasPrefix(format[i:], ft.token) {
				b.WriteString(ft.layout)
				i += len(ft.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

// Parse turns user text into a Date. Empty (or all-space) text is Null, text
// that does not match the format is Invalid. Parse never returns an error.
func Parse(text, format string) Date {
	text = strings.TrimSpace(text)
	if text == "" {
		return Null()
	}
	t, err := time.ParseInLocation(Layout(format), text, time.Local)
	if err != nil {
		return Invalid()
	}
	return Of(t)
}

// Format renders a Date with the given token format. Null and Invalid render
// as the empty string; the caller decides what to show instead.
func Format(d Date, format string) string {
	if !d.IsValid() {
		return ""
	}
	return d.t.Format(Layout(format))
}
