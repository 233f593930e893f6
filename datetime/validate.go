package datetime

import "time"

// ErrorKind classifies why a boundary's text was rejected. Empty input is not
// an error: it is the canonical "no selection" and never produces a kind.
type ErrorKind int

const (
	ParseFailure ErrorKind = iota // text does not match the format
	OutOfRange                    // parses, but falls outside [min, max]
)

func (k ErrorKind) String() string {
	if k == ParseFailure {
		return "parse failure"
	}
	return "out of range"
}

// InRange reports whether d is valid and within [min, max], inclusive.
// A zero bound is unbounded. Bounds compare day-granular, so a date on the
// same calendar day as a bound is always in range regardless of time of day.
func InRange(d Date, min, max time.Time) bool {
	if !d.IsValid() {
		return false
	}
	t := d.t
	if !min.IsZero() && t.Before(min) && !sameDay(t, min) {
		return false
	}
	if !max.IsZero() && t.After(max) && !sameDay(t, max) {
		return false
	}
	return true
}

// Validate parses text and checks it against the bounds. ok is true for empty
// text (a Null date) and for valid in-range dates; otherwise kind tells why
// the text was rejected and the returned Date carries what could be salvaged:
// Invalid for unparseable text, the parsed date for out-of-range text.
func Validate(text, format string, min, max time.Time) (d Date, kind ErrorKind, ok bool) {
	d = Parse(text, format)
	switch {
	case d.IsNull():
		return d, 0, true
	case d.IsInvalid():
		return d, ParseFailure, false
	case !InRange(d, min, max):
		return d, OutOfRange, false
	default:
		return d, 0, true
	}
}
