// Package datetime holds the date values and display-format handling shared by
// the dateinput and datepicker widgets. A Date is a tagged variant rather than
// a bare time.Time so "no date chosen" and "text that failed to parse" stay
// distinct from real values.
package datetime

import "time"

type kind int

const (
	kindNull kind = iota
	kindValid
	kindInvalid
)

// Date is either Null (no date chosen), Invalid (unparseable or rejected
// input), or a valid calendar date.
type Date struct {
	kind kind
	t    time.Time
}

// Null returns the "no date chosen" value. It is the zero Date.
func Null() Date { return Date{} }

// Invalid returns the sentinel for text that failed to parse or was rejected.
func Invalid() Date { return Date{kind: kindInvalid} }

// Of wraps a time as a valid Date. The zero time maps to Null.
func Of(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Date{kind: kindValid, t: t}
}

func (d Date) IsNull() bool    { return d.kind == kindNull }
func (d Date) IsValid() bool   { return d.kind == kindValid }
func (d Date) IsInvalid() bool { return d.kind == kindInvalid }

// Time returns the underlying time. It is the zero time unless d is valid.
func (d Date) Time() time.Time {
	if d.kind != kindValid {
		return time.Time{}
	}
	return d.t
}

// SameDay reports whether both dates are valid and fall on the same calendar day.
func (d Date) SameDay(o Date) bool {
	if d.kind != kindValid || o.kind != kindValid {
		return false
	}
	return sameDay(d.t, o.t)
}

func (d Date) String() string {
	switch d.kind {
	case kindValid:
		return d.t.Format("2006-01-02 15:04:05")
	case kindInvalid:
		return "<invalid>"
	default:
		return "<null>"
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Boundary names one end of a date range.
type Boundary int

const (
	Start Boundary = iota
	End
)

// Other returns the opposite boundary.
func (b Boundary) Other() Boundary {
	if b == Start {
		return End
	}
	return Start
}

func (b Boundary) String() string {
	if b == Start {
		return "start"
	}
	return "end"
}

// Range is the externally visible value of a date-range input. Either side
// may be Null (open-ended) or, in error reports, Invalid.
type Range struct {
	Start Date
	End   Date
}

// At returns the date at the given boundary.
func (r Range) At(b Boundary) Date {
	if b == Start {
		return r.Start
	}
	return r.End
}

// With returns a copy of the range with the given boundary replaced.
func (r Range) With(b Boundary, d Date) Range {
	if b == Start {
		r.Start = d
	} else {
		r.End = d
	}
	return r
}
