package datetime

import (
	"testing"
	"time"
)

var (
	min2020 = time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	max2020 = time.Date(2020, 12, 31, 0, 0, 0, 0, time.Local)
)

func TestInRange(t *testing.T) {
	t.Parallel()

	day := func(y int, m time.Month, d int) Date {
		return Of(time.Date(y, m, d, 0, 0, 0, 0, time.Local))
	}

	tests := []struct {
		name string
		d    Date
		want bool
	}{
		{"middle", day(2020, 6, 15), true},
		{"on min bound", day(2020, 1, 1), true},
		{"on max bound", day(2020, 12, 31), true},
		{"before min", day(2019, 12, 31), false},
		{"after max", day(2021, 1, 1), false},
		{"null", Null(), false},
		{"invalid", Invalid(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := InRange(tt.d, min2020, max2020); got != tt.want {
				t.Errorf("InRange(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestInRange_DayGranularBounds(t *testing.T) {
	t.Parallel()

	// A date later in the day than the max bound but on the same calendar day
	// still counts as in range.
	d := Of(time.Date(2020, 12, 31, 23, 59, 0, 0, time.Local))
	if !InRange(d, min2020, max2020) {
		t.Error("same-day-as-max date rejected, want in range")
	}
}

func TestInRange_ZeroBoundsAreUnbounded(t *testing.T) {
	t.Parallel()

	d := Of(time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local))
	if !InRange(d, time.Time{}, time.Time{}) {
		t.Error("unbounded range rejected a valid date")
	}
	if InRange(d, min2020, time.Time{}) {
		t.Error("lower bound ignored")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		wantOK   bool
		wantKind ErrorKind
		wantNull bool
	}{
		{"valid in range", "2020-06-15", true, 0, false},
		{"empty is ok and null", "", true, 0, true},
		{"garbage", "junk", false, ParseFailure, false},
		{"out of range", "2021-01-01", false, OutOfRange, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, kind, ok := Validate(tt.text, "YYYY-MM-DD", min2020, max2020)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok && kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", kind, tt.wantKind)
			}
			if d.IsNull() != tt.wantNull {
				t.Errorf("null = %v, want %v", d.IsNull(), tt.wantNull)
			}
		})
	}
}

func TestValidate_OutOfRangeKeepsParsedDate(t *testing.T) {
	t.Parallel()

	d, kind, ok := Validate("2021-01-01", "YYYY-MM-DD", min2020, max2020)
	if ok {
		t.Fatal("out-of-range text validated, want rejection")
	}
	if kind != OutOfRange {
		t.Fatalf("kind = %v, want OutOfRange", kind)
	}
	if !d.IsValid() {
		t.Error("rejected date lost its parsed value, want it preserved for error reporting")
	}
}

func TestRange_WithAndAt(t *testing.T) {
	t.Parallel()

	d := Of(time.Date(2020, 6, 15, 0, 0, 0, 0, time.Local))
	r := Range{}.With(Start, d)
	if !r.At(Start).SameDay(d) {
		t.Error("With(Start) did not set the start boundary")
	}
	if !r.At(End).IsNull() {
		t.Error("With(Start) touched the end boundary")
	}
	if Start.Other() != End || End.Other() != Start {
		t.Error("Boundary.Other is not an involution")
	}
}
