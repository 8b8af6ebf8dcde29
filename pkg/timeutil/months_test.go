package timeutil

import (
	"testing"
	"time"
)

func TestParseMonthsDefault(t *testing.T) {
	got, err := ParseMonths("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultMonths {
		t.Fatalf("expected %d, got %d", DefaultMonths, got)
	}
}

func TestParseMonths(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"6", 6},
		{"6m", 6},
		{"12 months", 12},
		{"1y", 12},
		{"2yrs", 24},
	}
	for _, tc := range cases {
		got, err := ParseMonths(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestParseMonthsInvalid(t *testing.T) {
	for _, in := range []string{"noop", "0", "-3", "3w"} {
		if _, err := ParseMonths(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestDaysIn(t *testing.T) {
	feb := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	if got := DaysIn(feb); got != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", got)
	}
	if got := DaysIn(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)); got != 28 {
		t.Fatalf("expected 28 days in Feb 2023, got %d", got)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := At(time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC))
	data, err := ts.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("expected %v, got %v", ts, back)
	}
}

func TestTimestampSameMonth(t *testing.T) {
	ts := At(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local))
	if !ts.SameMonth(time.Date(2024, time.March, 28, 23, 0, 0, 0, time.Local)) {
		t.Fatalf("expected same month")
	}
	if ts.SameMonth(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected different month")
	}
}
