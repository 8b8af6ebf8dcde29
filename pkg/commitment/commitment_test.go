package commitment

import (
	"testing"
	"time"

	"tableflip.dev/keep/pkg/ledger"
	"tableflip.dev/keep/pkg/timeutil"
)

func TestActiveDurationDeductsPauseCredit(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := Commitment{
		StartDate:          timeutil.At(start),
		TotalPausedSeconds: 10 * 86400,
		Status:             StatusActive(),
	}
	now := start.Add(30 * 24 * time.Hour)
	got := c.ActiveDuration(now)
	want := 20 * 24 * time.Hour
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got > now.Sub(start) {
		t.Fatalf("active duration exceeds wall-clock elapsed")
	}
}

func TestActiveDurationNeverNegative(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := Commitment{
		StartDate:          timeutil.At(start),
		TotalPausedSeconds: 86400,
	}
	if got := c.ActiveDuration(start.Add(time.Hour)); got != 0 {
		t.Fatalf("expected clamp at zero, got %v", got)
	}
}

func TestEffectiveEnd(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	endDate := timeutil.At(now.Add(-48 * time.Hour))
	pausedAt := timeutil.At(now.Add(-24 * time.Hour))

	active := Commitment{Status: StatusActive()}
	if got := active.EffectiveEnd(now); !got.Equal(now) {
		t.Fatalf("active: expected now, got %v", got)
	}

	ending := Commitment{Status: StatusEnding(endDate)}
	if got := ending.EffectiveEnd(now); !got.Equal(endDate.Time) {
		t.Fatalf("ending: expected end date, got %v", got)
	}

	paused := Commitment{Status: StatusPaused(pausedAt)}
	if got := paused.EffectiveEnd(now); !got.Equal(pausedAt.Time) {
		t.Fatalf("paused: expected pause instant, got %v", got)
	}

	archived := Commitment{Status: StatusArchived()}
	archivedAt := timeutil.At(now.Add(-72 * time.Hour))
	archived.History.Append(ledger.Entry{ID: "a", At: archivedAt, Kind: ledger.Archived})
	if got := archived.EffectiveEnd(now); !got.Equal(archivedAt.Time) {
		t.Fatalf("archived: expected ledger instant, got %v", got)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	amount := &Amount{Value: 9.99, Currency: "USD"}
	c := Commitment{
		Title:  "Music",
		Amount: amount,
		Tags:   []string{"media"},
	}
	c.History.Append(ledger.Entry{ID: "e1", Kind: ledger.Created})

	clone := c.Clone()
	clone.Amount.Value = 1
	clone.Tags[0] = "other"
	clone.History.Append(ledger.Entry{ID: "e2", Kind: ledger.Paused})

	if c.Amount.Value != 9.99 {
		t.Fatalf("clone aliases amount")
	}
	if c.Tags[0] != "media" {
		t.Fatalf("clone aliases tags")
	}
	if c.History.Len() != 1 {
		t.Fatalf("clone aliases history")
	}
}

func TestParseCycle(t *testing.T) {
	cases := []struct {
		in       string
		kind     CycleKind
		interval int
	}{
		{"weekly", Weekly, 7},
		{"w", Weekly, 7},
		{"monthly", Monthly, 30},
		{"yearly", Yearly, 365},
		{"14", Custom, 14},
		{"every 45 days", Custom, 45},
	}
	for _, tc := range cases {
		got, err := ParseCycle(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if got.Kind != tc.kind || got.IntervalDays() != tc.interval {
			t.Fatalf("%s: got %v (%d days)", tc.in, got.Kind, got.IntervalDays())
		}
	}
	if _, err := ParseCycle("0"); err == nil {
		t.Fatalf("expected error for zero interval")
	}
	if _, err := ParseCycle("sometimes"); err == nil {
		t.Fatalf("expected error for unknown cycle")
	}
}

func TestStatusPriority(t *testing.T) {
	order := []Status{StatusActive(), StatusEnding(timeutil.At(time.Now())), StatusPaused(timeutil.At(time.Now())), StatusArchived()}
	for i := 1; i < len(order); i++ {
		if order[i-1].Priority() >= order[i].Priority() {
			t.Fatalf("expected %v < %v", order[i-1].Kind, order[i].Kind)
		}
	}
}

func TestAmountString(t *testing.T) {
	cases := []struct {
		amount Amount
		want   string
	}{
		{Amount{Value: 9.99, Currency: "USD"}, "$9.99"},
		{Amount{Value: 12, Currency: "EUR"}, "€12.00"},
		{Amount{Value: 5.5, Currency: "CHF"}, "5.50 CHF"},
		{Amount{Value: 3.25}, "3.25"},
	}
	for _, tc := range cases {
		if got := tc.amount.String(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestParseAmountMalformedIsAbsent(t *testing.T) {
	if got := ParseAmount("not-a-number"); got != nil {
		t.Fatalf("expected nil for malformed input, got %v", got)
	}
	if got := ParseAmount(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	got := ParseAmount("12.99 usd")
	if got == nil || got.Value != 12.99 || got.Currency != "USD" {
		t.Fatalf("unexpected parse result: %v", got)
	}
}
