package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/keep/pkg/analytics"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/timeutil"
)

var now = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	oldOut := color.Output
	oldNo := color.NoColor
	var buf bytes.Buffer
	color.Output = &buf
	color.NoColor = true
	defer func() {
		color.Output = oldOut
		color.NoColor = oldNo
	}()
	fn()
	return buf.String()
}

// Summarize already reports reflection shares as percentages; the printer
// must render them as-is.
func TestSummaryRendersSharesAsPercentages(t *testing.T) {
	list := []commitment.Commitment{
		{
			ID: "a", Title: "A",
			StartDate:  timeutil.At(now.Add(-30 * 24 * time.Hour)),
			Status:     commitment.StatusActive(),
			Reflection: commitment.ReflectionYes,
		},
		{
			ID: "b", Title: "B",
			StartDate:  timeutil.At(now.Add(-10 * 24 * time.Hour)),
			Status:     commitment.StatusActive(),
			Reflection: commitment.ReflectionNo,
		},
	}
	s := analytics.Summarize(list, now)
	if got := s.ReflectionShares[commitment.ReflectionYes]; got != 50 {
		t.Fatalf("expected a 50 percent share, got %v", got)
	}

	pp := &PrettyPrint{}
	out := capture(t, func() { pp.Summary(s) })
	if !strings.Contains(out, "1 (50%)") {
		t.Fatalf("expected share rendered as 50%%, got:\n%s", out)
	}
	if strings.Contains(out, "5000%") {
		t.Fatalf("share was scaled twice:\n%s", out)
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 days"},
		{24 * time.Hour, "1 day"},
		{72 * time.Hour, "3 days"},
	}
	for _, tt := range tests {
		if got := Days(tt.d); got != tt.want {
			t.Fatalf("Days(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
