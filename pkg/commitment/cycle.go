package commitment

import (
	"fmt"
	"strconv"
	"strings"
)

// CycleKind names the recurrence shape of a commitment.
type CycleKind string

const (
	Weekly  CycleKind = "weekly"
	Monthly CycleKind = "monthly"
	Yearly  CycleKind = "yearly"
	Custom  CycleKind = "custom"
)

// Cycle is the fixed day-count interval governing recurrence. Intervals are
// never calendar-aware: monthly is always 30 days, yearly always 365.
type Cycle struct {
	Kind CycleKind `json:"kind"`
	// Days is only meaningful for Custom cycles and must be positive.
	Days int `json:"days,omitempty"`
}

// IntervalDays returns the cycle length as a day count.
func (c Cycle) IntervalDays() int {
	switch c.Kind {
	case Weekly:
		return 7
	case Monthly:
		return 30
	case Yearly:
		return 365
	case Custom:
		if c.Days > 0 {
			return c.Days
		}
		return 1
	}
	return 30
}

func (c Cycle) String() string {
	if c.Kind == Custom {
		return fmt.Sprintf("every %d days", c.IntervalDays())
	}
	return string(c.Kind)
}

// ParseCycle maps a CLI token ("weekly", "w", "30", "every 14 days") to a Cycle.
func ParseCycle(raw string) (Cycle, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.TrimPrefix(token, "every ")
	token = strings.TrimSuffix(token, " days")
	token = strings.TrimSuffix(token, "d")

	switch token {
	case "weekly", "week", "w":
		return Cycle{Kind: Weekly}, nil
	case "monthly", "month", "m", "":
		return Cycle{Kind: Monthly}, nil
	case "yearly", "year", "annual", "y":
		return Cycle{Kind: Yearly}, nil
	}
	if days, err := strconv.Atoi(token); err == nil {
		if days <= 0 {
			return Cycle{}, fmt.Errorf("commitment: cycle interval must be positive, got %d", days)
		}
		return Cycle{Kind: Custom, Days: days}, nil
	}
	return Cycle{}, fmt.Errorf("commitment: unknown cycle %q", raw)
}

// AllCycleKinds lists the supported shapes for flag help and validation.
func AllCycleKinds() []CycleKind {
	return []CycleKind{Weekly, Monthly, Yearly, Custom}
}
