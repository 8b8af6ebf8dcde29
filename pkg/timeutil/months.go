package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultMonths is the fallback analytics window used when none is provided.
	DefaultMonths = 6

	// Day is the fixed day length used for cycle arithmetic. Cycles are
	// defined as fixed day-counts, not calendar months or years.
	Day = 24 * time.Hour
)

var monthsPattern = regexp.MustCompile(`^\s*(\d+)\s*(m|mo|mos|month|months|y|yr|yrs|year|years)?\s*$`)

// ParseMonths parses a trailing-window flag such as "6", "6m", or "1y" into a
// whole number of months. When the input is empty the default window is used.
func ParseMonths(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return DefaultMonths, nil
	}
	matches := monthsPattern.FindStringSubmatch(strings.ToLower(trimmed))
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid window %q", trimmed)
	}
	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
	}
	if strings.HasPrefix(matches[2], "y") {
		value *= 12
	}
	if value <= 0 {
		return 0, fmt.Errorf("window must cover at least one month")
	}
	return value, nil
}

// StartOfDay truncates to the local midnight of the same calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart returns midnight on the first of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, then.Location())
}

// DaysIn returns the number of calendar days in t's month.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first of t's month.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location()).Weekday()
}

// DaysBetween counts whole days from a to b, flooring toward zero.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / Day)
}
