// Package analytics derives time-series views from a commitment snapshot.
// Every function takes an explicit now and reads only from its arguments, so
// callers may run them off-thread over a copied collection.
package analytics

import (
	"time"

	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/recurrence"
	"tableflip.dev/keep/pkg/timeutil"
)

// DayCount is one point of a contiguous daily series.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// ActivityDistribution counts scheduled occurrences per day over the
// trailing window of months ending now. Days without occurrences are kept
// as zeros so the series is contiguous. Each commitment contributes by
// stepping its cycle interval from its first in-window occurrence, so the
// cost is proportional to occurrences, not window days.
func ActivityDistribution(list []commitment.Commitment, months int, now time.Time) []DayCount {
	windowStart := timeutil.StartOfDay(now.AddDate(0, -months, 0))
	windowEnd := timeutil.StartOfDay(now).Add(timeutil.Day)

	days := timeutil.DaysBetween(windowStart, windowEnd)
	counts := make([]int, days)
	accumulate(list, windowStart, windowEnd, now, counts)

	series := make([]DayCount, days)
	for i := range series {
		series[i] = DayCount{Day: windowStart.Add(time.Duration(i) * timeutil.Day), Count: counts[i]}
	}
	return series
}

// Heatmap is a single calendar month of occurrence counts, shaped for a
// day-grid visualization.
type Heatmap struct {
	Month time.Time `json:"month"`
	// LeadingPad is the number of blank cells before day 1 so the grid
	// starts on the week containing the 1st.
	LeadingPad int   `json:"leadingPad"`
	Counts     []int `json:"counts"`
	Max        int   `json:"max"`
}

// MonthHeatmap builds the day grid for the month containing on.
func MonthHeatmap(list []commitment.Commitment, on, now time.Time) Heatmap {
	monthStart := timeutil.MonthStart(on)
	monthEnd := timeutil.NextMonth(monthStart)

	counts := make([]int, timeutil.DaysIn(monthStart))
	accumulate(list, monthStart, monthEnd, now, counts)

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return Heatmap{
		Month:      monthStart,
		LeadingPad: int(timeutil.StartDay(monthStart)),
		Counts:     counts,
		Max:        max,
	}
}

// accumulate adds each commitment's in-window occurrences to counts, which
// holds one bucket per day of [windowStart, windowEnd).
func accumulate(list []commitment.Commitment, windowStart, windowEnd, now time.Time, counts []int) {
	for i := range list {
		c := &list[i]

		limit := c.EffectiveEnd(now)
		if limit.After(windowEnd) {
			limit = windowEnd
		}

		from := windowStart
		if c.StartDate.After(from) {
			from = c.StartDate.Time
		}
		step := time.Duration(c.Cycle.IntervalDays()) * timeutil.Day
		for occ := recurrence.Next(c.StartDate.Time, c.Cycle, from); !occ.After(limit); occ = occ.Add(step) {
			idx := timeutil.DaysBetween(windowStart, occ)
			if idx >= 0 && idx < len(counts) {
				counts[idx]++
			}
		}
	}
}
