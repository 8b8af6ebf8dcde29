package analytics

import (
	"time"

	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/timeutil"
)

// TrendPoint is one calendar month of per-category activity counts.
type TrendPoint struct {
	Month  time.Time      `json:"month"`
	Counts map[string]int `json:"counts"`
}

// CategoryTrends counts, for each of the trailing months, the commitments
// whose active span covers any part of that month, bucketed by resolved
// category name. Unresolvable references land in the Unknown bucket.
func CategoryTrends(list []commitment.Commitment, categories category.Lookup, months int, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, months)
	for _, month := range trailingMonths(months, now) {
		monthEnd := timeutil.NextMonth(month)
		counts := make(map[string]int)
		for i := range list {
			c := &list[i]
			if c.StartDate.Time.Before(monthEnd) && c.EffectiveEnd(now).After(month) {
				counts[categories.ResolveName(c.CategoryID)]++
			}
		}
		points = append(points, TrendPoint{Month: month, Counts: counts})
	}
	return points
}

// trailingMonths returns the first-of-month instants for the window of
// months ending with now's month, in chronological order.
func trailingMonths(months int, now time.Time) []time.Time {
	out := make([]time.Time, 0, months)
	month := timeutil.MonthStart(now.AddDate(0, -(months - 1), 0))
	for i := 0; i < months; i++ {
		out = append(out, month)
		month = timeutil.NextMonth(month)
	}
	return out
}
