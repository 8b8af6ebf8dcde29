// Package recurrence computes occurrence schedules for commitment cycles.
package recurrence

import (
	"time"

	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/timeutil"
)

// Next returns the first occurrence of the cycle on or after now. Occurrences
// fall on start plus whole multiples of the cycle interval; when start is
// already on or after now it is returned unchanged. The step count is derived
// by division so multi-year spans cost the same as short ones.
func Next(start time.Time, cycle commitment.Cycle, now time.Time) time.Time {
	if !start.Before(now) {
		return start
	}
	step := time.Duration(cycle.IntervalDays()) * timeutil.Day
	elapsed := now.Sub(start)
	next := start.Add(elapsed / step * step)
	if next.Before(now) {
		next = next.Add(step)
	}
	return next
}

// ShouldAutoArchive reports whether the maintenance sweep must retire the
// commitment: only an ending commitment whose end date has passed qualifies.
// This is the single non-user-driven transition and is safe to re-check at
// any time.
func ShouldAutoArchive(c *commitment.Commitment, now time.Time) bool {
	if c.Status.Kind != commitment.Ending || c.Status.EndDate == nil {
		return false
	}
	return !c.Status.EndDate.After(now)
}

// Refresh recomputes the commitment's next occurrence from its start date
// and cycle, keeping the ≥ start invariant.
func Refresh(c *commitment.Commitment, now time.Time) {
	c.NextOccurrence = timeutil.At(Next(c.StartDate.Time, c.Cycle, now))
}
