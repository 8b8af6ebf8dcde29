// Package commitment defines the central entity of keep: a recurring
// obligation with a cycle, a lifecycle status, and an audit ledger.
package commitment

import (
	"time"

	"tableflip.dev/keep/pkg/ledger"
	"tableflip.dev/keep/pkg/timeutil"
)

type Commitment struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	CategoryID string `json:"categoryId,omitempty"`

	Amount     *Amount    `json:"amount,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Reflection Reflection `json:"reflection,omitempty"`

	StartDate      timeutil.Timestamp `json:"startDate"`
	NextOccurrence timeutil.Timestamp `json:"nextOccurrence"`
	CreatedAt      timeutil.Timestamp `json:"createdAt"`

	// TotalPausedSeconds accumulates completed pause/resume pairs. It is
	// credited exactly once per pair, at resume time, and never decreases.
	TotalPausedSeconds int64 `json:"totalPausedSeconds,omitempty"`

	Cycle  Cycle  `json:"cycle"`
	Status Status `json:"status"`
	Hidden bool   `json:"hidden,omitempty"`

	History ledger.Ledger `json:"history"`
}

// TotalPaused returns the accumulated pause credit as a duration.
func (c *Commitment) TotalPaused() time.Duration {
	return time.Duration(c.TotalPausedSeconds) * time.Second
}

// ActiveDuration is wall-clock time since start minus accumulated pause
// credit, clamped at zero. In-flight pauses are not deducted until resumed.
func (c *Commitment) ActiveDuration(now time.Time) time.Duration {
	d := now.Sub(c.StartDate.Time) - c.TotalPaused()
	if d < 0 {
		return 0
	}
	return d
}

// EffectiveEnd is the instant past which the commitment stops producing
// occurrences: now while active, the end date while ending, the pause
// instant while paused, and the archival instant once archived.
func (c *Commitment) EffectiveEnd(now time.Time) time.Time {
	switch c.Status.Kind {
	case Ending:
		if c.Status.EndDate != nil {
			return c.Status.EndDate.Time
		}
	case Paused:
		if c.Status.PausedAt != nil {
			return c.Status.PausedAt.Time
		}
	case Archived:
		if e, ok := c.History.FirstOfKind(ledger.Archived); ok {
			return e.At.Time
		}
	}
	return now
}

// ArchivedAt reports when the commitment was archived, if it was.
func (c *Commitment) ArchivedAt() (time.Time, bool) {
	if c.Status.Kind != Archived {
		return time.Time{}, false
	}
	if e, ok := c.History.FirstOfKind(ledger.Archived); ok {
		return e.At.Time, true
	}
	return time.Time{}, false
}

// Clone deep-copies the commitment so background analytics never alias a
// collection under mutation.
func (c *Commitment) Clone() Commitment {
	out := *c
	if c.Amount != nil {
		amount := *c.Amount
		out.Amount = &amount
	}
	if c.Status.PausedAt != nil {
		at := *c.Status.PausedAt
		out.Status.PausedAt = &at
	}
	if c.Status.EndDate != nil {
		at := *c.Status.EndDate
		out.Status.EndDate = &at
	}
	if len(c.Tags) > 0 {
		out.Tags = append([]string(nil), c.Tags...)
	}
	out.History = c.History.Clone()
	return out
}

// Snapshot deep-copies a whole collection.
func Snapshot(list []Commitment) []Commitment {
	out := make([]Commitment, len(list))
	for i := range list {
		out[i] = list[i].Clone()
	}
	return out
}
