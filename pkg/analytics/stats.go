package analytics

import (
	"time"

	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/ledger"
	"tableflip.dev/keep/pkg/lifecycle"
)

// Summary holds the simple reductions over a commitment snapshot.
type Summary struct {
	Count int `json:"count"`

	AvgActive time.Duration `json:"avgActive"`
	MinActive time.Duration `json:"minActive"`
	MaxActive time.Duration `json:"maxActive"`

	ReflectionCounts map[commitment.Reflection]int     `json:"reflectionCounts"`
	ReflectionShares map[commitment.Reflection]float64 `json:"reflectionShares"`

	ArchivedCount    int    `json:"archivedCount"`
	TopArchiveReason string `json:"topArchiveReason,omitempty"`
}

// Summarize reduces the snapshot: active-duration spread, reflection-state
// distribution, and the most common archival reason taken from archived
// ledger notes (a commitment archived without an entry counts as manual).
func Summarize(list []commitment.Commitment, now time.Time) Summary {
	s := Summary{
		Count:            len(list),
		ReflectionCounts: make(map[commitment.Reflection]int),
		ReflectionShares: make(map[commitment.Reflection]float64),
	}
	if len(list) == 0 {
		return s
	}

	var total time.Duration
	reasons := make(map[string]int)
	for i := range list {
		c := &list[i]

		d := c.ActiveDuration(now)
		total += d
		if i == 0 || d < s.MinActive {
			s.MinActive = d
		}
		if d > s.MaxActive {
			s.MaxActive = d
		}

		s.ReflectionCounts[c.Reflection]++

		if c.Status.Kind == commitment.Archived {
			s.ArchivedCount++
			reason := lifecycle.ManualArchive
			if e, ok := c.History.FirstOfKind(ledger.Archived); ok && e.Note != "" {
				reason = e.Note
			}
			reasons[reason]++
		}
	}
	s.AvgActive = total / time.Duration(len(list))

	for r, n := range s.ReflectionCounts {
		s.ReflectionShares[r] = float64(n) * 100 / float64(len(list))
	}

	best := 0
	for reason, n := range reasons {
		if n > best || (n == best && reason < s.TopArchiveReason) {
			best = n
			s.TopArchiveReason = reason
		}
	}
	return s
}
