// Package query filters and orders commitment collections from declarative
// specs. Both engines are order-preserving over their input and free of side
// effects.
package query

import (
	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/timeutil"
)

// FilterSpec is a conjunction of optional criteria. An empty criterion is a
// pass-through, never "exclude all".
type FilterSpec struct {
	Statuses    []commitment.StatusKind `json:"statuses,omitempty"`
	CategoryIDs []string                `json:"categoryIds,omitempty"`
	Cycles      []commitment.CycleKind  `json:"cycles,omitempty"`
	Reflections []commitment.Reflection `json:"reflections,omitempty"`
	// HasAmount is tri-state: nil ignores amounts, true requires one,
	// false requires none.
	HasAmount      *bool               `json:"hasAmount,omitempty"`
	OccurrenceFrom *timeutil.Timestamp `json:"occurrenceFrom,omitempty"`
	OccurrenceTo   *timeutil.Timestamp `json:"occurrenceTo,omitempty"`
}

// Empty reports whether every criterion is unset.
func (s FilterSpec) Empty() bool {
	return len(s.Statuses) == 0 &&
		len(s.CategoryIDs) == 0 &&
		len(s.Cycles) == 0 &&
		len(s.Reflections) == 0 &&
		s.HasAmount == nil &&
		s.OccurrenceFrom == nil &&
		s.OccurrenceTo == nil
}

// Matches evaluates every criterion independently and ANDs the results.
func (s FilterSpec) Matches(c *commitment.Commitment) bool {
	if len(s.Statuses) > 0 && !containsStatus(s.Statuses, c.Status.Kind) {
		return false
	}
	if len(s.CategoryIDs) > 0 && !containsString(s.CategoryIDs, c.CategoryID) {
		return false
	}
	if len(s.Cycles) > 0 && !containsCycle(s.Cycles, c.Cycle.Kind) {
		return false
	}
	// A non-empty reflection set excludes unreviewed commitments: the zero
	// reflection is never a member of the recordable states.
	if len(s.Reflections) > 0 && !containsReflection(s.Reflections, c.Reflection) {
		return false
	}
	if s.HasAmount != nil && *s.HasAmount != (c.Amount != nil) {
		return false
	}
	if s.OccurrenceFrom != nil && c.NextOccurrence.Before(s.OccurrenceFrom.Time) {
		return false
	}
	if s.OccurrenceTo != nil && c.NextOccurrence.After(s.OccurrenceTo.Time) {
		return false
	}
	return true
}

// Filter returns the matching subsequence, preserving relative order.
func Filter(list []commitment.Commitment, spec FilterSpec) []commitment.Commitment {
	out := make([]commitment.Commitment, 0, len(list))
	for i := range list {
		if spec.Matches(&list[i]) {
			out = append(out, list[i])
		}
	}
	return out
}

// Visible is the collection-boundary layer applied before FilterSpec: it
// drops hidden commitments and commitments whose category is hidden or
// unknown. Callers build display lists as Sort(Filter(Visible(...))).
func Visible(list []commitment.Commitment, categories category.Lookup) []commitment.Commitment {
	out := make([]commitment.Commitment, 0, len(list))
	for i := range list {
		if list[i].Hidden {
			continue
		}
		if !categories.Visible(list[i].CategoryID) {
			continue
		}
		out = append(out, list[i])
	}
	return out
}

func containsStatus(set []commitment.StatusKind, v commitment.StatusKind) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsCycle(set []commitment.CycleKind, v commitment.CycleKind) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsReflection(set []commitment.Reflection, v commitment.Reflection) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
