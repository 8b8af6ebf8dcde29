package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
)

// SortKey names an orderable commitment attribute.
type SortKey string

const (
	ByNextOccurrence SortKey = "nextOccurrence"
	ByActiveDuration SortKey = "activeDuration"
	ByAmount         SortKey = "amount"
	ByStatus         SortKey = "status"
	ByTitle          SortKey = "title"
	ByCategory       SortKey = "category"
	ByCreated        SortKey = "created"
)

// SortField pairs a key with a direction.
type SortField struct {
	Key        SortKey `json:"key"`
	Descending bool    `json:"descending,omitempty"`
}

// SortSpec is a primary field, an optional secondary field, and an implicit
// final ascending-id tie-break for total determinism.
type SortSpec struct {
	Primary   SortField  `json:"primary"`
	Secondary *SortField `json:"secondary,omitempty"`
}

// DefaultSort orders by next occurrence, soonest first.
func DefaultSort() SortSpec {
	return SortSpec{Primary: SortField{Key: ByNextOccurrence}}
}

// ParseSortKey maps a CLI token to a SortKey.
func ParseSortKey(raw string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "next", "nextoccurrence", "occurrence", "due":
		return ByNextOccurrence, nil
	case "duration", "activeduration", "age":
		return ByActiveDuration, nil
	case "amount", "cost":
		return ByAmount, nil
	case "status":
		return ByStatus, nil
	case "title", "name":
		return ByTitle, nil
	case "category":
		return ByCategory, nil
	case "created":
		return ByCreated, nil
	}
	return "", fmt.Errorf("query: unknown sort key %q", raw)
}

// Sort returns a new, stably ordered sequence. The direction flips per-key
// comparisons only; the id tie-break always runs ascending so reversing a
// direction exactly reverses elements that differ on that key.
func Sort(list []commitment.Commitment, spec SortSpec, categories category.Lookup, now time.Time) []commitment.Commitment {
	out := make([]commitment.Commitment, len(list))
	copy(out, list)
	if spec.Primary.Key == "" {
		spec = DefaultSort()
	}
	collator := collate.New(language.Und)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if r := directed(compareKey(a, b, spec.Primary.Key, categories, collator, now), spec.Primary.Descending); r != 0 {
			return r < 0
		}
		if spec.Secondary != nil {
			if r := directed(compareKey(a, b, spec.Secondary.Key, categories, collator, now), spec.Secondary.Descending); r != 0 {
				return r < 0
			}
		}
		return a.ID < b.ID
	})
	return out
}

func directed(r int, descending bool) int {
	if descending {
		return -r
	}
	return r
}

func compareKey(a, b *commitment.Commitment, key SortKey, categories category.Lookup, collator *collate.Collator, now time.Time) int {
	switch key {
	case ByNextOccurrence:
		return compareTime(a.NextOccurrence.Time, b.NextOccurrence.Time)
	case ByActiveDuration:
		return compareDuration(a.ActiveDuration(now), b.ActiveDuration(now))
	case ByAmount:
		return compareFloat(amountOrZero(a), amountOrZero(b))
	case ByStatus:
		return compareInt(a.Status.Priority(), b.Status.Priority())
	case ByTitle:
		return collator.CompareString(a.Title, b.Title)
	case ByCategory:
		return collator.CompareString(categoryName(a, categories), categoryName(b, categories))
	case ByCreated:
		return compareTime(a.CreatedAt.Time, b.CreatedAt.Time)
	}
	return 0
}

// categoryName resolves for ordering purposes; a missing category sorts as
// the empty string rather than the Unknown display fallback.
func categoryName(c *commitment.Commitment, categories category.Lookup) string {
	if cat, ok := categories[c.CategoryID]; ok {
		return cat.Name
	}
	return ""
}

func amountOrZero(c *commitment.Commitment) float64 {
	if c.Amount == nil {
		return 0
	}
	return c.Amount.Value
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func compareDuration(a, b time.Duration) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
