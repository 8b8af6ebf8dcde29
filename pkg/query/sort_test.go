package query

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/timeutil"
)

var now = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func sortable() []commitment.Commitment {
	return []commitment.Commitment{
		{
			ID: "1", Title: "zeta", CategoryID: "b",
			Status:         commitment.StatusPaused(timeutil.At(now)),
			Amount:         &commitment.Amount{Value: 20},
			StartDate:      timeutil.At(now.Add(-100 * 24 * time.Hour)),
			CreatedAt:      timeutil.At(now.Add(-100 * 24 * time.Hour)),
			NextOccurrence: timeutil.At(now.Add(3 * 24 * time.Hour)),
		},
		{
			ID: "2", Title: "alpha", CategoryID: "a",
			Status:         commitment.StatusActive(),
			StartDate:      timeutil.At(now.Add(-50 * 24 * time.Hour)),
			CreatedAt:      timeutil.At(now.Add(-50 * 24 * time.Hour)),
			NextOccurrence: timeutil.At(now.Add(1 * 24 * time.Hour)),
		},
		{
			ID: "3", Title: "Beta", CategoryID: "a",
			Status:         commitment.StatusActive(),
			Amount:         &commitment.Amount{Value: 5},
			StartDate:      timeutil.At(now.Add(-50 * 24 * time.Hour)),
			CreatedAt:      timeutil.At(now.Add(-10 * 24 * time.Hour)),
			NextOccurrence: timeutil.At(now.Add(1 * 24 * time.Hour)),
		},
	}
}

func TestSortByStatusPriority(t *testing.T) {
	got := Sort(sortable(), SortSpec{Primary: SortField{Key: ByStatus}}, nil, now)
	// active(2,3 by id) before paused(1)
	if want := []string{"2", "3", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSortMissingAmountTreatedAsZero(t *testing.T) {
	got := Sort(sortable(), SortSpec{Primary: SortField{Key: ByAmount}}, nil, now)
	if want := []string{"2", "3", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSortIdempotent(t *testing.T) {
	spec := SortSpec{Primary: SortField{Key: ByNextOccurrence}}
	once := Sort(sortable(), spec, nil, now)
	twice := Sort(once, spec, nil, now)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("sort not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestSortDirectionReversesDistinctKeys(t *testing.T) {
	asc := Sort(sortable(), SortSpec{Primary: SortField{Key: ByCreated}}, nil, now)
	desc := Sort(sortable(), SortSpec{Primary: SortField{Key: ByCreated, Descending: true}}, nil, now)
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("descending is not the reverse: %v vs %v", ids(asc), ids(desc))
		}
	}
}

func TestSortTieBreaksByIDAscendingRegardlessOfDirection(t *testing.T) {
	spec := SortSpec{Primary: SortField{Key: ByNextOccurrence, Descending: true}}
	got := Sort(sortable(), spec, nil, now)
	// 2 and 3 tie on next occurrence; id order must stay ascending even
	// under a descending primary.
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSortSecondaryKey(t *testing.T) {
	secondary := &SortField{Key: ByAmount, Descending: true}
	got := Sort(sortable(), SortSpec{Primary: SortField{Key: ByNextOccurrence}, Secondary: secondary}, nil, now)
	// 2 and 3 tie on occurrence; amount desc puts 3 (5) before 2 (0).
	if want := []string{"3", "2", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSortTitleCaseInsensitiveCollation(t *testing.T) {
	got := Sort(sortable(), SortSpec{Primary: SortField{Key: ByTitle}}, nil, now)
	if want := []string{"2", "3", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSortByCategoryName(t *testing.T) {
	cats := category.NewLookup([]category.Category{
		{ID: "a", Name: "Media"},
		{ID: "b", Name: "Bills"},
	})
	got := Sort(sortable(), SortSpec{Primary: SortField{Key: ByCategory}}, cats, now)
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
	// Unknown categories sort as empty string, ahead of named ones.
	delete(cats, "b")
	got = Sort(sortable(), SortSpec{Primary: SortField{Key: ByCategory}}, cats, now)
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSortByActiveDuration(t *testing.T) {
	in := sortable()
	in[0].TotalPausedSeconds = 90 * 86400 // active for only 10 days
	got := Sort(in, SortSpec{Primary: SortField{Key: ByActiveDuration}}, nil, now)
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}
