package query

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/timeutil"
)

var base = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func fixture() []commitment.Commitment {
	return []commitment.Commitment{
		{
			ID: "a", Title: "Gym", CategoryID: "health",
			Status:         commitment.StatusActive(),
			Cycle:          commitment.Cycle{Kind: commitment.Monthly},
			Reflection:     commitment.ReflectionYes,
			Amount:         &commitment.Amount{Value: 30, Currency: "USD"},
			NextOccurrence: timeutil.At(base.Add(5 * 24 * time.Hour)),
		},
		{
			ID: "b", Title: "News", CategoryID: "media",
			Status:         commitment.StatusPaused(timeutil.At(base)),
			Cycle:          commitment.Cycle{Kind: commitment.Weekly},
			NextOccurrence: timeutil.At(base.Add(2 * 24 * time.Hour)),
		},
		{
			ID: "c", Title: "Rent", CategoryID: "housing",
			Status:         commitment.StatusActive(),
			Cycle:          commitment.Cycle{Kind: commitment.Custom, Days: 14},
			Amount:         &commitment.Amount{Value: 900, Currency: "EUR"},
			NextOccurrence: timeutil.At(base.Add(20 * 24 * time.Hour)),
		},
		{
			ID: "d", Title: "Old box", CategoryID: "media",
			Status: commitment.StatusArchived(),
			Cycle:  commitment.Cycle{Kind: commitment.Monthly},
		},
	}
}

func ids(list []commitment.Commitment) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func TestFilterEmptySpecIsIdentity(t *testing.T) {
	in := fixture()
	got := Filter(in, FilterSpec{})
	if !reflect.DeepEqual(ids(got), ids(in)) {
		t.Fatalf("expected identity, got %v", ids(got))
	}
}

func TestFilterByStatusPreservesOrder(t *testing.T) {
	got := Filter(fixture(), FilterSpec{Statuses: []commitment.StatusKind{commitment.Active}})
	if want := []string{"a", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	spec := FilterSpec{
		Statuses: []commitment.StatusKind{commitment.Active, commitment.Paused},
		Cycles:   []commitment.CycleKind{commitment.Monthly, commitment.Weekly},
	}
	once := Filter(fixture(), spec)
	twice := Filter(once, spec)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterReflectionExcludesUnreviewed(t *testing.T) {
	got := Filter(fixture(), FilterSpec{Reflections: []commitment.Reflection{commitment.ReflectionYes, commitment.ReflectionNo}})
	if want := []string{"a"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestFilterHasAmountTriState(t *testing.T) {
	yes, no := true, false
	with := Filter(fixture(), FilterSpec{HasAmount: &yes})
	if want := []string{"a", "c"}; !reflect.DeepEqual(ids(with), want) {
		t.Fatalf("expected %v, got %v", want, ids(with))
	}
	without := Filter(fixture(), FilterSpec{HasAmount: &no})
	if want := []string{"b", "d"}; !reflect.DeepEqual(ids(without), want) {
		t.Fatalf("expected %v, got %v", want, ids(without))
	}
}

func TestFilterOccurrenceRange(t *testing.T) {
	from := timeutil.At(base.Add(1 * 24 * time.Hour))
	to := timeutil.At(base.Add(10 * 24 * time.Hour))
	got := Filter(fixture(), FilterSpec{OccurrenceFrom: &from, OccurrenceTo: &to})
	if want := []string{"a", "b"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestVisibleDropsHiddenAndUnknownCategories(t *testing.T) {
	cats := category.NewLookup([]category.Category{
		{ID: "health", Name: "Health"},
		{ID: "media", Name: "Media", Hidden: true},
	})
	in := fixture()
	in[0].Hidden = true // hide "a" directly
	got := Visible(in, cats)
	// "a" hidden, "b"/"d" in a hidden category, "c" unknown category.
	if len(got) != 0 {
		t.Fatalf("expected empty, got %v", ids(got))
	}

	cats["housing"] = category.Category{ID: "housing", Name: "Housing"}
	got = Visible(in, cats)
	if want := []string{"c"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}
