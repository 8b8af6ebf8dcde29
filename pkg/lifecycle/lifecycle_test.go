package lifecycle

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/ledger"
)

var t0 = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func newActive(t *testing.T) *commitment.Commitment {
	t.Helper()
	c, err := Create("Streaming", "cat-1", commitment.Cycle{Kind: commitment.Monthly}, t0, t0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return c
}

func TestCreateSeedsLedger(t *testing.T) {
	c := newActive(t)
	if c.Status.Kind != commitment.Active {
		t.Fatalf("expected active, got %s", c.Status.Kind)
	}
	if c.History.Len() != 1 {
		t.Fatalf("expected one seed entry, got %d", c.History.Len())
	}
	if e, _ := c.History.FirstOfKind(ledger.Created); e.To != "Streaming" {
		t.Fatalf("unexpected seed entry: %+v", e)
	}
	if c.NextOccurrence.Before(c.StartDate.Time) {
		t.Fatalf("next occurrence before start")
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	if _, err := Create("  ", "", commitment.Cycle{Kind: commitment.Weekly}, t0, t0); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestPauseResumeCreditsOnce(t *testing.T) {
	c := newActive(t)

	if _, err := Pause(c, t0); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if c.Status.Kind != commitment.Paused || c.Status.PausedAt == nil {
		t.Fatalf("expected paused with payload, got %+v", c.Status)
	}
	if c.TotalPausedSeconds != 0 {
		t.Fatalf("pause must not touch the credit, got %d", c.TotalPausedSeconds)
	}

	resumeAt := t0.Add(10 * 24 * time.Hour)
	if _, err := Resume(c, resumeAt); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if c.TotalPausedSeconds != 10*86400 {
		t.Fatalf("expected 10 days credit, got %d", c.TotalPausedSeconds)
	}
	if c.Status.Kind != commitment.Active || c.Status.PausedAt != nil {
		t.Fatalf("expected active with cleared pausedAt, got %+v", c.Status)
	}
	if _, ok := c.History.LastOfKind(ledger.Resumed); !ok {
		t.Fatalf("expected resumed entry, history: %+v", c.History.Entries)
	}
	if _, ok := c.History.LastOfKind(ledger.StatusChanged); ok {
		t.Fatalf("resume must not record a generic status change")
	}
	if got := c.ActiveDuration(resumeAt); got > resumeAt.Sub(t0) {
		t.Fatalf("active duration exceeds elapsed: %v", got)
	}
}

func TestDoublePauseRejected(t *testing.T) {
	c := newActive(t)
	if _, err := Pause(c, t0); err != nil {
		t.Fatalf("pause: %v", err)
	}
	_, err := Pause(c, t0.Add(time.Hour))
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if ite.From != commitment.Paused || ite.To != commitment.Paused {
		t.Fatalf("unexpected transition error: %v", ite)
	}
}

func TestResumeRequiresPaused(t *testing.T) {
	c := newActive(t)
	var ite *InvalidTransitionError
	if _, err := Resume(c, t0); !errors.As(err, &ite) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestMarkEnding(t *testing.T) {
	c := newActive(t)
	end := t0.Add(30 * 24 * time.Hour)
	if _, err := MarkEnding(c, end, t0); err != nil {
		t.Fatalf("mark ending: %v", err)
	}
	if c.Status.Kind != commitment.Ending || c.Status.EndDate == nil || !c.Status.EndDate.Equal(end) {
		t.Fatalf("unexpected status: %+v", c.Status)
	}
	if _, ok := c.History.LastOfKind(ledger.MarkedEnding); !ok {
		t.Fatalf("expected markedEnding entry")
	}
	// Paused commitments cannot be marked ending.
	p := newActive(t)
	if _, err := Pause(p, t0); err != nil {
		t.Fatalf("pause: %v", err)
	}
	var ite *InvalidTransitionError
	if _, err := MarkEnding(p, end, t0); !errors.As(err, &ite) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestArchiveIsTerminal(t *testing.T) {
	c := newActive(t)
	e, err := Archive(c, "", t0)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if e.Note != ManualArchive {
		t.Fatalf("expected default reason, got %q", e.Note)
	}
	var ite *InvalidTransitionError
	for _, attempt := range []func() error{
		func() error { _, err := Archive(c, "", t0); return err },
		func() error { _, err := Pause(c, t0); return err },
		func() error { _, err := Resume(c, t0); return err },
		func() error { _, err := MarkEnding(c, t0, t0); return err },
	} {
		if err := attempt(); !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTransitionError leaving archived, got %v", err)
		}
	}
	if c.Status.Kind != commitment.Archived {
		t.Fatalf("status drifted out of archived: %s", c.Status.Kind)
	}
}

func TestFieldMutationsRecordOldAndNew(t *testing.T) {
	c := newActive(t)
	cats := category.NewLookup([]category.Category{
		{ID: "cat-1", Name: "Entertainment"},
		{ID: "cat-2", Name: "Utilities"},
	})

	if _, changed, err := SetTitle(c, "Streaming Plus", t0); err != nil || !changed {
		t.Fatalf("set title: changed=%v err=%v", changed, err)
	}
	e, _ := c.History.LastOfKind(ledger.TitleChanged)
	if e.From != "Streaming" || e.To != "Streaming Plus" {
		t.Fatalf("unexpected title entry: %+v", e)
	}

	if _, changed := SetCategory(c, "cat-2", cats, t0); !changed {
		t.Fatalf("expected category change")
	}
	e, _ = c.History.LastOfKind(ledger.CategoryChanged)
	if e.From != "Entertainment" || e.To != "Utilities" {
		t.Fatalf("unexpected category entry: %+v", e)
	}

	if _, changed := SetAmount(c, &commitment.Amount{Value: 9.99, Currency: "USD"}, t0); !changed {
		t.Fatalf("expected amount change")
	}
	e, _ = c.History.LastOfKind(ledger.AmountChanged)
	if e.From != "none" || e.To != "$9.99" {
		t.Fatalf("unexpected amount entry: %+v", e)
	}

	if _, changed := SetAmount(c, &commitment.Amount{Value: 9.99, Currency: "usd"}, t0); changed {
		t.Fatalf("equal amount must be a no-op")
	}
}

func TestSetCycleRefreshesSchedule(t *testing.T) {
	c := newActive(t)
	now := t0.Add(45 * 24 * time.Hour)
	before := c.NextOccurrence
	if _, changed := SetCycle(c, commitment.Cycle{Kind: commitment.Weekly}, now); !changed {
		t.Fatalf("expected cycle change")
	}
	if c.NextOccurrence.Equal(before.Time) {
		t.Fatalf("expected schedule refresh")
	}
	if c.NextOccurrence.Before(now) {
		t.Fatalf("next occurrence before now")
	}
	if _, ok := c.History.LastOfKind(ledger.CycleChanged); !ok {
		t.Fatalf("expected cycleChanged entry")
	}
}

func TestSetStartDateRefreshes(t *testing.T) {
	c := newActive(t)
	newStart := t0.Add(-60 * 24 * time.Hour)
	if !SetStartDate(c, newStart, t0) {
		t.Fatalf("expected start date change")
	}
	if c.NextOccurrence.Before(t0) {
		t.Fatalf("next occurrence fell behind now")
	}
}

func TestSetReflection(t *testing.T) {
	c := newActive(t)
	if _, changed := SetReflection(c, commitment.ReflectionYes, t0); !changed {
		t.Fatalf("expected reflection change")
	}
	e, _ := c.History.LastOfKind(ledger.ReflectionChanged)
	if e.From != "unreviewed" || e.To != "yes" {
		t.Fatalf("unexpected reflection entry: %+v", e)
	}
	if _, changed := SetReflection(c, commitment.ReflectionYes, t0); changed {
		t.Fatalf("equal reflection must be a no-op")
	}
}
