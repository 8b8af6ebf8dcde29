// Package lifecycle is the only write path for commitments: every state
// transition and field mutation runs through here and leaves a ledger entry.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/ledger"
	"tableflip.dev/keep/pkg/recurrence"
	"tableflip.dev/keep/pkg/timeutil"
)

// Archive reasons recorded on the archived ledger entry.
const (
	ManualArchive = "Manual Archive"
	AutoArchive   = "Auto Archive"
)

// ErrEmptyTitle rejects blank commitment titles.
var ErrEmptyTitle = errors.New("lifecycle: title must not be empty")

// InvalidTransitionError reports a lifecycle transition outside the legal
// set. Transitions are never silently coerced.
type InvalidTransitionError struct {
	From commitment.StatusKind
	To   commitment.StatusKind
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("lifecycle: invalid transition %s -> %s", e.From, e.To)
}

// Create builds a new active commitment with its seed ledger entry and a
// computed next occurrence.
func Create(title, categoryID string, cycle commitment.Cycle, start, now time.Time) (*commitment.Commitment, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	c := &commitment.Commitment{
		ID:         uuid.NewString(),
		Title:      title,
		CategoryID: categoryID,
		StartDate:  timeutil.At(start),
		CreatedAt:  timeutil.At(now),
		Cycle:      cycle,
		Status:     commitment.StatusActive(),
	}
	recurrence.Refresh(c, now)
	seed := ledger.New(ledger.Created, timeutil.At(now))
	seed.To = title
	c.History.Append(seed)
	return c, nil
}

// Pause moves an active commitment into the paused state. The pause credit
// is not touched until resume.
func Pause(c *commitment.Commitment, now time.Time) (ledger.Entry, error) {
	if c.Status.Kind != commitment.Active {
		return ledger.Entry{}, &InvalidTransitionError{From: c.Status.Kind, To: commitment.Paused}
	}
	at := timeutil.At(now)
	c.Status = commitment.StatusPaused(at)
	e := ledger.Change(ledger.Paused, at, string(commitment.Active), string(commitment.Paused))
	c.History.Append(e)
	return e, nil
}

// Resume reactivates a paused commitment, crediting the completed pause
// exactly once and refreshing the occurrence schedule. Resuming from paused
// always records a resumed entry, never a generic status change.
func Resume(c *commitment.Commitment, now time.Time) (ledger.Entry, error) {
	if c.Status.Kind != commitment.Paused {
		return ledger.Entry{}, &InvalidTransitionError{From: c.Status.Kind, To: commitment.Active}
	}
	if c.Status.PausedAt != nil {
		if credit := now.Sub(c.Status.PausedAt.Time); credit > 0 {
			c.TotalPausedSeconds += int64(credit / time.Second)
		}
	}
	c.Status = commitment.StatusActive()
	recurrence.Refresh(c, now)
	e := ledger.Change(ledger.Resumed, timeutil.At(now), string(commitment.Paused), string(commitment.Active))
	c.History.Append(e)
	return e, nil
}

// MarkEnding schedules the end of an active commitment.
func MarkEnding(c *commitment.Commitment, endDate, now time.Time) (ledger.Entry, error) {
	if c.Status.Kind != commitment.Active {
		return ledger.Entry{}, &InvalidTransitionError{From: c.Status.Kind, To: commitment.Ending}
	}
	c.Status = commitment.StatusEnding(timeutil.At(endDate))
	e := ledger.Change(ledger.MarkedEnding, timeutil.At(now), string(commitment.Active), c.Status.String())
	c.History.Append(e)
	return e, nil
}

// Archive retires a commitment. Archived is terminal: nothing transitions
// out of it, including a second archive.
func Archive(c *commitment.Commitment, reason string, now time.Time) (ledger.Entry, error) {
	if c.Status.Kind == commitment.Archived {
		return ledger.Entry{}, &InvalidTransitionError{From: commitment.Archived, To: commitment.Archived}
	}
	if reason == "" {
		reason = ManualArchive
	}
	from := c.Status.Kind
	c.Status = commitment.StatusArchived()
	e := ledger.Change(ledger.Archived, timeutil.At(now), string(from), string(commitment.Archived))
	e.Note = reason
	c.History.Append(e)
	return e, nil
}

// SetTitle renames the commitment, recording old and new titles.
func SetTitle(c *commitment.Commitment, title string, now time.Time) (ledger.Entry, bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return ledger.Entry{}, false, ErrEmptyTitle
	}
	if title == c.Title {
		return ledger.Entry{}, false, nil
	}
	e := ledger.Change(ledger.TitleChanged, timeutil.At(now), c.Title, title)
	c.Title = title
	c.History.Append(e)
	return e, true, nil
}

// SetNotes replaces the free-text notes.
func SetNotes(c *commitment.Commitment, notes string, now time.Time) (ledger.Entry, bool) {
	if notes == c.Notes {
		return ledger.Entry{}, false
	}
	e := ledger.Change(ledger.NotesChanged, timeutil.At(now), c.Notes, notes)
	c.Notes = notes
	c.History.Append(e)
	return e, true
}

// SetCategory repoints the category reference, resolving display names
// through the supplied lookup.
func SetCategory(c *commitment.Commitment, categoryID string, categories category.Lookup, now time.Time) (ledger.Entry, bool) {
	if categoryID == c.CategoryID {
		return ledger.Entry{}, false
	}
	e := ledger.Change(ledger.CategoryChanged, timeutil.At(now),
		categories.ResolveName(c.CategoryID), categories.ResolveName(categoryID))
	c.CategoryID = categoryID
	c.History.Append(e)
	return e, true
}

// SetAmount replaces the monetary amount. Display strings render
// per-currency; an absent amount reads as "none".
func SetAmount(c *commitment.Commitment, amount *commitment.Amount, now time.Time) (ledger.Entry, bool) {
	if c.Amount.Equal(amount) {
		return ledger.Entry{}, false
	}
	e := ledger.Change(ledger.AmountChanged, timeutil.At(now),
		commitment.DisplayAmount(c.Amount), commitment.DisplayAmount(amount))
	c.Amount = amount
	c.History.Append(e)
	return e, true
}

// SetCycle changes the recurrence shape and refreshes the schedule.
func SetCycle(c *commitment.Commitment, cycle commitment.Cycle, now time.Time) (ledger.Entry, bool) {
	if cycle == c.Cycle {
		return ledger.Entry{}, false
	}
	e := ledger.Change(ledger.CycleChanged, timeutil.At(now), c.Cycle.String(), cycle.String())
	c.Cycle = cycle
	recurrence.Refresh(c, now)
	c.History.Append(e)
	return e, true
}

// SetStartDate moves the schedule anchor and refreshes the next occurrence.
// Start-date edits have no dedicated ledger kind; only the recomputation is
// observable.
func SetStartDate(c *commitment.Commitment, start, now time.Time) bool {
	if c.StartDate.Equal(start) {
		return false
	}
	c.StartDate = timeutil.At(start)
	recurrence.Refresh(c, now)
	return true
}

// SetReflection records the user's reflection answer.
func SetReflection(c *commitment.Commitment, r commitment.Reflection, now time.Time) (ledger.Entry, bool) {
	if r == c.Reflection {
		return ledger.Entry{}, false
	}
	e := ledger.Change(ledger.ReflectionChanged, timeutil.At(now), c.Reflection.String(), r.String())
	c.Reflection = r
	c.History.Append(e)
	return e, true
}
