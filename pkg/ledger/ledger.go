// Package ledger implements the bounded, append-only audit trail attached to
// each commitment.
package ledger

import (
	"github.com/google/uuid"

	"tableflip.dev/keep/pkg/timeutil"
)

// Kind enumerates the closed set of audit entry types.
type Kind string

const (
	Created           Kind = "created"
	StatusChanged     Kind = "statusChanged"
	CycleChanged      Kind = "cycleChanged"
	AmountChanged     Kind = "amountChanged"
	CategoryChanged   Kind = "categoryChanged"
	Paused            Kind = "paused"
	Resumed           Kind = "resumed"
	MarkedEnding      Kind = "markedEnding"
	Archived          Kind = "archived"
	TitleChanged      Kind = "titleChanged"
	NotesChanged      Kind = "notesChanged"
	ReflectionChanged Kind = "reflectionChanged"
)

// MaxEntries is the display-retention bound per ledger. Older entries are
// evicted first; this is not a correctness requirement.
const MaxEntries = 100

// Entry is a single audit record. Entries are immutable once appended.
type Entry struct {
	ID   string             `json:"id"`
	At   timeutil.Timestamp `json:"at"`
	Kind Kind               `json:"kind"`
	From string             `json:"from,omitempty"`
	To   string             `json:"to,omitempty"`
	Note string             `json:"note,omitempty"`
}

// New builds an entry stamped with the provided time.
func New(kind Kind, at timeutil.Timestamp) Entry {
	return Entry{
		ID:   uuid.NewString(),
		At:   at,
		Kind: kind,
	}
}

// Change builds an entry carrying old/new display strings.
func Change(kind Kind, at timeutil.Timestamp, from, to string) Entry {
	e := New(kind, at)
	e.From = from
	e.To = to
	return e
}

// Ledger holds the ordered audit trail for one commitment.
type Ledger struct {
	Entries []Entry `json:"entries,omitempty"`
}

// Append adds e to the end, evicting from the front past MaxEntries.
func (l *Ledger) Append(e Entry) {
	l.Entries = append(l.Entries, e)
	if n := len(l.Entries); n > MaxEntries {
		l.Entries = append(l.Entries[:0:0], l.Entries[n-MaxEntries:]...)
	}
}

func (l *Ledger) Len() int {
	return len(l.Entries)
}

// Descending returns a copy of the entries ordered newest first for display.
func (l *Ledger) Descending() []Entry {
	out := make([]Entry, len(l.Entries))
	for i, e := range l.Entries {
		out[len(l.Entries)-1-i] = e
	}
	return out
}

// FirstOfKind returns the oldest entry of the given kind.
func (l *Ledger) FirstOfKind(kind Kind) (Entry, bool) {
	for _, e := range l.Entries {
		if e.Kind == kind {
			return e, true
		}
	}
	return Entry{}, false
}

// LastOfKind returns the newest entry of the given kind.
func (l *Ledger) LastOfKind(kind Kind) (Entry, bool) {
	for i := len(l.Entries) - 1; i >= 0; i-- {
		if l.Entries[i].Kind == kind {
			return l.Entries[i], true
		}
	}
	return Entry{}, false
}

// Clone returns a deep copy so snapshots do not alias the live trail.
func (l *Ledger) Clone() Ledger {
	if len(l.Entries) == 0 {
		return Ledger{}
	}
	entries := make([]Entry, len(l.Entries))
	copy(entries, l.Entries)
	return Ledger{Entries: entries}
}
