package commitment

import (
	"fmt"
	"strings"

	"tableflip.dev/keep/pkg/timeutil"
)

// StatusKind names a lifecycle state.
type StatusKind string

const (
	Active   StatusKind = "active"
	Ending   StatusKind = "ending"
	Paused   StatusKind = "paused"
	Archived StatusKind = "archived"
)

// Status is a tagged value: the payload fields are only meaningful for the
// matching kind. PausedAt lives here and nowhere else, so a pause timestamp
// can never drift out of sync with the state it belongs to.
type Status struct {
	Kind StatusKind `json:"kind"`
	// PausedAt is set while Kind == Paused.
	PausedAt *timeutil.Timestamp `json:"pausedAt,omitempty"`
	// EndDate is set while Kind == Ending.
	EndDate *timeutil.Timestamp `json:"endDate,omitempty"`
}

func StatusActive() Status {
	return Status{Kind: Active}
}

func StatusPaused(at timeutil.Timestamp) Status {
	return Status{Kind: Paused, PausedAt: &at}
}

func StatusEnding(endDate timeutil.Timestamp) Status {
	return Status{Kind: Ending, EndDate: &endDate}
}

func StatusArchived() Status {
	return Status{Kind: Archived}
}

// Priority orders states for sorting: active < ending < paused < archived.
func (s Status) Priority() int {
	switch s.Kind {
	case Active:
		return 0
	case Ending:
		return 1
	case Paused:
		return 2
	case Archived:
		return 3
	}
	return 4
}

func (s Status) String() string {
	switch s.Kind {
	case Ending:
		if s.EndDate != nil {
			return fmt.Sprintf("ending %s", s.EndDate.Local().Format("2006-01-02"))
		}
	case Paused:
		if s.PausedAt != nil {
			return fmt.Sprintf("paused since %s", s.PausedAt.Local().Format("2006-01-02"))
		}
	}
	return string(s.Kind)
}

// ParseStatusKind maps a CLI token to a StatusKind.
func ParseStatusKind(raw string) (StatusKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active", "a":
		return Active, nil
	case "ending", "e":
		return Ending, nil
	case "paused", "p":
		return Paused, nil
	case "archived", "done", "x":
		return Archived, nil
	}
	return "", fmt.Errorf("commitment: unknown status %q", raw)
}

// AllStatusKinds lists states in priority order.
func AllStatusKinds() []StatusKind {
	return []StatusKind{Active, Ending, Paused, Archived}
}
