// Package app provides high-level operations over the state document. It
// wraps persistence and the lifecycle engine so CLIs and UIs can share logic.
package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/ledger"
	"tableflip.dev/keep/pkg/lifecycle"
	"tableflip.dev/keep/pkg/query"
	"tableflip.dev/keep/pkg/state"
	"tableflip.dev/keep/pkg/store"
)

var (
	ErrNotFound        = errors.New("app: commitment not found")
	ErrNoPersistence   = errors.New("app: no persistence configured")
	ErrSystemCategory  = errors.New("app: system categories cannot be removed")
	ErrUnknownTemplate = errors.New("app: unknown template")
)

// Service owns the in-memory document and mirrors every mutation to the
// store. Mutations are synchronous, single-threaded updates; persistence is
// a best-effort mirror of the in-memory truth.
type Service struct {
	Persistence store.Persistence
	Log         *zap.Logger

	// Clock supplies "now" for operations driven by the CLI. Engine
	// functions below it always take the instant explicitly.
	Clock func() time.Time

	Doc state.Document
}

// Open loads the document (seeding on a missing or corrupt blob), runs the
// auto-archive sweep once, and mirrors the swept state back to the store.
func Open(ctx context.Context, p store.Persistence, log *zap.Logger) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{Persistence: p, Log: log, Clock: time.Now}

	blob, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.Clock()
	s.Doc = state.DecodeOrSeed(blob, now, log)
	if archived := s.Doc.Sweep(now, log); archived > 0 || blob == nil {
		if err := s.save(); err != nil {
			// The in-memory state is already correct; persistence is a
			// mirror, so a failed write is diagnosable, not fatal.
			log.Warn("app: initial save failed", zap.Error(err))
		}
	}
	return s, nil
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Service) save() error {
	data, err := state.Encode(s.Doc)
	if err != nil {
		return err
	}
	return s.Persistence.Save(data)
}

// Add creates and stores a new commitment.
func (s *Service) Add(title, categoryID string, cycle commitment.Cycle, start time.Time, amount *commitment.Amount, tags []string, notes string) (*commitment.Commitment, error) {
	now := s.now()
	if start.IsZero() {
		start = now
	}
	c, err := lifecycle.Create(title, categoryID, cycle, start, now)
	if err != nil {
		return nil, err
	}
	c.Amount = amount
	c.Tags = tags
	c.Notes = notes
	s.Doc.Commitments = append(s.Doc.Commitments, *c)
	if err := s.save(); err != nil {
		return nil, err
	}
	stored, _ := s.Doc.Find(c.ID)
	return stored, nil
}

// AddFromTemplate instantiates the named template.
func (s *Service) AddFromTemplate(name string, start time.Time) (*commitment.Commitment, error) {
	for _, tpl := range s.Doc.Templates {
		if tpl.Name != name {
			continue
		}
		now := s.now()
		if start.IsZero() {
			start = now
		}
		c, err := tpl.Instantiate(start, now)
		if err != nil {
			return nil, err
		}
		s.Doc.Commitments = append(s.Doc.Commitments, *c)
		if err := s.save(); err != nil {
			return nil, err
		}
		stored, _ := s.Doc.Find(c.ID)
		return stored, nil
	}
	return nil, ErrUnknownTemplate
}

// List applies the display pipeline: category visibility, the document's
// active filter spec, then its sort spec.
func (s *Service) List() []commitment.Commitment {
	lookup := s.Doc.Lookup()
	list := s.Doc.Snapshot()
	if !s.Doc.Preferences.ShowHidden {
		list = query.Visible(list, lookup)
	}
	list = query.Filter(list, s.Doc.Filter)
	return query.Sort(list, s.Doc.Sort, lookup, s.now())
}

// ListWith runs the pipeline with explicit specs instead of the stored ones.
func (s *Service) ListWith(spec query.FilterSpec, sortSpec query.SortSpec) []commitment.Commitment {
	lookup := s.Doc.Lookup()
	list := query.Visible(s.Doc.Snapshot(), lookup)
	list = query.Filter(list, spec)
	return query.Sort(list, sortSpec, lookup, s.now())
}

func (s *Service) find(id string) (*commitment.Commitment, error) {
	c, ok := s.Doc.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// mutate looks up the commitment, applies op, and mirrors the document.
func (s *Service) mutate(id string, op func(c *commitment.Commitment, now time.Time) error) (*commitment.Commitment, error) {
	c, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := op(c, s.now()); err != nil {
		return nil, err
	}
	if err := s.save(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Pause(id string) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		_, err := lifecycle.Pause(c, now)
		return err
	})
}

func (s *Service) Resume(id string) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		_, err := lifecycle.Resume(c, now)
		return err
	})
}

// End marks the commitment ending. A zero endDate defaults to thirty days
// out, matching the UI default.
func (s *Service) End(id string, endDate time.Time) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		if endDate.IsZero() {
			endDate = now.Add(30 * 24 * time.Hour)
		}
		_, err := lifecycle.MarkEnding(c, endDate, now)
		return err
	})
}

func (s *Service) Archive(id string) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		_, err := lifecycle.Archive(c, lifecycle.ManualArchive, now)
		return err
	})
}

func (s *Service) SetTitle(id, title string) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		_, _, err := lifecycle.SetTitle(c, title, now)
		return err
	})
}

func (s *Service) SetNotes(id, notes string) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		lifecycle.SetNotes(c, notes, now)
		return nil
	})
}

func (s *Service) SetCategory(id, categoryID string) (*commitment.Commitment, error) {
	lookup := s.Doc.Lookup()
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		lifecycle.SetCategory(c, categoryID, lookup, now)
		return nil
	})
}

func (s *Service) SetAmount(id string, amount *commitment.Amount) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		lifecycle.SetAmount(c, amount, now)
		return nil
	})
}

func (s *Service) SetCycle(id string, cycle commitment.Cycle) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		lifecycle.SetCycle(c, cycle, now)
		return nil
	})
}

func (s *Service) SetStartDate(id string, start time.Time) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		lifecycle.SetStartDate(c, start, now)
		return nil
	})
}

func (s *Service) SetReflection(id string, r commitment.Reflection) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		lifecycle.SetReflection(c, r, now)
		return nil
	})
}

func (s *Service) SetHidden(id string, hidden bool) (*commitment.Commitment, error) {
	return s.mutate(id, func(c *commitment.Commitment, now time.Time) error {
		c.Hidden = hidden
		return nil
	})
}

// Delete removes a commitment from the collection. This is the UI-level
// bulk action: the engine itself never deletes, and no ledger survives.
func (s *Service) Delete(id string) error {
	for i := range s.Doc.Commitments {
		if s.Doc.Commitments[i].ID == id {
			s.Doc.Commitments = append(s.Doc.Commitments[:i], s.Doc.Commitments[i+1:]...)
			return s.save()
		}
	}
	return ErrNotFound
}

// History returns the commitment's ledger newest-first.
func (s *Service) History(id string) ([]ledger.Entry, error) {
	c, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return c.History.Descending(), nil
}

// SetFilter stores the active filter spec.
func (s *Service) SetFilter(spec query.FilterSpec) error {
	s.Doc.Filter = spec
	return s.save()
}

// SetSort stores the active sort spec.
func (s *Service) SetSort(spec query.SortSpec) error {
	s.Doc.Sort = spec
	return s.save()
}
