// Package state models the single persisted document: the commitment
// collection plus the reference data and preferences that travel with it.
// The store reads and writes this document verbatim; everything here must
// tolerate a missing or corrupt blob by reseeding.
package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/lifecycle"
	"tableflip.dev/keep/pkg/query"
	"tableflip.dev/keep/pkg/timeutil"
)

// CurrentVersion tags the document schema.
const CurrentVersion = 1

// Template is a reusable commitment preset.
type Template struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Title      string             `json:"title"`
	CategoryID string             `json:"categoryId,omitempty"`
	Cycle      commitment.Cycle   `json:"cycle"`
	Amount     *commitment.Amount `json:"amount,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
}

// Instantiate creates a commitment from the template.
func (t Template) Instantiate(start, now time.Time) (*commitment.Commitment, error) {
	c, err := lifecycle.Create(t.Title, t.CategoryID, t.Cycle, start, now)
	if err != nil {
		return nil, err
	}
	if t.Amount != nil {
		amount := *t.Amount
		c.Amount = &amount
	}
	c.Tags = append([]string(nil), t.Tags...)
	return c, nil
}

// FocusPeriod is a named stretch of time the user wants to review against.
type FocusPeriod struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Start timeutil.Timestamp `json:"start"`
	End   timeutil.Timestamp `json:"end"`
}

// Label is a free-form personal tag with a display color.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Preferences are user-level display settings carried in the document.
type Preferences struct {
	WindowMonths int  `json:"windowMonths,omitempty"`
	ShowHidden   bool `json:"showHidden,omitempty"`
}

// Document is the whole persisted state.
type Document struct {
	Version      int                     `json:"version"`
	Commitments  []commitment.Commitment `json:"commitments"`
	Categories   []category.Category     `json:"categories"`
	Filter       query.FilterSpec        `json:"filter,omitempty"`
	Sort         query.SortSpec          `json:"sort,omitempty"`
	Preferences  Preferences             `json:"preferences,omitempty"`
	Templates    []Template              `json:"templates,omitempty"`
	FocusPeriods []FocusPeriod           `json:"focusPeriods,omitempty"`
	Labels       []Label                 `json:"labels,omitempty"`
}

// Seed builds the fresh default document: system categories, default
// templates, default sort.
func Seed(now time.Time) Document {
	categories := category.SeedSystem()
	byName := make(map[string]string, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}
	return Document{
		Version:    CurrentVersion,
		Categories: categories,
		Sort:       query.DefaultSort(),
		Preferences: Preferences{
			WindowMonths: timeutil.DefaultMonths,
		},
		Templates: []Template{
			{
				ID:         uuid.NewString(),
				Name:       "streaming",
				Title:      "Streaming service",
				CategoryID: byName["Entertainment"],
				Cycle:      commitment.Cycle{Kind: commitment.Monthly},
			},
			{
				ID:         uuid.NewString(),
				Name:       "gym",
				Title:      "Gym membership",
				CategoryID: byName["Health"],
				Cycle:      commitment.Cycle{Kind: commitment.Monthly},
			},
			{
				ID:         uuid.NewString(),
				Name:       "domain",
				Title:      "Domain renewal",
				CategoryID: byName["Utilities"],
				Cycle:      commitment.Cycle{Kind: commitment.Yearly},
			},
		},
	}
}

// Lookup indexes the document's categories.
func (d *Document) Lookup() category.Lookup {
	return category.NewLookup(d.Categories)
}

// Find returns the commitment with the given id.
func (d *Document) Find(id string) (*commitment.Commitment, bool) {
	for i := range d.Commitments {
		if d.Commitments[i].ID == id {
			return &d.Commitments[i], true
		}
	}
	return nil, false
}

// Snapshot deep-copies the commitment collection for off-thread analytics.
func (d *Document) Snapshot() []commitment.Commitment {
	return commitment.Snapshot(d.Commitments)
}

// Encode serialises the document for storage and export.
func Encode(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Decode parses a stored document, validating the whole blob.
func Decode(data []byte) (Document, error) {
	var d Document
	if len(bytes.TrimSpace(data)) == 0 {
		return d, errors.New("state: empty document")
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("state: decode: %w", err)
	}
	if d.Version == 0 {
		d.Version = CurrentVersion
	}
	if d.Version > CurrentVersion {
		return d, fmt.Errorf("state: unsupported document version %d", d.Version)
	}
	return d, nil
}

// DecodeOrSeed recovers from a corrupt or missing blob by reseeding. The
// failure is surfaced through the logger for diagnostics, never to the user.
func DecodeOrSeed(data []byte, now time.Time, log *zap.Logger) Document {
	if log == nil {
		log = zap.NewNop()
	}
	if len(data) == 0 {
		log.Info("state: no document found, seeding defaults")
		return Seed(now)
	}
	d, err := Decode(data)
	if err != nil {
		log.Warn("state: document unreadable, falling back to seeded state", zap.Error(err))
		return Seed(now)
	}
	return d
}

// Import validates an exported document by full decode; a blob that fails
// to decode is rejected outright, never partially merged.
func Import(data []byte) (Document, error) {
	d, err := Decode(data)
	if err != nil {
		return Document{}, err
	}
	return d, nil
}
