// Package category defines the category reference data commitments point at.
// Categories are owned by the caller; the engine only consumes lookups.
package category

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/google/uuid"
)

// UnknownName is the display fallback for unresolvable category references.
const UnknownName = "Unknown"

// neutralColor backs the Unknown fallback.
const neutralColor = "#808080"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Color is an RGB hex string; Alpha carries the remaining channel.
	Color  string  `json:"color"`
	Alpha  float64 `json:"alpha"`
	System bool    `json:"system,omitempty"`
	Hidden bool    `json:"hidden,omitempty"`
}

// RGBA returns the parsed color channels, substituting neutral gray for
// malformed hex strings.
func (c Category) RGBA() (r, g, b, a float64) {
	col, err := colorful.Hex(c.Color)
	if err != nil {
		col, _ = colorful.Hex(neutralColor)
	}
	alpha := c.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return col.R, col.G, col.B, alpha
}

// Lookup resolves category ids to categories.
type Lookup map[string]Category

// NewLookup indexes a category list by id.
func NewLookup(categories []Category) Lookup {
	m := make(Lookup, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}

// ResolveName returns the category name for id, or the Unknown fallback.
func (l Lookup) ResolveName(id string) string {
	if c, ok := l[id]; ok {
		return c.Name
	}
	return UnknownName
}

// Resolve returns the category for id, or an Unknown placeholder with a
// neutral color. Missing references are a display concern, never an error.
func (l Lookup) Resolve(id string) Category {
	if c, ok := l[id]; ok {
		return c
	}
	return Category{ID: id, Name: UnknownName, Color: neutralColor, Alpha: 1}
}

// Visible returns true when the id resolves to a non-hidden category.
func (l Lookup) Visible(id string) bool {
	c, ok := l[id]
	return ok && !c.Hidden
}

// Names returns the sorted category names, for completions and summaries.
func (l Lookup) Names() []string {
	names := make([]string, 0, len(l))
	for _, c := range l {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// SeedSystem builds the protected category set installed on first run.
func SeedSystem() []Category {
	seed := []struct {
		name  string
		color string
	}{
		{"Entertainment", "#e0533d"},
		{"Utilities", "#3d7be0"},
		{"Health", "#3de07b"},
		{"Finance", "#e0b23d"},
		{"Learning", "#9b3de0"},
		{"Other", "#808080"},
	}
	out := make([]Category, 0, len(seed))
	for _, s := range seed {
		out = append(out, Category{
			ID:     uuid.NewString(),
			Name:   s.name,
			Color:  s.color,
			Alpha:  1,
			System: true,
		})
	}
	return out
}
