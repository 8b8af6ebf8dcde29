package app

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/state"
)

// Categories returns the document's category list.
func (s *Service) Categories() []category.Category {
	return s.Doc.Categories
}

// AddCategory creates a user category.
func (s *Service) AddCategory(name, color string) (category.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return category.Category{}, errors.New("app: category name required")
	}
	c := category.Category{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
		Alpha: 1,
	}
	s.Doc.Categories = append(s.Doc.Categories, c)
	if err := s.save(); err != nil {
		return category.Category{}, err
	}
	return c, nil
}

// RemoveCategory deletes a user category. System categories are protected.
func (s *Service) RemoveCategory(id string) error {
	for i, c := range s.Doc.Categories {
		if c.ID != id {
			continue
		}
		if c.System {
			return ErrSystemCategory
		}
		s.Doc.Categories = append(s.Doc.Categories[:i], s.Doc.Categories[i+1:]...)
		return s.save()
	}
	return errors.New("app: category not found")
}

// HideCategory toggles a category's visibility flag.
func (s *Service) HideCategory(id string, hidden bool) error {
	for i := range s.Doc.Categories {
		if s.Doc.Categories[i].ID == id {
			s.Doc.Categories[i].Hidden = hidden
			return s.save()
		}
	}
	return errors.New("app: category not found")
}

// CategoryByName resolves a category by display name, case-insensitively.
func (s *Service) CategoryByName(name string) (category.Category, bool) {
	for _, c := range s.Doc.Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return category.Category{}, false
}

// Templates returns the document's templates.
func (s *Service) Templates() []state.Template {
	return s.Doc.Templates
}

// Labels returns the personal labels.
func (s *Service) Labels() []state.Label {
	return s.Doc.Labels
}

// AddLabel appends a personal label.
func (s *Service) AddLabel(name, color string) (state.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return state.Label{}, errors.New("app: label name required")
	}
	l := state.Label{ID: uuid.NewString(), Name: name, Color: color}
	s.Doc.Labels = append(s.Doc.Labels, l)
	if err := s.save(); err != nil {
		return state.Label{}, err
	}
	return l, nil
}

// RemoveLabel deletes a personal label by id or name.
func (s *Service) RemoveLabel(key string) error {
	for i, l := range s.Doc.Labels {
		if l.ID == key || strings.EqualFold(l.Name, key) {
			s.Doc.Labels = append(s.Doc.Labels[:i], s.Doc.Labels[i+1:]...)
			return s.save()
		}
	}
	return errors.New("app: label not found")
}

// FocusPeriods returns the stored focus periods.
func (s *Service) FocusPeriods() []state.FocusPeriod {
	return s.Doc.FocusPeriods
}

// AddFocusPeriod appends a focus period.
func (s *Service) AddFocusPeriod(p state.FocusPeriod) (state.FocusPeriod, error) {
	if strings.TrimSpace(p.Name) == "" {
		return state.FocusPeriod{}, errors.New("app: focus period name required")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.Doc.FocusPeriods = append(s.Doc.FocusPeriods, p)
	if err := s.save(); err != nil {
		return state.FocusPeriod{}, err
	}
	return p, nil
}

// RemoveFocusPeriod deletes a focus period by id or name.
func (s *Service) RemoveFocusPeriod(key string) error {
	for i, p := range s.Doc.FocusPeriods {
		if p.ID == key || strings.EqualFold(p.Name, key) {
			s.Doc.FocusPeriods = append(s.Doc.FocusPeriods[:i], s.Doc.FocusPeriods[i+1:]...)
			return s.save()
		}
	}
	return errors.New("app: focus period not found")
}
