package get

import (
	"context"
	"errors"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/query"
)

type Get struct {
	ID     string
	ShowID bool

	Statuses   []string
	Categories []string
	Cycles     []string

	SortBy     string
	Descending bool

	App *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get, no app")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	lookup := n.App.Doc.Lookup()
	now := n.App.Clock()

	if n.ID != "" {
		list := n.App.Doc.Snapshot()
		for i := range list {
			if list[i].ID == n.ID {
				pp.Detail(&list[i], lookup, now)
				pp.History(list[i].History.Descending())
				return nil
			}
		}
		return app.ErrNotFound
	}

	spec, err := n.filterSpec()
	if err != nil {
		return err
	}
	sortSpec, err := n.sortSpec()
	if err != nil {
		return err
	}

	list := n.App.ListWith(spec, sortSpec)
	pp.TitleWithCount("Commitments", len(list))
	pp.Commitments(lookup, now, list...)
	return nil
}

func (n *Get) filterSpec() (query.FilterSpec, error) {
	spec := query.FilterSpec{}
	for _, raw := range n.Statuses {
		kind, err := commitment.ParseStatusKind(raw)
		if err != nil {
			return spec, err
		}
		spec.Statuses = append(spec.Statuses, kind)
	}
	for _, raw := range n.Cycles {
		cycle, err := commitment.ParseCycle(raw)
		if err != nil {
			return spec, err
		}
		spec.Cycles = append(spec.Cycles, cycle.Kind)
	}
	for _, name := range n.Categories {
		c, ok := n.App.CategoryByName(name)
		if !ok {
			return spec, errors.New("unknown category: " + name)
		}
		spec.CategoryIDs = append(spec.CategoryIDs, c.ID)
	}
	return spec, nil
}

func (n *Get) sortSpec() (query.SortSpec, error) {
	if n.SortBy == "" {
		spec := n.App.Doc.Sort
		if spec.Primary.Key == "" {
			spec = query.DefaultSort()
		}
		return spec, nil
	}
	key, err := query.ParseSortKey(n.SortBy)
	if err != nil {
		return query.SortSpec{}, err
	}
	return query.SortSpec{Primary: query.SortField{Key: key, Descending: n.Descending}}, nil
}
