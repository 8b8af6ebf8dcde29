package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/printers"
)

type Add struct {
	Title    string
	Category string
	Cycle    string
	On       *time.Time
	Amount   string
	Tags     []string
	Notes    string
	Template string

	ShowID bool
	App    *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add, no app")
	}

	var created *commitment.Commitment
	var err error

	if n.Template != "" {
		created, err = n.App.AddFromTemplate(n.Template, on(n.On))
		if err != nil {
			return err
		}
	} else {
		cycle, cerr := commitment.ParseCycle(n.Cycle)
		if cerr != nil {
			return cerr
		}

		categoryID := ""
		if n.Category != "" {
			c, ok := n.App.CategoryByName(n.Category)
			if !ok {
				return errors.New("unknown category: " + n.Category)
			}
			categoryID = c.ID
		}

		created, err = n.App.Add(n.Title, categoryID, cycle, on(n.On), commitment.ParseAmount(n.Amount), n.Tags, n.Notes)
		if err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Added")
	pp.Commitments(n.App.Doc.Lookup(), n.App.Clock(), *created)
	return nil
}

func on(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
