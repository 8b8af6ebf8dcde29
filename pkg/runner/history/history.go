package history

import (
	"context"
	"errors"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/printers"
)

type History struct {
	ID  string
	App *app.Service
}

func (n *History) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not show history, no app")
	}
	entries, err := n.App.History(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("History")
	pp.History(entries)
	return nil
}
