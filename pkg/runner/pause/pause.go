package pause

import (
	"context"
	"errors"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/printers"
)

type Pause struct {
	ID     string
	ShowID bool
	App    *app.Service
}

func (n *Pause) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not pause, no app")
	}
	c, err := n.App.Pause(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Paused")
	pp.Commitments(n.App.Doc.Lookup(), n.App.Clock(), *c)
	return nil
}
