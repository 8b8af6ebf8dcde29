package resume

import (
	"context"
	"errors"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/printers"
)

type Resume struct {
	ID     string
	ShowID bool
	App    *app.Service
}

func (n *Resume) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not resume, no app")
	}
	c, err := n.App.Resume(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Resumed")
	pp.Commitments(n.App.Doc.Lookup(), n.App.Clock(), *c)
	return nil
}
