package archive

import (
	"context"
	"errors"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/printers"
)

type Archive struct {
	ID     string
	ShowID bool
	App    *app.Service
}

func (n *Archive) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not archive, no app")
	}
	c, err := n.App.Archive(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Archived")
	pp.Commitments(n.App.Doc.Lookup(), n.App.Clock(), *c)
	return nil
}
