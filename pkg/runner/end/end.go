package end

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/printers"
)

type End struct {
	ID string
	// On is the wind-down deadline; nil lets the app pick its default.
	On     *time.Time
	ShowID bool
	App    *app.Service
}

func (n *End) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not end, no app")
	}
	endDate := time.Time{}
	if n.On != nil {
		endDate = *n.On
	}
	c, err := n.App.End(n.ID, endDate)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Ending")
	pp.Commitments(n.App.Doc.Lookup(), n.App.Clock(), *c)
	return nil
}
