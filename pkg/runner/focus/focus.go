package focus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/state"
	"tableflip.dev/keep/pkg/timeutil"
)

const (
	ActionList   = "list"
	ActionAdd    = "add"
	ActionRemove = "remove"
)

type Focus struct {
	Action string
	Name   string
	From   *time.Time
	To     *time.Time

	App *app.Service
}

func (n *Focus) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not manage focus periods, no app")
	}

	switch n.Action {
	case ActionList, "":
	case ActionAdd:
		p := state.FocusPeriod{Name: n.Name}
		if n.From != nil {
			p.Start = timeutil.At(*n.From)
		}
		if n.To != nil {
			p.End = timeutil.At(*n.To)
		}
		if _, err := n.App.AddFocusPeriod(p); err != nil {
			return err
		}
	case ActionRemove:
		if err := n.App.RemoveFocusPeriod(n.Name); err != nil {
			return err
		}
	default:
		return errors.New("unknown action: " + n.Action)
	}

	periods := n.App.FocusPeriods()
	if len(periods) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, "\n none\n\n")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range periods {
		tbl.AddRow(p.Name, span(p))
	}
	_, _ = fmt.Fprintln(color.Output, "")
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

func span(p state.FocusPeriod) string {
	const layout = "Jan 2, 2006"
	switch {
	case p.Start.IsZero() && p.End.IsZero():
		return "open"
	case p.End.IsZero():
		return p.Start.Local().Format(layout) + " -"
	case p.Start.IsZero():
		return "- " + p.End.Local().Format(layout)
	}
	return p.Start.Local().Format(layout) + " - " + p.End.Local().Format(layout)
}
