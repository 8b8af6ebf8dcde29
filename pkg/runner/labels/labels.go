package labels

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/keep/pkg/app"
)

const (
	ActionList   = "list"
	ActionAdd    = "add"
	ActionRemove = "remove"
)

type Labels struct {
	Action string
	Name   string
	Color  string

	App *app.Service
}

func (n *Labels) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not manage labels, no app")
	}

	switch n.Action {
	case ActionList, "":
	case ActionAdd:
		if _, err := n.App.AddLabel(n.Name, n.Color); err != nil {
			return err
		}
	case ActionRemove:
		if err := n.App.RemoveLabel(n.Name); err != nil {
			return err
		}
	default:
		return errors.New("unknown action: " + n.Action)
	}

	labels := n.App.Labels()
	if len(labels) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, "\n none\n\n")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, l := range labels {
		tbl.AddRow(l.Name, l.Color)
	}
	_, _ = fmt.Fprintln(color.Output, "")
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
