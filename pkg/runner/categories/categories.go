package categories

import (
	"context"
	"errors"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/printers"
)

// Actions the categories runner supports.
const (
	ActionList   = "list"
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionHide   = "hide"
	ActionShow   = "show"
)

type Categories struct {
	Action string
	Name   string
	Color  string

	App *app.Service
}

func (n *Categories) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not manage categories, no app")
	}

	pp := printers.PrettyPrint{}

	switch n.Action {
	case ActionList, "":
		// list below
	case ActionAdd:
		if _, err := n.App.AddCategory(n.Name, n.Color); err != nil {
			return err
		}
	case ActionRemove:
		c, ok := n.App.CategoryByName(n.Name)
		if !ok {
			return errors.New("unknown category: " + n.Name)
		}
		if err := n.App.RemoveCategory(c.ID); err != nil {
			return err
		}
	case ActionHide, ActionShow:
		c, ok := n.App.CategoryByName(n.Name)
		if !ok {
			return errors.New("unknown category: " + n.Name)
		}
		if err := n.App.HideCategory(c.ID, n.Action == ActionHide); err != nil {
			return err
		}
	default:
		return errors.New("unknown action: " + n.Action)
	}

	pp.NewLine()
	pp.Title("Categories")
	pp.Categories(n.App.Categories())
	return nil
}
