package set

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/timeutil"
)

// Fields the set runner knows how to edit.
const (
	FieldTitle      = "title"
	FieldNotes      = "notes"
	FieldCategory   = "category"
	FieldAmount     = "amount"
	FieldCycle      = "cycle"
	FieldStart      = "start"
	FieldReflection = "reflection"
	FieldHidden     = "hidden"
)

type Set struct {
	ID    string
	Field string
	Value string

	ShowID bool
	App    *app.Service
}

func (n *Set) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not set, no app")
	}

	var c *commitment.Commitment
	var err error

	switch n.Field {
	case FieldTitle:
		c, err = n.App.SetTitle(n.ID, n.Value)
	case FieldNotes:
		c, err = n.App.SetNotes(n.ID, n.Value)
	case FieldCategory:
		if n.Value == "" {
			c, err = n.App.SetCategory(n.ID, "")
			break
		}
		cat, ok := n.App.CategoryByName(n.Value)
		if !ok {
			return errors.New("unknown category: " + n.Value)
		}
		c, err = n.App.SetCategory(n.ID, cat.ID)
	case FieldAmount:
		c, err = n.App.SetAmount(n.ID, commitment.ParseAmount(n.Value))
	case FieldCycle:
		var cycle commitment.Cycle
		cycle, err = commitment.ParseCycle(n.Value)
		if err != nil {
			return err
		}
		c, err = n.App.SetCycle(n.ID, cycle)
	case FieldStart:
		var start time.Time
		start, err = time.Parse("2006-01-02", n.Value)
		if err != nil {
			start, err = timeutil.ParseTime(n.Value)
			if err != nil {
				return err
			}
		}
		c, err = n.App.SetStartDate(n.ID, start)
	case FieldReflection:
		var r commitment.Reflection
		r, err = commitment.ParseReflection(n.Value)
		if err != nil {
			return err
		}
		c, err = n.App.SetReflection(n.ID, r)
	case FieldHidden:
		c, err = n.App.SetHidden(n.ID, n.Value != "false")
	default:
		return errors.New("unknown field: " + n.Field)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Updated")
	pp.Commitments(n.App.Doc.Lookup(), n.App.Clock(), *c)
	return nil
}
