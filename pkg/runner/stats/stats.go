package stats

import (
	"context"
	"errors"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/timeutil"
)

// Modes select which reduction to print.
const (
	ModeSummary  = "summary"
	ModeTrends   = "trends"
	ModeGrowth   = "growth"
	ModeActivity = "activity"
)

type Stats struct {
	Mode string
	// Window is a trailing window like "6m" or "1y"; empty uses the
	// stored preference.
	Window string

	App *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not compute stats, no app")
	}

	months := n.App.Doc.Preferences.WindowMonths
	if months <= 0 {
		months = timeutil.DefaultMonths
	}
	if n.Window != "" {
		m, err := timeutil.ParseMonths(n.Window)
		if err != nil {
			return err
		}
		months = m
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()

	switch n.Mode {
	case ModeSummary, "":
		pp.Title("Summary")
		pp.Summary(n.App.Summary())
	case ModeTrends:
		pp.Title("Category trends")
		pp.Trends(n.App.Trends(months))
	case ModeGrowth:
		pp.Title("Growth")
		pp.Growth(n.App.Growth(months))
	case ModeActivity:
		pp.Title("Activity")
		pp.Activity(n.App.Activity(months))
	default:
		return errors.New("unknown stats mode: " + n.Mode)
	}
	return nil
}
