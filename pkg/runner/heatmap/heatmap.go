package heatmap

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/keep/pkg/analytics"
	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/printers"
	"tableflip.dev/keep/pkg/timeutil"
)

type Heatmap struct {
	// On selects the month to render; nil means the current month.
	On   *time.Time
	Year bool

	App *app.Service
}

func (n *Heatmap) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not render heatmap, no app")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()

	on := n.App.Clock()
	if n.On != nil {
		on = *n.On
	}

	if n.Year {
		month := timeutil.MonthStart(time.Date(on.Year(), time.January, 1, 0, 0, 0, 0, on.Location()))
		grids := make([]analytics.Heatmap, 0, 12)
		for i := 0; i < 12; i++ {
			grids = append(grids, n.App.Heatmap(month))
			month = timeutil.NextMonth(month)
		}
		pp.HeatmapYear(grids)
		return nil
	}

	pp.Heatmap(n.App.Heatmap(on))
	return nil
}
