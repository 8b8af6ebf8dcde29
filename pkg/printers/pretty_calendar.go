package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/keep/pkg/analytics"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Heatmap prints one calendar month as a day grid. Days with no scheduled
// occurrences are faint, busy days get progressively bolder.
func (pp *PrettyPrint) Heatmap(hm analytics.Heatmap) {
	tf := color.New(color.FgWhite, color.Italic)

	m := hm.Month.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(color.Output, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	d := time.Weekday(hm.LeadingPad)
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(color.Output, "   ")
	}

	l0 := color.New(color.Faint, color.FgWhite)
	l1 := color.New(color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i, count := range hm.Counts {
		switch {
		case count == 0:
			_, _ = l0.Fprintf(color.Output, "%2d ", i+1)
		case hm.Max > 1 && count == hm.Max:
			_, _ = l2.Fprintf(color.Output, "%2d ", i+1)
		default:
			_, _ = l1.Fprintf(color.Output, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(color.Output, "\n")
		}
	}
	_, _ = fmt.Fprint(color.Output, "\n\n")
}

// HeatmapYear prints the trailing twelve month grids.
func (pp *PrettyPrint) HeatmapYear(grids []analytics.Heatmap) {
	for _, hm := range grids {
		pp.Heatmap(hm)
	}
}

// Activity prints the daily occurrence series as a sparse list, skipping
// empty days so long windows stay readable.
func (pp *PrettyPrint) Activity(series []analytics.DayCount) {
	faint := color.New(color.Faint)
	busy := 0
	for _, p := range series {
		if p.Count == 0 {
			continue
		}
		busy++
		_, _ = fmt.Fprintf(color.Output, "%s  %d\n", p.Day.Format("Jan 2, 2006"), p.Count)
	}
	if busy == 0 {
		_, _ = faint.Fprintln(color.Output, " no scheduled occurrences in window")
	}
	pp.NewLine()
}
