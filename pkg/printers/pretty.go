// Package printers renders commitments and analytics to the terminal.
package printers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/keep/pkg/analytics"
	"tableflip.dev/keep/pkg/category"
	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/ledger"
)

type PrettyPrint struct {
	ShowID bool
}

const layoutUS = "January 2, 2006"

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Fprintln(color.Output, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Fprint(color.Output, title)
	_, _ = c.Fprintf(color.Output, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " commitment")
	default:
		_, _ = c.Fprintln(color.Output, " commitments")
	}
}

// Commitments renders the list as a table. The status cell is colored by
// lifecycle state and next occurrence is relative to now.
func (pp *PrettyPrint) Commitments(lookup category.Lookup, now time.Time, list ...commitment.Commitment) {
	if len(list) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "

	head := []interface{}{
		bold.Sprint("Title"), bold.Sprint("Category"), bold.Sprint("Cycle"),
		bold.Sprint("Amount"), bold.Sprint("Status"), bold.Sprint("Next"), bold.Sprint("Active"),
	}
	if pp.ShowID {
		head = append([]interface{}{bold.Sprint("ID")}, head...)
	}
	tbl.AddRow(head...)

	for _, c := range list {
		row := []interface{}{
			c.Title,
			lookup.ResolveName(c.CategoryID),
			c.Cycle.String(),
			commitment.DisplayAmount(c.Amount),
			statusCell(c.Status),
			nextCell(&c, now),
			Days(c.ActiveDuration(now)),
		}
		if pp.ShowID {
			row = append([]interface{}{shortID(c.ID)}, row...)
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Detail renders a single commitment with its full field set.
func (pp *PrettyPrint) Detail(c *commitment.Commitment, lookup category.Lookup, now time.Time) {
	pp.Title(c.Title)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("id", c.ID)
	tbl.AddRow("category", lookup.ResolveName(c.CategoryID))
	tbl.AddRow("cycle", c.Cycle.String())
	tbl.AddRow("amount", commitment.DisplayAmount(c.Amount))
	tbl.AddRow("status", statusCell(c.Status))
	tbl.AddRow("started", c.StartDate.Local().Format(layoutUS))
	tbl.AddRow("next", nextCell(c, now))
	tbl.AddRow("active", Days(c.ActiveDuration(now)))
	if paused := c.TotalPaused(); paused > 0 {
		tbl.AddRow("paused total", Days(paused))
	}
	tbl.AddRow("reflection", c.Reflection.String())
	if len(c.Tags) > 0 {
		tbl.AddRow("tags", strings.Join(c.Tags, ", "))
	}
	if c.Notes != "" {
		tbl.AddRow("notes", c.Notes)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// History renders ledger entries, expected newest-first.
func (pp *PrettyPrint) History(entries []ledger.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		change := ""
		switch {
		case e.From != "" || e.To != "":
			change = fmt.Sprintf("%s -> %s", e.From, e.To)
		case e.Note != "":
			change = e.Note
		}
		tbl.AddRow(faint.Sprint(e.At.Local().Format(layoutUS)), string(e.Kind), change)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Categories renders the category list, hidden ones faint.
func (pp *PrettyPrint) Categories(categories []category.Category) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Color"), bold.Sprint(""))
	for _, c := range categories {
		note := ""
		if c.System {
			note = "system"
		}
		if c.Hidden {
			tbl.AddRow(faint.Sprint(c.Name), faint.Sprint(c.Color), faint.Sprint("hidden"))
			continue
		}
		tbl.AddRow(c.Name, c.Color, note)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Summary renders the snapshot reductions.
func (pp *PrettyPrint) Summary(s analytics.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("commitments", fmt.Sprintf("%d", s.Count))
	tbl.AddRow("archived", fmt.Sprintf("%d", s.ArchivedCount))
	tbl.AddRow("avg active", Days(s.AvgActive))
	tbl.AddRow("min active", Days(s.MinActive))
	tbl.AddRow("max active", Days(s.MaxActive))
	if s.TopArchiveReason != "" {
		tbl.AddRow("top archive reason", s.TopArchiveReason)
	}

	refs := make([]commitment.Reflection, 0, len(s.ReflectionCounts))
	for r := range s.ReflectionCounts {
		refs = append(refs, r)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].String() < refs[j].String() })
	for _, r := range refs {
		tbl.AddRow(r.String(), fmt.Sprintf("%d (%.0f%%)", s.ReflectionCounts[r], s.ReflectionShares[r]))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Trends renders per-month category counts, one column per category.
func (pp *PrettyPrint) Trends(points []analytics.TrendPoint) {
	if len(points) == 0 {
		return
	}

	names := make(map[string]bool)
	for _, p := range points {
		for name := range p.Counts {
			names[name] = true
		}
	}
	cols := make([]string, 0, len(names))
	for name := range names {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	head := []interface{}{bold.Sprint("Month")}
	for _, name := range cols {
		head = append(head, bold.Sprint(name))
	}
	tbl.AddRow(head...)
	for _, p := range points {
		row := []interface{}{p.Month.Format("Jan 2006")}
		for _, name := range cols {
			row = append(row, fmt.Sprintf("%d", p.Counts[name]))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Growth renders created/archived/net per month.
func (pp *PrettyPrint) Growth(points []analytics.GrowthPoint) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Month"), bold.Sprint("Created"), bold.Sprint("Archived"), bold.Sprint("Net"))
	for _, p := range points {
		tbl.AddRow(p.Month.Format("Jan 2006"),
			fmt.Sprintf("%d", p.Created),
			fmt.Sprintf("%d", p.Archived),
			fmt.Sprintf("%d", p.Net))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Days formats a duration in whole days, the natural unit for cycles.
func Days(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func statusCell(s commitment.Status) string {
	switch s.Kind {
	case commitment.Active:
		return color.New(color.FgGreen).Sprint(s.String())
	case commitment.Paused:
		return color.New(color.FgYellow).Sprint(s.String())
	case commitment.Ending:
		return color.New(color.FgHiMagenta).Sprint(s.String())
	case commitment.Archived:
		return color.New(color.Faint).Sprint(s.String())
	}
	return s.String()
}

func nextCell(c *commitment.Commitment, now time.Time) string {
	if c.Status.Kind == commitment.Archived {
		return color.New(color.Faint).Sprint("-")
	}
	if c.Status.Kind == commitment.Paused {
		return color.New(color.Faint, color.Italic).Sprint("paused")
	}
	next := c.NextOccurrence.Local()
	in := next.Sub(now)
	if in < 0 {
		in = 0
	}
	return fmt.Sprintf("%s (in %s)", next.Format("Jan 2"), Days(in))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
