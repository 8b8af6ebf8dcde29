package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summaries and time series over your commitments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(stats.ModeSummary, "")
		},
	}

	for _, mode := range []struct {
		name  string
		short string
	}{
		{stats.ModeSummary, "Counts, active-duration spread, and review distribution."},
		{stats.ModeTrends, "Commitments per category per month."},
		{stats.ModeGrowth, "Created, archived, and net count per month."},
		{stats.ModeActivity, "Scheduled occurrences per day."},
	} {
		addStatsMode(cmd, mode.name, mode.short)
	}

	topLevel.AddCommand(cmd)
}

func addStatsMode(topLevel *cobra.Command, mode, short string) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   mode,
		Short: short,
		Example: `
keep stats ` + mode + ` --window=6m
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(mode, wo.Window)
		},
	}
	options.AddWindowArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}

func runStats(mode, window string) error {
	a, err := newApp(context.Background())
	if err != nil {
		return err
	}
	s := stats.Stats{Mode: mode, Window: window, App: a}
	return oo.HandleError(s.Do(context.Background()))
}
