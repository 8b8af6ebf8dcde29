package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/heatmap"
)

func addHeatmap(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	year := false

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Calendar grid of scheduled occurrences",
		Example: `
keep heatmap
keep heatmap --on=2026-3-1
keep heatmap --year
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			onT, err := on.GetOn()
			if err != nil {
				return err
			}
			s := heatmap.Heatmap{On: onT, Year: year, App: a}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().BoolVar(&year, "year", false, "Show all twelve months of the year.")

	topLevel.AddCommand(cmd)
}
