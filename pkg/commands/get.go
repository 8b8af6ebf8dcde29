package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	so := &options.SortOptions{}

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get all or a filtered set of commitments",
		Example: `
keep get
keep get --status active --sort amount --desc
keep get 171dff69-f8b9-9dca
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:     io.ShowID,
				Statuses:   fo.Statuses,
				Categories: fo.Categories,
				Cycles:     fo.Cycles,
				SortBy:     so.By,
				Descending: so.Descending,
				App:        a,
			}
			if len(args) > 0 {
				s.ID = args[0]
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddSortArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
