package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show a commitment's audit trail",
		Example: `
keep history 171dff69-f8b9-9dca
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := history.History{ID: args[0], App: a}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}
