package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/runner/labels"
)

func addLabels(topLevel *cobra.Command) {
	color := ""

	cmd := &cobra.Command{
		Use:     "labels [action] [name]",
		Aliases: []string{"label"},
		Short:   "List or manage personal labels",
		Example: `
keep labels
keep labels add vital --color="#cc0000"
keep labels remove vital
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := labels.Labels{App: a, Color: color}
			if len(args) > 0 {
				s.Action = args[0]
				s.Name = strings.Join(args[1:], " ")
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "Hex color for a new label.")

	topLevel.AddCommand(cmd)
}
