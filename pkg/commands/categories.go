package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	color := ""

	cmd := &cobra.Command{
		Use:     "categories [action] [name]",
		Aliases: []string{"category", "cat"},
		Short:   "List or manage categories",
		Long: `List, add, remove, hide, or show categories.
System categories cannot be removed.`,
		Example: `
keep categories
keep categories add Hobbies --color="#3366ff"
keep categories hide Finance
keep categories remove Hobbies
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := categories.Categories{App: a, Color: color}
			if len(args) > 0 {
				s.Action = args[0]
				s.Name = strings.Join(args[1:], " ")
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&color, "color", "", `Hex color for a new category, example: --color="#3366ff".`)

	topLevel.AddCommand(cmd)
}
