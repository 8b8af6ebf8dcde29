package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/runner/focus"
)

func addFocus(topLevel *cobra.Command) {
	fromStr := ""
	toStr := ""

	cmd := &cobra.Command{
		Use:   "focus [action] [name]",
		Short: "List or manage focus periods",
		Long:  "Focus periods are named stretches of time to review commitments against.",
		Example: `
keep focus
keep focus add "Q1 cleanup" --from=2026-1-1 --to=2026-3-31
keep focus remove "Q1 cleanup"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := focus.Focus{App: a}
			if len(args) > 0 {
				s.Action = args[0]
				s.Name = strings.Join(args[1:], " ")
			}
			if s.From, err = parseDay(fromStr); err != nil {
				return err
			}
			if s.To, err = parseDay(toStr); err != nil {
				return err
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&fromStr, "from", "", "Start of the period (2006-1-2).")
	cmd.Flags().StringVar(&toStr, "to", "", "End of the period (2006-1-2).")

	topLevel.AddCommand(cmd)
}

func parseDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-1-2", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
