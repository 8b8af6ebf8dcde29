package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a commitment",
		Example: `
keep add "Music streaming" --category Entertainment --amount "9.99 USD"
keep add "Standing desk rental" --cycle 45d
keep add --template gym
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && ao.Template == "" {
				return errors.New("a title or --template is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			onT, err := on.GetOn()
			if err != nil {
				return err
			}
			s := add.Add{
				Title:    strings.Join(args, " "),
				Category: ao.Category,
				Cycle:    ao.Cycle,
				On:       onT,
				Amount:   ao.Amount,
				Tags:     ao.Tags,
				Notes:    ao.Notes,
				Template: ao.Template,
				ShowID:   io.ShowID,
				App:      a,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddCommitmentArgs(cmd, ao)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
