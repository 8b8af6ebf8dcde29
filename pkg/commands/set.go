package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit a commitment field",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, field := range []struct {
		name  string
		short string
	}{
		{set.FieldTitle, "Rename a commitment."},
		{set.FieldNotes, "Replace the notes."},
		{set.FieldCategory, "Reassign the category by name."},
		{set.FieldAmount, `Set the amount, example: "12.50 EUR". Empty clears it.`},
		{set.FieldCycle, "Change the cycle: weekly, monthly, yearly, or 45d."},
		{set.FieldStart, "Move the start date (2006-01-02)."},
		{set.FieldReflection, "Record a review: yes, neutral, or no."},
		{set.FieldHidden, "Hide or show a commitment: true or false."},
	} {
		addSetField(cmd, field.name, field.short)
	}

	topLevel.AddCommand(cmd)
}

func addSetField(topLevel *cobra.Command, field, short string) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   field + " <id> [value]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := set.Set{
				ID:     args[0],
				Field:  field,
				Value:  strings.Join(args[1:], " "),
				ShowID: io.ShowID,
				App:    a,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
