package options

import (
	"github.com/spf13/cobra"
)

// AddOptions carries the flags for creating a commitment.
type AddOptions struct {
	Category string
	Cycle    string
	Amount   string
	Tags     []string
	Notes    string
	Template string
}

func AddCommitmentArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the category by name.")
	cmd.Flags().StringVar(&o.Cycle, "cycle", "monthly",
		"Specify the cycle: weekly, monthly, yearly, or a day count like 45d.")
	cmd.Flags().StringVarP(&o.Amount, "amount", "a", "",
		`Specify an amount, example: --amount="9.99 USD".`)
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Attach a tag; repeatable.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-form notes.")
	cmd.Flags().StringVarP(&o.Template, "template", "t", "",
		"Instantiate a stored template instead of the flags above.")
}
