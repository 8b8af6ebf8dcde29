package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures the list-narrowing flags shared by read commands.
type FilterOptions struct {
	Statuses   []string
	Categories []string
	Cycles     []string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringSliceVar(&o.Statuses, "status", nil,
		"Filter by status, example: --status=active,paused.")
	cmd.Flags().StringSliceVar(&o.Categories, "category", nil,
		"Filter by category name.")
	cmd.Flags().StringSliceVar(&o.Cycles, "cycle", nil,
		"Filter by cycle, example: --cycle=monthly.")
}

// SortOptions
type SortOptions struct {
	By         string
	Descending bool
}

func AddSortArgs(cmd *cobra.Command, o *SortOptions) {
	cmd.Flags().StringVar(&o.By, "sort", "",
		"Sort by one of: next, duration, amount, status, title, category, created.")
	cmd.Flags().BoolVar(&o.Descending, "desc", false,
		"Reverse the sort direction.")
}
