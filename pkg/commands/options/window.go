package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		`Trailing window, example: --window=6m or --window=1y.`)
}
