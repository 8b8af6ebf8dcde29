package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/backup"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the full document",
		Long:  options.Wrap80("Write the whole document to a file, or stdout when no file is given."),
		Example: `
keep export backup.json
keep export > backup.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := backup.Backup{App: a}
			if len(args) > 0 {
				s.Path = args[0]
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the document from an export",
		Long: options.Wrap80("Validate an exported file and replace the current document with it. " +
			"A file that fails to decode is rejected and nothing changes."),
		Example: `
keep import backup.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := backup.Backup{Import: true, Path: args[0], App: a}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(cmd)
}
