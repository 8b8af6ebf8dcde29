// Package commands wires the CLI surface for keep.
package commands

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/keep/pkg/app"
	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/store"
)

var (
	oo      = &options.OutputOptions{}
	verbose = false
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keep",
		Short: options.Wrap80("Track recurring commitments on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log internal diagnostics.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addPause(topLevel)
	addResume(topLevel)
	addEnd(topLevel)
	addArchive(topLevel)
	addSet(topLevel)
	addHistory(topLevel)
	addStats(topLevel)
	addHeatmap(topLevel)
	addCategories(topLevel)
	addLabels(topLevel)
	addFocus(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
}

// newApp opens the persisted document for a command invocation.
func newApp(ctx context.Context) (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.Open(ctx, p, logger())
}

func logger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
