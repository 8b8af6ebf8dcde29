package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/keep/pkg/commands/options"
	"tableflip.dev/keep/pkg/runner/archive"
	"tableflip.dev/keep/pkg/runner/end"
	"tableflip.dev/keep/pkg/runner/pause"
	"tableflip.dev/keep/pkg/runner/resume"
)

func addPause(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "pause <id>",
		Short: "Pause an active commitment",
		Example: `
keep pause 171dff69-f8b9-9dca
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := pause.Pause{ID: args[0], ShowID: io.ShowID, App: a}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addResume(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "resume <id>",
		Short: "Resume a paused commitment",
		Example: `
keep resume 171dff69-f8b9-9dca
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := resume.Resume{ID: args[0], ShowID: io.ShowID, App: a}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addEnd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "end <id>",
		Short: "Mark a commitment as ending",
		Long: options.Wrap80("Mark an active commitment as winding down. " +
			"Once the end date passes it is archived automatically."),
		Example: `
keep end 171dff69-f8b9-9dca --on=2026-12-31
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			onT, err := on.GetOn()
			if err != nil {
				return err
			}
			s := end.End{ID: args[0], On: onT, ShowID: io.ShowID, App: a}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addArchive(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a commitment",
		Example: `
keep archive 171dff69-f8b9-9dca
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(context.Background())
			if err != nil {
				return err
			}
			s := archive.Archive{ID: args[0], ShowID: io.ShowID, App: a}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
