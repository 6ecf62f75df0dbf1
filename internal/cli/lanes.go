package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/timelane"
)

// NewLanesCommand creates the lanes command.
func NewLanesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lanes",
		Short: "List the lanes from finest to coarsest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanes(rootOpts, cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	return cmd
}

func runLanes(opts *RootOptions, cmd *cobra.Command) error {
	names := make([]string, 0, len(timelane.Lanes()))
	for _, lane := range timelane.Lanes() {
		names = append(names, lane.String())
	}

	if opts.Format == "text" {
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(names)
}
