package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/timelane"
)

// ScaleOptions holds flags for the scale command.
type ScaleOptions struct {
	*RootOptions
	From  string
	To    string
	Round string
}

// ScaleResult holds the structured output of a single conversion.
type ScaleResult struct {
	Mark   int64  `json:"mark" yaml:"mark"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Round  string `json:"round" yaml:"round"`
	Result int64  `json:"result" yaml:"result"`
}

// NewScaleCommand creates the scale command.
func NewScaleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScaleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scale <mark>",
		Short: "Convert a mark between lanes",
		Long: `Convert an integer mark from one time lane to another.

Toward a coarser lane the result is rounded per --round: "down" picks
the latest coarse mark starting at or before the input, "up" the
earliest coarse mark starting at or after it. Toward a finer lane
"down" picks the first contained fine mark and "up" the last one.

Exit codes:
  0 - Conversion succeeded
  1 - Conversion overflowed the mark range
  2 - Command error (bad mark, lane, or rounding mode)

Examples:
  timelane scale 32 --from day --to month
  timelane scale 2000 --from year --to second --round up
  timelane scale 1 --from second --to nanosecond --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScale(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "source lane (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&opts.To, "to", "", "target lane (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&opts.Round, "round", "down", "rounding mode (down|up)")

	return cmd
}

func runScale(opts *ScaleOptions, markArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	mark, err := strconv.ParseInt(markArg, 10, 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid mark %q", markArg), err)
	}

	from, err := timelane.ParseLane(opts.From)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid source lane", err)
	}
	to, err := timelane.ParseLane(opts.To)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid target lane", err)
	}
	mode, err := timelane.ParseRoundingMode(opts.Round)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid rounding mode", err)
	}

	formatter.VerboseLog("scaling mark %d from %s to %s rounding %s", mark, from, to, mode)

	got, err := timelane.Scale(timelane.Mark(mark), from, to, mode)
	if err != nil {
		if outErr := formatter.Error("E_OVERFLOW", err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "conversion overflowed", err)
	}

	if opts.Format == "text" {
		fmt.Fprintln(cmd.OutOrStdout(), int64(got))
		return nil
	}

	return formatter.Success(ScaleResult{
		Mark:   mark,
		From:   from.String(),
		To:     to.String(),
		Round:  mode.String(),
		Result: int64(got),
	})
}
