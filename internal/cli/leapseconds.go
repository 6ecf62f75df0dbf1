package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/timelane"
	"github.com/roach88/timelane/internal/leapsec"
)

// LeapSecondRow describes one announced leap second.
type LeapSecondRow struct {
	// Date is the UTC minute the leap second extends, e.g.
	// "1972-06-30 23:59 UTC".
	Date string `json:"date" yaml:"date"`

	// Minute is the mark of that minute on the minute lane.
	Minute int64 `json:"minute" yaml:"minute"`
}

// NewLeapSecondsCommand creates the leapseconds command.
func NewLeapSecondsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leapseconds",
		Short: "List the announced leap seconds",
		Long: `List every leap second the conversions account for.

Each line names the UTC minute that ran 61 seconds, together with its
mark on the minute lane.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeapSeconds(rootOpts, cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	return cmd
}

func runLeapSeconds(opts *RootOptions, cmd *cobra.Command) error {
	rows, err := leapSecondRows()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to render leap second table", err)
	}

	if opts.Format == "text" {
		w := cmd.OutOrStdout()
		for _, row := range rows {
			fmt.Fprintf(w, "%s  minute %d  +1s\n", row.Date, row.Minute)
		}
		return nil
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(rows)
}

// leapSecondRows renders every table entry as a calendar date via the
// public conversion API.
func leapSecondRows() ([]LeapSecondRow, error) {
	table := leapsec.Table()
	rows := make([]LeapSecondRow, 0, len(table))
	for _, e := range table {
		date, err := renderMinute(e.Minute)
		if err != nil {
			return nil, err
		}
		rows = append(rows, LeapSecondRow{Date: date, Minute: e.Minute})
	}
	return rows, nil
}

// renderMinute formats a minute mark as "YYYY-MM-DD hh:mm UTC".
func renderMinute(minute int64) (string, error) {
	m := timelane.Mark(minute)

	day, err := timelane.Scale(m, timelane.Minute, timelane.Day, timelane.RoundDown)
	if err != nil {
		return "", err
	}
	month, err := timelane.Scale(day, timelane.Day, timelane.Month, timelane.RoundDown)
	if err != nil {
		return "", err
	}
	year, err := timelane.Scale(month, timelane.Month, timelane.Year, timelane.RoundDown)
	if err != nil {
		return "", err
	}

	yearFirstMonth, err := timelane.Scale(year, timelane.Year, timelane.Month, timelane.RoundDown)
	if err != nil {
		return "", err
	}
	monthFirstDay, err := timelane.Scale(month, timelane.Month, timelane.Day, timelane.RoundDown)
	if err != nil {
		return "", err
	}
	dayFirstMinute, err := timelane.Scale(day, timelane.Day, timelane.Minute, timelane.RoundDown)
	if err != nil {
		return "", err
	}

	monthOfYear := int64(month-yearFirstMonth) + 1
	dayOfMonth := int64(day-monthFirstDay) + 1
	minuteOfDay := minute - int64(dayFirstMinute)

	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d UTC",
		int64(year), monthOfYear, dayOfMonth, minuteOfDay/60, minuteOfDay%60), nil
}
