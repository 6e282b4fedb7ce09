// Package cli wires the optn command tree: flag parsing, date resolution and
// rendering around the returns calculator.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/aristath/optn/internal/modules/calendar"
	"github.com/aristath/optn/internal/modules/returns"
	"github.com/aristath/optn/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Options holds the dependencies of the command tree. Zero values are replaced
// by defaults in NewRootCommand, except Log.
//
// Fields:
//   - Log: Base logger passed to the calculator and the commands
//   - Today: Clock for date expressions, injectable for tests
//   - Out: Writer for reports, help and user facing error messages
//   - Err: Writer for cobra usage output on flag errors
type Options struct {
	// Log is required, use zerolog.Nop() to discard.
	Log zerolog.Logger

	// Today returns the reference date for date expressions and defaults.
	// Defaults to the local calendar date.
	Today func() calendar.Date

	Out io.Writer // report output, defaults to stdout
	Err io.Writer // help and usage on errors, defaults to stderr
}

// app is shared by all subcommands.
type app struct {
	log   zerolog.Logger
	today func() calendar.Date
	calc  *returns.Calculator
}

// NewRootCommand creates the optn root command with the sp and cc subcommands.
// Without a subcommand it prints help. Errors are returned from Execute and
// not printed, so the caller decides how to report them.
//
// Parameters:
//   - opts: Command dependencies, see Options for defaults
//
// Returns:
//   - *cobra.Command: Root command ready for Execute
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Today == nil {
		opts.Today = func() calendar.Date { return calendar.FromTime(time.Now()) }
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	a := &app{
		log:   opts.Log.With().Str("component", "cli").Logger(),
		today: opts.Today,
		calc:  returns.NewCalculator(opts.Log),
	}

	var logLevel string
	root := &cobra.Command{
		Use:   "optn",
		Short: "Calculate option returns.",
		Long: `Calculate the returns of a cash-secured short put or a covered call held
to expiry, annualized over a 260 weekday year.

Dates may be given as:
  YYYY-MM-DD   a full date
  MM-DD        a date in the current year
  DD           a day in the current month
  t+N / t-N    N days from / before today`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") {
				return nil
			}
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the log level (debug, info, warn, error, disabled)")

	root.AddCommand(newShortPutCmd(a), newCoveredCallCmd(a))
	return root
}
