package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/aristath/optn/internal/modules/calendar"
	"github.com/aristath/optn/internal/modules/report"
	"github.com/aristath/optn/internal/modules/returns"
	"github.com/aristath/optn/pkg/formulas"
	"github.com/spf13/cobra"
)

const (
	expiryBeforeOpenMessage = "Error: Expiry date cannot be before the open date!"
	noWeekdaysMessage       = "Error: No weekdays between %s and %s, the annualized return is undefined!"
)

// positionFlags are the flags shared by sp and cc.
type positionFlags struct {
	open    string
	expiry  string
	strike  float64
	premium float64
	basis   float64
}

func (f *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.open, "open", "o", "", "date the position was opened (defaults to today)")
	cmd.Flags().StringVarP(&f.expiry, "expiry", "e", "", "date the option expires (defaults to next Friday)")
	cmd.Flags().Float64VarP(&f.strike, "strike", "s", 0, "strike price of the option")
	cmd.Flags().Float64VarP(&f.premium, "premium", "p", 0, "premium from the sale")
	_ = cmd.MarkFlagRequired("strike")
	_ = cmd.MarkFlagRequired("premium")
}

// position holds validated flag values with resolved dates.
type position struct {
	open    calendar.Date
	expiry  calendar.Date
	strike  float64
	premium float64
}

// resolve validates the numeric flags and resolves the date expressions
// against today. A missing expiry defaults to the next Friday from today.
func (a *app) resolve(f *positionFlags) (position, error) {
	if math.IsNaN(f.strike) || math.IsInf(f.strike, 0) || f.strike <= 0 {
		return position{}, fmt.Errorf("invalid --strike %g: must be a positive number", f.strike)
	}
	if math.IsNaN(f.premium) || math.IsInf(f.premium, 0) || f.premium < 0 {
		return position{}, fmt.Errorf("invalid --premium %g: must not be negative", f.premium)
	}

	today := a.today()

	open, err := calendar.Resolve(f.open, today)
	if err != nil {
		return position{}, fmt.Errorf("invalid --open: %w", err)
	}

	expiry := calendar.NextFriday(today)
	if f.expiry != "" {
		if expiry, err = calendar.Resolve(f.expiry, today); err != nil {
			return position{}, fmt.Errorf("invalid --expiry: %w", err)
		}
	}

	a.log.Debug().
		Str("today", today.String()).
		Str("open", open.String()).
		Str("expiry", expiry.String()).
		Msg("Resolved position dates")

	return position{open: open, expiry: expiry, strike: f.strike, premium: f.premium}, nil
}

// reportable prints the user errors that end a calculation without metrics
// and reports whether err was one of them.
func reportable(cmd *cobra.Command, p position, err error) bool {
	switch {
	case errors.Is(err, returns.ErrExpiryBeforeOpen):
		fmt.Fprintln(cmd.OutOrStdout(), expiryBeforeOpenMessage)
		return true
	case errors.Is(err, formulas.ErrDegenerateAnnualization):
		fmt.Fprintf(cmd.OutOrStdout(), noWeekdaysMessage+"\n", p.open, p.expiry)
		return true
	}
	return false
}

func newShortPutCmd(a *app) *cobra.Command {
	var flags positionFlags

	cmd := &cobra.Command{
		Use:   "sp",
		Short: "Calculate returns for a short put option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			p, err := a.resolve(&flags)
			if err != nil {
				return err
			}

			result, err := a.calc.ShortPut(returns.ShortPutInput{
				Open:    p.open,
				Expiry:  p.expiry,
				Strike:  p.strike,
				Premium: p.premium,
			})
			if err != nil {
				if reportable(cmd, p, err) {
					return nil
				}
				return err
			}

			return report.WriteShortPut(cmd.OutOrStdout(), result)
		},
	}
	flags.register(cmd)

	return cmd
}

func newCoveredCallCmd(a *app) *cobra.Command {
	var flags positionFlags

	cmd := &cobra.Command{
		Use:   "cc",
		Short: "Calculate returns for a covered call option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if cmd.Flags().Changed("basis") && (math.IsNaN(flags.basis) || math.IsInf(flags.basis, 0) || flags.basis <= 0) {
				return fmt.Errorf("invalid --basis %g: must be a positive number", flags.basis)
			}

			p, err := a.resolve(&flags)
			if err != nil {
				return err
			}

			result, err := a.calc.CoveredCall(returns.CoveredCallInput{
				Open:    p.open,
				Expiry:  p.expiry,
				Strike:  p.strike,
				Premium: p.premium,
				Basis:   flags.basis,
			})
			if err != nil {
				if reportable(cmd, p, err) {
					return nil
				}
				return err
			}

			return report.WriteCoveredCall(cmd.OutOrStdout(), result)
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64VarP(&flags.basis, "basis", "b", 0, "cost basis (defaults to the strike price)")

	return cmd
}
