// Package returns computes the return profile of single-leg option positions
// held to expiry.
package returns

import (
	"errors"
	"fmt"

	"github.com/aristath/optn/internal/modules/calendar"
	"github.com/aristath/optn/pkg/formulas"
	"github.com/rs/zerolog"
)

// Contract economics
const (
	SharesPerContract     = 100.0
	CommissionPerShare    = 0.005 // flat commission, per share of premium
	CommissionPerContract = CommissionPerShare * SharesPerContract
)

var (
	// ErrExpiryBeforeOpen is returned when a position would expire before it is opened.
	ErrExpiryBeforeOpen = errors.New("expiry date cannot be before the open date")

	// ErrInvalidInput is returned for non-positive strikes or bases and negative premiums.
	ErrInvalidInput = errors.New("invalid position")
)

// Calculator computes the return profile of short puts and covered calls held
// to expiry. It is stateless apart from its logger and safe for concurrent use.
type Calculator struct {
	log zerolog.Logger
}

// NewCalculator creates a new returns calculator.
//
// Parameters:
//   - log: Logger used for debug output, tagged with component=returns
//
// Returns:
//   - *Calculator: Calculator ready for ShortPut and CoveredCall
func NewCalculator(log zerolog.Logger) *Calculator {
	return &Calculator{
		log: log.With().Str("component", "returns").Logger(),
	}
}

// ShortPut calculates the returns of a cash-secured short put that expires
// worthless.
//
// Formula: multiplier = (premium - commission) / strike + 1
//
// Args:
//   - in: Position with open and expiry dates, strike and premium per share
//
// Returns:
//   - *ShortPutReturns: Metrics for one contract
//   - error: ErrInvalidInput, ErrExpiryBeforeOpen or
//     formulas.ErrDegenerateAnnualization when there are no weekdays
func (c *Calculator) ShortPut(in ShortPutInput) (*ShortPutReturns, error) {
	if err := validate(in.Strike, in.Premium); err != nil {
		return nil, err
	}

	weekdays, err := c.holdingPeriod(in.Open, in.Expiry)
	if err != nil {
		return nil, err
	}

	multiplier := (in.Premium-CommissionPerShare)/in.Strike + 1.0

	result := &ShortPutReturns{
		Weekdays:  weekdays,
		Capital:   in.Strike * SharesPerContract,
		MaxValue:  in.Premium*SharesPerContract - CommissionPerContract,
		PctGain:   multiplier - 1.0,
		BreakEven: in.Strike - in.Premium,
	}

	result.PctAnnualized, err = formulas.Annualize(multiplier, weekdays)
	if err != nil {
		return nil, fmt.Errorf("short put %s to %s: %w", in.Open, in.Expiry, err)
	}

	c.log.Debug().
		Float64("strike", in.Strike).
		Float64("premium", in.Premium).
		Int("weekdays", weekdays).
		Float64("pct_annualized", result.PctAnnualized).
		Msg("Calculated short put returns")

	return result, nil
}

// CoveredCall calculates the returns of a covered call. The max scenario has
// the shares called away at the strike, the low scenario keeps the shares and
// only the premium. A zero Basis means the shares were bought at the strike.
//
// Formula:
//
//	max multiplier = 1 + ((strike - basis) + (premium - commission)) / basis
//	low multiplier = 1 + (premium - commission) / basis
//
// Args:
//   - in: Position with open and expiry dates, strike, premium and basis per share
//
// Returns:
//   - *CoveredCallReturns: Metrics for one contract in both scenarios
//   - error: Same errors as ShortPut, or ErrInvalidInput for a negative basis
func (c *Calculator) CoveredCall(in CoveredCallInput) (*CoveredCallReturns, error) {
	if err := validate(in.Strike, in.Premium); err != nil {
		return nil, err
	}

	basis := in.Basis
	if basis == 0 {
		basis = in.Strike
	}
	if basis < 0 {
		return nil, fmt.Errorf("%w: basis must be positive, got %g", ErrInvalidInput, basis)
	}

	weekdays, err := c.holdingPeriod(in.Open, in.Expiry)
	if err != nil {
		return nil, err
	}

	maxGain := (in.Strike - basis) + (in.Premium - CommissionPerShare)
	multiplier := 1.0 + maxGain/basis
	lowGain := in.Premium - CommissionPerShare
	lowMultiplier := 1.0 + lowGain/basis

	result := &CoveredCallReturns{
		Weekdays:   weekdays,
		Capital:    basis * SharesPerContract,
		MaxValue:   maxGain * SharesPerContract,
		PctMaxGain: multiplier - 1.0,
		LowValue:   lowGain * SharesPerContract,
		PctLowGain: lowMultiplier - 1.0,
	}

	result.PctMaxAnnualized, err = formulas.Annualize(multiplier, weekdays)
	if err != nil {
		return nil, fmt.Errorf("covered call %s to %s: %w", in.Open, in.Expiry, err)
	}
	result.PctLowAnnualized, err = formulas.Annualize(lowMultiplier, weekdays)
	if err != nil {
		return nil, fmt.Errorf("covered call %s to %s: %w", in.Open, in.Expiry, err)
	}

	c.log.Debug().
		Float64("strike", in.Strike).
		Float64("premium", in.Premium).
		Float64("basis", basis).
		Int("weekdays", weekdays).
		Float64("pct_max_annualized", result.PctMaxAnnualized).
		Float64("pct_low_annualized", result.PctLowAnnualized).
		Msg("Calculated covered call returns")

	return result, nil
}

// holdingPeriod returns the weekdays in [open, expiry].
func (c *Calculator) holdingPeriod(open, expiry calendar.Date) (int, error) {
	if expiry.Before(open) {
		return 0, fmt.Errorf("%w: open %s, expiry %s", ErrExpiryBeforeOpen, open, expiry)
	}
	weekdays := calendar.WeekdaysBetween(open, expiry)
	c.log.Debug().
		Str("open", open.String()).
		Str("expiry", expiry.String()).
		Int("weekdays", weekdays).
		Msg("Counted weekdays in market")
	return weekdays, nil
}

func validate(strike, premium float64) error {
	if strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidInput, strike)
	}
	if premium < 0 {
		return fmt.Errorf("%w: premium cannot be negative, got %g", ErrInvalidInput, premium)
	}
	return nil
}
