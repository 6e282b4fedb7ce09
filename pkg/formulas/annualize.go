package formulas

import (
	"errors"
	"fmt"
	"math"
)

// TradingDaysPerYear is the annualization base: 52 weeks of 5 weekdays.
const TradingDaysPerYear = 260.0

// ErrDegenerateAnnualization is returned when a holding period cannot be
// projected to a full year, eg. because it spans no weekdays.
var ErrDegenerateAnnualization = errors.New("annualized return is undefined")

// Annualize compounds a holding-period growth multiplier over a year of
// TradingDaysPerYear weekdays.
//
// Formula: multiplier^(260/weekdays) - 1
//
// Args:
//
//	multiplier: growth over the holding period (e.g., 1.02 = 2% gain)
//	weekdays: weekdays the position is held
//
// Returns:
//
//	Annualized return as decimal (e.g., 1.8 = 180%)
func Annualize(multiplier float64, weekdays int) (float64, error) {
	if weekdays <= 0 {
		return 0, fmt.Errorf("%w: holding period spans %d weekdays", ErrDegenerateAnnualization, weekdays)
	}

	annualized := math.Pow(multiplier, TradingDaysPerYear/float64(weekdays)) - 1
	if math.IsNaN(annualized) || math.IsInf(annualized, 0) {
		return 0, fmt.Errorf("%w: multiplier %g over %d weekdays", ErrDegenerateAnnualization, multiplier, weekdays)
	}
	return annualized, nil
}
