package returns

import (
	"math"
	"testing"
	"time"

	"github.com/aristath/optn/internal/modules/calendar"
	"github.com/aristath/optn/pkg/formulas"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

var (
	monday   = calendar.MustNew(2024, time.January, 1)
	friday   = calendar.MustNew(2024, time.January, 5)
	saturday = calendar.MustNew(2024, time.January, 6)
	sunday   = calendar.MustNew(2024, time.January, 7)
)

func newTestCalculator() *Calculator {
	return NewCalculator(zerolog.Nop())
}

func TestShortPut(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.ShortPut(ShortPutInput{
		Open:    monday,
		Expiry:  friday,
		Strike:  100,
		Premium: 2.0,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Weekdays)
	assert.InDelta(t, 10000.0, result.Capital, tolerance)
	assert.InDelta(t, 199.50, result.MaxValue, tolerance)
	assert.InDelta(t, 0.01995, result.PctGain, tolerance)
	assert.InDelta(t, math.Pow(1.01995, 52)-1, result.PctAnnualized, tolerance)
	assert.InDelta(t, 98.0, result.BreakEven, tolerance)
}

func TestShortPutFullYearAnnualizesToGain(t *testing.T) {
	calc := newTestCalculator()

	// 2024-01-01 .. 2024-12-27 spans exactly 260 weekdays.
	result, err := calc.ShortPut(ShortPutInput{
		Open:    monday,
		Expiry:  calendar.MustNew(2024, time.December, 27),
		Strike:  40,
		Premium: 4.005,
	})
	require.NoError(t, err)

	assert.Equal(t, 260, result.Weekdays)
	assert.InDelta(t, 0.10, result.PctGain, tolerance)
	assert.InDelta(t, result.PctGain, result.PctAnnualized, tolerance)
}

func TestShortPutExpiryBeforeOpen(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.ShortPut(ShortPutInput{
		Open:    friday,
		Expiry:  monday,
		Strike:  100,
		Premium: 2.0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiryBeforeOpen)
	assert.Nil(t, result)
}

func TestShortPutNoWeekdays(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name   string
		open   calendar.Date
		expiry calendar.Date
	}{
		{name: "same saturday", open: saturday, expiry: saturday},
		{name: "weekend", open: saturday, expiry: sunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.ShortPut(ShortPutInput{Open: tt.open, Expiry: tt.expiry, Strike: 100, Premium: 1})
			require.Error(t, err)
			assert.ErrorIs(t, err, formulas.ErrDegenerateAnnualization)
			assert.Nil(t, result)
		})
	}
}

func TestShortPutSameWeekday(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.ShortPut(ShortPutInput{Open: friday, Expiry: friday, Strike: 20, Premium: 0.105})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Weekdays)
	assert.InDelta(t, math.Pow(1.005, 260)-1, result.PctAnnualized, tolerance)
}

func TestShortPutInvalidInput(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name    string
		strike  float64
		premium float64
	}{
		{name: "zero strike", strike: 0, premium: 1},
		{name: "negative strike", strike: -10, premium: 1},
		{name: "negative premium", strike: 10, premium: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.ShortPut(ShortPutInput{Open: monday, Expiry: friday, Strike: tt.strike, Premium: tt.premium})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCoveredCallDefaultBasis(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.CoveredCall(CoveredCallInput{
		Open:    monday,
		Expiry:  friday,
		Strike:  50,
		Premium: 1.0,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Weekdays)
	assert.InDelta(t, 5000.0, result.Capital, tolerance)
	assert.InDelta(t, 99.5, result.MaxValue, tolerance)
	assert.InDelta(t, 0.0199, result.PctMaxGain, tolerance)
	assert.InDelta(t, 99.5, result.LowValue, tolerance)
	assert.InDelta(t, 0.0199, result.PctLowGain, tolerance)
	assert.InDelta(t, math.Pow(1.0199, 52)-1, result.PctMaxAnnualized, tolerance)
	assert.InDelta(t, result.PctMaxAnnualized, result.PctLowAnnualized, tolerance)
}

func TestCoveredCallWithBasis(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.CoveredCall(CoveredCallInput{
		Open:    monday,
		Expiry:  calendar.MustNew(2024, time.January, 12),
		Strike:  50,
		Premium: 1.0,
		Basis:   45,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.Weekdays)
	assert.InDelta(t, 4500.0, result.Capital, tolerance)
	assert.InDelta(t, 599.5, result.MaxValue, tolerance)
	assert.InDelta(t, 5.995/45, result.PctMaxGain, tolerance)
	assert.InDelta(t, math.Pow(1+5.995/45, 26)-1, result.PctMaxAnnualized, tolerance)
	assert.InDelta(t, 99.5, result.LowValue, tolerance)
	assert.InDelta(t, 0.995/45, result.PctLowGain, tolerance)
	assert.InDelta(t, math.Pow(1+0.995/45, 26)-1, result.PctLowAnnualized, tolerance)
}

func TestCoveredCallBelowBasis(t *testing.T) {
	calc := newTestCalculator()

	result, err := calc.CoveredCall(CoveredCallInput{
		Open:    monday,
		Expiry:  friday,
		Strike:  45,
		Premium: 1.0,
		Basis:   50,
	})
	require.NoError(t, err)

	assert.InDelta(t, -400.5, result.MaxValue, tolerance)
	assert.Less(t, result.PctMaxGain, 0.0)
	assert.Less(t, result.PctMaxAnnualized, 0.0)
	assert.Greater(t, result.PctLowGain, 0.0)
}

func TestCoveredCallErrors(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.CoveredCall(CoveredCallInput{Open: friday, Expiry: monday, Strike: 50, Premium: 1})
	assert.ErrorIs(t, err, ErrExpiryBeforeOpen)

	_, err = calc.CoveredCall(CoveredCallInput{Open: saturday, Expiry: sunday, Strike: 50, Premium: 1})
	assert.ErrorIs(t, err, formulas.ErrDegenerateAnnualization)

	_, err = calc.CoveredCall(CoveredCallInput{Open: monday, Expiry: friday, Strike: 50, Premium: 1, Basis: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = calc.CoveredCall(CoveredCallInput{Open: monday, Expiry: friday, Strike: 0, Premium: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
