package returns

import "github.com/aristath/optn/internal/modules/calendar"

// ShortPutInput describes a cash-secured short put.
type ShortPutInput struct {
	Open    calendar.Date
	Expiry  calendar.Date
	Strike  float64
	Premium float64 // per share
}

// CoveredCallInput describes a call sold against shares already held.
type CoveredCallInput struct {
	Open    calendar.Date
	Expiry  calendar.Date
	Strike  float64
	Premium float64 // per share
	Basis   float64 // per share cost of the shares, zero means Strike
}

// ShortPutReturns holds the outcome of a short put held to expiry.
// Percentages are decimals (0.02 = 2%).
type ShortPutReturns struct {
	Weekdays      int
	Capital       float64 // cash secured for one contract
	MaxValue      float64 // premium kept, net of commission
	PctGain       float64
	PctAnnualized float64
	BreakEven     float64
}

// CoveredCallReturns holds the outcome of a covered call held to expiry.
// The max scenario assumes the shares are called away at the strike; the low
// scenario keeps only the premium. Percentages are decimals (0.02 = 2%).
type CoveredCallReturns struct {
	Weekdays         int
	Capital          float64
	MaxValue         float64
	PctMaxGain       float64
	PctMaxAnnualized float64
	LowValue         float64
	PctLowGain       float64
	PctLowAnnualized float64
}
