// Package report renders option return metrics as a fixed-width plaintext
// report, one metric per line with right aligned values.
package report

import (
	"fmt"
	"io"

	"github.com/aristath/optn/internal/modules/returns"
)

const (
	currencyFormat = "%s$%13.2f\n"
	percentFormat  = "%s %13.2f%%\n"
	countFormat    = "%s %13.2f\n"
)

// line is a single labelled metric.
type line struct {
	label  string
	format string
	value  float64
}

func currency(label string, v float64) line {
	return line{label: label, format: currencyFormat, value: v}
}

// percent takes a decimal fraction and renders it as a percentage.
func percent(label string, v float64) line {
	return line{label: label, format: percentFormat, value: v * 100}
}

func count(label string, v int) line {
	return line{label: label, format: countFormat, value: float64(v)}
}

// WriteShortPut writes the short put report to w.
func WriteShortPut(w io.Writer, r *returns.ShortPutReturns) error {
	return write(w, []line{
		count("Days in Market:", r.Weekdays),
		currency("Capital:       ", r.Capital),
		currency("Max Value:     ", r.MaxValue),
		percent("Pct Gain:      ", r.PctGain),
		percent("Pct Annualized:", r.PctAnnualized),
		currency("Break Even:    ", r.BreakEven),
	})
}

// WriteCoveredCall writes the covered call report to w.
func WriteCoveredCall(w io.Writer, r *returns.CoveredCallReturns) error {
	return write(w, []line{
		count("Days in Market:", r.Weekdays),
		currency("Capital:       ", r.Capital),
		currency("Max Value:     ", r.MaxValue),
		percent("Pct Max Gain:  ", r.PctMaxGain),
		percent("    Annualized:", r.PctMaxAnnualized),
		currency("Low Value:     ", r.LowValue),
		percent("Pct Low Gain:  ", r.PctLowGain),
		percent("    Annualized:", r.PctLowAnnualized),
	})
}

func write(w io.Writer, lines []line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, l.format, l.label, l.value); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
