// Package calendar provides the calendar date arithmetic used to size option
// positions: resolving terse date expressions, picking default expiries and
// counting the weekdays a position is held.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat is returned when a date expression or a
// (year, month, day) combination does not describe a real calendar date.
var ErrInvalidDateFormat = errors.New("invalid date format")

const (
	minYear = 1
	maxYear = 9999

	secondsPerDay = 24 * 60 * 60
)

// Date is a local calendar date without time of day or location.
// The zero value is not a valid date; use New or FromTime.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for year, month and day, rejecting combinations that
// do not exist in the Gregorian calendar (eg. February 30th).
func New(year int, month time.Month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDateFormat, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDateFormat, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %s %d", ErrInvalidDateFormat, day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustNew is like New but panics on an invalid date. Intended for tests and
// package level constants.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DaysInMonth returns the number of days in month for year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days; n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// mondayWeekday numbers the days of the week Monday=0 through Sunday=6.
func (d Date) mondayWeekday() int {
	return (int(d.Weekday()) + 6) % 7
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
