package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// relativePrefix marks an expression as an offset in days from today.
const relativePrefix = "t"

// maxOffsetDays bounds a relative offset so that shifting today by it cannot
// overflow time.AddDate. Any larger offset already leaves the supported years.
const maxOffsetDays = (maxYear - minYear + 1) * 366

// Resolve interprets a date expression relative to today. Supported forms:
//
//	""          today
//	t+N, t-N    N days after/before today (tN is the same as t+N)
//	DD          day DD of today's month
//	MM-DD       month MM, day DD of today's year
//	YYYY-MM-DD  a fully specified date
//
// Anything else fails with an error wrapping ErrInvalidDateFormat.
func Resolve(expr string, today Date) (Date, error) {
	if expr == "" {
		return today, nil
	}

	if offset, ok := strings.CutPrefix(expr, relativePrefix); ok {
		days, err := strconv.Atoi(offset)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q has no valid day offset", ErrInvalidDateFormat, expr)
		}
		if days > maxOffsetDays || days < -maxOffsetDays {
			return Date{}, fmt.Errorf("%w: %q offset is out of range", ErrInvalidDateFormat, expr)
		}
		shifted := today.AddDays(days)
		if _, err := New(shifted.Year, shifted.Month, shifted.Day); err != nil {
			return Date{}, fmt.Errorf("%q: %w", expr, err)
		}
		return shifted, nil
	}

	segments := strings.Split(expr, "-")
	parts := make([]int, 0, len(segments))
	for _, segment := range segments {
		n, err := parseSegment(segment)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDateFormat, expr, err)
		}
		parts = append(parts, n)
	}

	var (
		year  = today.Year
		month = today.Month
		day   int
	)
	switch len(parts) {
	case 1:
		day = parts[0]
	case 2:
		month, day = time.Month(parts[0]), parts[1]
	case 3:
		year, month, day = parts[0], time.Month(parts[1]), parts[2]
	default:
		return Date{}, fmt.Errorf("%w: %q has too many segments", ErrInvalidDateFormat, expr)
	}

	d, err := New(year, month, day)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", expr, err)
	}
	return d, nil
}

// parseSegment accepts only unsigned decimal digits.
func parseSegment(segment string) (int, error) {
	if segment == "" {
		return 0, fmt.Errorf("empty segment")
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("segment %q is not a number", segment)
		}
	}
	return strconv.Atoi(segment)
}
