package calendar

// fridayIndex is Friday in the Monday=0 numbering.
const fridayIndex = 4

// NextFriday returns the first Friday on or after today.
func NextFriday(today Date) Date {
	offset := ((fridayIndex-today.mondayWeekday())%7 + 7) % 7
	return today.AddDays(offset)
}

// WeekdaysBetween counts the Monday to Friday dates in the inclusive range
// [start, end]. The caller guarantees start is not after end.
//
// The count is closed form: shifting the Monday=0 weekday of start by 2 (or 1)
// moves Saturday (or Sunday) onto a multiple of 7, so the number of those
// days in the range is the number of multiples of 7 crossed.
func WeekdaysBetween(start, end Date) int {
	startWeekday := start.mondayWeekday()
	totalDays := start.DaysUntil(end) + 1

	saturdays := ceilDiv(startWeekday+2+totalDays, 7) - ceilDiv(startWeekday+2, 7)
	sundays := ceilDiv(startWeekday+1+totalDays, 7) - ceilDiv(startWeekday+1, 7)

	return totalDays - saturdays - sundays
}

// ceilDiv is ceil(a/b) for a >= 0 and b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
