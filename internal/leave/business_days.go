package leave

import "time"

// BusinessDays counts the Monday-to-Friday days in the inclusive range
// [start, end]. Corporate holidays are deliberately not subtracted here: a
// holiday inside a requested range rejects the whole request instead of
// shrinking the charge. Callers validate start <= end first; an inverted
// range counts zero days.
func BusinessDays(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
