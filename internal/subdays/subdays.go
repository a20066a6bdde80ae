// Package subdays provides calendar-day arithmetic on time.Time values
// and the "subDays" benchmark suite that measures it against a mutable
// date wrapper.
//
// SubDays and AddDays never modify their argument: time.Time is a value,
// and the result is always a new value. Days are calendar days, not
// 24-hour spans, so the wall-clock time survives DST transitions.
package subdays

import "time"

// AddDays returns date moved forward by amount calendar days.
//
// Negative amounts move backwards. The zero time is returned unchanged.
func AddDays(date time.Time, amount int) time.Time {
	if amount == 0 || date.IsZero() {
		return date
	}
	return date.AddDate(0, 0, amount)
}

// SubDays returns date moved back by amount calendar days.
//
// Equivalent to AddDays(date, -amount).
func SubDays(date time.Time, amount int) time.Time {
	return AddDays(date, -amount)
}
