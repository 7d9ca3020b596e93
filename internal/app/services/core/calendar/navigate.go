package calendar

import "time"

// Navigate shifts ref by exactly one unit in the given direction. Month
// steps use Go's calendar normalization, which rolls day-of-month overflow
// into the following month: Navigate(2024-01-31, month, forward) yields
// 2024-03-02, never a clamped month end.
func Navigate(ref time.Time, unit Unit, direction Direction) time.Time {
	step := 1
	if direction == Backward {
		step = -1
	}
	switch unit {
	case UnitMonth:
		return ref.AddDate(0, step, 0)
	case UnitWeek:
		return ref.AddDate(0, 0, 7*step)
	case UnitDay:
		return ref.AddDate(0, 0, step)
	default:
		return ref
	}
}

// ResetToToday returns the caller's clock value at day precision. The clock
// is always an explicit argument; nothing in this package reads time.Now.
func ResetToToday(now time.Time) time.Time {
	return dateOnly(now)
}
