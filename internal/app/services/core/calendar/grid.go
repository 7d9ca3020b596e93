package calendar

import "time"

// BuildMonthGrid derives the month view for the month containing ref. The
// grid runs from the Sunday on-or-before the 1st through the Saturday
// on-or-after the last day of the month, so its length is always a multiple
// of 7. Events are attached to the cell whose date equals their start date,
// preserving input order.
func BuildMonthGrid(ref, now time.Time, events []Event) []Cell {
	firstDay := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	gridStart := firstDay.AddDate(0, 0, -int(firstDay.Weekday()))
	gridEnd := lastDay.AddDate(0, 0, int(time.Saturday-lastDay.Weekday()))

	var cells []Cell
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:            d,
			InCurrentPeriod: d.Month() == ref.Month() && d.Year() == ref.Year(),
			IsToday:         sameDay(d, now),
			Events:          eventsOnDay(d, events),
		})
	}
	return cells
}

// BuildWeekBuckets derives the week view for the week containing ref,
// starting on the Sunday on-or-before ref. Buckets cover the fixed display
// window only; an event lands in the bucket of its start hour regardless of
// its end time.
func BuildWeekBuckets(ref time.Time, events []Event) []Bucket {
	weekStart := dateOnly(ref).AddDate(0, 0, -int(ref.Weekday()))

	var buckets []Bucket
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		for hour := displayHourFirst; hour <= displayHourLast; hour++ {
			buckets = append(buckets, Bucket{
				Day:    day,
				Hour:   hour,
				Events: eventsAtDayHour(day, hour, events),
			})
		}
	}
	return buckets
}

// BuildDayBuckets derives the day view for a single date with the same
// hour-filter rule as the week view.
func BuildDayBuckets(day time.Time, events []Event) []Bucket {
	d := dateOnly(day)

	var buckets []Bucket
	for hour := displayHourFirst; hour <= displayHourLast; hour++ {
		buckets = append(buckets, Bucket{
			Day:    d,
			Hour:   hour,
			Events: eventsAtDayHour(d, hour, events),
		})
	}
	return buckets
}

// BuildListOrdering returns events in input order. Ordering stays the
// producing store's responsibility, so identical inputs always render the
// same list.
func BuildListOrdering(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

func eventsOnDay(day time.Time, events []Event) []Event {
	var out []Event
	for _, e := range events {
		if sameDay(e.Start, day) {
			out = append(out, e)
		}
	}
	return out
}

func eventsAtDayHour(day time.Time, hour int, events []Event) []Event {
	var out []Event
	for _, e := range events {
		if sameDay(e.Start, day) && e.Start.Hour() == hour {
			out = append(out, e)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
