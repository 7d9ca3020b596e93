package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTemplate returns the seven-day editing template: every day
// available, 09:00 through 17:00, Monday first.
func DefaultTemplate() []Window {
	out := make([]Window, 0, len(WeekDays))
	for _, day := range WeekDays {
		out = append(out, Window{
			DayOfWeek: day,
			Available: true,
			StartTime: defaultStartTime,
			EndTime:   defaultEndTime,
		})
	}
	return out
}

// Hydrate reconciles persisted records into the canonical seven-entry
// template. Every day starts out unavailable with default times, then each
// record overlays its matching day; a day with no record therefore ends up
// unavailable, not available-with-defaults. Records with an unknown day name
// are ignored. Available defaults to true unless the record says false
// explicitly, and times arriving as HH:MM:SS are truncated to HH:MM.
func Hydrate(persisted []Record) []Window {
	windows := make([]Window, 0, len(WeekDays))
	index := make(map[string]int, len(WeekDays))
	for i, day := range WeekDays {
		windows = append(windows, Window{
			DayOfWeek: day,
			Available: false,
			StartTime: defaultStartTime,
			EndTime:   defaultEndTime,
		})
		index[day] = i
	}

	for _, rec := range persisted {
		i, ok := index[rec.DayOfWeek]
		if !ok {
			continue
		}
		windows[i].Available = rec.Available == nil || *rec.Available
		windows[i].StartTime = normalizeClock(rec.StartTime, defaultStartTime)
		windows[i].EndTime = normalizeClock(rec.EndTime, defaultEndTime)
	}
	return windows
}

// SetDayAvailability toggles one day's flag and reports whether the time
// fields are now required. The requirement is a signal for the caller's form
// layer; nothing is enforced here.
func SetDayAvailability(template []Window, dayOfWeek string, available bool) (timesRequired bool) {
	for i := range template {
		if template[i].DayOfWeek == dayOfWeek {
			template[i].Available = available
			break
		}
	}
	return available
}

// Serialize emits the persistable form of a template. Unavailable days are
// normalized to 00:00:00 for both times so stale ranges never reach storage;
// available days get a :00 seconds component appended.
func Serialize(template []Window) []Record {
	out := make([]Record, 0, len(template))
	for _, w := range template {
		available := w.Available
		rec := Record{
			DayOfWeek: w.DayOfWeek,
			Available: &available,
		}
		if w.Available {
			rec.StartTime = w.StartTime + ":00"
			rec.EndTime = w.EndTime + ":00"
		} else {
			rec.StartTime = unavailableTime
			rec.EndTime = unavailableTime
		}
		out = append(out, rec)
	}
	return out
}

// normalizeClock accepts HH:MM or HH:MM:SS and returns HH:MM, falling back
// to the supplied default when the value is absent or unparseable.
func normalizeClock(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return fallback
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return fallback
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
