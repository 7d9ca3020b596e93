package availability

// Canonical uppercase English day names, fixed order Monday through Sunday.
// Persisted records match against these case-sensitively.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// WeekDays lists the canonical order used by templates and serialization.
var WeekDays = []string{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
	DaySunday,
}

const (
	defaultStartTime = "09:00"
	defaultEndTime   = "17:00"
	unavailableTime  = "00:00:00"
)

// Window is one weekday's editable availability entry. Times are HH:MM and
// only meaningful while Available is true.
type Window struct {
	DayOfWeek string `json:"dayOfWeek"`
	Available bool   `json:"available"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Record is the transport form of one weekday's availability. Available is a
// pointer because absence and an explicit false are distinct during
// hydration.
type Record struct {
	DayOfWeek string `json:"dayOfWeek"`
	Available *bool  `json:"available,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}
