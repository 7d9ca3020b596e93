package requests

// AvailabilityEntry is one posted weekday record. Available is a pointer so
// an omitted flag can be told apart from an explicit false.
type AvailabilityEntry struct {
	DayOfWeek string `json:"dayOfWeek" validate:"required,day_of_week"`
	Available *bool  `json:"available"`
	StartTime string `json:"startTime" validate:"omitempty,clock_time"`
	EndTime   string `json:"endTime" validate:"omitempty,clock_time"`
}
