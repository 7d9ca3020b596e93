package responses

type AvailabilityWindow struct {
	DayOfWeek string `json:"dayOfWeek"`
	Available bool   `json:"available"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
