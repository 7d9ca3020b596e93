package responses

type CalendarEvent struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
	Color  string `json:"color"`
}

type CalendarCell struct {
	Date            string          `json:"date"`
	InCurrentPeriod bool            `json:"inCurrentPeriod"`
	IsToday         bool            `json:"isToday"`
	Events          []CalendarEvent `json:"events"`
}

type TimeBucket struct {
	Date   string          `json:"date"`
	Hour   int             `json:"hour"`
	Events []CalendarEvent `json:"events"`
}

type CalendarView struct {
	Mode          string          `json:"mode"`
	ReferenceDate string          `json:"referenceDate"`
	Cells         []CalendarCell  `json:"cells,omitempty"`
	Buckets       []TimeBucket    `json:"buckets,omitempty"`
	Events        []CalendarEvent `json:"events,omitempty"`
}
