package calendar

import "time"

// ViewMode selects which derived structure a caller wants built.
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
	ViewList  ViewMode = "list"
)

// ParseViewMode maps a query-string token to a ViewMode.
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ViewMonth, ViewWeek, ViewDay, ViewList:
		return ViewMode(s), true
	}
	return "", false
}

// Status is the closed appointment status enumeration.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusConfirmed   Status = "CONFIRMED"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
	StatusRescheduled Status = "RESCHEDULED"
)

// Event is one scheduled occurrence as the grid builder sees it. The store
// boundary owns parsing and title derivation; this package never mutates an
// event and never drops one, even when Start >= End.
type Event struct {
	ID     string
	Title  string
	Start  time.Time
	End    time.Time
	Status Status
	Color  string
}

// Cell is one day slot of a month grid.
type Cell struct {
	Date            time.Time
	InCurrentPeriod bool
	IsToday         bool
	Events          []Event
}

// Bucket is one (day, hour) slot of a week or day view. Events are placed by
// start hour only; a multi-hour event still occupies a single bucket.
type Bucket struct {
	Day    time.Time
	Hour   int
	Events []Event
}

// Display window for week/day views: 08:00 through 19:00 inclusive.
const (
	displayHourFirst = 8
	displayHourLast  = 19
)

// Unit is a navigation step size.
type Unit string

const (
	UnitMonth Unit = "month"
	UnitWeek  Unit = "week"
	UnitDay   Unit = "day"
)

// Direction is a navigation direction.
type Direction int

const (
	Forward Direction = iota
	Backward
)
