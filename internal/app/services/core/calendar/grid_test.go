package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthGrid_March2024(t *testing.T) {
	ref := date(2024, time.March, 15)
	now := date(2024, time.March, 15)

	cells := BuildMonthGrid(ref, now, nil)

	// March 31, 2024 is a Sunday, so the trailing edge extends to Saturday
	// April 6 and the grid spans six full weeks.
	assert.Len(t, cells, 42)
	assert.Equal(t, date(2024, time.February, 25), cells[0].Date)
	assert.Equal(t, date(2024, time.April, 6), cells[len(cells)-1].Date)

	t.Run("length is a multiple of seven", func(t *testing.T) {
		assert.Zero(t, len(cells)%7)
	})

	t.Run("dates increase by one day", func(t *testing.T) {
		for i := 1; i < len(cells); i++ {
			assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), cells[i].Date)
		}
	})

	t.Run("grid starts on Sunday and ends on Saturday", func(t *testing.T) {
		assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
		assert.Equal(t, time.Saturday, cells[len(cells)-1].Date.Weekday())
	})

	t.Run("current period flags only March days", func(t *testing.T) {
		for _, cell := range cells {
			assert.Equal(t, cell.Date.Month() == time.March, cell.InCurrentPeriod, "cell %s", cell.Date)
		}
	})

	t.Run("every day of the month is present", func(t *testing.T) {
		var marchDays int
		for _, cell := range cells {
			if cell.InCurrentPeriod {
				marchDays++
			}
		}
		assert.Equal(t, 31, marchDays)
	})

	t.Run("exactly one cell is today", func(t *testing.T) {
		var todays int
		for _, cell := range cells {
			if cell.IsToday {
				todays++
				assert.Equal(t, date(2024, time.March, 15), cell.Date)
			}
		}
		assert.Equal(t, 1, todays)
	})
}

func TestBuildMonthGrid_TodayOutsideGrid(t *testing.T) {
	ref := date(2024, time.March, 15)
	now := date(2024, time.July, 1)

	cells := BuildMonthGrid(ref, now, nil)

	for _, cell := range cells {
		assert.False(t, cell.IsToday)
	}
}

func TestBuildMonthGrid_EventPlacement(t *testing.T) {
	ref := date(2024, time.March, 15)
	now := date(2024, time.March, 15)

	events := []Event{
		{ID: "b", Start: time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)},
		{ID: "a", Start: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "c", Start: time.Date(2024, time.February, 26, 8, 0, 0, 0, time.UTC)},
		{ID: "outside", Start: time.Date(2024, time.April, 10, 8, 0, 0, 0, time.UTC)},
	}

	cells := BuildMonthGrid(ref, now, events)

	byDate := make(map[string][]Event)
	var placed int
	for _, cell := range cells {
		if len(cell.Events) > 0 {
			byDate[cell.Date.Format("2006-01-02")] = cell.Events
			placed += len(cell.Events)
		}
	}

	t.Run("input order preserved within a day", func(t *testing.T) {
		march10 := byDate["2024-03-10"]
		assert.Len(t, march10, 2)
		assert.Equal(t, "b", march10[0].ID)
		assert.Equal(t, "a", march10[1].ID)
	})

	t.Run("leading-edge day from previous month receives its event", func(t *testing.T) {
		assert.Len(t, byDate["2024-02-26"], 1)
	})

	t.Run("events outside the grid are not placed", func(t *testing.T) {
		assert.Equal(t, 3, placed)
	})
}

func TestBuildMonthGrid_MalformedEventKept(t *testing.T) {
	ref := date(2024, time.March, 15)
	now := date(2024, time.March, 15)

	// End precedes Start; the event must still render on its start date.
	events := []Event{{
		ID:    "inverted",
		Start: time.Date(2024, time.March, 12, 15, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC),
	}}

	cells := BuildMonthGrid(ref, now, events)

	var found bool
	for _, cell := range cells {
		for _, e := range cell.Events {
			if e.ID == "inverted" {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestBuildWeekBuckets(t *testing.T) {
	ref := date(2024, time.March, 13) // a Wednesday

	events := []Event{
		{ID: "morning", Start: time.Date(2024, time.March, 13, 9, 15, 0, 0, time.UTC), End: time.Date(2024, time.March, 13, 11, 0, 0, 0, time.UTC)},
		{ID: "early", Start: time.Date(2024, time.March, 13, 6, 0, 0, 0, time.UTC)},
		{ID: "late", Start: time.Date(2024, time.March, 13, 21, 0, 0, 0, time.UTC)},
	}

	buckets := BuildWeekBuckets(ref, events)

	assert.Len(t, buckets, 7*12)
	assert.Equal(t, date(2024, time.March, 10), buckets[0].Day)
	assert.Equal(t, time.Sunday, buckets[0].Day.Weekday())
	assert.Equal(t, 8, buckets[0].Hour)
	assert.Equal(t, 19, buckets[len(buckets)-1].Hour)

	t.Run("event occupies only its start-hour bucket", func(t *testing.T) {
		var holders []Bucket
		for _, b := range buckets {
			for _, e := range b.Events {
				if e.ID == "morning" {
					holders = append(holders, b)
				}
			}
		}
		assert.Len(t, holders, 1)
		assert.Equal(t, 9, holders[0].Hour)
		assert.Equal(t, date(2024, time.March, 13), holders[0].Day)
	})

	t.Run("events outside the display window are filtered", func(t *testing.T) {
		for _, b := range buckets {
			for _, e := range b.Events {
				assert.NotEqual(t, "early", e.ID)
				assert.NotEqual(t, "late", e.ID)
			}
		}
	})
}

func TestBuildDayBuckets(t *testing.T) {
	day := date(2024, time.March, 13)

	events := []Event{
		{ID: "in", Start: time.Date(2024, time.March, 13, 19, 30, 0, 0, time.UTC)},
		{ID: "other-day", Start: time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)},
	}

	buckets := BuildDayBuckets(day, events)

	assert.Len(t, buckets, 12)
	for _, b := range buckets {
		assert.Equal(t, day, b.Day)
	}

	last := buckets[len(buckets)-1]
	assert.Equal(t, 19, last.Hour)
	assert.Len(t, last.Events, 1)
	assert.Equal(t, "in", last.Events[0].ID)
}

func TestBuildListOrdering(t *testing.T) {
	events := []Event{
		{ID: "later", Start: date(2024, time.March, 20)},
		{ID: "earlier", Start: date(2024, time.March, 1)},
	}

	out := BuildListOrdering(events)

	assert.Equal(t, "later", out[0].ID)
	assert.Equal(t, "earlier", out[1].ID)

	t.Run("returned slice is a copy", func(t *testing.T) {
		out[0].ID = "mutated"
		assert.Equal(t, "later", events[0].ID)
	})
}
