package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestDefaultTemplate(t *testing.T) {
	template := DefaultTemplate()

	assert.Len(t, template, 7)
	assert.Equal(t, "MONDAY", template[0].DayOfWeek)
	assert.Equal(t, "SUNDAY", template[6].DayOfWeek)

	for _, w := range template {
		assert.True(t, w.Available)
		assert.Equal(t, "09:00", w.StartTime)
		assert.Equal(t, "17:00", w.EndTime)
	}
}

func TestHydrate_NoRecords(t *testing.T) {
	windows := Hydrate(nil)

	assert.Len(t, windows, 7)
	for _, w := range windows {
		assert.False(t, w.Available)
		assert.Equal(t, "09:00", w.StartTime)
		assert.Equal(t, "17:00", w.EndTime)
	}
}

func TestHydrate_SingleDayOverlay(t *testing.T) {
	windows := Hydrate([]Record{
		{DayOfWeek: "WEDNESDAY", StartTime: "10:00:00", EndTime: "15:30:00"},
	})

	assert.Len(t, windows, 7)
	for _, w := range windows {
		if w.DayOfWeek == "WEDNESDAY" {
			assert.True(t, w.Available)
			assert.Equal(t, "10:00", w.StartTime)
			assert.Equal(t, "15:30", w.EndTime)
			continue
		}
		assert.False(t, w.Available, w.DayOfWeek)
		assert.Equal(t, "09:00", w.StartTime)
		assert.Equal(t, "17:00", w.EndTime)
	}
}

func TestHydrate_AvailableFlag(t *testing.T) {
	t.Run("absent flag means available", func(t *testing.T) {
		windows := Hydrate([]Record{{DayOfWeek: "MONDAY"}})
		assert.True(t, windows[0].Available)
	})

	t.Run("explicit false is preserved", func(t *testing.T) {
		windows := Hydrate([]Record{{DayOfWeek: "MONDAY", Available: boolPtr(false), StartTime: "08:00:00", EndTime: "12:00:00"}})
		assert.False(t, windows[0].Available)
		assert.Equal(t, "08:00", windows[0].StartTime)
	})

	t.Run("explicit true is preserved", func(t *testing.T) {
		windows := Hydrate([]Record{{DayOfWeek: "MONDAY", Available: boolPtr(true)}})
		assert.True(t, windows[0].Available)
	})
}

func TestHydrate_UnknownAndMiscasedDaysIgnored(t *testing.T) {
	windows := Hydrate([]Record{
		{DayOfWeek: "FUNDAY", StartTime: "10:00:00"},
		{DayOfWeek: "Monday", StartTime: "10:00:00"},
	})

	for _, w := range windows {
		assert.False(t, w.Available)
		assert.Equal(t, "09:00", w.StartTime)
	}
}

func TestHydrate_ClockNormalization(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		expected string
	}{
		{"seconds truncated", "10:15:45", "10:15"},
		{"already minutes", "10:15", "10:15"},
		{"blank falls back", "", "09:00"},
		{"garbage falls back", "not-a-time", "09:00"},
		{"out of range falls back", "25:00:00", "09:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			windows := Hydrate([]Record{{DayOfWeek: "FRIDAY", StartTime: tc.start}})
			for _, w := range windows {
				if w.DayOfWeek == "FRIDAY" {
					assert.Equal(t, tc.expected, w.StartTime)
				}
			}
		})
	}
}

func TestSetDayAvailability(t *testing.T) {
	template := DefaultTemplate()

	timesRequired := SetDayAvailability(template, "TUESDAY", false)
	assert.False(t, timesRequired)
	assert.False(t, template[1].Available)

	timesRequired = SetDayAvailability(template, "TUESDAY", true)
	assert.True(t, timesRequired)
	assert.True(t, template[1].Available)
}

func TestSerialize(t *testing.T) {
	template := DefaultTemplate()
	SetDayAvailability(template, "SATURDAY", false)
	SetDayAvailability(template, "SUNDAY", false)

	records := Serialize(template)

	assert.Len(t, records, 7)
	for _, rec := range records {
		switch rec.DayOfWeek {
		case "SATURDAY", "SUNDAY":
			assert.False(t, *rec.Available)
			assert.Equal(t, "00:00:00", rec.StartTime)
			assert.Equal(t, "00:00:00", rec.EndTime)
		default:
			assert.True(t, *rec.Available)
			assert.Equal(t, "09:00:00", rec.StartTime)
			assert.Equal(t, "17:00:00", rec.EndTime)
		}
	}
}

func TestSerializeHydrateRoundTrip(t *testing.T) {
	template := DefaultTemplate()
	SetDayAvailability(template, "WEDNESDAY", false)
	template[0].StartTime = "07:30"

	hydrated := Hydrate(Serialize(template))

	assert.Equal(t, len(template), len(hydrated))
	for i := range template {
		assert.Equal(t, template[i].DayOfWeek, hydrated[i].DayOfWeek)
		assert.Equal(t, template[i].Available, hydrated[i].Available)
		if template[i].Available {
			assert.Equal(t, template[i].StartTime, hydrated[i].StartTime)
			assert.Equal(t, template[i].EndTime, hydrated[i].EndTime)
		}
	}
}
