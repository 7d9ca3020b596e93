package calendar

import (
	"agendly-service/internal/app/contracts"
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/dto/responses"
	"agendly-service/internal/pkg/exceptions"
	"context"
	"time"
)

const dateLayout = "2006-01-02"

type calendarUsecase struct {
	appointmentRepository contracts.AppointmentRepository
}

func NewCalendarUsecase(appointmentRepository contracts.AppointmentRepository) contracts.CalendarUsecase {
	return &calendarUsecase{appointmentRepository: appointmentRepository}
}

// BuildView fetches the provider's appointments, coerces them into engine
// events once at this boundary, and builds the requested derived structure.
func (uc *calendarUsecase) BuildView(ctx context.Context, input contracts.BuildCalendarViewInput) (*responses.CalendarView, error) {
	mode, ok := ParseViewMode(input.Mode)
	if !ok {
		return nil, exceptions.ErrInvalidViewMode(nil)
	}

	appointments, err := uc.appointmentRepository.FindByProviderID(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}
	events := eventsFromAppointments(appointments)

	view := &responses.CalendarView{
		Mode:          string(mode),
		ReferenceDate: input.ReferenceDate.Format(dateLayout),
	}

	switch mode {
	case ViewMonth:
		view.Cells = buildCellResponses(BuildMonthGrid(input.ReferenceDate, input.Now, events))
	case ViewWeek:
		view.Buckets = buildBucketResponses(BuildWeekBuckets(input.ReferenceDate, events))
	case ViewDay:
		view.Buckets = buildBucketResponses(BuildDayBuckets(input.ReferenceDate, events))
	case ViewList:
		view.Events = buildEventResponses(BuildListOrdering(events))
	}
	return view, nil
}

// eventsFromAppointments is the store boundary: titles and colors are
// derived here so the engine only ever sees canonical typed events.
func eventsFromAppointments(appointments []models.Appointment) []Event {
	events := make([]Event, 0, len(appointments))
	for _, a := range appointments {
		status := Status(a.Status)
		events = append(events, Event{
			ID:     a.ID,
			Title:  a.CustomerName + " - " + a.ServiceType,
			Start:  a.Start,
			End:    a.End,
			Status: status,
			Color:  StatusColor(status),
		})
	}
	return events
}

func buildEventResponses(events []Event) []responses.CalendarEvent {
	out := make([]responses.CalendarEvent, 0, len(events))
	for _, e := range events {
		out = append(out, responses.CalendarEvent{
			ID:     e.ID,
			Title:  e.Title,
			Start:  e.Start.Format(time.RFC3339),
			End:    e.End.Format(time.RFC3339),
			Status: string(e.Status),
			Color:  e.Color,
		})
	}
	return out
}

func buildCellResponses(cells []Cell) []responses.CalendarCell {
	out := make([]responses.CalendarCell, 0, len(cells))
	for _, c := range cells {
		out = append(out, responses.CalendarCell{
			Date:            c.Date.Format(dateLayout),
			InCurrentPeriod: c.InCurrentPeriod,
			IsToday:         c.IsToday,
			Events:          buildEventResponses(c.Events),
		})
	}
	return out
}

func buildBucketResponses(buckets []Bucket) []responses.TimeBucket {
	out := make([]responses.TimeBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, responses.TimeBucket{
			Date:   b.Day.Format(dateLayout),
			Hour:   b.Hour,
			Events: buildEventResponses(b.Events),
		})
	}
	return out
}
