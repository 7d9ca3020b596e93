package contracts

import (
	"agendly-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type BuildCalendarViewInput struct {
	ProviderID    string
	Mode          string
	ReferenceDate time.Time
	Now           time.Time
}

type CalendarUsecase interface {
	BuildView(ctx context.Context, input BuildCalendarViewInput) (*responses.CalendarView, error)
}
