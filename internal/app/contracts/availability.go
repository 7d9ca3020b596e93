package contracts

import (
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/dto/responses"
	"context"
)

type AvailabilityRepository interface {
	FindByProviderID(ctx context.Context, providerID string) ([]models.Availability, error)
	ReplaceForProvider(ctx context.Context, providerID string, records []models.Availability) error
}

type AvailabilityUsecase interface {
	GetWeeklyTemplate(ctx context.Context, providerID string) ([]responses.AvailabilityWindow, error)
	SetWeeklyTemplate(ctx context.Context, providerID string, entries []requests.AvailabilityEntry) ([]responses.AvailabilityWindow, error)
}
