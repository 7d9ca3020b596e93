package contracts

import (
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByProviderID(ctx context.Context, providerID string) ([]models.Appointment, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]models.Appointment, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, customerID string, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	GetAppointmentsByProvider(ctx context.Context, providerID string) ([]responses.Appointment, error)
	GetAppointmentsByCustomer(ctx context.Context, customerID string) ([]responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) (*responses.Appointment, error)
}
