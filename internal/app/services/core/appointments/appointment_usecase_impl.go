package appointments

import (
	"agendly-service/internal/app/contracts"
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/dto/responses"
	"agendly-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	appointmentRepository contracts.AppointmentRepository
	notificationQueue     contracts.NotificationQueueService
	log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	notificationQueue contracts.NotificationQueueService,
	log *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		appointmentRepository: appointmentRepository,
		notificationQueue:     notificationQueue,
		log:                   log,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, customerID string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	start, err := time.Parse(time.RFC3339, request.Start)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	end, err := time.Parse(time.RFC3339, request.End)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	appointment := &models.Appointment{
		ProviderID:   request.ProviderID,
		CustomerID:   customerID,
		CustomerName: request.CustomerName,
		ServiceType:  request.ServiceType,
		Start:        start,
		End:          end,
		Status:       "PENDING",
		Notes:        request.Notes,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.appointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.publish(ctx, contracts.NotificationKindCreated, appointment)

	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.appointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) GetAppointmentsByProvider(ctx context.Context, providerID string) ([]responses.Appointment, error) {
	appointments, err := uc.appointmentRepository.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponses(appointments), nil
}

func (uc *appointmentUsecase) GetAppointmentsByCustomer(ctx context.Context, customerID string) ([]responses.Appointment, error) {
	appointments, err := uc.appointmentRepository.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponses(appointments), nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) (*responses.Appointment, error) {
	appointment, err := uc.appointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	if err := uc.appointmentRepository.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, err
	}
	appointment.Status = status

	uc.publish(ctx, contracts.NotificationKindStatusChanged, appointment)

	return buildAppointmentResponse(appointment), nil
}

// publish is best-effort: a broker hiccup must not fail the booking itself.
func (uc *appointmentUsecase) publish(ctx context.Context, kind string, appointment *models.Appointment) {
	err := uc.notificationQueue.Publish(ctx, contracts.NotificationMessage{
		ID:            uuid.NewString(),
		Kind:          kind,
		AppointmentID: appointment.ID,
		ProviderID:    appointment.ProviderID,
		CustomerName:  appointment.CustomerName,
		Status:        appointment.Status,
		StartsAt:      appointment.Start.Format(time.RFC3339),
	})
	if err != nil {
		uc.log.Warn("appointmentUsecase failed to publish notification",
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:           appointment.ID,
		ProviderID:   appointment.ProviderID,
		CustomerID:   appointment.CustomerID,
		CustomerName: appointment.CustomerName,
		ServiceType:  appointment.ServiceType,
		Start:        appointment.Start.Format(time.RFC3339),
		End:          appointment.End.Format(time.RFC3339),
		Status:       appointment.Status,
		Notes:        appointment.Notes,
	}
}

func buildAppointmentResponses(appointments []models.Appointment) []responses.Appointment {
	out := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		out = append(out, *buildAppointmentResponse(&appointments[i]))
	}
	return out
}
