package contracts

import "context"

// NotificationMessage is the payload published for appointment lifecycle
// events and reminders.
type NotificationMessage struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	AppointmentID string `json:"appointment_id"`
	ProviderID    string `json:"provider_id"`
	CustomerName  string `json:"customer_name"`
	Status        string `json:"status"`
	StartsAt      string `json:"starts_at"`
}

const (
	NotificationKindCreated       = "appointment.created"
	NotificationKindStatusChanged = "appointment.status_changed"
	NotificationKindReminder      = "appointment.reminder"
)

type NotificationQueueService interface {
	Publish(ctx context.Context, message NotificationMessage) error
}
