package requests

type CreateAppointment struct {
	ProviderID   string `json:"providerId" validate:"required"`
	CustomerName string `json:"customerName" validate:"required"`
	ServiceType  string `json:"serviceType" validate:"required"`
	Start        string `json:"start" validate:"required"`
	End          string `json:"end" validate:"required"`
	Notes        string `json:"notes"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,appointment_status"`
}
