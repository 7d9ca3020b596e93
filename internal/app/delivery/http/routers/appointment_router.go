package routers

import (
	"agendly-service/internal/app/delivery/http/controllers"
	"agendly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AppointmentController) {
	router.Use(m.AuthMiddleware)

	router.Post("/", c.CreateAppointment)
	router.Get("/me", c.GetMyAppointments)
	router.Get("/provider/{providerID}", c.GetAppointmentsByProvider)
	router.Get("/{appointmentID}", c.GetAppointmentByID)
	router.Patch("/{appointmentID}/status", c.UpdateAppointmentStatus)
}
