package routers

import (
	"agendly-service/internal/app/delivery/http/controllers"
	"agendly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AvailabilityController) {
	router.Get("/provider/{providerID}", c.GetWeeklyTemplate)
	router.With(m.AuthMiddleware).Post("/provider/{providerID}", c.SetWeeklyTemplate)
}
