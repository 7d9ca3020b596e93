package routers

import (
	"agendly-service/internal/app/delivery/http/controllers"
	"agendly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.CalendarController) {
	router.With(m.AuthMiddleware).Get("/provider/{providerID}", c.GetView)
}
