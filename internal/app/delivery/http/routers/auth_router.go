package routers

import (
	"agendly-service/internal/app/delivery/http/controllers"
	"agendly-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.AuthController) {
	router.Post("/register", c.Register)
	router.Post("/login", c.Login)
	router.With(m.AuthMiddleware).Post("/logout", c.Logout)
}
