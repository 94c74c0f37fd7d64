package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-service/internal/api/http/handlers"
	"github.com/spec-kit/estate-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Properties     *handlers.PropertiesHandler
	Inquiries      *handlers.InquiriesHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Property reads are public; every
// other data route requires a bearer token. Fiber answers unsupported
// methods on these paths with 405 and an Allow header.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.Users.Register)
	app.Post("/auth/login", cfg.Users.Login)

	app.Get("/properties", cfg.AuthMiddleware.Optional, cfg.Properties.Get)
	app.Post("/properties", cfg.AuthMiddleware.Required, cfg.Properties.Create)
	app.Put("/properties", cfg.AuthMiddleware.Required, cfg.Properties.Update)
	app.Delete("/properties", cfg.AuthMiddleware.Required, cfg.Properties.Delete)

	app.Get("/inquiries", cfg.AuthMiddleware.Required, cfg.Inquiries.List)
	app.Post("/inquiries", cfg.AuthMiddleware.Required, cfg.Inquiries.Create)
	app.Delete("/inquiries", cfg.AuthMiddleware.Required, cfg.Inquiries.Delete)
}
