package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/notice-board/internal/api/http/handlers"
	"github.com/spec-kit/notice-board/internal/auth"
	"github.com/spec-kit/notice-board/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Notices        *handlers.NoticesHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Reads are public; notice writes require a
// bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api")
	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/departments", cfg.Notices.ListDepartments)
	api.Get("/notices", cfg.Notices.ListNotices)

	guard := cfg.AuthMiddleware.Handle
	api.Post("/notices", guard, cfg.Notices.CreateNotice)
	api.Put("/notices/:id", guard, cfg.Notices.UpdateNotice)
	api.Delete("/notices/:id", guard, cfg.Notices.DeleteNotice)
}
