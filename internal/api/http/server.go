package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/api/http/handlers"
	"github.com/spec-kit/notice-board/internal/auth"
	"github.com/spec-kit/notice-board/internal/observability"
	"github.com/spec-kit/notice-board/internal/service"
)

// ServerDeps bundles everything needed to build the HTTP application.
type ServerDeps struct {
	Name           string
	Version        string
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	RequestTimeout time.Duration
	AllowOrigins   string
	AuthService    *service.AuthService
	NoticeService  *service.NoticeService
	// Dependencies checked by /health/ready, keyed by name.
	Health map[string]handlers.Pinger
}

// NewApp builds the fiber application with middlewares and routes attached.
func NewApp(deps ServerDeps) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               deps.Name,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := toDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(errorEnvelope(domainErr))
		},
	})

	RegisterMiddlewares(app, MiddlewareConfig{
		Logger:       logger,
		Metrics:      deps.Metrics,
		Timeout:      deps.RequestTimeout,
		AllowOrigins: deps.AllowOrigins,
	})

	validator := handlers.NewRequestValidator()
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(deps.Name, deps.Version, deps.Health),
		Auth:           handlers.NewAuthHandler(deps.AuthService, validator),
		Notices:        handlers.NewNoticesHandler(deps.NoticeService, validator),
		AuthMiddleware: auth.NewAuthMiddleware(deps.AuthService.TokenManager()),
		Metrics:        deps.Metrics,
	})
	return app
}
