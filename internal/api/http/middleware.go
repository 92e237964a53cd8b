package http

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/observability"
	apperrors "github.com/spec-kit/notice-board/pkg/util"
)

// MiddlewareConfig bundles the global middleware settings.
type MiddlewareConfig struct {
	Logger       *zap.Logger
	Metrics      *observability.Metrics
	Timeout      time.Duration
	AllowOrigins string
}

// RegisterMiddlewares attaches global middlewares. Order matters: the request
// logger wraps the error handler, which wraps panic recovery.
func RegisterMiddlewares(app *fiber.App, cfg MiddlewareConfig) {
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: observability.RequestIDKey,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins(cfg.AllowOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(observability.RequestLogger(cfg.Logger, cfg.Metrics))
	app.Use(errorHandlingMiddleware(cfg.Logger, cfg.Metrics))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			cfg.Logger.Error("panic recovered", zap.Any("panic", e), zap.String("path", c.Path()))
		},
	}))
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
}

func allowOrigins(origins string) string {
	if strings.TrimSpace(origins) == "" {
		return "*"
	}
	return origins
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		domainErr := toDomainError(err)
		metrics.RecordError(c.Route().Path, c.Method(), domainErr.Code)
		if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
		}
		return c.Status(domainErr.HTTPStatus).JSON(errorEnvelope(domainErr))
	}
}

func errorEnvelope(domainErr *apperrors.DomainError) fiber.Map {
	body := fiber.Map{
		"code":    domainErr.Code,
		"message": domainErr.Message,
	}
	if len(domainErr.Details) > 0 {
		body["details"] = domainErr.Details
	}
	return fiber.Map{"error": body}
}

// toDomainError also covers fiber's own errors (unknown route, bad method).
func toDomainError(err error) *apperrors.DomainError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return apperrors.NewDomainError(codeForStatus(fiberErr.Code), fiberErr.Message, fiberErr.Code, nil)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewDomainError("REQUEST_TIMEOUT", "request timed out", fiber.StatusServiceUnavailable, nil)
	}
	return apperrors.ToDomainError(err)
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return apperrors.CodeNotFound
	case fiber.StatusUnauthorized:
		return apperrors.CodeUnauthorized
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return apperrors.CodeValidation
	case fiber.StatusTooManyRequests:
		return apperrors.CodeTooManyAttempts
	}
	if status >= fiber.StatusInternalServerError {
		return apperrors.CodeInternal
	}
	msg := utils.StatusMessage(status)
	if msg == "" {
		return fmt.Sprintf("HTTP_%d", status)
	}
	return strings.ToUpper(strings.ReplaceAll(msg, " ", "_"))
}
