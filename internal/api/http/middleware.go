package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-ops-api/internal/api/dto"
	"github.com/spec-kit/support-ops-api/internal/observability"
	apperrors "github.com/spec-kit/support-ops-api/pkg/util/errorutil"
)

// MiddlewareConfig carries the dependencies of the global middlewares.
type MiddlewareConfig struct {
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Timeout    time.Duration
	Production bool
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
// The request logger wraps the error handler so it sees the rendered status.
func RegisterMiddlewares(app *fiber.App, cfg MiddlewareConfig) {
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: observability.RequestIDKey,
	}))
	app.Use(cors.New())
	app.Use(observability.RequestLogger(cfg.Logger, cfg.Metrics))
	app.Use(errorHandlingMiddleware(cfg.Logger, cfg.Metrics, cfg.Production))
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
}

// requestTimeoutMiddleware bounds the context every query runs with.
func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, production bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(fmt.Errorf("panic: %v", r))
			}
			if err == nil {
				return
			}

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				metrics.RecordError(c.Route().Path, c.Method(), http.StatusText(fiberErr.Code))
				_ = c.Status(fiberErr.Code).JSON(dto.Failure(http.StatusText(fiberErr.Code), fiberErr.Message))
				err = nil
				return
			}

			domainErr := apperrors.Classify(err, production)
			metrics.RecordError(c.Route().Path, c.Method(), string(domainErr.Kind))
			if domainErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error("request failed",
					zap.String("path", c.Path()),
					zap.String("kind", string(domainErr.Kind)),
					zap.Error(err))
			}
			if domainErr.Kind == apperrors.KindUnclassified {
				observability.CaptureError(err, map[string]string{
					"route":  c.Route().Path,
					"method": c.Method(),
				})
			}
			_ = c.Status(domainErr.HTTPStatus).JSON(dto.Failure(domainErr.Category, domainErr.Message))
			err = nil
		}()
		return c.Next()
	}
}

// notFound renders the envelope for unmatched routes.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).
		JSON(dto.Failure(apperrors.CategoryNotFound, fmt.Sprintf("Route %s not found", c.Path())))
}
