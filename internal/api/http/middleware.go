package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-panel/internal/observability"
	apperrors "github.com/spec-kit/admin-panel/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts any returned error into the wire error
// shape {"message": ..., "status": ...} and recovers panics.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				status, code, message := classify(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), code)
				}
				if status >= 500 {
					logger.Error("request failed", zap.Error(err))
				}
				c.Status(status)
				_ = c.JSON(fiber.Map{"message": message, "status": status})
				err = nil
			}
		}()
		return c.Next()
	}
}

func classify(err error) (status int, code, message string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, "HTTP_ERROR", fiberErr.Message
	}
	domainErr := apperrors.ToDomainError(err)
	return domainErr.HTTPStatus, domainErr.Code, domainErr.Message
}
