package middleware

import (
	"runtime/debug"

	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/utils"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and responds with the standard UNKNOWN_ERROR envelope.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stack := debug.Stack()

	zapLogger.Error("Panic recovered",
		logger.Any("panic", r),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		logger.String("stacktrace", string(stack)),
	)

	if !c.Response().Committed {
		_ = utils.InternalServerErrorResponse(c, "internal error")
	}
}
