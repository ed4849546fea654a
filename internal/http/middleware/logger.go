package middleware

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"docdraft/internal/logger"
)

// Logger is a middleware that logs each HTTP request in JSON format.
// Required fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
//
// The request-scoped logger is attached to the user context, so handlers can
// retrieve it with zerolog.Ctx.
func Logger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		reqLog := base.With().Str("request_id", rid).Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Send()

		return err
	}
}

// LoggerWithWriter builds a Logger that writes to w at info level.
// A nil writer means stdout.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	if w == nil {
		w = os.Stdout
	}
	return Logger(logger.New("info", w))
}
