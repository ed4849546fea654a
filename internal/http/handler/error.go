package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"docdraft/internal/http/middleware"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// routingErrors are the statuses fiber raises before a handler runs.
var routingErrors = map[int]errorEnvelope{
	fiber.StatusBadRequest:            {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusNotFound:              {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed:      {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
	fiber.StatusRequestEntityTooLarge: {Code: "PAYLOAD_TOO_LARGE", Message: "request body too large"},
	fiber.StatusUnsupportedMediaType:  {Code: "UNSUPPORTED_MEDIA_TYPE", Message: "send a JSON body"},
}

// writeError answers with status and a code and message that are safe to show the caller.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return c.Status(status).JSON(errorPayload{
		RequestID: rid,
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// ErrorHandler renders errors no handler answered itself. Plain errors never
// reach the body: they are logged on the request logger and reported as INTERNAL_ERROR.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if env, ok := routingErrors[fe.Code]; ok {
				return writeError(c, fe.Code, env.Code, env.Message)
			}
			if fe.Code < fiber.StatusInternalServerError {
				return writeError(c, fe.Code, "REQUEST_ERROR", fe.Message)
			}
		}

		status := fiber.StatusInternalServerError
		if fe != nil {
			status = fe.Code
		}
		zerolog.Ctx(c.UserContext()).Error().Err(err).Int("status", status).Msg("unhandled error")
		return writeError(c, status, "INTERNAL_ERROR", "internal server error")
	}
}
