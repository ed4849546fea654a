package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the fiber locals key holding the request ID.
	RequestIDLocalKey = "request_id"

	maxRequestIDLen = 64
)

// RequestID keeps the caller's X-Request-ID when it is a short token of
// letters, digits, '-', '_' and '.', and otherwise assigns a new UUID.
// The ID is stored in locals and echoed on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// validRequestID rejects IDs that could forge fields in the JSON request log.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
