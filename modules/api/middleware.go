package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requestID attaches a correlation ID to every request, generating one when
// the caller didn't send an X-Request-Id header.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals("request_id", id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}
