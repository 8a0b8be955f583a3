package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID сохраняет входящий X-Request-ID или назначает новый и
// возвращает его в ответе, чтобы шлюз и планировщик логировали один id
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
			c.Request().Header.Set(RequestIDHeader, id)
		}
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
