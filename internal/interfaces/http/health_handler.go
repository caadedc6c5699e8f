package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingFunc comprueba el almacén (postgres.Ping o sqlite.Store.Ping).
type PingFunc func(ctx context.Context) error

// Health responde 200 con el almacén accesible y 503 si no responde.
func Health(service string, ping PingFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if ping != nil {
			if err := ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": service, "store": err.Error()})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
