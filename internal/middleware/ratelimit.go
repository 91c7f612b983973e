package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// DashboardRateLimiter limita las conexiones al dashboard de debugging
func DashboardRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        20,              // 20 conexiones
		Expiration: 1 * time.Minute, // por minuto
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() // Limitar por IP
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"message":     "demasiadas conexiones al dashboard, intenta de nuevo en un minuto",
				"retry_after": 60,
			})
		},
	})
}
