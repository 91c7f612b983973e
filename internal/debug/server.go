package debug

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/yourorg/hceweb/internal/middleware"
)

// NewDashboardApp arma la app Fiber que expone el stream de eventos del
// cliente en /debug/ws.
func NewDashboardApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(logger.New())

	app.Get("/debug/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"enabled": IsEnabled(),
			"clients": Hub.ClientCount(),
			"dropped": Hub.Dropped(),
		})
	})

	ws := app.Group("/debug/ws", middleware.DashboardRateLimiter())
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("", websocket.New(HandleWebSocketFiber))

	return app
}
