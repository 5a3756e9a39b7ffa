package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startedAt = time.Now()

// BaseRoutes — health check tanpa auth (dipakai LB / uptime monitor).
func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startedAt).String(),
		})
	})
}
