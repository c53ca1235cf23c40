package routes

import "github.com/gofiber/fiber/v2"

// SetupHealthRoutes registers the unauthenticated liveness endpoint.
func SetupHealthRoutes(app *fiber.App) {
	app.Get("/api/health-check", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"healthy": true})
	})
}
