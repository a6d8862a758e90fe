package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	authRoutes(api)
	uploadRoutes(api)
	analysisRoutes(api)
	dashboardRoutes(api)
	studentRoutes(api)
	recordRoutes(api)
	notificationRoutes(api)

	// Health check route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
