package routes

import (
	"Backend-EduPredict/src/controllers"
	"Backend-EduPredict/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// notificationRoutes - risk notifications for counselors
func notificationRoutes(router fiber.Router) {
	notificationGroup := router.Group("/notifications")
	notificationGroup.Use(middleware.AuthJWT)

	notificationGroup.Get("/", controllers.GetNotifications)
	notificationGroup.Put("/:id/read", controllers.MarkNotificationRead)
}
