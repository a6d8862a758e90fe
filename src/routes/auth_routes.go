package routes

import (
	"Backend-EduPredict/src/controllers"
	"Backend-EduPredict/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes - login/logout for dashboard users
func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/login", controllers.Login)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
