package routes

import (
	"Backend-EduPredict/src/controllers"
	"Backend-EduPredict/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// dashboardRoutes - aggregated overview for the counselor dashboard
func dashboardRoutes(router fiber.Router) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthJWT)

	dashboard.Get("/overview", controllers.GetDashboardOverview)
}
