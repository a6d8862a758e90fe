package routes

import (
	"Backend-EduPredict/src/controllers"
	"Backend-EduPredict/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// recordRoutes - raw record listings per domain
func recordRoutes(router fiber.Router) {
	router.Get("/attendance", middleware.AuthJWT, controllers.GetAttendance)
	router.Get("/assessments", middleware.AuthJWT, controllers.GetAssessments)
	router.Get("/fees", middleware.AuthJWT, controllers.GetFees)
}
