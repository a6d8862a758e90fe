package routes

import (
	"Backend-EduPredict/src/controllers"
	"Backend-EduPredict/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// analysisRoutes - risk analysis triggers
func analysisRoutes(router fiber.Router) {
	analyze := router.Group("/analyze")
	analyze.Use(middleware.AuthJWT)

	analyze.Post("/student/:studentId", controllers.AnalyzeStudent)
	analyze.Post("/all", controllers.AnalyzeAll)
}
