package routes

import (
	"Backend-EduPredict/src/controllers"
	"Backend-EduPredict/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes - student listing and profiles
func studentRoutes(router fiber.Router) {
	studentGroup := router.Group("/students")
	studentGroup.Use(middleware.AuthJWT)

	studentGroup.Get("/", controllers.GetStudents)
	studentGroup.Get("/at-risk", controllers.GetAtRiskStudents) // must come before /:studentId
	studentGroup.Get("/:studentId", controllers.GetStudentByID)
}
