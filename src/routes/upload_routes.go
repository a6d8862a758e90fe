package routes

import (
	"Backend-EduPredict/src/controllers"
	"Backend-EduPredict/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// uploadRoutes - CSV/JSON batch ingestion per record domain
func uploadRoutes(router fiber.Router) {
	upload := router.Group("/upload")
	upload.Use(middleware.AuthJWT)

	upload.Post("/:domain", controllers.UploadRecords) // students, attendance, assessments, fees
}
