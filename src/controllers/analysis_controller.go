package controllers

import (
	"errors"
	"log"
	"net/http"

	DB "Backend-EduPredict/src/database"
	"Backend-EduPredict/src/jobs"
	"Backend-EduPredict/src/services/risk"
	"Backend-EduPredict/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AnalyzeStudent godoc
// @Summary Run a risk analysis for one student
// @Description Recomputes the student's dropout risk from their attendance, assessment and fee records and stores the result.
// @Tags analysis
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} models.RiskAssessment
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/student/{studentId} [post]
func AnalyzeStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	assessment, err := risk.AnalyzeStudent(c.Context(), studentID)
	if err != nil {
		if errors.Is(err, risk.ErrStudentNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Error analyzing student")
	}

	return c.JSON(assessment)
}

// AnalyzeAll godoc
// @Summary Run a risk analysis for every student
// @Description Queues a re-analysis of all students when a worker is available, otherwise runs it inline.
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 202 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/all [post]
func AnalyzeAll(c *fiber.Ctx) error {
	if DB.AsynqClient != nil {
		task, err := jobs.NewReanalyzeAllTask()
		if err == nil {
			if _, err := DB.AsynqClient.Enqueue(task); err == nil {
				return c.Status(http.StatusAccepted).JSON(fiber.Map{
					"message": "Re-analysis of all students queued",
				})
			}
			log.Println("⚠️ Failed to enqueue full re-analysis, running inline")
		}
	}

	analyzed, err := risk.AnalyzeAll(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error analyzing students")
	}

	return c.JSON(fiber.Map{
		"message":  "Re-analysis complete",
		"analyzed": analyzed,
	})
}
