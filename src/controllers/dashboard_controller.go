package controllers

import (
	"net/http"

	"Backend-EduPredict/src/services/dashboard"
	"Backend-EduPredict/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardOverview godoc
// @Summary Get the dashboard overview
// @Description Returns the student total, the risk-level distribution and the unread notification count.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardOverview
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/overview [get]
func GetDashboardOverview(c *fiber.Ctx) error {
	overview, err := dashboard.GetOverview(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error building dashboard overview")
	}
	return c.JSON(overview)
}

// GetAtRiskStudents godoc
// @Summary List at-risk students
// @Description Returns every student whose current risk level is above SAFE, ordered by severity then score.
// @Tags dashboard
// @Produce json
// @Success 200 {array} models.AtRiskStudent
// @Failure 500 {object} models.ErrorResponse
// @Router /students/at-risk [get]
func GetAtRiskStudents(c *fiber.Ctx) error {
	students, err := dashboard.GetAtRiskStudents(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error listing at-risk students")
	}
	return c.JSON(students)
}
