package controllers

import (
	"net/http"

	"Backend-EduPredict/src/models"
	"Backend-EduPredict/src/services/records"
	"Backend-EduPredict/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAttendance godoc
// @Summary List attendance records
// @Description Returns a paginated list of attendance records, optionally for one student.
// @Tags records
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param studentId query string false "Filter by student ID"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance [get]
func GetAttendance(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	list, total, err := records.ListAttendance(params, c.Query("studentId"))
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching attendance records")
	}

	return c.JSON(models.NewPaginatedResponse(list, total, params))
}

// GetAssessments godoc
// @Summary List assessment records
// @Description Returns a paginated list of assessment records, optionally for one student.
// @Tags records
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param studentId query string false "Filter by student ID"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /assessments [get]
func GetAssessments(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	list, total, err := records.ListAssessments(params, c.Query("studentId"))
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching assessment records")
	}

	return c.JSON(models.NewPaginatedResponse(list, total, params))
}

// GetFees godoc
// @Summary List fee records
// @Description Returns a paginated list of fee records, optionally for one student.
// @Tags records
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param studentId query string false "Filter by student ID"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /fees [get]
func GetFees(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	list, total, err := records.ListFees(params, c.Query("studentId"))
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching fee records")
	}

	return c.JSON(models.NewPaginatedResponse(list, total, params))
}
