package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"Backend-EduPredict/src/models"
	"Backend-EduPredict/src/services/students"
	"Backend-EduPredict/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStudents godoc
// @Summary List students
// @Description Returns a paginated student list, optionally filtered by search text, course and semester.
// @Tags students
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search by name, student ID or email"
// @Param sortBy query string false "Sort field" default(studentId)
// @Param order query string false "Sort order (asc or desc)" default(asc)
// @Param course query string false "Course filter, comma separated"
// @Param semester query string false "Semester filter, comma separated"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /students [get]
func GetStudents(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	courses := splitQuery(c.Query("course"))
	var semesters []int
	for _, s := range splitQuery(c.Query("semester")) {
		if n, err := strconv.Atoi(s); err == nil {
			semesters = append(semesters, n)
		}
	}

	list, total, err := students.GetStudentsWithFilter(params, courses, semesters)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching students")
	}

	return c.JSON(models.NewPaginatedResponse(list, total, params))
}

// GetStudentByID godoc
// @Summary Get one student
// @Description Returns a student's profile together with their current risk assessment, when one exists.
// @Tags students
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /students/{studentId} [get]
func GetStudentByID(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	student, assessment, err := students.GetStudentByID(studentID)
	if err != nil {
		if errors.Is(err, students.ErrStudentNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching student")
	}

	return c.JSON(fiber.Map{
		"student":        student,
		"riskAssessment": assessment,
	})
}

func splitQuery(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
