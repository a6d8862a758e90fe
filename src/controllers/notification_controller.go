package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Backend-EduPredict/src/services/notifications"
	"Backend-EduPredict/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications godoc
// @Summary List notifications
// @Description Returns the most recent notifications, newest first.
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum notifications to return" default(50)
// @Success 200 {array} models.Notification
// @Failure 500 {object} models.ErrorResponse
// @Router /notifications [get]
func GetNotifications(c *fiber.Ctx) error {
	limit, err := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 50
	}

	list, err := notifications.List(c.Context(), limit)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching notifications")
	}

	return c.JSON(list)
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /notifications/{id}/read [put]
func MarkNotificationRead(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := notifications.MarkRead(c.Context(), id); err != nil {
		if errors.Is(err, notifications.ErrNotificationNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Notification not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Error updating notification")
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}
