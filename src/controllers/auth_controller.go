package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"Backend-EduPredict/src/services"
	"Backend-EduPredict/src/utils"

	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in to the dashboard
// @Description Validates credentials and returns a signed JWT for the dashboard user.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.HandleError(c, http.StatusBadRequest, "Email and password are required")
	}

	if services.IsRateLimited(req.Email) {
		cooldown := services.RemainingCooldown(req.Email)
		return utils.HandleError(c, http.StatusTooManyRequests,
			fmt.Sprintf("Too many failed attempts, try again in %s", cooldown.Round(time.Second)))
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		services.RecordLoginAttempt(req.Email, false)
		return utils.HandleError(c, http.StatusUnauthorized, err.Error())
	}
	services.RecordLoginAttempt(req.Email, true)

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error generating token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout godoc
// @Summary Log out
// @Description Blacklists the presented token so it can no longer be used.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if token == "" {
		header := c.Get("Authorization")
		token = strings.TrimPrefix(header, "Bearer ")
	}
	if token == "" {
		return utils.HandleError(c, http.StatusUnauthorized, "Missing token")
	}

	if err := utils.BlacklistToken(token, utils.TokenLifetime); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error revoking token")
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}
