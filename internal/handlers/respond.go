package handlers

import (
	"errors"

	"greenbasket/internal/middleware"
	"greenbasket/internal/models"
	"greenbasket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// currentUser returns the account the auth middleware resolved for this
// request. Routes using it must sit behind middleware.AuthRequired.
func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(middleware.UserKey).(*models.User)
	return user
}

// respondValidation writes the field-level validation payload if err is a
// ValidationError; it reports whether it handled the error.
func respondValidation(c *fiber.Ctx, message string, err error) (bool, error) {
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		return false, nil
	}
	return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message":    message,
		"validation": verr.Details,
	})
}
