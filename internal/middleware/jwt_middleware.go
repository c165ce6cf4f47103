package middleware

import (
	"errors"
	"log"
	"strings"

	"greenbasket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the Locals key under which AuthRequired stores the resolved
// *models.User.
const UserKey = "user"

// AuthRequired is a Fiber middleware that checks the bearer token and
// resolves it to the owning account. The account record is re-read on every
// request, never cached, so downstream mutators act on fresh state.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		userID, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		user, err := authService.GetUserByID(userID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Account not found",
				})
			}
			log.Printf("Failed to load account %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not resolve account",
			})
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}
