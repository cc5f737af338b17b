package middleware

import (
	"log"
	"strings"

	"troli/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the locals key under which the authenticated *models.User is
// stored for downstream handlers.
const UserKey = "user"

// AuthRequired is a Fiber middleware that gates protected routes. Every
// rejection path is an explicit 401; a missing or malformed Authorization
// header must never fault the handler.
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

		user, err := authService.Authenticate(parts[1])
		if err != nil {
			log.Printf("Authentication failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		// Store the resolved user in Fiber context for subsequent handlers
		c.Locals(UserKey, user)

		// Continue to the next handler
		return c.Next()
	}
}
