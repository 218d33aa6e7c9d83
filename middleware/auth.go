package middleware

import (
	"github.com/gofiber/fiber/v2"

	"checkmate/config"
	"checkmate/models"
	"checkmate/storage"
	"checkmate/utils"
)

// AuthMiddleware validates the bearer token and stores the caller's user
// id in the request locals under "userID".
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

// InstructorMiddleware restricts a route to instructors and
// administrators. Must run after AuthMiddleware.
func InstructorMiddleware(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userID").(string)
		if userID == "" {
			return utils.Unauthorized(c, "Unauthorized")
		}

		user, err := store.GetUser(userID)
		if err != nil {
			return utils.InternalServerError(c, "Could not query database")
		}
		if user == nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		if user.Role != models.RoleInstructor && user.Role != models.RoleAdministrator {
			return utils.Forbidden(c, "Instructor access required")
		}

		return c.Next()
	}
}
