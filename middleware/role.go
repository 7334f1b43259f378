package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"aurora/models"
)

// RequireHead rejects requests from users outside the head tier. Runs
// after Protected(), so the user is already loaded.
func RequireHead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		if !models.IsHeadOrAdmin(user.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Team head access required",
			})
		}
		return c.Next()
	}
}

// RequireMaster rejects everyone but the oversight role before any
// handler query executes.
func RequireMaster() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		if !models.IsMaster(user.Role) {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"role":    user.Role,
				"path":    c.Path(),
			}).Warn("master endpoint denied")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Master access required",
			})
		}
		return c.Next()
	}
}
