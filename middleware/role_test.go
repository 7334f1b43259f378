package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurora/models"
)

// gateApp wires a gate behind a stub that injects an authenticated user,
// the way Protected() would.
func gateApp(role models.Role, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		user := &models.User{Role: role}
		user.ID = 1
		c.Locals("user", user)
		return c.Next()
	})
	app.Get("/probe", gate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestRequireHead(t *testing.T) {
	tests := []struct {
		role models.Role
		want int
	}{
		{models.RoleTeamHead, fiber.StatusOK},
		{models.RoleAdmin, fiber.StatusOK},
		{models.RoleTeamMember, fiber.StatusForbidden},
		{models.RoleMaster, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		app := gateApp(tt.role, RequireHead())
		resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
		require.NoError(t, err, "role %q", tt.role)
		assert.Equal(t, tt.want, resp.StatusCode, "role %q", tt.role)
	}
}

func TestRequireMaster(t *testing.T) {
	tests := []struct {
		role models.Role
		want int
	}{
		{models.RoleMaster, fiber.StatusOK},
		{models.RoleAdmin, fiber.StatusForbidden},
		{models.RoleTeamHead, fiber.StatusForbidden},
		{models.RoleTeamMember, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		app := gateApp(tt.role, RequireMaster())
		resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
		require.NoError(t, err, "role %q", tt.role)
		assert.Equal(t, tt.want, resp.StatusCode, "role %q", tt.role)
	}
}
