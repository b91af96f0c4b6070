package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"lls_backend/internals/constants"
)

func newRoleTestApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		OnlyRoles("custom forbidden message", allowed...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func TestOnlyRoles(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"no identity is 401", "", constants.AdminOnly, fiber.StatusUnauthorized},
		{"wrong role is 403", constants.RoleStudent, constants.AdminOnly, fiber.StatusForbidden},
		{"allowed role passes", constants.RoleAdmin, constants.AdminOnly, fiber.StatusOK},
		{"staff passes staff-and-above", constants.RoleStaff, constants.StaffAndAbove, fiber.StatusOK},
		{"admin passes staff-and-above", constants.RoleAdmin, constants.StaffAndAbove, fiber.StatusOK},
		{"student fails staff-and-above", constants.RoleStudent, constants.StaffAndAbove, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRoleTestApp(tt.role, tt.allowed...)
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
