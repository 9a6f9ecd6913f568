package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// RequireAdmin ensures the authenticated account carries the Admin role.
// Handlers behind this guard never re-check authorization themselves.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if principal.User.Role != domain.RoleAdmin {
			return fiber.NewError(http.StatusForbidden, "admin role required")
		}
		return c.Next()
	}
}
