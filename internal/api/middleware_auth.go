package api

import (
	"strings"

	"github.com/aerosenselabs/aerosense/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the bearer token to a stored user and stashes it in
// the request context. The resolved identity, never a body-supplied id, is
// the scoping key for everything owner-scoped downstream.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c)
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, err := handler.credentials.ResolveToken(rawToken)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user.Role != models.RoleAdmin {
		return apiError(c, fiber.StatusForbidden, "admin access required")
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	// Some clients send the raw token without a scheme.
	return header
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
