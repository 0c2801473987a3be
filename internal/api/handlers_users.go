package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// userListCap bounds the admin-facing listing; there is no pagination.
const userListCap = 100

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.List(userListCap)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(users)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	user, err := handler.repositories.Users.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	return c.JSON(user)
}
