package api

import (
	"errors"

	"github.com/aerosenselabs/aerosense/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validateRegisterInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := handler.authService.Register(services.Registration{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FullName:  input.FullName,
		City:      input.City,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return apiError(c, fiber.StatusBadRequest, "username or email already registered")
		}
		handler.logger.Error("registration failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	token, err := handler.credentials.IssueToken(user.ID, user.Role)
	if err != nil {
		handler.logger.Error("token issue failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Email == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		handler.logger.Error("login failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	token, err := handler.credentials.IssueToken(user.ID, user.Role)
	if err != nil {
		handler.logger.Error("token issue failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

func (handler *Handler) CurrentUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}
