package api

import (
	"errors"

	"github.com/aerosenselabs/aerosense/internal/models"
	"github.com/aerosenselabs/aerosense/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) AdminLogin(c *fiber.Ctx) error {
	var input adminCredentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	admin, err := handler.authService.AuthenticateAdmin(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid admin credentials")
		}
		handler.logger.Error("admin login failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "admin login failed")
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"admin_id": admin.ID,
		"username": admin.Username,
	})
}

func (handler *Handler) AdminRegister(c *fiber.Ctx) error {
	var input adminCredentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Username == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "username and password are required")
	}

	admin, err := handler.authService.RegisterAdmin(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return apiError(c, fiber.StatusBadRequest, "admin already exists")
		}
		handler.logger.Error("admin registration failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "admin registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"admin_id": admin.ID,
		"username": admin.Username,
	})
}

func (handler *Handler) AdminStats(c *fiber.Ctx) error {
	stats, err := handler.statsSvc.Aggregate()
	if err != nil {
		handler.logger.Error("stats aggregation failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to aggregate stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) CreateEcoAction(c *fiber.Ctx) error {
	var input ecoActionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validateEcoActionInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	action, err := handler.catalogSvc.CreateAction(models.EcoAction{
		Title:       input.Title,
		Description: input.Description,
		CO2SavedKg:  input.CO2SavedKg,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		Period:      input.Period,
	})
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return apiError(c, fiber.StatusBadRequest, "an action with this title already exists")
		}
		handler.logger.Error("eco action creation failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create eco action")
	}

	return c.Status(fiber.StatusCreated).JSON(action)
}
