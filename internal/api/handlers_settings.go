package api

import (
	"github.com/aerosenselabs/aerosense/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, err := handler.settingsSvc.Get(user.ID)
	if err != nil {
		handler.logger.Error("settings fetch failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch settings")
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input settingsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.SelectedCity == "" {
		return apiError(c, fiber.StatusBadRequest, "selected_city is required")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	settings, err := handler.settingsSvc.Update(user.ID, models.UserSettings{
		SelectedCity: input.SelectedCity,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Preferences:  input.Preferences,
	})
	if err != nil {
		handler.logger.Error("settings update failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}
	return c.JSON(settings)
}
