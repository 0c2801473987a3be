package api

import (
	"time"

	"github.com/aerosenselabs/aerosense/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) ListLocations(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	locations, err := handler.repositories.Locations.ListByUser(user.ID)
	if err != nil {
		handler.logger.Error("location list failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list locations")
	}
	return c.JSON(locations)
}

func (handler *Handler) CreateLocation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input locationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validateLocationInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	location := models.FavoriteLocation{
		ID:        models.NewID(),
		UserID:    user.ID,
		CityName:  input.CityName,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		CreatedAt: time.Now().UTC(),
	}
	if err := handler.repositories.Locations.Create(&location); err != nil {
		handler.logger.Error("location create failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to save location")
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func (handler *Handler) DeleteLocation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repositories.Locations.Delete(c.Params("id"), user.ID); err != nil {
		handler.logger.Error("location delete failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to delete location")
	}
	return c.JSON(fiber.Map{"status": "success"})
}
