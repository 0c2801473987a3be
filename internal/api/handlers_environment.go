package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CurrentEnvironment(c *fiber.Ctx) error {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "latitude is required")
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "longitude is required")
	}
	if err := validateCoordinates(latitude, longitude); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	// Never fails: the client degrades to a fixed fallback reading.
	return c.JSON(handler.weather.Fetch(c.Context(), latitude, longitude))
}
