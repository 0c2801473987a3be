package api

import (
	"time"

	"github.com/aerosenselabs/aerosense/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) ListSimulations(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	simulations, err := handler.repositories.Simulations.ListByUser(user.ID)
	if err != nil {
		handler.logger.Error("simulation list failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list simulations")
	}
	return c.JSON(simulations)
}

func (handler *Handler) CreateSimulation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input simulationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validateSimulationInput(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	simulation := models.SavedSimulation{
		ID:                 models.NewID(),
		UserID:             user.ID,
		Name:               input.Name,
		WindSpeed:          input.WindSpeed,
		RainChance:         input.RainChance,
		Temperature:        input.Temperature,
		Humidity:           input.Humidity,
		TrafficDensity:     input.TrafficDensity,
		IndustrialActivity: input.IndustrialActivity,
		CreatedAt:          time.Now().UTC(),
	}
	if err := handler.repositories.Simulations.Create(&simulation); err != nil {
		handler.logger.Error("simulation create failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to save simulation")
	}
	return c.Status(fiber.StatusCreated).JSON(simulation)
}

func (handler *Handler) DeleteSimulation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	// Scoped to the caller: someone else's id deletes nothing and still
	// reports success.
	if err := handler.repositories.Simulations.Delete(c.Params("id"), user.ID); err != nil {
		handler.logger.Error("simulation delete failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to delete simulation")
	}
	return c.JSON(fiber.Map{"status": "success"})
}
