package api

import (
	"errors"

	"github.com/aerosenselabs/aerosense/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListEcoActions returns the catalog, seeding the starter set the first
// time the catalog is observed empty. The seeding path dedupes by title, so
// concurrent first reads cannot double-seed.
func (handler *Handler) ListEcoActions(c *fiber.Ctx) error {
	actions, err := handler.catalogSvc.List()
	if err != nil {
		handler.logger.Error("catalog list failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list eco actions")
	}

	if len(actions) == 0 {
		if err := handler.catalogSvc.EnsureSeeded(); err != nil {
			handler.logger.Error("catalog seed failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "failed to seed eco actions")
		}
		if actions, err = handler.catalogSvc.List(); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to list eco actions")
		}
	}

	return c.JSON(actions)
}

func (handler *Handler) CompleteEcoAction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input completeActionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.ActionID == "" {
		return apiError(c, fiber.StatusBadRequest, "action_id is required")
	}

	err := handler.actionsSvc.Complete(user.ID, input.ActionID, input.Notes)
	switch {
	case errors.Is(err, services.ErrAlreadyDone):
		return c.JSON(fiber.Map{
			"status":  "already_done",
			"message": "You've already completed this action!",
		})
	case errors.Is(err, services.ErrActionNotFound):
		return apiError(c, fiber.StatusNotFound, "eco action not found")
	case err != nil:
		handler.logger.Error("action completion failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to record action")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Great job! Your action has been recorded.",
	})
}

func (handler *Handler) ActionHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	history, err := handler.actionsSvc.History(user.ID)
	if err != nil {
		handler.logger.Error("history fetch failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}
	return c.JSON(history)
}
