package controller

import (
	"errors"

	"github.com/benbeisheim/robchess/internal/model"
	"github.com/benbeisheim/robchess/internal/service"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors to HTTP statuses. Anything unknown is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotInGame):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrGameOver),
		errors.Is(err, model.ErrNoLegalMoves):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrIllegalOrigin),
		errors.Is(err, model.ErrInvalidNotation),
		errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, model.ErrInvalidFEN),
		errors.Is(err, service.ErrInvalidColor):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}
