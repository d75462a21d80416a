package controllers

import (
	"errors"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"

	"github.com/gofiber/fiber/v2"
)

// fail maps the service error taxonomy onto the response envelope.
// Unknown user types are a 500: routing tables are config, not input.
func fail(c *fiber.Ctx, err error) error {
	var (
		valErr *apperrors.ValidationError
		utErr  *collections.UnknownUserTypeError
	)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "error": "not found",
		})
	case errors.Is(err, apperrors.ErrInvalidState):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "profile is not in a state that allows this action",
		})
	case errors.As(err, &valErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": valErr.Error(), "fields": valErr.Fields,
		})
	case errors.As(err, &utErr):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": utErr.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": err.Error(),
		})
	}
}
