package controllers

import (
	"context"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ImportProfilesHandler godoc
// @Summary Bulk import profiles from CSV
// @Description Every valid row goes through the normal submission lifecycle; bad rows are reported per row, never abort the batch.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/{yearId}/import [post]
func ImportProfilesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "file is required"})
		}
		admin, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		f, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "failed to open upload"})
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
		defer cancel()

		result, err := services.ImportProfiles(ctx, f, c.Params("yearId"), admin)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return c.JSON(fiber.Map{"success": true, "data": result})
	}
}
