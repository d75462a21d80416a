package controllers

import (
	"context"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/services"
	"github.com/Rafaelaligui187/Memoria-sub003/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ListSchoolYearsHandler godoc
// @Summary List school years
// @Tags school-years
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/school-years [get]
func ListSchoolYearsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		years, err := repository.ListSchoolYears(ctx)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": years})
	}
}

// CreateSchoolYearHandler godoc
// @Summary Create a school year
// @Tags school-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolYearRequest body dto.SchoolYearRequest true "School year"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/school-years [post]
func CreateSchoolYearHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SchoolYearRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}
		actor, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		sy, err := services.CreateSchoolYear(ctx, req, actor)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sy})
	}
}

// UpdateSchoolYearHandler godoc
// @Summary Update a school year's label or dates
// @Tags school-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "School year id"
// @Param schoolYearRequest body dto.SchoolYearRequest true "Fields"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/school-years/{id} [put]
func UpdateSchoolYearHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid id"})
		}
		var req dto.SchoolYearRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}

		fields := bson.M{}
		if req.YearLabel != "" {
			fields["year_label"] = req.YearLabel
		}
		if req.StartYear != 0 {
			fields["start_year"] = req.StartYear
		}
		if req.EndYear != 0 {
			fields["end_year"] = req.EndYear
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		ok, err := repository.UpdateSchoolYear(ctx, id, fields)
		if err != nil {
			return fail(c, err)
		}
		if !ok {
			return fail(c, apperrors.ErrNotFound)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// ActivateSchoolYearHandler godoc
// @Summary Mark a school year as the active one
// @Tags school-years
// @Produce json
// @Security BearerAuth
// @Param id path string true "School year id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/school-years/{id}/activate [post]
func ActivateSchoolYearHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid id"})
		}
		actor, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if err := services.ActivateSchoolYear(ctx, id, actor); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// DeleteSchoolYearHandler godoc
// @Summary Delete a school year
// @Tags school-years
// @Produce json
// @Security BearerAuth
// @Param id path string true "School year id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/school-years/{id} [delete]
func DeleteSchoolYearHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid id"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		ok, err := repository.DeleteSchoolYear(ctx, id)
		if err != nil {
			return fail(c, err)
		}
		if !ok {
			return fail(c, apperrors.ErrNotFound)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
