package controllers

import (
	"context"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/services"
	"github.com/Rafaelaligui187/Memoria-sub003/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateManualProfileHandler godoc
// @Summary Admin manual profile entry
// @Description Stores an admin-entered profile as approved and fans out academic assignments immediately for faculty/advisory.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param submitRequest body dto.SubmitProfileRequest true "Profile"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/{yearId}/profiles/manual [post]
func CreateManualProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SubmitProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}
		if req.SchoolYearID == "" {
			req.SchoolYearID = c.Params("yearId")
		}
		admin, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		p, err := services.CreateManualProfile(ctx, req, admin)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "profileId": p.ID.Hex(), "data": p})
	}
}

// CreateAdvisoryProfileHandler godoc
// @Summary Create an advisory profile
// @Description Advisory profiles are admin-entered, auto-approved, and fan out one yearbook entry per (year level, section) assignment.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param submitRequest body dto.SubmitProfileRequest true "Advisory profile"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/{yearId}/profiles/advisory [post]
func CreateAdvisoryProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SubmitProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}
		req.UserType = models.UserTypeAdvisory
		if req.SchoolYearID == "" {
			req.SchoolYearID = c.Params("yearId")
		}
		admin, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		p, err := services.CreateManualProfile(ctx, req, admin)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "profileId": p.ID.Hex(), "data": p})
	}
}

// UpdateAdvisoryProfileHandler godoc
// @Summary Update an advisory profile
// @Description Edits the advisory document in place and regenerates its derived yearbook entries.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param profileId query string true "Advisory profile id"
// @Param submitRequest body dto.SubmitProfileRequest true "Advisory profile"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/{yearId}/profiles/advisory [put]
func UpdateAdvisoryProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := utils.Oid(c.Query("profileId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid profileId"})
		}
		var req dto.SubmitProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}
		req.UserType = models.UserTypeAdvisory
		if req.SchoolYearID == "" {
			req.SchoolYearID = c.Params("yearId")
		}
		admin, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		p, err := services.UpdateAdvisoryProfile(ctx, profileID, req, admin)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": p})
	}
}

// DeleteAdvisoryProfileHandler godoc
// @Summary Delete an advisory profile
// @Description Removes the advisory document together with its derived yearbook entries.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param profileId query string true "Advisory profile id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/{yearId}/profiles/advisory [delete]
func DeleteAdvisoryProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := utils.Oid(c.Query("profileId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid profileId"})
		}
		admin, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		if err := services.DeleteProfileByID(ctx, profileID, nil, &admin); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
