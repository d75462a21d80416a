package controllers

import (
	"context"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/services"
	"github.com/Rafaelaligui187/Memoria-sub003/utils"

	"github.com/gofiber/fiber/v2"
)

// ApproveProfileHandler godoc
// @Summary Approve a pending profile
// @Description Flips the profile to approved, deletes the superseded revision and duplicates, and fans out advisory/faculty academic assignments into yearbook entries.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param profileId path string true "Profile id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Profile is not pending"
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/{yearId}/profiles/{profileId}/approve [post]
func ApproveProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := utils.Oid(c.Params("profileId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid profileId"})
		}
		reviewer, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		p, err := services.ApproveProfile(ctx, profileID, reviewer)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": p})
	}
}

// RejectProfileHandler godoc
// @Summary Reject a pending profile
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param profileId path string true "Profile id"
// @Param rejectRequest body dto.RejectProfileRequest true "Rejection reason"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/{yearId}/profiles/{profileId}/reject [post]
func RejectProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := utils.Oid(c.Params("profileId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid profileId"})
		}
		reviewer, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		var req dto.RejectProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		p, err := services.RejectProfile(ctx, profileID, reviewer, req.Reason)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": p})
	}
}

// ListReviewQueueHandler godoc
// @Summary List profiles by status for review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param status query string false "Profile status filter" Enums(pending, approved, rejected)
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/{yearId}/profiles [get]
func ListReviewQueueHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearID, err := utils.Oid(c.Params("yearId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid yearId"})
		}
		status := c.Query("status", models.StatusPending)

		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()

		// Queue spans every profile collection.
		queue := make(map[string][]models.Profile)
		total := 0
		for _, colName := range collections.ProfileCollections() {
			profiles, err := repository.ListProfilesByStatus(ctx, colName, yearID, status)
			if err != nil {
				return fail(c, err)
			}
			if len(profiles) > 0 {
				queue[colName] = profiles
				total += len(profiles)
			}
		}
		return c.JSON(fiber.Map{"success": true, "total": total, "data": queue})
	}
}
