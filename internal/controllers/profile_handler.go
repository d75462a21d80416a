package controllers

import (
	"context"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/services"
	"github.com/Rafaelaligui187/Memoria-sub003/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// SubmitProfileHandler godoc
// @Summary Submit a yearbook profile
// @Description Routes the submission into its department collection and applies the lifecycle rules (create / revision / in-place update / resubmit).
// @Tags profiles
// @Accept json
// @Produce json
// @Param submitRequest body dto.SubmitProfileRequest true "Submission"
// @Success 200 {object} dto.SubmitProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/profiles [post]
func SubmitProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SubmitProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		action, profileID, err := services.SubmitProfile(ctx, req)
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(dto.SubmitProfileResponse{
			Success:   true,
			ProfileID: profileID.Hex(),
			Action:    action,
			IsUpdate:  action == services.ActionUpdated || action == services.ActionResubmitted,
		})
	}
}

// GetOwnProfileHandler godoc
// @Summary Get the caller's profile for a school year
// @Tags profiles
// @Produce json
// @Param userId query string true "Owner user id"
// @Param schoolYearId query string true "School year id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/profiles [get]
func GetOwnProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := utils.Oid(c.Query("userId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid userId"})
		}
		yearID, err := utils.Oid(c.Query("schoolYearId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid schoolYearId"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		// The owner's profile can be in any collection depending on
		// what they submitted as; walk the fixed set.
		for _, colName := range collections.ProfileCollections() {
			p, err := repository.FindOwnerProfile(ctx, colName, ownerID, yearID)
			if err != nil {
				return fail(c, err)
			}
			if p != nil {
				return c.JSON(fiber.Map{"success": true, "collection": colName, "data": p})
			}
		}
		return fail(c, apperrors.ErrNotFound)
	}
}

// DeleteProfileHandler godoc
// @Summary Delete a profile
// @Description Removes the profile, its derived yearbook entries and its audit logs.
// @Tags profiles
// @Produce json
// @Param profileId query string true "Profile id"
// @Param schoolYearId query string false "Restrict the delete to this school year"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/profiles [delete]
func DeleteProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := utils.Oid(c.Query("profileId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid profileId"})
		}
		var yearScope *bson.ObjectID
		if raw := c.Query("schoolYearId"); raw != "" {
			yearID, err := utils.Oid(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid schoolYearId"})
			}
			yearScope = &yearID
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		var actor *bson.ObjectID
		if uid, err := services.UserIDFrom(c); err == nil {
			actor = &uid
		}
		if err := services.DeleteProfileByID(ctx, profileID, yearScope, actor); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
