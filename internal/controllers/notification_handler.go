package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/middleware"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GetUnreadNotifications godoc
// @Summary      List unread notifications for the current user
// @Description  Return all unread notifications and the total count for the authenticated user.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} map[string]interface{}  "Unread notification count and list"
// @Failure      500  {object} map[string]string       "Failed to fetch notifications"
// @Router       /api/notifications [get]
func GetUnreadNotifications() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UIDObjectID(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		notifications, err := repository.ListUnreadNotifications(ctx, userID)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch notifications",
			})
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"unread_count": len(notifications),
			"data":         notifications,
		})
	}
}

// GetNotificationAndMarkRead godoc
// @Summary      Get a notification and mark it as read
// @Description  Fetch a notification by ID for the authenticated user, mark it as read, and return the updated document.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "Notification ID (hex ObjectID)"
// @Success      200  {object} map[string]interface{}  "Updated notification document"
// @Failure      404  {object} map[string]string       "Notification not found"
// @Failure      500  {object} map[string]string       "Failed to update notification"
// @Router       /api/notifications/{id} [get]
func GetNotificationAndMarkRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.UIDObjectID(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		notiID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification id"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		notif, err := repository.MarkNotificationRead(ctx, userID, notiID)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update notification"})
		}
		if notif == nil {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "notification not found"})
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"data": notif,
		})
	}
}
