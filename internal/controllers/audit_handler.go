package controllers

import (
	"context"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/cursor"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"
	"github.com/Rafaelaligui187/Memoria-sub003/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const auditPageSize = 50

// ListAuditLogsHandler godoc
// @Summary List audit logs for a school year
// @Description Newest first, paginated with an opaque cursor.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "School year id"
// @Param cursor query string false "Page cursor from a previous response"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/{yearId}/audit-logs [get]
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearID, err := utils.Oid(c.Params("yearId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid yearId"})
		}

		var (
			before   time.Time
			beforeID bson.ObjectID
		)
		if raw := c.Query("cursor"); raw != "" {
			before, beforeID, err = cursor.DecodeCursor(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid cursor"})
			}
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		logs, err := repository.ListAuditLogs(ctx, yearID, before, beforeID, auditPageSize)
		if err != nil {
			return fail(c, err)
		}

		next := ""
		if len(logs) == auditPageSize {
			last := logs[len(logs)-1]
			next = cursor.EncodeCursor(last.CreatedAt, last.ID)
		}
		return c.JSON(fiber.Map{"success": true, "data": logs, "nextCursor": next})
	}
}

// ListRecentEventsHandler godoc
// @Summary Poll UI-refresh events
// @Tags events
// @Produce json
// @Param since query string false "RFC3339 timestamp; defaults to the last minute"
// @Success 200 {object} map[string]interface{}
// @Router /api/events [get]
func ListRecentEventsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		since := time.Now().Add(-time.Minute).UTC()
		if raw := c.Query("since"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid since timestamp"})
			}
			since = t
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		events, err := repository.ListEventsSince(ctx, since, 100)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": events})
	}
}
