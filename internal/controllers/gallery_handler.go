package controllers

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/services"
	"github.com/Rafaelaligui187/Memoria-sub003/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateAlbumHandler godoc
// @Summary Create a gallery album
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param albumRequest body dto.CreateAlbumRequest true "Album"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/gallery/albums [post]
func CreateAlbumHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.CreateAlbumRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}
		creator, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		album, err := services.CreateAlbum(ctx, req, creator)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": album})
	}
}

// ListAlbumsHandler godoc
// @Summary List albums for a school year
// @Tags gallery
// @Produce json
// @Param schoolYearId query string true "School year id"
// @Success 200 {object} map[string]interface{}
// @Router /api/gallery/albums [get]
func ListAlbumsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearID, err := utils.Oid(c.Query("schoolYearId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid schoolYearId"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		albums, err := repository.ListAlbums(ctx, yearID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": albums})
	}
}

// GetAlbumHandler godoc
// @Summary Get one album with the caller's like state
// @Tags gallery
// @Produce json
// @Param albumId path string true "Album id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/gallery/albums/{albumId} [get]
func GetAlbumHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := utils.Oid(c.Params("albumId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid albumId"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		album, err := repository.GetAlbumByID(ctx, albumID)
		if err != nil {
			return fail(c, err)
		}
		if album == nil {
			return fail(c, apperrors.ErrNotFound)
		}

		liked := false
		if uid, err := services.UserIDFrom(c); err == nil {
			liked, _ = repository.IsAlbumLiked(ctx, uid, albumID)
		}
		return c.JSON(fiber.Map{"success": true, "data": album, "liked": liked})
	}
}

// UpdateAlbumHandler godoc
// @Summary Update an album's title, description or cover
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param albumId path string true "Album id"
// @Param albumRequest body dto.UpdateAlbumRequest true "Fields"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/gallery/albums/{albumId} [put]
func UpdateAlbumHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := utils.Oid(c.Params("albumId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid albumId"})
		}
		if _, err := services.UserIDFrom(c); err != nil {
			return fiber.ErrUnauthorized
		}

		var req dto.UpdateAlbumRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
		}

		fields := bson.M{}
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.CoverURL != nil {
			fields["cover_url"] = *req.CoverURL
		}
		if len(fields) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "nothing to update"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		ok, err := repository.UpdateAlbum(ctx, albumID, fields)
		if err != nil {
			return fail(c, err)
		}
		if !ok {
			return fail(c, apperrors.ErrNotFound)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// DeleteAlbumHandler godoc
// @Summary Delete an album and its media/activity
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param albumId path string true "Album id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/gallery/albums/{albumId} [delete]
func DeleteAlbumHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := utils.Oid(c.Params("albumId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid albumId"})
		}
		actor, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if err := services.DeleteAlbum(ctx, albumID, actor); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// UploadMediaHandler godoc
// @Summary Upload a media file into an album
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param albumId path string true "Album id"
// @Param file formData file true "Media file"
// @Param caption formData string false "Caption"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/gallery/albums/{albumId}/media [post]
func UploadMediaHandler(uploadDir, publicBase string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := utils.Oid(c.Params("albumId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid albumId"})
		}
		uploader, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		file, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "file is required"})
		}

		timestamp := time.Now().UnixNano() / 1e6
		ext := filepath.Ext(file.Filename)
		filename := fmt.Sprintf("media_%s_%d%s", albumID.Hex(), timestamp, ext)
		savePath := filepath.Join(uploadDir, filename)

		if err := c.SaveFile(file, savePath); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to save file"})
		}
		publicURL := fmt.Sprintf("%s/uploads/%s", publicBase, filename)

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		media, err := services.AddMedia(ctx, albumID, publicURL, c.FormValue("caption"),
			file.Header.Get("Content-Type"), uploader)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": media})
	}
}

// ListMediaHandler godoc
// @Summary List media in an album
// @Tags gallery
// @Produce json
// @Param albumId path string true "Album id"
// @Success 200 {object} map[string]interface{}
// @Router /api/gallery/albums/{albumId}/media [get]
func ListMediaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := utils.Oid(c.Params("albumId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid albumId"})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		media, err := repository.ListMedia(ctx, albumID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": media})
	}
}

// LikeAlbumHandler godoc
// @Summary Like an album
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param albumId path string true "Album id"
// @Success 200 {object} dto.LikeResponse
// @Router /api/gallery/albums/{albumId}/like [post]
func LikeAlbumHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := utils.Oid(c.Params("albumId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid albumId"})
		}
		userID, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		liked, count, err := services.LikeAlbum(ctx, userID, albumID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.LikeResponse{Success: true, Liked: liked, LikeCount: int(count)})
	}
}

// UnlikeAlbumHandler godoc
// @Summary Remove a like from an album
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param albumId path string true "Album id"
// @Success 200 {object} dto.LikeResponse
// @Router /api/gallery/albums/{albumId}/like [delete]
func UnlikeAlbumHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := utils.Oid(c.Params("albumId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid albumId"})
		}
		userID, err := services.UserIDFrom(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		count, err := services.UnlikeAlbum(ctx, userID, albumID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.LikeResponse{Success: true, Liked: false, LikeCount: int(count)})
	}
}

// RecordAlbumViewHandler godoc
// @Summary Record an album view
// @Tags gallery
// @Produce json
// @Param albumId path string true "Album id"
// @Success 200 {object} map[string]interface{}
// @Router /api/gallery/albums/{albumId}/view [post]
func RecordAlbumViewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		albumID, err := utils.Oid(c.Params("albumId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid albumId"})
		}

		// Views are counted for anonymous visitors too.
		var viewer *bson.ObjectID
		if uid, err := services.UserIDFrom(c); err == nil {
			viewer = &uid
		}

		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		if err := services.RecordAlbumView(ctx, albumID, viewer); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
