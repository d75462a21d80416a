package services

import (
	"context"
	"log"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func CreateAlbum(ctx context.Context, req dto.CreateAlbumRequest, creator bson.ObjectID) (*models.Album, error) {
	var missing []string
	if req.SchoolYearID == "" {
		missing = append(missing, "schoolYearId")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidation(missing...)
	}
	yearID, err := bson.ObjectIDFromHex(req.SchoolYearID)
	if err != nil {
		return nil, apperrors.NewValidation("schoolYearId")
	}

	now := time.Now().UTC()
	album := models.Album{
		ID:           bson.NewObjectID(),
		SchoolYearID: yearID,
		Title:        req.Title,
		Description:  req.Description,
		CoverURL:     req.CoverURL,
		CreatedBy:    creator,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repository.InsertAlbum(ctx, album); err != nil {
		return nil, err
	}

	RecordAudit(ctx, "album_created", "album", album.ID, album.Title, "", &yearID, &creator, "")
	return &album, nil
}

// DeleteAlbum removes the album plus its media, likes and views; the
// activity cleanup is best-effort.
func DeleteAlbum(ctx context.Context, albumID, actor bson.ObjectID) error {
	album, err := repository.GetAlbumByID(ctx, albumID)
	if err != nil {
		return err
	}
	if album == nil {
		return apperrors.ErrNotFound
	}
	if _, err := repository.DeleteAlbum(ctx, albumID); err != nil {
		return err
	}
	if _, err := repository.DeleteAlbumMedia(ctx, albumID); err != nil {
		log.Printf("album delete %s: media cleanup failed: %v", albumID.Hex(), err)
	}
	if err := repository.DeleteAlbumActivity(ctx, albumID); err != nil {
		log.Printf("album delete %s: like/view cleanup failed: %v", albumID.Hex(), err)
	}
	RecordAudit(ctx, "album_deleted", "album", albumID, album.Title, "", &album.SchoolYearID, &actor, "")
	return nil
}

// LikeAlbum records a like; liking twice is a no-op thanks to the
// unique index, and the counter is only bumped on the first like.
func LikeAlbum(ctx context.Context, userID, albumID bson.ObjectID) (liked bool, count int64, err error) {
	album, err := repository.GetAlbumByID(ctx, albumID)
	if err != nil {
		return false, 0, err
	}
	if album == nil {
		return false, 0, apperrors.ErrNotFound
	}

	dup, err := repository.InsertAlbumLike(ctx, models.AlbumLike{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		AlbumID:   albumID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return false, 0, err
	}
	if !dup {
		if err := repository.IncAlbumCounter(ctx, albumID, "like_count", 1); err != nil {
			log.Printf("like %s: counter bump failed: %v", albumID.Hex(), err)
		}
	}
	total, err := repository.CountAlbumLikes(ctx, albumID)
	if err != nil {
		return true, 0, err
	}
	return true, total, nil
}

func UnlikeAlbum(ctx context.Context, userID, albumID bson.ObjectID) (count int64, err error) {
	removed, err := repository.DeleteAlbumLike(ctx, userID, albumID)
	if err != nil {
		return 0, err
	}
	if removed {
		if err := repository.IncAlbumCounter(ctx, albumID, "like_count", -1); err != nil {
			log.Printf("unlike %s: counter bump failed: %v", albumID.Hex(), err)
		}
	}
	return repository.CountAlbumLikes(ctx, albumID)
}

// RecordAlbumView bumps the counter and appends a view document; a
// failed view record never fails the request.
func RecordAlbumView(ctx context.Context, albumID bson.ObjectID, viewer *bson.ObjectID) error {
	album, err := repository.GetAlbumByID(ctx, albumID)
	if err != nil {
		return err
	}
	if album == nil {
		return apperrors.ErrNotFound
	}
	if err := repository.IncAlbumCounter(ctx, albumID, "view_count", 1); err != nil {
		return err
	}
	if err := repository.InsertAlbumView(ctx, models.AlbumView{
		ID:       bson.NewObjectID(),
		AlbumID:  albumID,
		UserID:   viewer,
		ViewedAt: time.Now().UTC(),
	}); err != nil {
		log.Printf("view %s: view record failed: %v", albumID.Hex(), err)
	}
	return nil
}

func AddMedia(ctx context.Context, albumID bson.ObjectID, url, caption, contentType string, uploader bson.ObjectID) (*models.Media, error) {
	album, err := repository.GetAlbumByID(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, apperrors.ErrNotFound
	}

	media := models.Media{
		ID:          bson.NewObjectID(),
		AlbumID:     albumID,
		URL:         url,
		Caption:     caption,
		ContentType: contentType,
		UploadedBy:  uploader,
		CreatedAt:   time.Now().UTC(),
	}
	if err := repository.InsertMedia(ctx, media); err != nil {
		return nil, err
	}
	if err := repository.IncAlbumCounter(ctx, albumID, "media_count", 1); err != nil {
		log.Printf("media %s: counter bump failed: %v", albumID.Hex(), err)
	}
	return &media, nil
}
