package repository

import (
	"context"
	"errors"

	"github.com/Rafaelaligui187/Memoria-sub003/database"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const likeCollection = "album_likes"

// InsertAlbumLike relies on the unique (user_id, album_id) index; a
// duplicate-key write means the user already liked the album and is
// reported as dup, not as an error.
func InsertAlbumLike(ctx context.Context, like models.AlbumLike) (dup bool, err error) {
	_, err = database.DB.Collection(likeCollection).InsertOne(ctx, like)
	if err == nil {
		return false, nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true, nil
	}
	return false, err
}

func DeleteAlbumLike(ctx context.Context, userID, albumID bson.ObjectID) (bool, error) {
	res, err := database.DB.Collection(likeCollection).DeleteOne(ctx,
		bson.M{"user_id": userID, "album_id": albumID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func CountAlbumLikes(ctx context.Context, albumID bson.ObjectID) (int64, error) {
	return database.DB.Collection(likeCollection).CountDocuments(ctx, bson.M{"album_id": albumID})
}

func IsAlbumLiked(ctx context.Context, userID, albumID bson.ObjectID) (bool, error) {
	count, err := database.DB.Collection(likeCollection).CountDocuments(ctx,
		bson.M{"user_id": userID, "album_id": albumID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
