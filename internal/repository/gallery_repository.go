package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/database"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	albumCollection = "gallery_albums"
	mediaCollection = "gallery_media"
	viewCollection  = "album_views"
)

func InsertAlbum(ctx context.Context, a models.Album) error {
	_, err := database.DB.Collection(albumCollection).InsertOne(ctx, a)
	return err
}

func GetAlbumByID(ctx context.Context, id bson.ObjectID) (*models.Album, error) {
	var a models.Album
	err := database.DB.Collection(albumCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func ListAlbums(ctx context.Context, schoolYearID bson.ObjectID) ([]models.Album, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.DB.Collection(albumCollection).Find(ctx,
		bson.M{"school_year_id": schoolYearID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var albums []models.Album
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

func UpdateAlbum(ctx context.Context, id bson.ObjectID, fields bson.M) (bool, error) {
	fields["updated_at"] = time.Now().UTC()
	res, err := database.DB.Collection(albumCollection).UpdateOne(ctx,
		bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func DeleteAlbum(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := database.DB.Collection(albumCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func InsertMedia(ctx context.Context, m models.Media) error {
	_, err := database.DB.Collection(mediaCollection).InsertOne(ctx, m)
	return err
}

func ListMedia(ctx context.Context, albumID bson.ObjectID) ([]models.Media, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := database.DB.Collection(mediaCollection).Find(ctx,
		bson.M{"album_id": albumID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []models.Media
	if err := cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}

func DeleteAlbumMedia(ctx context.Context, albumID bson.ObjectID) (int64, error) {
	res, err := database.DB.Collection(mediaCollection).DeleteMany(ctx, bson.M{"album_id": albumID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func IncAlbumCounter(ctx context.Context, albumID bson.ObjectID, field string, delta int) error {
	_, err := database.DB.Collection(albumCollection).UpdateOne(ctx,
		bson.M{"_id": albumID}, bson.M{"$inc": bson.M{field: delta}})
	return err
}

// InsertAlbumView appends a view record; the album's view_count is
// bumped separately via IncAlbumCounter.
func InsertAlbumView(ctx context.Context, v models.AlbumView) error {
	_, err := database.DB.Collection(viewCollection).InsertOne(ctx, v)
	return err
}

func DeleteAlbumActivity(ctx context.Context, albumID bson.ObjectID) error {
	if _, err := database.DB.Collection(likeCollection).DeleteMany(ctx, bson.M{"album_id": albumID}); err != nil {
		return err
	}
	_, err := database.DB.Collection(viewCollection).DeleteMany(ctx, bson.M{"album_id": albumID})
	return err
}
