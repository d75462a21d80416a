package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"
)

// EnsureIndexes creates the indexes the app relies on at startup.
func EnsureIndexes(db *mongo.Database) error {
	if err := ensureLikeIndexes(db); err != nil {
		return err
	}
	if err := ensureProfileIndexes(db); err != nil {
		return err
	}
	return ensureUserIndexes(db)
}

func ensureLikeIndexes(db *mongo.Database) error {
	_, err := db.Collection("album_likes").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "album_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_user_album"),
		},
	)
	return err
}

func ensureProfileIndexes(db *mongo.Database) error {
	for _, col := range collections.ProfileCollections() {
		_, err := db.Collection(col).Indexes().CreateOne(
			context.Background(),
			mongo.IndexModel{
				Keys: bson.D{
					{Key: "owned_by", Value: 1},
					{Key: "school_year_id", Value: 1},
					{Key: "status", Value: 1},
				},
				Options: options.Index().SetName("owner_year_status"),
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureUserIndexes(db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	)
	return err
}
