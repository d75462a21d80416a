package repository

import (
	"context"

	"github.com/Rafaelaligui187/Memoria-sub003/database"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func InsertYearbookEntry(ctx context.Context, colName string, e models.YearbookEntry) error {
	_, err := database.DB.Collection(colName).InsertOne(ctx, e)
	return err
}

// DeleteDerivedEntries removes fan-out entries that back-reference the
// given advisory/faculty source profile. Called before regenerating on
// re-approval and when the source is deleted.
func DeleteDerivedEntries(ctx context.Context, colName string, sourceID bson.ObjectID) (int64, error) {
	res, err := database.DB.Collection(colName).DeleteMany(ctx, bson.M{
		"$or": []bson.M{
			{"original_advisory_id": sourceID},
			{"original_faculty_id": sourceID},
		},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
