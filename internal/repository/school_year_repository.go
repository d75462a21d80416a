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

const schoolYearCollection = "SchoolYears"

func InsertSchoolYear(ctx context.Context, sy models.SchoolYear) error {
	_, err := database.DB.Collection(schoolYearCollection).InsertOne(ctx, sy)
	return err
}

func ListSchoolYears(ctx context.Context) ([]models.SchoolYear, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_year", Value: -1}})
	cursor, err := database.DB.Collection(schoolYearCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var years []models.SchoolYear
	if err := cursor.All(ctx, &years); err != nil {
		return nil, err
	}
	return years, nil
}

func GetSchoolYearByID(ctx context.Context, id bson.ObjectID) (*models.SchoolYear, error) {
	var sy models.SchoolYear
	err := database.DB.Collection(schoolYearCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&sy)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sy, nil
}

func UpdateSchoolYear(ctx context.Context, id bson.ObjectID, fields bson.M) (bool, error) {
	fields["updated_at"] = time.Now().UTC()
	res, err := database.DB.Collection(schoolYearCollection).UpdateOne(ctx,
		bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// ActivateSchoolYear deactivates every year, then activates one. Not
// atomic across the two updates; the activate endpoint is admin-only
// and rare enough that a short inconsistent window is acceptable.
func ActivateSchoolYear(ctx context.Context, id bson.ObjectID) (bool, error) {
	col := database.DB.Collection(schoolYearCollection)
	now := time.Now().UTC()

	if _, err := col.UpdateMany(ctx,
		bson.M{"is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": now}}); err != nil {
		return false, err
	}

	res, err := col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": true, "updated_at": now}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func DeleteSchoolYear(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := database.DB.Collection(schoolYearCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
