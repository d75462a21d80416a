package repository

import (
	"context"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/database"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	auditCollection = "audit_logs"
	eventCollection = "events"
)

func InsertAuditLog(ctx context.Context, entry models.AuditLog) error {
	_, err := database.DB.Collection(auditCollection).InsertOne(ctx, entry)
	return err
}

// DeleteAuditLogsForTarget removes the audit trail of a deleted
// profile together with the profile itself.
func DeleteAuditLogsForTarget(ctx context.Context, targetID bson.ObjectID) (int64, error) {
	res, err := database.DB.Collection(auditCollection).DeleteMany(ctx, bson.M{"target_id": targetID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListAuditLogs pages newest-first with a (created_at, _id) cursor.
func ListAuditLogs(ctx context.Context, schoolYearID bson.ObjectID, before time.Time, beforeID bson.ObjectID, limit int64) ([]models.AuditLog, error) {
	filter := bson.M{"school_year_id": schoolYearID}
	if !before.IsZero() {
		filter["$or"] = []bson.M{
			{"created_at": bson.M{"$lt": before}},
			{"created_at": before, "_id": bson.M{"$lt": beforeID}},
		}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := database.DB.Collection(auditCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func InsertEvent(ctx context.Context, ev models.Event) error {
	_, err := database.DB.Collection(eventCollection).InsertOne(ctx, ev)
	return err
}

// ListEventsSince backs the UI polling hook.
func ListEventsSince(ctx context.Context, since time.Time, limit int64) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := database.DB.Collection(eventCollection).Find(ctx,
		bson.M{"created_at": bson.M{"$gt": since}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
