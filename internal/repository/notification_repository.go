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

const notificationCollection = "notifications"

func InsertNotification(ctx context.Context, n models.Notification) error {
	_, err := database.DB.Collection(notificationCollection).InsertOne(ctx, n)
	return err
}

func InsertNotifications(ctx context.Context, ns []models.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	docs := make([]interface{}, len(ns))
	for i, n := range ns {
		docs[i] = n
	}
	_, err := database.DB.Collection(notificationCollection).InsertMany(ctx, docs)
	return err
}

func ListUnreadNotifications(ctx context.Context, userID bson.ObjectID) ([]models.Notification, error) {
	cursor, err := database.DB.Collection(notificationCollection).Find(ctx, bson.M{
		"user_id": userID,
		"read":    false,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks and returns the notification in one
// round trip so the detail view can render the updated document.
func MarkNotificationRead(ctx context.Context, userID, notiID bson.ObjectID) (*models.Notification, error) {
	filter := bson.M{"_id": notiID, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"read":    true,
		"read_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n models.Notification
	err := database.DB.Collection(notificationCollection).
		FindOneAndUpdate(ctx, filter, update, opts).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}
