package repository

import (
	"context"
	"errors"

	"github.com/Rafaelaligui187/Memoria-sub003/database"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const userCollection = "users"

func FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := database.DB.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var u models.User
	err := database.DB.Collection(userCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func CountUsers(ctx context.Context) (int64, error) {
	return database.DB.Collection(userCollection).CountDocuments(ctx, bson.M{})
}

// ListAdminIDs feeds the admin review-queue notifications.
func ListAdminIDs(ctx context.Context) ([]bson.ObjectID, error) {
	cursor, err := database.DB.Collection(userCollection).Find(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []models.User
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	ids := make([]bson.ObjectID, 0, len(admins))
	for _, a := range admins {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func InsertUser(ctx context.Context, u models.User) error {
	_, err := database.DB.Collection(userCollection).InsertOne(ctx, u)
	return err
}
