package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// RequireAdmin gates the /api/admin group. The role in the token is
// only a hint; the current role is read from the users collection so
// demotions take effect without waiting for the token to expire.
func RequireAdmin(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := UIDObjectID(c)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		var user struct {
			Role string `bson:"role"`
		}
		err = db.Collection("users").FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return fiber.ErrUnauthorized
		}
		if err != nil {
			return err
		}
		if user.Role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "admin role required")
		}
		c.Locals("role", user.Role)
		return c.Next()
	}
}
