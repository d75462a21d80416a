package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/config"
	"github.com/Rafaelaligui187/Memoria-sub003/database"
	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/services"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Smoke test against a live MongoDB: submit an advisory profile,
// approve it, and verify the per-section yearbook entries landed.
func main() {
	cfg := config.LoadConfig()

	if cfg.MongoURI == "" || cfg.MongoURI == "mongodb://localhost:27017" {
		log.Fatal("please set MONGO_URI to point to your MongoDB instance")
	}

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	yearID := bson.NewObjectID()
	ownerID := bson.NewObjectID()
	adminID := bson.NewObjectID()

	yearsCol := db.Collection("SchoolYears")
	advisoryCol := db.Collection("advisory_profiles")
	collegeCol := db.Collection("College_yearbook")
	notiCol := db.Collection("notifications")
	auditCol := db.Collection("audit_logs")

	cleanup := func(ctx context.Context) {
		_, _ = notiCol.DeleteMany(ctx, bson.M{"user_id": bson.M{"$in": []bson.ObjectID{ownerID, adminID}}})
		_, _ = auditCol.DeleteMany(ctx, bson.M{"school_year_id": yearID})
		_, _ = collegeCol.DeleteMany(ctx, bson.M{"owned_by": ownerID})
		_, _ = advisoryCol.DeleteMany(ctx, bson.M{"owned_by": ownerID})
		_, _ = yearsCol.DeleteMany(ctx, bson.M{"_id": yearID})
	}
	defer cleanup(ctx)

	if _, err := yearsCol.InsertOne(ctx, bson.M{
		"_id":        yearID,
		"year_label": "2025-2026",
		"start_year": 2025,
		"end_year":   2026,
		"is_active":  true,
		"created_at": time.Now(),
	}); err != nil {
		log.Fatalf("failed to insert test school year: %v", err)
	}

	req := dto.SubmitProfileRequest{
		SchoolYearID: yearID.Hex(),
		UserType:     "advisory",
		UserID:       ownerID.Hex(),
		ProfileData: dto.ProfileData{
			FullName:           "Smoke Test Adviser",
			Position:           "Class Adviser",
			AcademicDepartment: "College",
			AcademicYearLevels: []string{"1st Year"},
			AcademicSections:   []string{"BSIT 1A-1st Year"},
		},
	}

	action, profileID, err := services.SubmitProfile(ctx, req)
	if err != nil {
		log.Fatalf("SubmitProfile returned error: %v", err)
	}
	fmt.Printf("submitted profile %s (action=%s)\n", profileID.Hex(), action)

	if _, err := services.ApproveProfile(ctx, profileID, adminID); err != nil {
		log.Fatalf("ApproveProfile returned error: %v", err)
	}

	var entry bson.M
	err = collegeCol.FindOne(ctx, bson.M{"original_advisory_id": profileID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			fmt.Println("no derived yearbook entry found for the approved advisory profile")
			os.Exit(1)
		}
		log.Fatalf("failed to fetch derived entry: %v", err)
	}

	fmt.Println("✅ Derived yearbook entry inserted:")
	for k, v := range entry {
		fmt.Printf("  %s: %#v\n", k, v)
	}
}
