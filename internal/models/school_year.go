package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type SchoolYear struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	YearLabel string        `json:"yearLabel" bson:"year_label"` // e.g. "2025-2026"
	StartYear int           `json:"startYear" bson:"start_year"`
	EndYear   int           `json:"endYear" bson:"end_year"`
	IsActive  bool          `json:"isActive" bson:"is_active"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}
