package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotiType string

// Ref points a notification back at the documents it is about.
type Ref struct {
	ProfileID    *bson.ObjectID `json:"profileId,omitempty" bson:"profile_id,omitempty"`
	SchoolYearID *bson.ObjectID `json:"schoolYearId,omitempty" bson:"school_year_id,omitempty"`
	AlbumID      *bson.ObjectID `json:"albumId,omitempty" bson:"album_id,omitempty"`
}

type NotiParams struct {
	ProfileName string
	UserType    string
	YearLabel   string
	Reason      string
	RowCount    int
}

type Notification struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId" bson:"user_id"`
	Type      NotiType      `json:"type" bson:"type"`
	Title     string        `json:"title" bson:"title"`
	Body      string        `json:"body" bson:"body"`
	Ref       Ref           `json:"ref" bson:"ref"`
	Read      bool          `json:"read" bson:"read"`
	ReadAt    *time.Time    `json:"readAt,omitempty" bson:"read_at,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
