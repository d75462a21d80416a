package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AuditLog records one state-changing admin/user action.
type AuditLog struct {
	ID           bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	Action       string         `json:"action" bson:"action"` // e.g. profile_approved
	TargetType   string         `json:"targetType" bson:"target_type"`
	TargetID     bson.ObjectID  `json:"targetId" bson:"target_id"`
	TargetName   string         `json:"targetName,omitempty" bson:"target_name,omitempty"`
	Details      string         `json:"details,omitempty" bson:"details,omitempty"`
	SchoolYearID *bson.ObjectID `json:"schoolYearId,omitempty" bson:"school_year_id,omitempty"`
	Status       string         `json:"status,omitempty" bson:"status,omitempty"`
	PerformedBy  *bson.ObjectID `json:"performedBy,omitempty" bson:"performed_by,omitempty"`
	CreatedAt    time.Time      `json:"createdAt" bson:"created_at"`
}

// Event is a lightweight UI-refresh signal the frontend polls for.
type Event struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Payload   bson.M        `json:"payload,omitempty" bson:"payload,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
