package services

import (
	"context"
	"log"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RecordAudit writes an audit log entry. Fire-and-forget: a failed
// write is logged, never propagated, so the primary action stands.
func RecordAudit(ctx context.Context, action, targetType string, targetID bson.ObjectID, targetName, details string, schoolYearID, performedBy *bson.ObjectID, status string) {
	entry := models.AuditLog{
		ID:           bson.NewObjectID(),
		Action:       action,
		TargetType:   targetType,
		TargetID:     targetID,
		TargetName:   targetName,
		Details:      details,
		SchoolYearID: schoolYearID,
		Status:       status,
		PerformedBy:  performedBy,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repository.InsertAuditLog(ctx, entry); err != nil {
		log.Printf("audit: record %s on %s %s failed: %v", action, targetType, targetID.Hex(), err)
	}
}

// EmitEvent raises a UI-refresh event. Same fire-and-forget contract.
func EmitEvent(ctx context.Context, name string, payload bson.M) {
	ev := models.Event{
		ID:        bson.NewObjectID(),
		Name:      name,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if err := repository.InsertEvent(ctx, ev); err != nil {
		log.Printf("events: emit %s failed: %v", name, err)
	}
}
