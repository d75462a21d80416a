package services

import (
	"context"
	"log"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateManualProfile stores an admin-entered profile. Manual entries
// skip review: they land approved and fan out immediately when they
// carry academic assignments.
func CreateManualProfile(ctx context.Context, req dto.SubmitProfileRequest, admin bson.ObjectID) (*models.Profile, error) {
	now := time.Now().UTC()
	p, err := BuildProfile(req, now)
	if err != nil {
		return nil, err
	}

	colName, err := collections.Resolve(p.UserType, p.Department)
	if err != nil {
		return nil, err
	}

	p.ID = bson.NewObjectID()
	p.Status = models.StatusApproved
	p.ReviewedAt = &now
	p.ReviewedBy = &admin

	if err := repository.InsertProfile(ctx, colName, p); err != nil {
		return nil, err
	}

	if p.HasAcademicAssignments() {
		FanOutProfile(ctx, &p)
	}

	RecordAudit(ctx, "profile_manual_entry", "profile", p.ID, p.FullName,
		"manually entered into "+colName, &p.SchoolYearID, &admin, models.StatusApproved)
	EmitEvent(ctx, "profile_approved", bson.M{
		"profileId":    p.ID.Hex(),
		"collection":   colName,
		"schoolYearId": p.SchoolYearID.Hex(),
	})
	return &p, nil
}

// UpdateAdvisoryProfile edits an approved advisory/faculty document in
// place (admin action, no review round-trip) and regenerates its
// derived entries so the yearbook never shows stale assignments.
func UpdateAdvisoryProfile(ctx context.Context, profileID bson.ObjectID, req dto.SubmitProfileRequest, admin bson.ObjectID) (*models.Profile, error) {
	colName, existing, err := repository.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound
	}

	now := time.Now().UTC()
	incoming, err := BuildProfile(req, now)
	if err != nil {
		return nil, err
	}

	if existing.HasAcademicAssignments() {
		if err := RemoveDerivedEntries(ctx, existing); err != nil {
			log.Printf("advisory update %s: derived cleanup failed: %v", profileID.Hex(), err)
		}
	}

	set := submissionFields(incoming, now)
	set["status"] = existing.Status // admin edit keeps the current status
	if err := repository.UpdateProfile(ctx, colName, profileID, set, nil); err != nil {
		return nil, err
	}

	incoming.ID = profileID
	incoming.Status = existing.Status
	if incoming.Status == models.StatusApproved && incoming.HasAcademicAssignments() {
		FanOutProfile(ctx, &incoming)
	}

	RecordAudit(ctx, "advisory_updated", "profile", profileID, incoming.FullName,
		"advisory profile edited", &incoming.SchoolYearID, &admin, incoming.Status)
	return &incoming, nil
}
