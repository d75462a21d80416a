package services

import (
	"context"
	"log"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ApproveProfile runs the approval transition. The status flip is a
// conditional update (pending required), so concurrent approvals of
// the same profile cannot both succeed. Everything after the flip is
// best-effort: previous-revision deletion, duplicate cleanup, fan-out,
// audit, notification and event each fail independently without
// undoing the approval.
func ApproveProfile(ctx context.Context, profileID, reviewer bson.ObjectID) (*models.Profile, error) {
	colName, p, err := repository.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.ErrNotFound
	}
	if p.Status != models.StatusPending {
		return nil, apperrors.ErrInvalidState
	}

	now := time.Now().UTC()
	ok, err := repository.MarkApproved(ctx, colName, profileID, reviewer, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race: someone else already moved it out of pending.
		return nil, apperrors.ErrInvalidState
	}
	p.Status = models.StatusApproved
	p.ReviewedAt = &now
	p.ReviewedBy = &reviewer

	if p.PreviousProfileID != nil {
		prevID := *p.PreviousProfileID
		if prevCol, prev, err := repository.FindProfileByID(ctx, prevID); err != nil {
			log.Printf("approve %s: lookup of previous %s failed: %v", profileID.Hex(), prevID.Hex(), err)
		} else if prev != nil {
			if prev.HasAcademicAssignments() {
				if err := RemoveDerivedEntries(ctx, prev); err != nil {
					log.Printf("approve %s: derived cleanup for previous %s failed: %v", profileID.Hex(), prevID.Hex(), err)
				}
			}
			if _, err := repository.DeleteProfile(ctx, prevCol, prevID); err != nil {
				log.Printf("approve %s: delete of previous %s failed: %v", profileID.Hex(), prevID.Hex(), err)
			}
		}
	}

	if _, err := repository.DeleteOwnerDuplicates(ctx, colName, p.OwnedBy, p.SchoolYearID, profileID); err != nil {
		log.Printf("approve %s: duplicate cleanup failed: %v", profileID.Hex(), err)
	}

	if p.HasAcademicAssignments() {
		// Regenerate rather than append so re-approval never doubles
		// up entries.
		if err := RemoveDerivedEntries(ctx, p); err != nil {
			log.Printf("approve %s: stale derived cleanup failed: %v", profileID.Hex(), err)
		}
		FanOutProfile(ctx, p)
	}

	RecordAudit(ctx, "profile_approved", "profile", profileID, p.FullName,
		"approved in "+colName, &p.SchoolYearID, &reviewer, models.StatusApproved)

	ref := models.Ref{ProfileID: &profileID, SchoolYearID: &p.SchoolYearID}
	if err := NotifyOne(ctx, p.OwnedBy, NotiProfileApproved, ref, models.NotiParams{
		ProfileName: p.FullName,
		YearLabel:   yearLabelOf(ctx, p.SchoolYearID),
	}); err != nil {
		log.Printf("approve %s: owner notification failed: %v", profileID.Hex(), err)
	}

	EmitEvent(ctx, "profile_approved", bson.M{
		"profileId":    profileID.Hex(),
		"collection":   colName,
		"schoolYearId": p.SchoolYearID.Hex(),
	})
	return p, nil
}

// RejectProfile is the symmetric, simpler transition: no fan-out, no
// cascading deletes, reason stored for resubmission.
func RejectProfile(ctx context.Context, profileID, reviewer bson.ObjectID, reason string) (*models.Profile, error) {
	if reason == "" {
		return nil, apperrors.NewValidation("reason")
	}

	colName, p, err := repository.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.ErrNotFound
	}
	if p.Status != models.StatusPending {
		return nil, apperrors.ErrInvalidState
	}

	now := time.Now().UTC()
	ok, err := repository.MarkRejected(ctx, colName, profileID, reviewer, reason, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidState
	}
	p.Status = models.StatusRejected
	p.RejectionReason = reason
	p.ReviewedAt = &now
	p.ReviewedBy = &reviewer

	RecordAudit(ctx, "profile_rejected", "profile", profileID, p.FullName,
		reason, &p.SchoolYearID, &reviewer, models.StatusRejected)

	ref := models.Ref{ProfileID: &profileID, SchoolYearID: &p.SchoolYearID}
	if err := NotifyOne(ctx, p.OwnedBy, NotiProfileRejected, ref, models.NotiParams{
		ProfileName: p.FullName,
		Reason:      reason,
	}); err != nil {
		log.Printf("reject %s: owner notification failed: %v", profileID.Hex(), err)
	}

	EmitEvent(ctx, "profile_rejected", bson.M{
		"profileId":    profileID.Hex(),
		"schoolYearId": p.SchoolYearID.Hex(),
	})
	return p, nil
}
