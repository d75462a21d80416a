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
	"github.com/Rafaelaligui187/Memoria-sub003/internal/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Submission actions returned to the caller.
const (
	ActionCreated         = "created"
	ActionRevisionCreated = "revision_created"
	ActionUpdated         = "updated"
	ActionResubmitted     = "resubmitted"
)

// SubmissionPlan is the pure outcome of applying the lifecycle rules
// to one submission: either a document to insert or an in-place update.
type SubmissionPlan struct {
	Action   string
	Insert   *models.Profile
	UpdateID bson.ObjectID
	Set      bson.M
	Unset    bson.M
}

// BuildProfile validates and normalizes a submission into a profile
// document. String-or-array academic fields are parsed exactly once
// here; everything downstream sees typed slices.
func BuildProfile(req dto.SubmitProfileRequest, now time.Time) (models.Profile, error) {
	var missing []string
	if req.SchoolYearID == "" {
		missing = append(missing, "schoolYearId")
	}
	if req.UserID == "" {
		missing = append(missing, "userId")
	}
	if req.UserType == "" {
		missing = append(missing, "userType")
	}
	if req.ProfileData.FullName == "" {
		missing = append(missing, "profileData.fullName")
	}
	if len(missing) > 0 {
		return models.Profile{}, apperrors.NewValidation(missing...)
	}

	yearID, err := bson.ObjectIDFromHex(req.SchoolYearID)
	if err != nil {
		return models.Profile{}, apperrors.NewValidation("schoolYearId")
	}
	ownerID, err := bson.ObjectIDFromHex(req.UserID)
	if err != nil {
		return models.Profile{}, apperrors.NewValidation("userId")
	}

	levels, err := utils.StringList(req.ProfileData.AcademicYearLevels)
	if err != nil {
		return models.Profile{}, apperrors.NewValidation("profileData.academicYearLevels")
	}
	sections, err := utils.StringList(req.ProfileData.AcademicSections)
	if err != nil {
		return models.Profile{}, apperrors.NewValidation("profileData.academicSections")
	}

	d := req.ProfileData
	return models.Profile{
		OwnedBy:      ownerID,
		SchoolYearID: yearID,
		UserType:     req.UserType,

		FullName:     d.FullName,
		Nickname:     d.Nickname,
		Email:        d.Email,
		PhotoURL:     d.PhotoURL,
		Motto:        d.Motto,
		Bio:          d.Bio,
		Achievements: d.Achievements,
		SocialLinks:  d.SocialLinks,

		Department:   d.Department,
		Course:       d.Course,
		YearLevel:    d.YearLevel,
		BlockSection: d.BlockSection,

		DepartmentAssigned: d.DepartmentAssigned,
		Position:           d.Position,
		AcademicDepartment: d.AcademicDepartment,
		AcademicYearLevels: levels,
		AcademicSections:   sections,

		Status:      models.StatusPending,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// PlanSubmission decides what one submission does to storage, given
// the owner's existing profile for the same school year (nil when
// there is none). Pure; the service applies the plan afterwards.
func PlanSubmission(existing *models.Profile, incoming models.Profile, now time.Time) SubmissionPlan {
	if existing == nil {
		doc := incoming
		doc.ID = bson.NewObjectID()
		return SubmissionPlan{Action: ActionCreated, Insert: &doc}
	}

	switch existing.Status {
	case models.StatusApproved:
		// Approved profiles are never edited in place: a revision
		// document goes through review and replaces the old one on
		// approval.
		doc := incoming
		doc.ID = bson.NewObjectID()
		prev := existing.ID
		doc.PreviousProfileID = &prev
		return SubmissionPlan{Action: ActionRevisionCreated, Insert: &doc}

	case models.StatusRejected:
		return SubmissionPlan{
			Action:   ActionResubmitted,
			UpdateID: existing.ID,
			Set:      submissionFields(incoming, now),
			Unset: bson.M{
				"rejection_reason": "",
				"reviewed_at":      "",
				"reviewed_by":      "",
			},
		}

	default: // pending (and legacy draft) update in place
		return SubmissionPlan{
			Action:   ActionUpdated,
			UpdateID: existing.ID,
			Set:      submissionFields(incoming, now),
		}
	}
}

func submissionFields(p models.Profile, now time.Time) bson.M {
	return bson.M{
		"user_type":            p.UserType,
		"full_name":            p.FullName,
		"nickname":             p.Nickname,
		"email":                p.Email,
		"photo_url":            p.PhotoURL,
		"motto":                p.Motto,
		"bio":                  p.Bio,
		"achievements":         p.Achievements,
		"social_links":         p.SocialLinks,
		"department":           p.Department,
		"course":               p.Course,
		"year_level":           p.YearLevel,
		"block_section":        p.BlockSection,
		"department_assigned":  p.DepartmentAssigned,
		"position":             p.Position,
		"academic_department":  p.AcademicDepartment,
		"academic_year_levels": p.AcademicYearLevels,
		"academic_sections":    p.AcademicSections,
		"status":               models.StatusPending,
		"submitted_at":         now,
		"updated_at":           now,
	}
}

// SubmitProfile runs the full submission flow: route to a collection,
// plan against the owner's existing profile, apply, then notify the
// admin queue (best-effort).
func SubmitProfile(ctx context.Context, req dto.SubmitProfileRequest) (action string, profileID bson.ObjectID, err error) {
	now := time.Now().UTC()
	incoming, err := BuildProfile(req, now)
	if err != nil {
		return "", bson.NilObjectID, err
	}

	colName, err := collections.Resolve(incoming.UserType, incoming.Department)
	if err != nil {
		return "", bson.NilObjectID, err
	}

	existing, err := repository.FindOwnerProfile(ctx, colName, incoming.OwnedBy, incoming.SchoolYearID)
	if err != nil {
		return "", bson.NilObjectID, err
	}

	plan := PlanSubmission(existing, incoming, now)
	switch {
	case plan.Insert != nil:
		if err := repository.InsertProfile(ctx, colName, *plan.Insert); err != nil {
			return "", bson.NilObjectID, err
		}
		profileID = plan.Insert.ID
	default:
		if err := repository.UpdateProfile(ctx, colName, plan.UpdateID, plan.Set, plan.Unset); err != nil {
			return "", bson.NilObjectID, err
		}
		profileID = plan.UpdateID
	}

	notiType := NotiProfileSubmitted
	if plan.Action == ActionResubmitted {
		notiType = NotiProfileResubmitted
	}
	ref := models.Ref{ProfileID: &profileID, SchoolYearID: &incoming.SchoolYearID}
	if err := NotifyAdmins(ctx, notiType, ref, models.NotiParams{
		ProfileName: incoming.FullName,
		UserType:    incoming.UserType,
		YearLabel:   yearLabelOf(ctx, incoming.SchoolYearID),
	}); err != nil {
		log.Printf("submit %s: admin notification failed: %v", profileID.Hex(), err)
	}

	RecordAudit(ctx, "profile_"+plan.Action, "profile", profileID, incoming.FullName,
		"submitted to "+colName, &incoming.SchoolYearID, &incoming.OwnedBy, models.StatusPending)

	return plan.Action, profileID, nil
}

// DeleteProfileByID removes a profile wherever it lives, plus its
// derived fan-out entries and audit trail (both best-effort). A
// non-nil yearScope restricts the delete to that school year; a
// profile found under a different year is treated as not found.
func DeleteProfileByID(ctx context.Context, profileID bson.ObjectID, yearScope, actor *bson.ObjectID) error {
	colName, p, err := repository.FindProfileByID(ctx, profileID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperrors.ErrNotFound
	}
	if yearScope != nil && p.SchoolYearID != *yearScope {
		return apperrors.ErrNotFound
	}

	ok, err := repository.DeleteProfile(ctx, colName, profileID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	if p.HasAcademicAssignments() {
		if err := RemoveDerivedEntries(ctx, p); err != nil {
			log.Printf("delete %s: derived entry cleanup failed: %v", profileID.Hex(), err)
		}
	}
	if _, err := repository.DeleteAuditLogsForTarget(ctx, profileID); err != nil {
		log.Printf("delete %s: audit log cleanup failed: %v", profileID.Hex(), err)
	}

	RecordAudit(ctx, "profile_deleted", "profile", profileID, p.FullName,
		"deleted from "+colName, &p.SchoolYearID, actor, p.Status)
	EmitEvent(ctx, "profile_deleted", bson.M{
		"profileId":    profileID.Hex(),
		"schoolYearId": p.SchoolYearID.Hex(),
	})
	return nil
}

func yearLabelOf(ctx context.Context, yearID bson.ObjectID) string {
	sy, err := repository.GetSchoolYearByID(ctx, yearID)
	if err != nil || sy == nil {
		return yearID.Hex()
	}
	return sy.YearLabel
}
