package services

import (
	"testing"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func sampleRequest() dto.SubmitProfileRequest {
	return dto.SubmitProfileRequest{
		SchoolYearID: bson.NewObjectID().Hex(),
		UserType:     "student",
		UserID:       bson.NewObjectID().Hex(),
		ProfileData: dto.ProfileData{
			FullName:   "Juan Dela Cruz",
			Department: "College",
			Course:     "BSIT",
			YearLevel:  "1st Year",
		},
	}
}

func TestBuildProfileValidation(t *testing.T) {
	now := time.Now().UTC()

	_, err := BuildProfile(dto.SubmitProfileRequest{}, now)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "schoolYearId")
	assert.Contains(t, verr.Fields, "userId")
	assert.Contains(t, verr.Fields, "userType")
	assert.Contains(t, verr.Fields, "profileData.fullName")

	req := sampleRequest()
	req.SchoolYearID = "not-a-hex-id"
	_, err = BuildProfile(req, now)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "schoolYearId")
}

func TestBuildProfileNormalizesAcademicFields(t *testing.T) {
	now := time.Now().UTC()
	req := sampleRequest()
	req.UserType = "advisory"
	req.ProfileData.AcademicDepartment = "College"
	req.ProfileData.AcademicYearLevels = `["1st Year"]`
	req.ProfileData.AcademicSections = []any{"BSIT 1A-1st Year"}

	p, err := BuildProfile(req, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"1st Year"}, p.AcademicYearLevels)
	assert.Equal(t, []string{"BSIT 1A-1st Year"}, p.AcademicSections)
	assert.Equal(t, models.StatusPending, p.Status)
	assert.Equal(t, now, p.SubmittedAt)
}

func TestPlanSubmissionCreated(t *testing.T) {
	now := time.Now().UTC()
	incoming, err := BuildProfile(sampleRequest(), now)
	require.NoError(t, err)

	plan := PlanSubmission(nil, incoming, now)

	assert.Equal(t, ActionCreated, plan.Action)
	require.NotNil(t, plan.Insert)
	assert.False(t, plan.Insert.ID.IsZero())
	assert.Nil(t, plan.Insert.PreviousProfileID)
	assert.Empty(t, plan.Set)
}

func TestPlanSubmissionRevisionForApproved(t *testing.T) {
	now := time.Now().UTC()
	incoming, err := BuildProfile(sampleRequest(), now)
	require.NoError(t, err)

	existing := incoming
	existing.ID = bson.NewObjectID()
	existing.Status = models.StatusApproved

	plan := PlanSubmission(&existing, incoming, now)

	assert.Equal(t, ActionRevisionCreated, plan.Action)
	require.NotNil(t, plan.Insert)
	assert.NotEqual(t, existing.ID, plan.Insert.ID)
	require.NotNil(t, plan.Insert.PreviousProfileID)
	assert.Equal(t, existing.ID, *plan.Insert.PreviousProfileID)
}

func TestPlanSubmissionResubmitClearsRejection(t *testing.T) {
	now := time.Now().UTC()
	incoming, err := BuildProfile(sampleRequest(), now)
	require.NoError(t, err)

	existing := incoming
	existing.ID = bson.NewObjectID()
	existing.Status = models.StatusRejected

	plan := PlanSubmission(&existing, incoming, now)

	assert.Equal(t, ActionResubmitted, plan.Action)
	assert.Nil(t, plan.Insert)
	assert.Equal(t, existing.ID, plan.UpdateID)
	assert.Equal(t, models.StatusPending, plan.Set["status"])
	for _, field := range []string{"rejection_reason", "reviewed_at", "reviewed_by"} {
		assert.Contains(t, plan.Unset, field)
	}
}

func TestPlanSubmissionUpdatesPendingInPlace(t *testing.T) {
	now := time.Now().UTC()
	incoming, err := BuildProfile(sampleRequest(), now)
	require.NoError(t, err)
	incoming.Motto = "Ad astra"

	existing := incoming
	existing.ID = bson.NewObjectID()
	existing.Status = models.StatusPending
	existing.Motto = ""

	plan := PlanSubmission(&existing, incoming, now)

	assert.Equal(t, ActionUpdated, plan.Action)
	assert.Nil(t, plan.Insert)
	assert.Equal(t, existing.ID, plan.UpdateID)
	assert.Equal(t, "Ad astra", plan.Set["motto"])
	assert.Equal(t, models.StatusPending, plan.Set["status"])
	assert.Empty(t, plan.Unset)
}
