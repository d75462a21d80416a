package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Profile status values
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// User types accepted by the submission endpoints
const (
	UserTypeStudent   = "student"
	UserTypeAlumni    = "alumni"
	UserTypeFaculty   = "faculty"
	UserTypeStaff     = "staff"
	UserTypeUtility   = "utility"
	UserTypeARSisters = "ar-sisters"
	UserTypeAdvisory  = "advisory"
)

// Profile is a submitted yearbook identity record for one person in one
// school year. The same document shape is stored in every department
// collection; role-specific fields stay empty for the other roles.
type Profile struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnedBy      bson.ObjectID `json:"ownedBy" bson:"owned_by"`
	SchoolYearID bson.ObjectID `json:"schoolYearId" bson:"school_year_id"`
	UserType     string        `json:"userType" bson:"user_type"`

	FullName     string            `json:"fullName" bson:"full_name"`
	Nickname     string            `json:"nickname,omitempty" bson:"nickname,omitempty"`
	Email        string            `json:"email,omitempty" bson:"email,omitempty"`
	PhotoURL     string            `json:"photoUrl,omitempty" bson:"photo_url,omitempty"`
	Motto        string            `json:"motto,omitempty" bson:"motto,omitempty"`
	Bio          string            `json:"bio,omitempty" bson:"bio,omitempty"`
	Achievements []string          `json:"achievements,omitempty" bson:"achievements,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty" bson:"social_links,omitempty"`

	// Student / alumni placement
	Department   string `json:"department,omitempty" bson:"department,omitempty"`
	Course       string `json:"course,omitempty" bson:"course,omitempty"`
	YearLevel    string `json:"yearLevel,omitempty" bson:"year_level,omitempty"`
	BlockSection string `json:"blockSection,omitempty" bson:"block_section,omitempty"`

	// Faculty / staff / advisory
	DepartmentAssigned string   `json:"departmentAssigned,omitempty" bson:"department_assigned,omitempty"`
	Position           string   `json:"position,omitempty" bson:"position,omitempty"`
	AcademicDepartment string   `json:"academicDepartment,omitempty" bson:"academic_department,omitempty"`
	AcademicYearLevels []string `json:"academicYearLevels,omitempty" bson:"academic_year_levels,omitempty"`
	AcademicSections   []string `json:"academicSections,omitempty" bson:"academic_sections,omitempty"`

	Status          string `json:"status" bson:"status"`
	RejectionReason string `json:"rejectionReason,omitempty" bson:"rejection_reason,omitempty"`

	// Set when this document supersedes an already-approved profile;
	// the old document is deleted once this one is approved.
	PreviousProfileID *bson.ObjectID `json:"previousProfileId,omitempty" bson:"previous_profile_id,omitempty"`

	SubmittedAt time.Time      `json:"submittedAt" bson:"submitted_at"`
	ReviewedAt  *time.Time     `json:"reviewedAt,omitempty" bson:"reviewed_at,omitempty"`
	ReviewedBy  *bson.ObjectID `json:"reviewedBy,omitempty" bson:"reviewed_by,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updated_at"`
}

// HasAcademicAssignments reports whether approving this profile must
// fan out derived yearbook entries.
func (p *Profile) HasAcademicAssignments() bool {
	if p.UserType != UserTypeAdvisory && p.UserType != UserTypeFaculty {
		return false
	}
	return p.AcademicDepartment != "" && len(p.AcademicYearLevels) > 0
}
