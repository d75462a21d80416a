package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// YearbookEntry is a denormalized page entry inside a department
// collection. Advisory/faculty fan-out produces one of these per
// (year level, section) assignment; the source profile stays the
// system of record.
type YearbookEntry struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	SchoolYearID bson.ObjectID `json:"schoolYearId" bson:"school_year_id"`
	UserType     string        `json:"userType" bson:"user_type"`

	FullName     string   `json:"fullName" bson:"full_name"`
	PhotoURL     string   `json:"photoUrl,omitempty" bson:"photo_url,omitempty"`
	Motto        string   `json:"motto,omitempty" bson:"motto,omitempty"`
	Bio          string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Achievements []string `json:"achievements,omitempty" bson:"achievements,omitempty"`
	Email        string   `json:"email,omitempty" bson:"email,omitempty"`

	Department   string `json:"department" bson:"department"`
	YearLevel    string `json:"yearLevel" bson:"year_level"`
	BlockSection string `json:"blockSection,omitempty" bson:"block_section,omitempty"`

	IsAdvisoryEntry    bool           `json:"isAdvisoryEntry,omitempty" bson:"is_advisory_entry,omitempty"`
	IsFacultyEntry     bool           `json:"isFacultyEntry,omitempty" bson:"is_faculty_entry,omitempty"`
	OriginalAdvisoryID *bson.ObjectID `json:"originalAdvisoryId,omitempty" bson:"original_advisory_id,omitempty"`
	OriginalFacultyID  *bson.ObjectID `json:"originalFacultyId,omitempty" bson:"original_faculty_id,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
