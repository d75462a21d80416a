package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ExpandAcademicAssignments turns an advisory/faculty profile's
// academic assignments into denormalized yearbook entries, one per
// (year level, section). Section keys carry their owning year level as
// a "<name>-<yearLevel>" suffix so same-named sections on different
// levels stay apart. When the profile has no section keys at all, each
// year level gets a single entry with no block section (adviser
// assigned broadly); when sections exist, a year level with no
// matching key produces nothing. Empty year levels produce no entries
// and no error.
func ExpandAcademicAssignments(p *models.Profile) ([]models.YearbookEntry, string, error) {
	if len(p.AcademicYearLevels) == 0 {
		return nil, "", nil
	}
	targetCol, err := collections.Resolve("student", p.AcademicDepartment)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	sourceID := p.ID
	var entries []models.YearbookEntry

	appendEntry := func(yearLevel, blockSection string) {
		e := models.YearbookEntry{
			ID:           bson.NewObjectID(),
			SchoolYearID: p.SchoolYearID,
			UserType:     p.UserType,
			FullName:     p.FullName,
			PhotoURL:     p.PhotoURL,
			Motto:        p.Motto,
			Bio:          p.Bio,
			Achievements: p.Achievements,
			Email:        p.Email,
			Department:   p.AcademicDepartment,
			YearLevel:    yearLevel,
			BlockSection: blockSection,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if p.UserType == models.UserTypeAdvisory {
			e.IsAdvisoryEntry = true
			e.OriginalAdvisoryID = &sourceID
		} else {
			e.IsFacultyEntry = true
			e.OriginalFacultyID = &sourceID
		}
		entries = append(entries, e)
	}

	for _, yearLevel := range p.AcademicYearLevels {
		// No section keys at all means the adviser is assigned broadly;
		// once sections exist, a year level only gets the entries its
		// own keys produce.
		if len(p.AcademicSections) == 0 {
			appendEntry(yearLevel, "")
			continue
		}
		for _, key := range p.AcademicSections {
			// Suffix match keeps section names containing hyphens intact.
			suffix := "-" + yearLevel
			if !strings.HasSuffix(key, suffix) {
				continue
			}
			appendEntry(yearLevel, strings.TrimSuffix(key, suffix))
		}
	}
	return entries, targetCol, nil
}

// FanOutProfile inserts the derived entries. Each insert is isolated:
// one failure is logged and the rest continue, so a partial fan-out
// never aborts an approval.
func FanOutProfile(ctx context.Context, p *models.Profile) (inserted int) {
	entries, targetCol, err := ExpandAcademicAssignments(p)
	if err != nil {
		log.Printf("fanout %s: %v", p.ID.Hex(), err)
		return 0
	}
	for _, e := range entries {
		if err := repository.InsertYearbookEntry(ctx, targetCol, e); err != nil {
			log.Printf("fanout %s: insert entry (%s / %s) failed: %v",
				p.ID.Hex(), e.YearLevel, e.BlockSection, err)
			continue
		}
		inserted++
	}
	return inserted
}

// RemoveDerivedEntries deletes the fan-out entries that reference the
// source profile, so re-approval can regenerate them and deletion does
// not leave stale yearbook pages behind.
func RemoveDerivedEntries(ctx context.Context, p *models.Profile) error {
	targetCol, err := collections.Resolve("student", p.AcademicDepartment)
	if err != nil {
		return err
	}
	_, err = repository.DeleteDerivedEntries(ctx, targetCol, p.ID)
	return err
}
