package services

import (
	"testing"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func advisoryProfile() models.Profile {
	return models.Profile{
		ID:                 bson.NewObjectID(),
		OwnedBy:            bson.NewObjectID(),
		SchoolYearID:       bson.NewObjectID(),
		UserType:           models.UserTypeAdvisory,
		FullName:           "Maria Santos",
		AcademicDepartment: "College",
		AcademicYearLevels: []string{"1st Year"},
		AcademicSections:   []string{"BSIT 1A-1st Year", "BSIT 1B-1st Year"},
	}
}

func TestExpandAcademicAssignments(t *testing.T) {
	p := advisoryProfile()

	entries, targetCol, err := ExpandAcademicAssignments(&p)
	require.NoError(t, err)
	assert.Equal(t, collections.College, targetCol)
	require.Len(t, entries, 2)

	sections := []string{entries[0].BlockSection, entries[1].BlockSection}
	assert.ElementsMatch(t, []string{"BSIT 1A", "BSIT 1B"}, sections)

	for _, e := range entries {
		assert.Equal(t, "1st Year", e.YearLevel)
		assert.Equal(t, p.SchoolYearID, e.SchoolYearID)
		assert.Equal(t, "Maria Santos", e.FullName)
		assert.True(t, e.IsAdvisoryEntry)
		require.NotNil(t, e.OriginalAdvisoryID)
		assert.Equal(t, p.ID, *e.OriginalAdvisoryID)
		assert.Nil(t, e.OriginalFacultyID)
	}
}

func TestExpandSkipsSectionsFromOtherYearLevels(t *testing.T) {
	p := advisoryProfile()
	p.AcademicYearLevels = []string{"1st Year", "2nd Year"}
	p.AcademicSections = []string{"BSIT 1A-1st Year", "BSIT 2A-2nd Year"}

	entries, _, err := ExpandAcademicAssignments(&p)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byLevel := map[string]string{}
	for _, e := range entries {
		byLevel[e.YearLevel] = e.BlockSection
	}
	assert.Equal(t, "BSIT 1A", byLevel["1st Year"])
	assert.Equal(t, "BSIT 2A", byLevel["2nd Year"])
}

func TestExpandHyphenatedSectionNames(t *testing.T) {
	p := advisoryProfile()
	p.AcademicYearLevels = []string{"Grade 7"}
	p.AcademicSections = []string{"St. Thomas-A-Grade 7"}
	p.AcademicDepartment = "Junior High"

	entries, targetCol, err := ExpandAcademicAssignments(&p)
	require.NoError(t, err)
	assert.Equal(t, collections.JuniorHigh, targetCol)
	require.Len(t, entries, 1)
	assert.Equal(t, "St. Thomas-A", entries[0].BlockSection)
}

func TestExpandNoSectionsGetsBroadEntryPerYearLevel(t *testing.T) {
	p := advisoryProfile()
	p.AcademicYearLevels = []string{"3rd Year", "4th Year"}
	p.AcademicSections = nil

	entries, _, err := ExpandAcademicAssignments(&p)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Empty(t, e.BlockSection)
	}
}

func TestExpandUnmatchedSectionsProduceNothing(t *testing.T) {
	p := advisoryProfile()
	p.AcademicYearLevels = []string{"Grade 11"}
	p.AcademicSections = []string{"C-Grade 12"}

	entries, _, err := ExpandAcademicAssignments(&p)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExpandEmptyYearLevelsProducesNothing(t *testing.T) {
	p := advisoryProfile()
	p.AcademicYearLevels = nil

	entries, targetCol, err := ExpandAcademicAssignments(&p)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, targetCol)
}

func TestExpandFacultyEntryLinksFacultySource(t *testing.T) {
	p := advisoryProfile()
	p.UserType = models.UserTypeFaculty

	entries, _, err := ExpandAcademicAssignments(&p)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	e := entries[0]
	assert.True(t, e.IsFacultyEntry)
	assert.False(t, e.IsAdvisoryEntry)
	require.NotNil(t, e.OriginalFacultyID)
	assert.Equal(t, p.ID, *e.OriginalFacultyID)
	assert.Nil(t, e.OriginalAdvisoryID)
}
