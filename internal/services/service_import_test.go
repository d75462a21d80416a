package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseProfilesCSV(t *testing.T) {
	yearID := bson.NewObjectID().Hex()
	ownerID := bson.NewObjectID().Hex()

	csvData := "userType,fullName,email,department,course,yearLevel,blockSection,ownedBy\n" +
		"student,Juan Dela Cruz,juan@example.com,College,BSIT,1st Year,BSIT 1A," + ownerID + "\n" +
		"faculty,Maria Santos,maria@example.com,,,,,\n"

	rows, rowErrs, err := ParseProfilesCSV(strings.NewReader(csvData), yearID)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 2, first.Row)
	assert.Equal(t, yearID, first.Req.SchoolYearID)
	assert.Equal(t, "student", first.Req.UserType)
	assert.Equal(t, ownerID, first.Req.UserID)
	assert.Equal(t, "Juan Dela Cruz", first.Req.ProfileData.FullName)
	assert.Equal(t, "College", first.Req.ProfileData.Department)
	assert.Equal(t, "BSIT 1A", first.Req.ProfileData.BlockSection)

	// Blank ownedBy mints a fresh owner id for later account linking.
	second := rows[1]
	assert.Equal(t, 3, second.Row)
	_, idErr := bson.ObjectIDFromHex(second.Req.UserID)
	assert.NoError(t, idErr)
}

func TestParseProfilesCSVCollectsRowErrors(t *testing.T) {
	yearID := bson.NewObjectID().Hex()

	csvData := "userType,fullName,ownedBy\n" +
		"student,,\n" +
		",Missing Type,\n" +
		"student,Bad Owner,zzz\n" +
		"student,Good Row,\n"

	rows, rowErrs, err := ParseProfilesCSV(strings.NewReader(csvData), yearID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Good Row", rows[0].Req.ProfileData.FullName)
	assert.Equal(t, 5, rows[0].Row)

	require.Len(t, rowErrs, 3)
	assert.Equal(t, 2, rowErrs[0].Row)
	assert.Equal(t, 3, rowErrs[1].Row)
	assert.Equal(t, 4, rowErrs[2].Row)
	assert.Contains(t, rowErrs[2].Error, "ownedBy")
}

func TestParseProfilesCSVRejectsBadHeader(t *testing.T) {
	yearID := bson.NewObjectID().Hex()

	_, _, err := ParseProfilesCSV(strings.NewReader("fullName\nJuan\n"), yearID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "userType")

	_, _, err = ParseProfilesCSV(strings.NewReader("userType\nstudent\n"), yearID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fullName")
}
