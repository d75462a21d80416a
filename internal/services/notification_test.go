package services

import (
	"testing"

	m "github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTitleBody(t *testing.T) {
	title, body, err := BuildTitleBody(NotiProfileSubmitted, m.NotiParams{
		ProfileName: "Juan Dela Cruz",
		UserType:    "student",
		YearLabel:   "2025-2026",
	})
	require.NoError(t, err)
	assert.Equal(t, "New profile awaiting review", title)
	assert.Contains(t, body, "Juan Dela Cruz")
	assert.Contains(t, body, "student")
	assert.Contains(t, body, "2025-2026")

	title, body, err = BuildTitleBody(NotiProfileRejected, m.NotiParams{Reason: "photo missing"})
	require.NoError(t, err)
	assert.Equal(t, "Profile needs changes", title)
	assert.Contains(t, body, "photo missing")

	_, body, err = BuildTitleBody(NotiImportCompleted, m.NotiParams{RowCount: 12, YearLabel: "2025-2026"})
	require.NoError(t, err)
	assert.Contains(t, body, "12 profiles")
}

func TestBuildTitleBodyMissingParams(t *testing.T) {
	_, _, err := BuildTitleBody(NotiProfileSubmitted, m.NotiParams{})
	assert.Error(t, err)

	_, _, err = BuildTitleBody(NotiProfileResubmitted, m.NotiParams{})
	assert.Error(t, err)

	_, _, err = BuildTitleBody(NotiProfileRejected, m.NotiParams{})
	assert.Error(t, err)

	_, _, err = BuildTitleBody(m.NotiType("SOMETHING_ELSE"), m.NotiParams{})
	assert.Error(t, err)
}
