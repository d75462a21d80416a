package repository

import (
	"testing"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func ownerDoc(status string, age time.Duration) models.Profile {
	return models.Profile{
		ID:        bson.NewObjectID(),
		Status:    status,
		CreatedAt: time.Now().UTC().Add(-age),
	}
}

func TestPickOwnerProfilePrefersPendingRevision(t *testing.T) {
	// After an edit of an approved profile, the approved doc and its
	// pending revision coexist. The next submission must plan against
	// the pending one so it updates in place instead of minting a
	// second revision.
	approved := ownerDoc(models.StatusApproved, 2*time.Hour)
	pending := ownerDoc(models.StatusPending, time.Hour)

	got := PickOwnerProfile([]models.Profile{approved, pending})
	require.NotNil(t, got)
	assert.Equal(t, pending.ID, got.ID)

	// Order in the candidate slice must not matter.
	got = PickOwnerProfile([]models.Profile{pending, approved})
	require.NotNil(t, got)
	assert.Equal(t, pending.ID, got.ID)
}

func TestPickOwnerProfilePrefersRejectedOverApproved(t *testing.T) {
	approved := ownerDoc(models.StatusApproved, time.Hour)
	rejected := ownerDoc(models.StatusRejected, 30*time.Minute)

	got := PickOwnerProfile([]models.Profile{approved, rejected})
	require.NotNil(t, got)
	assert.Equal(t, rejected.ID, got.ID)
}

func TestPickOwnerProfileNewestWithinSameStatus(t *testing.T) {
	older := ownerDoc(models.StatusPending, 2*time.Hour)
	newer := ownerDoc(models.StatusPending, time.Minute)

	got := PickOwnerProfile([]models.Profile{older, newer})
	require.NotNil(t, got)
	assert.Equal(t, newer.ID, got.ID)
}

func TestPickOwnerProfileEmptyAndUnknownStatuses(t *testing.T) {
	assert.Nil(t, PickOwnerProfile(nil))

	archived := ownerDoc("archived", time.Hour)
	assert.Nil(t, PickOwnerProfile([]models.Profile{archived}))
}
