package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/database"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func InsertProfile(ctx context.Context, colName string, p models.Profile) error {
	_, err := database.DB.Collection(colName).InsertOne(ctx, p)
	return err
}

// UpdateProfile applies a planned in-place update; unset clears the
// rejection/review fields on resubmission.
func UpdateProfile(ctx context.Context, colName string, id bson.ObjectID, set, unset bson.M) error {
	if set == nil {
		set = bson.M{}
	}
	if _, ok := set["updated_at"]; !ok {
		set["updated_at"] = time.Now().UTC()
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	_, err := database.DB.Collection(colName).UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// ownerLookupRank orders the lifecycle preference when an owner has
// several documents for one school year: an in-flight pending revision
// must win over the approved doc it supersedes, otherwise the next
// submission would mint yet another revision instead of updating the
// pending one in place. Rejected docs likewise outrank approved so a
// resubmission edits the rejected doc.
var ownerLookupRank = map[string]int{
	models.StatusPending:  0,
	models.StatusDraft:    1,
	models.StatusRejected: 2,
	models.StatusApproved: 3,
}

// PickOwnerProfile selects the document a new submission should plan
// against: best lifecycle rank first, newest within the same status.
// Returns nil for an empty candidate set.
func PickOwnerProfile(candidates []models.Profile) *models.Profile {
	var best *models.Profile
	for i := range candidates {
		c := &candidates[i]
		if _, ok := ownerLookupRank[c.Status]; !ok {
			continue
		}
		if best == nil ||
			ownerLookupRank[c.Status] < ownerLookupRank[best.Status] ||
			(c.Status == best.Status && c.CreatedAt.After(best.CreatedAt)) {
			best = c
		}
	}
	return best
}

// FindOwnerProfile returns the profile a new submission for (owner,
// school year) should plan against, or nil when the owner has none in
// the collection. The candidate set is tiny: approval-time cleanup
// keeps at most an approved doc plus one in-flight revision around.
func FindOwnerProfile(ctx context.Context, colName string, ownedBy, schoolYearID bson.ObjectID) (*models.Profile, error) {
	cursor, err := database.DB.Collection(colName).Find(ctx, bson.M{
		"owned_by":       ownedBy,
		"school_year_id": schoolYearID,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []models.Profile
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return PickOwnerProfile(candidates), nil
}

// FindProfileByID searches the fixed collection set for a profile id.
// The collection is not derivable from the id alone, so review and
// delete endpoints go through this lookup.
func FindProfileByID(ctx context.Context, id bson.ObjectID) (string, *models.Profile, error) {
	for _, colName := range collections.ProfileCollections() {
		var p models.Profile
		err := database.DB.Collection(colName).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return "", nil, err
		}
		return colName, &p, nil
	}
	return "", nil, nil
}

// MarkApproved flips a pending profile to approved with a conditional
// update so two concurrent approvals cannot both win; the returned
// bool is false when the document was no longer pending.
func MarkApproved(ctx context.Context, colName string, id, reviewer bson.ObjectID, now time.Time) (bool, error) {
	res, err := database.DB.Collection(colName).UpdateOne(ctx,
		bson.M{"_id": id, "status": models.StatusPending},
		bson.M{"$set": bson.M{
			"status":      models.StatusApproved,
			"reviewed_at": now,
			"reviewed_by": reviewer,
			"updated_at":  now,
		}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// MarkRejected is the symmetric conditional transition to rejected.
func MarkRejected(ctx context.Context, colName string, id, reviewer bson.ObjectID, reason string, now time.Time) (bool, error) {
	res, err := database.DB.Collection(colName).UpdateOne(ctx,
		bson.M{"_id": id, "status": models.StatusPending},
		bson.M{"$set": bson.M{
			"status":           models.StatusRejected,
			"rejection_reason": reason,
			"reviewed_at":      now,
			"reviewed_by":      reviewer,
			"updated_at":       now,
		}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func DeleteProfile(ctx context.Context, colName string, id bson.ObjectID) (bool, error) {
	res, err := database.DB.Collection(colName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// DeleteOwnerDuplicates removes leftover pending/rejected profiles for
// the same owner and school year, keeping the just-approved document.
func DeleteOwnerDuplicates(ctx context.Context, colName string, ownedBy, schoolYearID, keep bson.ObjectID) (int64, error) {
	res, err := database.DB.Collection(colName).DeleteMany(ctx, bson.M{
		"_id":            bson.M{"$ne": keep},
		"owned_by":       ownedBy,
		"school_year_id": schoolYearID,
		"status":         bson.M{"$in": []string{models.StatusPending, models.StatusRejected}},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListProfilesByStatus backs the admin review queue.
func ListProfilesByStatus(ctx context.Context, colName string, schoolYearID bson.ObjectID, status string) ([]models.Profile, error) {
	filter := bson.M{"school_year_id": schoolYearID}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := database.DB.Collection(colName).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
