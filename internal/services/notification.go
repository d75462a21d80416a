package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	m "github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	NotiProfileSubmitted   m.NotiType = "PROFILE_SUBMITTED"
	NotiProfileResubmitted m.NotiType = "PROFILE_RESUBMITTED"
	NotiProfileApproved    m.NotiType = "PROFILE_APPROVED"
	NotiProfileRejected    m.NotiType = "PROFILE_REJECTED"
	NotiImportCompleted    m.NotiType = "IMPORT_COMPLETED"
)

func BuildTitleBody(t m.NotiType, p m.NotiParams) (title, body string, err error) {
	switch t {
	case NotiProfileSubmitted:
		if p.ProfileName == "" {
			return "", "", errors.New("missing ProfileName")
		}
		return "New profile awaiting review",
			fmt.Sprintf("%s submitted a %s profile for %s.", p.ProfileName, p.UserType, p.YearLabel), nil

	case NotiProfileResubmitted:
		if p.ProfileName == "" {
			return "", "", errors.New("missing ProfileName")
		}
		return "Profile resubmitted",
			fmt.Sprintf("%s resubmitted their %s profile for review.", p.ProfileName, p.UserType), nil

	case NotiProfileApproved:
		return "Profile approved 🎉",
			fmt.Sprintf("Your yearbook profile for %s has been approved.", p.YearLabel), nil

	case NotiProfileRejected:
		if p.Reason == "" {
			return "", "", errors.New("missing Reason")
		}
		return "Profile needs changes",
			fmt.Sprintf("Your yearbook profile was rejected: %s", p.Reason), nil

	case NotiImportCompleted:
		return "Bulk import finished",
			fmt.Sprintf("%d profiles were imported for %s.", p.RowCount, p.YearLabel), nil
	}
	return "", "", fmt.Errorf("unknown noti type: %s", t)
}

// NotifyOne creates a notification for a single user.
func NotifyOne(ctx context.Context, userID bson.ObjectID, typ m.NotiType, ref m.Ref, p m.NotiParams) error {
	title, body, err := BuildTitleBody(typ, p)
	if err != nil {
		return err
	}
	return repository.InsertNotification(ctx, m.Notification{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Body:      body,
		Ref:       ref,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	})
}

// NotifyAdmins fans a notification out to every admin's review queue.
func NotifyAdmins(ctx context.Context, typ m.NotiType, ref m.Ref, p m.NotiParams) error {
	adminIDs, err := repository.ListAdminIDs(ctx)
	if err != nil {
		return err
	}
	if len(adminIDs) == 0 {
		return nil
	}
	title, body, err := BuildTitleBody(typ, p)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	ns := make([]m.Notification, 0, len(adminIDs))
	for _, id := range adminIDs {
		if id.IsZero() {
			return fmt.Errorf("notifyAdmins: found zero userID")
		}
		ns = append(ns, m.Notification{
			ID:        bson.NewObjectID(),
			UserID:    id,
			Type:      typ,
			Title:     title,
			Body:      body,
			Ref:       ref,
			Read:      false,
			CreatedAt: now,
		})
	}
	return repository.InsertNotifications(ctx, ns)
}
