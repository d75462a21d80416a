package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func CreateSchoolYear(ctx context.Context, req dto.SchoolYearRequest, actor bson.ObjectID) (*models.SchoolYear, error) {
	var missing []string
	if req.StartYear == 0 {
		missing = append(missing, "startYear")
	}
	if req.EndYear == 0 {
		missing = append(missing, "endYear")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidation(missing...)
	}
	if req.EndYear != req.StartYear+1 {
		return nil, apperrors.NewValidation("endYear")
	}

	label := req.YearLabel
	if label == "" {
		label = fmt.Sprintf("%d-%d", req.StartYear, req.EndYear)
	}

	now := time.Now().UTC()
	sy := models.SchoolYear{
		ID:        bson.NewObjectID(),
		YearLabel: label,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repository.InsertSchoolYear(ctx, sy); err != nil {
		return nil, err
	}
	RecordAudit(ctx, "school_year_created", "school_year", sy.ID, sy.YearLabel, "", &sy.ID, &actor, "")
	return &sy, nil
}

func ActivateSchoolYear(ctx context.Context, id bson.ObjectID, actor bson.ObjectID) error {
	ok, err := repository.ActivateSchoolYear(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}
	RecordAudit(ctx, "school_year_activated", "school_year", id, "", "", &id, &actor, "")
	EmitEvent(ctx, "school_year_activated", bson.M{"schoolYearId": id.Hex()})
	return nil
}
