package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Rafaelaligui187/Memoria-sub003/dto"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ImportRow is one parsed CSV row, tagged with its original row number
// so failures can be reported against what the admin sees in a
// spreadsheet (1-based, header is row 1).
type ImportRow struct {
	Row int
	Req dto.SubmitProfileRequest
}

// ParseProfilesCSV reads submission rows out of a CSV stream. The
// ownedBy column is optional: rows without it get a freshly minted
// owner id (an unclaimed record an account can be linked to later).
func ParseProfilesCSV(r io.Reader, schoolYearID string) ([]ImportRow, []dto.ImportRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	if _, ok := idx["userType"]; !ok {
		return nil, nil, fmt.Errorf("header is missing userType column")
	}
	if _, ok := idx["fullName"]; !ok {
		return nil, nil, fmt.Errorf("header is missing fullName column")
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var (
		rows    []ImportRow
		rowErrs []dto.ImportRowError
	)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: row, Error: err.Error()})
			continue
		}

		userType := field(record, "userType")
		fullName := field(record, "fullName")
		if userType == "" || fullName == "" {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: row, Error: "userType and fullName are required"})
			continue
		}

		ownedBy := field(record, "ownedBy")
		if ownedBy == "" {
			ownedBy = bson.NewObjectID().Hex()
		} else if _, err := bson.ObjectIDFromHex(ownedBy); err != nil {
			rowErrs = append(rowErrs, dto.ImportRowError{Row: row, Error: "ownedBy is not a valid id"})
			continue
		}

		rows = append(rows, ImportRow{
			Row: row,
			Req: dto.SubmitProfileRequest{
				SchoolYearID: schoolYearID,
				UserType:     userType,
				UserID:       ownedBy,
				ProfileData: dto.ProfileData{
					FullName:           fullName,
					Email:              field(record, "email"),
					Department:         field(record, "department"),
					Course:             field(record, "course"),
					YearLevel:          field(record, "yearLevel"),
					BlockSection:       field(record, "blockSection"),
					Position:           field(record, "position"),
					DepartmentAssigned: field(record, "departmentAssigned"),
				},
			},
		})
	}
	return rows, rowErrs, nil
}

// ImportProfiles runs a bulk CSV import: every valid row goes through
// the normal submission lifecycle (landing pending for review). Bad
// rows are collected, never abort the batch.
func ImportProfiles(ctx context.Context, r io.Reader, schoolYearID string, admin bson.ObjectID) (dto.ImportResult, error) {
	result := dto.ImportResult{BatchID: uuid.NewString()}

	rows, rowErrs, err := ParseProfilesCSV(r, schoolYearID)
	if err != nil {
		return result, err
	}
	result.Errors = rowErrs
	result.Total = len(rows) + len(rowErrs)

	for _, row := range rows {
		if _, _, err := SubmitProfile(ctx, row.Req); err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: row.Row, Error: err.Error()})
			continue
		}
		result.Created++
	}
	result.Failed = len(result.Errors)

	if yearID, err := bson.ObjectIDFromHex(schoolYearID); err == nil {
		RecordAudit(ctx, "profiles_imported", "import", yearID,
			"batch "+result.BatchID,
			fmt.Sprintf("%d created, %d failed", result.Created, result.Failed),
			&yearID, &admin, "")
		if err := NotifyOne(ctx, admin, NotiImportCompleted, models.Ref{SchoolYearID: &yearID}, models.NotiParams{
			RowCount:  result.Created,
			YearLabel: yearLabelOf(ctx, yearID),
		}); err != nil {
			log.Printf("import %s: notification failed: %v", result.BatchID, err)
		}
	}
	return result, nil
}
