package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

// MaxImportRows caps one import file. Oversized files are rejected before
// any row is processed rather than partially accepted.
const MaxImportRows = 200

type ImportCSVUseCase struct {
	Create *CreateBuyerUseCase
}

func NewImportCSVUseCase(create *CreateBuyerUseCase) *ImportCSVUseCase {
	return &ImportCSVUseCase{Create: create}
}

// Execute runs the row-by-row import pipeline: every data row is validated
// and created independently, failures never stop later rows, and the summary
// always covers every row attempted. Reported row numbers count from the top
// of the file, so the first data row is 2.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, r io.Reader, actor *entity.User) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ValidationErrors{{Field: "file", Message: "missing header row"}}
	}

	rows := records[1:]
	if len(rows) > MaxImportRows {
		return nil, &BatchLimitError{MaxRows: MaxImportRows, GotRows: len(rows)}
	}

	idx := headerIndex(records[0])

	result := &ImportResult{
		Errors:  []RowError{},
		Created: []*entity.Buyer{},
	}

	for i, row := range rows {
		rowNum := i + 2

		rec := CSVRecord{
			FullName:     cell(row, idx, "fullname"),
			Email:        cell(row, idx, "email"),
			Phone:        cell(row, idx, "phone"),
			City:         cell(row, idx, "city"),
			PropertyType: cell(row, idx, "propertytype"),
			BHK:          cell(row, idx, "bhk"),
			Purpose:      cell(row, idx, "purpose"),
			BudgetMin:    cell(row, idx, "budgetmin"),
			BudgetMax:    cell(row, idx, "budgetmax"),
			Timeline:     cell(row, idx, "timeline"),
			Source:       cell(row, idx, "source"),
			Notes:        cell(row, idx, "notes"),
			Tags:         cell(row, idx, "tags"),
			Status:       cell(row, idx, "status"),
		}

		input, errs := ParseCSVRow(rec)
		if len(errs) > 0 {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: errs.Error()})
			continue
		}

		buyer, err := uc.Create.Execute(ctx, input, actor)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		result.SuccessCount++
		result.Created = append(result.Created, buyer)
	}

	return result, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func cell(row []string, idx map[string]int, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return row[pos]
}
