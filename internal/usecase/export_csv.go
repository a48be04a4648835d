package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

// ExportLimit bounds a single export. Matches the original page-size ceiling
// used for full exports rather than the interactive list cap.
const ExportLimit = 10000

// ExportColumns is the fixed column order of an export file. Import accepts
// the same header, so export then re-import round-trips.
var ExportColumns = []string{
	"fullName", "email", "phone", "city", "propertyType", "bhk",
	"purpose", "budgetMin", "budgetMax", "timeline", "source",
	"notes", "tags", "status",
}

type ExportCSVUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewExportCSVUseCase(repo entity.BuyerRepositoryInterface) *ExportCSVUseCase {
	return &ExportCSVUseCase{Repo: repo}
}

// Execute writes the filtered leads as CSV. Filters behave exactly like the
// list endpoint; pagination is replaced by the export ceiling.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ListBuyersInput, w io.Writer) error {
	input.Page = 1
	input.Limit = 0

	q, errs := NormalizeFilters(input)
	if len(errs) > 0 {
		return errs
	}
	q.Limit = ExportLimit

	buyers, _, err := uc.Repo.FindMany(ctx, q)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ExportColumns); err != nil {
		return err
	}

	for _, b := range buyers {
		row := []string{
			b.FullName,
			b.Email,
			b.Phone,
			string(b.City),
			string(b.PropertyType),
			string(b.BHK),
			string(b.Purpose),
			budgetString(b.BudgetMin),
			budgetString(b.BudgetMax),
			string(b.Timeline),
			string(b.Source),
			b.Notes,
			strings.Join(b.Tags, ","),
			string(b.Status),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func budgetString(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
