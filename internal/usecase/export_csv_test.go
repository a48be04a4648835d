package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

func TestExportCSV_ColumnOrder(t *testing.T) {
	repo := new(MockBuyerRepository)
	b := sampleBuyer()
	b.Tags = []string{"hot", "vip"}
	repo.On("FindMany", mock.Anything, mock.Anything).Return([]*entity.Buyer{b}, 1, nil)

	var buf bytes.Buffer
	uc := NewExportCSVUseCase(repo)
	err := uc.Execute(context.Background(), ListBuyersInput{}, &buf)
	assert.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.Equal(t, ExportColumns, records[0])
	assert.Equal(t, []string{
		"Rohan Mehta", "rohan@example.com", "9876543210", "Chandigarh",
		"Apartment", "2", "Buy", "4000000", "6000000", "3-6m", "Website",
		"", "hot,vip", "New",
	}, records[1])
}

func TestExportCSV_AppliesFiltersWithoutPaging(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("FindMany", mock.Anything, mock.MatchedBy(func(q entity.BuyerQuery) bool {
		return q.City == entity.CityMohali && q.Limit == ExportLimit && q.Page == 1
	})).Return([]*entity.Buyer{}, 0, nil)

	var buf bytes.Buffer
	uc := NewExportCSVUseCase(repo)
	err := uc.Execute(context.Background(), ListBuyersInput{City: "Mohali"}, &buf)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

// Exported files must re-import to equivalent records (ids and timestamps
// are regenerated, everything else survives the trip).
func TestExportImport_RoundTrip(t *testing.T) {
	source := sampleBuyer()
	source.Notes = "wants corner unit"
	source.Tags = []string{"hot", "vip"}
	source.Status = entity.StatusQualified

	exportRepo := new(MockBuyerRepository)
	exportRepo.On("FindMany", mock.Anything, mock.Anything).Return([]*entity.Buyer{source}, 1, nil)

	var buf bytes.Buffer
	assert.NoError(t, NewExportCSVUseCase(exportRepo).Execute(context.Background(), ListBuyersInput{}, &buf))

	importUC, _, _ := importUseCase()
	result, err := importUC.Execute(context.Background(), strings.NewReader(buf.String()), testUser())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Empty(t, result.Errors)

	got := result.Created[0]
	assert.Equal(t, source.FullName, got.FullName)
	assert.Equal(t, source.Email, got.Email)
	assert.Equal(t, source.Phone, got.Phone)
	assert.Equal(t, source.City, got.City)
	assert.Equal(t, source.PropertyType, got.PropertyType)
	assert.Equal(t, source.BHK, got.BHK)
	assert.Equal(t, source.Purpose, got.Purpose)
	assert.Equal(t, source.BudgetMin, got.BudgetMin)
	assert.Equal(t, source.BudgetMax, got.BudgetMax)
	assert.Equal(t, source.Timeline, got.Timeline)
	assert.Equal(t, source.Source, got.Source)
	assert.Equal(t, source.Notes, got.Notes)
	assert.Equal(t, source.Tags, got.Tags)
	assert.Equal(t, source.Status, got.Status)
	assert.NotEqual(t, source.ID, got.ID)
}
