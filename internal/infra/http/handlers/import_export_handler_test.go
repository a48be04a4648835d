package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/propdesk/buyer-leads-api/internal/entity"
	"github.com/propdesk/buyer-leads-api/internal/usecase"
)

func newExportHandler(repo *MockBuyerRepository) *ImportExportHandler {
	return NewImportExportHandler(nil, usecase.NewExportCSVUseCase(repo))
}

func TestHandleExport_WritesCSV(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("FindMany", mock.Anything, mock.Anything).Return([]*entity.Buyer{
		{
			FullName: "Simran Kaur", Phone: "9876501234", City: entity.CityMohali,
			PropertyType: entity.PropertyVilla, BHK: entity.BHK3,
			Purpose: entity.PurposeBuy, Timeline: entity.TimelineUnder3M,
			Source: entity.SourceReferral, Status: entity.StatusQualified,
			Tags: []string{"premium"},
		},
	}, 1, nil)

	h := newExportHandler(repo)

	rec := httptest.NewRecorder()
	h.HandleExport(rec, httptest.NewRequest(http.MethodGet, "/buyers/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, strings.Join(usecase.ExportColumns, ","), lines[0])
	assert.Contains(t, lines[1], "Simran Kaur")
}

func TestHandleExport_RepositoryErrorIsNotTruncatedCSV(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("FindMany", mock.Anything, mock.Anything).Return(nil, 0, errors.New("connection reset"))

	h := newExportHandler(repo)

	rec := httptest.NewRecorder()
	h.HandleExport(rec, httptest.NewRequest(http.MethodGet, "/buyers/export", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}

func TestHandleExport_InvalidFilter(t *testing.T) {
	h := newExportHandler(new(MockBuyerRepository))

	rec := httptest.NewRecorder()
	h.HandleExport(rec, httptest.NewRequest(http.MethodGet, "/buyers/export?city=Paris", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
