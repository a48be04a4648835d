package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const importHeader = "fullName,email,phone,city,propertyType,bhk,purpose,budgetMin,budgetMax,timeline,source,notes,tags,status"

func importUseCase() (*ImportCSVUseCase, *MockBuyerRepository, *MockHistoryRepository) {
	repo := new(MockBuyerRepository)
	historyRepo := new(MockHistoryRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	historyRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	create := NewCreateBuyerUseCase(repo, historyRepo, nil)
	return NewImportCSVUseCase(create), repo, historyRepo
}

func goodRow(name string) string {
	return fmt.Sprintf("%s,,9876543210,Chandigarh,Apartment,2,Buy,100,200,0-3m,Website,,,", name)
}

func TestImportCSV_AllRowsValid(t *testing.T) {
	uc, repo, _ := importUseCase()

	csvText := strings.Join([]string{
		importHeader,
		goodRow("Lead One"),
		goodRow("Lead Two"),
	}, "\n")

	result, err := uc.Execute(context.Background(), strings.NewReader(csvText), testUser())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Created, 2)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestImportCSV_RowFailuresAreIndependent(t *testing.T) {
	uc, _, _ := importUseCase()

	// Row 3 of the data (display row 5) has a non-numeric phone.
	rows := []string{
		importHeader,
		goodRow("Lead One"),
		goodRow("Lead Two"),
		"Bad Phone,,123-456-7890,Chandigarh,Apartment,2,Buy,,,0-3m,Website,,,",
		goodRow("Lead Four"),
		goodRow("Lead Five"),
	}

	result, err := uc.Execute(context.Background(), strings.NewReader(strings.Join(rows, "\n")), testUser())

	assert.NoError(t, err)
	assert.Equal(t, 4, result.SuccessCount)
	assert.Len(t, result.Created, 4)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, 5, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, "phone")
}

func TestImportCSV_RowCountCap(t *testing.T) {
	uc, repo, _ := importUseCase()

	rows := make([]string, 0, MaxImportRows+2)
	rows = append(rows, importHeader)
	for i := 0; i < MaxImportRows+1; i++ {
		rows = append(rows, goodRow(fmt.Sprintf("Lead %d", i)))
	}

	result, err := uc.Execute(context.Background(), strings.NewReader(strings.Join(rows, "\n")), testUser())

	assert.Nil(t, result)
	assert.True(t, IsBatchLimitError(err))
	// Fails fast: nothing was created.
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportCSV_ExactlyAtCapIsAccepted(t *testing.T) {
	uc, _, _ := importUseCase()

	rows := make([]string, 0, MaxImportRows+1)
	rows = append(rows, importHeader)
	for i := 0; i < MaxImportRows; i++ {
		rows = append(rows, goodRow(fmt.Sprintf("Lead %d", i)))
	}

	result, err := uc.Execute(context.Background(), strings.NewReader(strings.Join(rows, "\n")), testUser())

	assert.NoError(t, err)
	assert.Equal(t, MaxImportRows, result.SuccessCount)
}

func TestImportCSV_EmptyFile(t *testing.T) {
	uc, _, _ := importUseCase()

	_, err := uc.Execute(context.Background(), strings.NewReader(""), testUser())
	assert.True(t, IsValidationError(err))
}

func TestImportCSV_HeaderOnly(t *testing.T) {
	uc, _, _ := importUseCase()

	result, err := uc.Execute(context.Background(), strings.NewReader(importHeader), testUser())

	assert.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Empty(t, result.Errors)
}

func TestImportCSV_TagsColumnVariants(t *testing.T) {
	uc, repo, _ := importUseCase()

	rows := []string{
		importHeader,
		`Lead One,,9876543210,Chandigarh,Plot,,Buy,,,0-3m,Website,,"a, b",New`,
		`Lead Two,,9876543210,Chandigarh,Plot,,Buy,,,0-3m,Website,,"[""x"",""y""]",New`,
	}

	result, err := uc.Execute(context.Background(), strings.NewReader(strings.Join(rows, "\n")), testUser())

	assert.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, []string{"a", "b"}, result.Created[0].Tags)
	assert.Equal(t, []string{"x", "y"}, result.Created[1].Tags)
	repo.AssertNumberOfCalls(t, "Create", 2)
}
