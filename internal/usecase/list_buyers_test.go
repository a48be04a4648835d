package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

func TestNormalizeFilters_Defaults(t *testing.T) {
	q, errs := NormalizeFilters(ListBuyersInput{})

	assert.Empty(t, errs)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.Limit)
	assert.Equal(t, entity.SortByUpdatedAt, q.SortBy)
	assert.Equal(t, "desc", q.SortOrder)
}

func TestNormalizeFilters_LimitCap(t *testing.T) {
	_, errs := NormalizeFilters(ListBuyersInput{Limit: 101})
	assert.Contains(t, fieldMessages(errs), "limit")

	q, errs := NormalizeFilters(ListBuyersInput{Limit: 100})
	assert.Empty(t, errs)
	assert.Equal(t, 100, q.Limit)
}

func TestNormalizeFilters_InvalidEnums(t *testing.T) {
	_, errs := NormalizeFilters(ListBuyersInput{
		City:      "Gotham",
		Status:    "Imaginary",
		SortBy:    "phone",
		SortOrder: "sideways",
	})

	msgs := fieldMessages(errs)
	assert.Contains(t, msgs, "city")
	assert.Contains(t, msgs, "status")
	assert.Contains(t, msgs, "sortBy")
	assert.Contains(t, msgs, "sortOrder")
}

func TestListBuyers_PassesQueryThrough(t *testing.T) {
	repo := new(MockBuyerRepository)
	repo.On("FindMany", mock.Anything, mock.MatchedBy(func(q entity.BuyerQuery) bool {
		return q.Search == "98765" &&
			q.Status == entity.StatusNew &&
			q.Page == 3 && q.Limit == 25 &&
			q.SortBy == entity.SortByFullName && q.SortOrder == "asc"
	})).Return([]*entity.Buyer{sampleBuyer()}, 51, nil)

	uc := NewListBuyersUseCase(repo)
	out, err := uc.Execute(context.Background(), ListBuyersInput{
		Search:    "98765",
		Status:    "New",
		Page:      3,
		Limit:     25,
		SortBy:    "fullName",
		SortOrder: "asc",
	})

	assert.NoError(t, err)
	assert.Equal(t, 51, out.Total)
	assert.Equal(t, 3, out.Page)
	assert.Len(t, out.Buyers, 1)
	repo.AssertExpectations(t)
}
