package usecase

import (
	"context"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type ListBuyersUseCase struct {
	Repo entity.BuyerRepositoryInterface
}

func NewListBuyersUseCase(repo entity.BuyerRepositoryInterface) *ListBuyersUseCase {
	return &ListBuyersUseCase{Repo: repo}
}

// Execute normalizes the raw filters and returns one page of leads plus the
// pre-pagination total so the caller can compute page counts.
func (uc *ListBuyersUseCase) Execute(ctx context.Context, input ListBuyersInput) (*ListBuyersOutput, error) {
	q, errs := NormalizeFilters(input)
	if len(errs) > 0 {
		return nil, errs
	}

	buyers, total, err := uc.Repo.FindMany(ctx, q)
	if err != nil {
		return nil, err
	}

	return &ListBuyersOutput{
		Buyers: buyers,
		Total:  total,
		Page:   q.Page,
		Limit:  q.Limit,
	}, nil
}

// NormalizeFilters validates the enum filters and applies the paging and
// sorting defaults (page 1, limit 10 capped at 100, updatedAt desc).
func NormalizeFilters(input ListBuyersInput) (entity.BuyerQuery, ValidationErrors) {
	var errs ValidationErrors

	q := entity.BuyerQuery{
		Search:    input.Search,
		Page:      input.Page,
		Limit:     input.Limit,
		SortBy:    entity.SortField(input.SortBy),
		SortOrder: input.SortOrder,
	}

	if input.City != "" {
		q.City = entity.City(input.City)
		if !q.City.Valid() {
			errs = append(errs, ValidationError{"city", "invalid city"})
		}
	}
	if input.PropertyType != "" {
		q.PropertyType = entity.PropertyType(input.PropertyType)
		if !q.PropertyType.Valid() {
			errs = append(errs, ValidationError{"propertyType", "invalid property type"})
		}
	}
	if input.Status != "" {
		q.Status = entity.Status(input.Status)
		if !q.Status.Valid() {
			errs = append(errs, ValidationError{"status", "invalid status"})
		}
	}
	if input.Timeline != "" {
		q.Timeline = entity.Timeline(input.Timeline)
		if !q.Timeline.Valid() {
			errs = append(errs, ValidationError{"timeline", "invalid timeline"})
		}
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		errs = append(errs, ValidationError{"limit", "must be at most 100"})
	}

	if q.SortBy == "" {
		q.SortBy = entity.SortByUpdatedAt
	} else if !q.SortBy.Valid() {
		errs = append(errs, ValidationError{"sortBy", "must be updatedAt, fullName or createdAt"})
	}

	switch q.SortOrder {
	case "":
		q.SortOrder = "desc"
	case "asc", "desc":
	default:
		errs = append(errs, ValidationError{"sortOrder", "must be asc or desc"})
	}

	return q, errs
}
