package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/propdesk/buyer-leads-api/internal/entity"
	"github.com/propdesk/buyer-leads-api/internal/infra/queue"
)

// MockBuyerRepository
type MockBuyerRepository struct {
	mock.Mock
}

func (m *MockBuyerRepository) Create(ctx context.Context, b *entity.Buyer) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBuyerRepository) UpdateIfUnchanged(ctx context.Context, b *entity.Buyer, expectedUpdatedAt time.Time) error {
	args := m.Called(ctx, b, expectedUpdatedAt)
	return args.Error(0)
}

func (m *MockBuyerRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockBuyerRepository) FindByID(ctx context.Context, id string) (*entity.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) FindMany(ctx context.Context, q entity.BuyerQuery) ([]*entity.Buyer, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Buyer), args.Int(1), args.Error(2)
}

// MockHistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, h *entity.BuyerHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHistoryRepository) FindRecent(ctx context.Context, buyerID string, limit int) ([]*entity.BuyerHistory, error) {
	args := m.Called(ctx, buyerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BuyerHistory), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func intPtr(n int) *int { return &n }

func validInput() BuyerInput {
	return BuyerInput{
		FullName:     "Rohan Mehta",
		Email:        "rohan@example.com",
		Phone:        "9876543210",
		City:         entity.CityChandigarh,
		PropertyType: entity.PropertyApartment,
		BHK:          entity.BHK2,
		Purpose:      entity.PurposeBuy,
		BudgetMin:    intPtr(4000000),
		BudgetMax:    intPtr(6000000),
		Timeline:     entity.Timeline3To6M,
		Source:       entity.SourceWebsite,
		Tags:         []string{"hot"},
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:    "3d7f9f5e-0000-4000-8000-000000000001",
		Email: "agent@example.com",
		Name:  "Agent Smith",
	}
}
