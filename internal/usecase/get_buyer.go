package usecase

import (
	"context"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

// RecentHistoryLimit is how many audit entries ride along with a detail read.
const RecentHistoryLimit = 5

type GetBuyerUseCase struct {
	Repo        entity.BuyerRepositoryInterface
	HistoryRepo entity.HistoryRepositoryInterface
}

func NewGetBuyerUseCase(repo entity.BuyerRepositoryInterface, historyRepo entity.HistoryRepositoryInterface) *GetBuyerUseCase {
	return &GetBuyerUseCase{Repo: repo, HistoryRepo: historyRepo}
}

// Execute returns the lead plus its most recent history, newest first.
// Reads are not owner-restricted.
func (uc *GetBuyerUseCase) Execute(ctx context.Context, id string) (*GetBuyerOutput, error) {
	buyer, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := uc.HistoryRepo.FindRecent(ctx, id, RecentHistoryLimit)
	if err != nil {
		return nil, err
	}

	return &GetBuyerOutput{Buyer: buyer, History: history}, nil
}
