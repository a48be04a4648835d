package usecase

import (
	"context"
	"log"
	"time"

	"github.com/propdesk/buyer-leads-api/internal/entity"
	"github.com/propdesk/buyer-leads-api/internal/infra/queue"
)

type DeleteBuyerUseCase struct {
	Repo  entity.BuyerRepositoryInterface
	Queue QueueProducerInterface
}

func NewDeleteBuyerUseCase(repo entity.BuyerRepositoryInterface, producer QueueProducerInterface) *DeleteBuyerUseCase {
	return &DeleteBuyerUseCase{Repo: repo, Queue: producer}
}

// Execute removes a lead the acting user owns. Missing and foreign leads are
// indistinguishable to the caller (ErrBuyerAccessDenied). History entries for
// the deleted lead are retained.
func (uc *DeleteBuyerUseCase) Execute(ctx context.Context, id string, actor *entity.User) error {
	if err := uc.Repo.DeleteOwned(ctx, id, actor.ID); err != nil {
		return err
	}

	if uc.Queue != nil {
		err := uc.Queue.PublishLeadEvent(ctx, queue.LeadEventPayload{
			Event:      queue.EventLeadDeleted,
			BuyerID:    id,
			OwnerID:    actor.ID,
			OwnerEmail: actor.Email,
			OwnerName:  actor.Name,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			log.Printf("publish %s for buyer %s: %s", queue.EventLeadDeleted, id, err)
		}
	}

	return nil
}
