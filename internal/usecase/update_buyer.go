package usecase

import (
	"context"
	"log"
	"time"

	"github.com/propdesk/buyer-leads-api/internal/entity"
	"github.com/propdesk/buyer-leads-api/internal/infra/queue"
)

type UpdateBuyerUseCase struct {
	Repo        entity.BuyerRepositoryInterface
	HistoryRepo entity.HistoryRepositoryInterface
	Queue       QueueProducerInterface
}

func NewUpdateBuyerUseCase(
	repo entity.BuyerRepositoryInterface,
	historyRepo entity.HistoryRepositoryInterface,
	producer QueueProducerInterface,
) *UpdateBuyerUseCase {
	return &UpdateBuyerUseCase{
		Repo:        repo,
		HistoryRepo: historyRepo,
		Queue:       producer,
	}
}

// Execute applies input onto the persisted lead under three guards: the lead
// must exist, expectedUpdatedAt must match the stored timestamp (optimistic
// concurrency), and the acting user must be the owner. A history entry is
// appended only when at least one field actually changed; UpdatedAt advances
// either way.
func (uc *UpdateBuyerUseCase) Execute(
	ctx context.Context,
	id string,
	input BuyerInput,
	actor *entity.User,
	expectedUpdatedAt time.Time,
) (*entity.Buyer, error) {
	existing, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !existing.UpdatedAt.Equal(expectedUpdatedAt) {
		return nil, entity.ErrStaleWrite
	}

	if existing.OwnerID != actor.ID {
		return nil, entity.ErrNotOwner
	}

	if errs := ValidateBuyerInput(input); len(errs) > 0 {
		return nil, errs
	}

	updated := *existing
	applyInput(&updated, input)
	updated.UpdatedAt = entity.Now()

	// The conditional write closes the race left open by the read above:
	// whoever lands first wins, the loser sees ErrStaleWrite.
	if err := uc.Repo.UpdateIfUnchanged(ctx, &updated, expectedUpdatedAt); err != nil {
		return nil, err
	}

	changes := ComputeChangeSet(existing, &updated)
	if len(changes) > 0 {
		history := entity.NewBuyerHistory(id, actor.ID, entity.HistoryActionUpdated, changes)
		if err := uc.HistoryRepo.Append(ctx, history); err != nil {
			return nil, err
		}
	}

	uc.publish(ctx, &updated, actor)

	return &updated, nil
}

func (uc *UpdateBuyerUseCase) publish(ctx context.Context, b *entity.Buyer, owner *entity.User) {
	if uc.Queue == nil {
		return
	}
	err := uc.Queue.PublishLeadEvent(ctx, queue.LeadEventPayload{
		Event:      queue.EventLeadUpdated,
		BuyerID:    b.ID,
		FullName:   b.FullName,
		Status:     string(b.Status),
		OwnerID:    owner.ID,
		OwnerEmail: owner.Email,
		OwnerName:  owner.Name,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("publish %s for buyer %s: %s", queue.EventLeadUpdated, b.ID, err)
	}
}
