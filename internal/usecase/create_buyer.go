package usecase

import (
	"context"
	"log"
	"time"

	"github.com/propdesk/buyer-leads-api/internal/entity"
	"github.com/propdesk/buyer-leads-api/internal/infra/queue"
)

type CreateBuyerUseCase struct {
	Repo        entity.BuyerRepositoryInterface
	HistoryRepo entity.HistoryRepositoryInterface
	Queue       QueueProducerInterface
}

func NewCreateBuyerUseCase(
	repo entity.BuyerRepositoryInterface,
	historyRepo entity.HistoryRepositoryInterface,
	producer QueueProducerInterface,
) *CreateBuyerUseCase {
	return &CreateBuyerUseCase{
		Repo:        repo,
		HistoryRepo: historyRepo,
		Queue:       producer,
	}
}

// Execute validates the input, persists a new lead owned by the acting user
// and appends the "created" history entry (empty change-set).
func (uc *CreateBuyerUseCase) Execute(ctx context.Context, input BuyerInput, owner *entity.User) (*entity.Buyer, error) {
	if errs := ValidateBuyerInput(input); len(errs) > 0 {
		return nil, errs
	}

	buyer := entity.NewBuyer(owner.ID)
	applyInput(buyer, input)

	if err := uc.Repo.Create(ctx, buyer); err != nil {
		return nil, err
	}

	history := entity.NewBuyerHistory(buyer.ID, owner.ID, entity.HistoryActionCreated, nil)
	if err := uc.HistoryRepo.Append(ctx, history); err != nil {
		return nil, err
	}

	uc.publish(ctx, queue.EventLeadCreated, buyer, owner)

	return buyer, nil
}

func (uc *CreateBuyerUseCase) publish(ctx context.Context, event string, b *entity.Buyer, owner *entity.User) {
	if uc.Queue == nil {
		return
	}
	// Event delivery is best effort; the mutation already committed.
	err := uc.Queue.PublishLeadEvent(ctx, queue.LeadEventPayload{
		Event:      event,
		BuyerID:    b.ID,
		FullName:   b.FullName,
		Status:     string(b.Status),
		OwnerID:    owner.ID,
		OwnerEmail: owner.Email,
		OwnerName:  owner.Name,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("publish %s for buyer %s: %s", event, b.ID, err)
	}
}

// applyInput overwrites the mutable fields of b. An empty input status keeps
// whatever b already has (StatusNew for fresh records).
func applyInput(b *entity.Buyer, input BuyerInput) {
	b.FullName = input.FullName
	b.Email = input.Email
	b.Phone = input.Phone
	b.City = input.City
	b.PropertyType = input.PropertyType
	b.Purpose = input.Purpose
	b.BudgetMin = input.BudgetMin
	b.BudgetMax = input.BudgetMax
	b.Timeline = input.Timeline
	b.Source = input.Source
	b.Notes = input.Notes

	// BHK only applies to bedroom-sized property types.
	if input.PropertyType.RequiresBHK() {
		b.BHK = input.BHK
	} else {
		b.BHK = ""
	}

	if input.Tags != nil {
		b.Tags = input.Tags
	} else {
		b.Tags = []string{}
	}

	if input.Status != "" {
		b.Status = input.Status
	}
}
