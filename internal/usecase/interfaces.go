package usecase

import (
	"context"

	"github.com/propdesk/buyer-leads-api/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
