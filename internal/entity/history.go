package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	HistoryActionCreated = "created"
	HistoryActionUpdated = "updated"
)

// FieldChange records one field's before/after values inside a change-set.
type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

type ChangeSet map[string]FieldChange

// Diff is the serialized payload of a history entry.
type Diff struct {
	Action  string    `json:"action"`
	Changes ChangeSet `json:"changes"`
}

// BuyerHistory is an immutable audit record. Entries are appended on create
// and on every update that changed at least one field, and never rewritten.
type BuyerHistory struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"buyerId"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
	Diff      Diff      `json:"diff"`
}

func NewBuyerHistory(buyerID, changedBy, action string, changes ChangeSet) *BuyerHistory {
	if changes == nil {
		changes = ChangeSet{}
	}
	return &BuyerHistory{
		ID:        uuid.New().String(),
		BuyerID:   buyerID,
		ChangedBy: changedBy,
		ChangedAt: Now(),
		Diff:      Diff{Action: action, Changes: changes},
	}
}

type HistoryRepositoryInterface interface {
	Append(ctx context.Context, h *BuyerHistory) error

	// FindRecent returns up to limit entries for the buyer, newest first.
	FindRecent(ctx context.Context, buyerID string, limit int) ([]*BuyerHistory, error)
}
