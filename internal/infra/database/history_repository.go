package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

type HistoryRepository struct {
	DB *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// Append writes one immutable audit entry. The diff is stored as JSONB and
// never rewritten afterwards.
func (r *HistoryRepository) Append(ctx context.Context, h *entity.BuyerHistory) error {
	diff, err := json.Marshal(h.Diff)
	if err != nil {
		return fmt.Errorf("marshal diff: %w", err)
	}

	query := `
		INSERT INTO buyer_history (id, buyer_id, changed_by, changed_at, diff)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.DB.ExecContext(ctx, query, h.ID, h.BuyerID, h.ChangedBy, h.ChangedAt, diff)
	return err
}

func (r *HistoryRepository) FindRecent(ctx context.Context, buyerID string, limit int) ([]*entity.BuyerHistory, error) {
	query := `
		SELECT id, buyer_id, changed_by, changed_at, diff
		FROM buyer_history
		WHERE buyer_id = $1
		ORDER BY changed_at DESC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(ctx, query, buyerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*entity.BuyerHistory
	for rows.Next() {
		var h entity.BuyerHistory
		var diff []byte
		if err := rows.Scan(&h.ID, &h.BuyerID, &h.ChangedBy, &h.ChangedAt, &diff); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(diff, &h.Diff); err != nil {
			return nil, fmt.Errorf("unmarshal diff for %s: %w", h.ID, err)
		}
		entries = append(entries, &h)
	}
	return entries, rows.Err()
}
