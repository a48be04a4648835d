package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

type BuyerRepository struct {
	DB *sql.DB
}

func NewBuyerRepository(db *sql.DB) *BuyerRepository {
	return &BuyerRepository{DB: db}
}

const buyerColumns = `
	id, full_name, email, phone, city, property_type, bhk, purpose,
	budget_min, budget_max, timeline, source, status, notes, tags,
	owner_id, created_at, updated_at`

func (r *BuyerRepository) Create(ctx context.Context, b *entity.Buyer) error {
	query := `
		INSERT INTO buyers (
			id, full_name, email, phone, city, property_type, bhk, purpose,
			budget_min, budget_max, timeline, source, status, notes, tags,
			owner_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.DB.ExecContext(ctx, query,
		b.ID,
		b.FullName,
		nullString(b.Email),
		b.Phone,
		string(b.City),
		string(b.PropertyType),
		nullString(string(b.BHK)),
		string(b.Purpose),
		nullInt(b.BudgetMin),
		nullInt(b.BudgetMax),
		string(b.Timeline),
		string(b.Source),
		string(b.Status),
		nullString(b.Notes),
		pq.Array(b.Tags),
		b.OwnerID,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

// UpdateIfUnchanged is the optimistic-concurrency write: a single conditional
// UPDATE guarded by the updated_at the caller read. Zero affected rows means
// either the record vanished or someone else wrote in between; a follow-up
// existence check tells the two apart.
func (r *BuyerRepository) UpdateIfUnchanged(ctx context.Context, b *entity.Buyer, expectedUpdatedAt time.Time) error {
	query := `
		UPDATE buyers SET
			full_name = $1, email = $2, phone = $3, city = $4,
			property_type = $5, bhk = $6, purpose = $7,
			budget_min = $8, budget_max = $9, timeline = $10, source = $11,
			status = $12, notes = $13, tags = $14, updated_at = $15
		WHERE id = $16 AND updated_at = $17
	`

	res, err := r.DB.ExecContext(ctx, query,
		b.FullName,
		nullString(b.Email),
		b.Phone,
		string(b.City),
		string(b.PropertyType),
		nullString(string(b.BHK)),
		string(b.Purpose),
		nullInt(b.BudgetMin),
		nullInt(b.BudgetMax),
		string(b.Timeline),
		string(b.Source),
		string(b.Status),
		nullString(b.Notes),
		pq.Array(b.Tags),
		b.UpdatedAt,
		b.ID,
		expectedUpdatedAt,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	err = r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM buyers WHERE id = $1)`, b.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return entity.ErrBuyerNotFound
	}
	return entity.ErrStaleWrite
}

func (r *BuyerRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM buyers WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrBuyerAccessDenied
	}
	return nil
}

func (r *BuyerRepository) FindByID(ctx context.Context, id string) (*entity.Buyer, error) {
	query := `SELECT` + buyerColumns + ` FROM buyers WHERE id = $1`

	b, err := scanBuyer(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrBuyerNotFound
	}
	return b, err
}

// FindMany builds the WHERE clause from whichever filters are set, counts
// the full match before paginating, and orders by a whitelisted column.
func (r *BuyerRepository) FindMany(ctx context.Context, q entity.BuyerQuery) ([]*entity.Buyer, int, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Search != "" {
		p := arg("%" + q.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(full_name ILIKE %s OR phone ILIKE %s OR email ILIKE %s)", p, p, p))
	}
	if q.City != "" {
		conds = append(conds, "city = "+arg(string(q.City)))
	}
	if q.PropertyType != "" {
		conds = append(conds, "property_type = "+arg(string(q.PropertyType)))
	}
	if q.Status != "" {
		conds = append(conds, "status = "+arg(string(q.Status)))
	}
	if q.Timeline != "" {
		conds = append(conds, "timeline = "+arg(string(q.Timeline)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM buyers`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT` + buyerColumns + ` FROM buyers` + where +
		` ORDER BY ` + sortColumn(q.SortBy) + ` ` + sortDirection(q.SortOrder) +
		` LIMIT ` + arg(q.Limit) + ` OFFSET ` + arg((q.Page-1)*q.Limit)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var buyers []*entity.Buyer
	for rows.Next() {
		b, err := scanBuyer(rows)
		if err != nil {
			return nil, 0, err
		}
		buyers = append(buyers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return buyers, total, nil
}

// sortColumn maps the API sort key to a real column. The switch doubles as
// an injection guard: unknown keys fall back to updated_at.
func sortColumn(f entity.SortField) string {
	switch f {
	case entity.SortByFullName:
		return "full_name"
	case entity.SortByCreatedAt:
		return "created_at"
	default:
		return "updated_at"
	}
}

func sortDirection(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuyer(row rowScanner) (*entity.Buyer, error) {
	var b entity.Buyer
	var email, bhk, notes sql.NullString
	var budgetMin, budgetMax sql.NullInt64
	var tags pq.StringArray

	err := row.Scan(
		&b.ID,
		&b.FullName,
		&email,
		&b.Phone,
		&b.City,
		&b.PropertyType,
		&bhk,
		&b.Purpose,
		&budgetMin,
		&budgetMax,
		&b.Timeline,
		&b.Source,
		&b.Status,
		&notes,
		&tags,
		&b.OwnerID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Email = email.String
	b.BHK = entity.BHK(bhk.String)
	b.Notes = notes.String
	if budgetMin.Valid {
		v := int(budgetMin.Int64)
		b.BudgetMin = &v
	}
	if budgetMax.Valid {
		v := int(budgetMax.Int64)
		b.BudgetMax = &v
	}
	b.Tags = []string(tags)
	if b.Tags == nil {
		b.Tags = []string{}
	}

	return &b, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}
