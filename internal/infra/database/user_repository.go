package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateOrGet upserts on email: first login creates the user, later logins
// return the existing record with its original name.
func (r *UserRepository) CreateOrGet(ctx context.Context, email, name string) (*entity.User, error) {
	query := `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET updated_at = NOW()
		RETURNING id, email, name, created_at, updated_at
	`

	u := &entity.User{}
	err := r.DB.QueryRowContext(ctx, query, uuid.New().String(), email, name).Scan(
		&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT id, email, name, created_at, updated_at FROM users WHERE id = $1`

	u := &entity.User{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSessionNotFound
	}
	return u, err
}

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, s.Token, s.UserID, s.CreatedAt, s.ExpiresAt)
	return err
}

// FindUserByToken resolves a live session token straight to its user.
func (r *SessionRepository) FindUserByToken(ctx context.Context, token string) (*entity.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.created_at, u.updated_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > $2
	`

	u := &entity.User{}
	err := r.DB.QueryRowContext(ctx, query, token, time.Now().UTC()).Scan(
		&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSessionNotFound
	}
	return u, err
}
