package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session maps an opaque bearer/cookie token to a user.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

const SessionTTL = 7 * 24 * time.Hour

func NewSession(userID string) *Session {
	now := Now()
	return &Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
}

type UserRepositoryInterface interface {
	// CreateOrGet returns the user with the given email, creating it on
	// first login. The demo auth flow has no passwords.
	CreateOrGet(ctx context.Context, email, name string) (*User, error)

	FindByID(ctx context.Context, id string) (*User, error)
}

type SessionRepositoryInterface interface {
	Create(ctx context.Context, s *Session) error

	// FindUserByToken resolves a non-expired token to its user, or
	// ErrSessionNotFound.
	FindUserByToken(ctx context.Context, token string) (*User, error)
}
