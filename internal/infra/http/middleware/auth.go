package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

type contextKey string

const userContextKey contextKey = "authenticated_user"

// Authenticator resolves the session token (auth-token cookie or bearer
// header) to a user and stores it on the request context. Requests without a
// live session get 401.
func Authenticator(sessions entity.SessionRepositoryInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				unauthorized(w, "missing auth token")
				return
			}

			user, err := sessions.FindUserByToken(r.Context(), token)
			if err != nil {
				unauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the acting user placed there by Authenticator.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entity.User)
	return user, ok
}

// ContextWithUser injects an acting user directly, bypassing token lookup.
func ContextWithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func extractToken(r *http.Request) string {
	if c, err := r.Cookie("auth-token"); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}
