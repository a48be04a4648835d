package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

// AuthHandler implements the demo login: any email plus a display name gets
// a user (created on first sight) and a fresh session token. There is no
// password; this mirrors the product's magic-login placeholder.
type AuthHandler struct {
	Users    entity.UserRepositoryInterface
	Sessions entity.SessionRepositoryInterface
}

func NewAuthHandler(users entity.UserRepositoryInterface, sessions entity.SessionRepositoryInterface) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions}
}

type loginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON: "+err.Error())
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_EMAIL", "a valid email is required")
		return
	}
	if req.Name == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_NAME", "name is required")
		return
	}

	user, err := h.Users.CreateOrGet(r.Context(), req.Email, req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	session := entity.NewSession(user.ID)
	if err := h.Sessions.Create(r.Context(), session); err != nil {
		writeDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth-token",
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, loginResponse{Token: session.Token, User: user})
}
