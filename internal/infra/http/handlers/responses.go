package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/propdesk/buyer-leads-api/internal/entity"
	"github.com/propdesk/buyer-leads-api/internal/infra/http/middleware"
	"github.com/propdesk/buyer-leads-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeDomainError maps the error taxonomy to HTTP statuses so callers can
// tell "fix these fields" from "refresh and retry" from "not yours".
func writeDomainError(w http.ResponseWriter, err error) {
	var verrs usecase.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldError, len(verrs))
		for i, ve := range verrs {
			fields[i] = fieldError{Field: ve.Field, Message: ve.Message}
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "VALIDATION_FAILED",
			"errors": fields,
		})
		return
	}

	var batchErr *usecase.BatchLimitError
	if errors.As(err, &batchErr) {
		writeErrorResponse(w, http.StatusBadRequest, "BATCH_LIMIT_EXCEEDED", batchErr.Error())
		return
	}

	switch {
	case errors.Is(err, entity.ErrBuyerNotFound):
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, entity.ErrStaleWrite):
		middleware.RecordStaleWrite()
		writeErrorResponse(w, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, entity.ErrNotOwner):
		writeErrorResponse(w, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, entity.ErrBuyerAccessDenied):
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND_OR_FORBIDDEN", err.Error())
	case errors.Is(err, entity.ErrSessionNotFound):
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
