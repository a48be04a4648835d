package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every field-level failure for one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

func IsValidationError(err error) bool {
	_, ok := err.(ValidationErrors)
	return ok
}

// BatchLimitError rejects an oversized CSV import before any row runs.
type BatchLimitError struct {
	MaxRows int
	GotRows int
}

func (e *BatchLimitError) Error() string {
	return fmt.Sprintf("maximum %d rows allowed, got %d", e.MaxRows, e.GotRows)
}

func IsBatchLimitError(err error) bool {
	_, ok := err.(*BatchLimitError)
	return ok
}
