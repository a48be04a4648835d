package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/propdesk/buyer-leads-api/internal/infra/http/middleware"
	"github.com/propdesk/buyer-leads-api/internal/usecase"
)

// mutationRateLimit matches the original product rule: five create/update
// calls per user per 15 minutes.
const (
	mutationRateLimit  = 5
	mutationRateWindow = 15 * time.Minute
)

type BuyerHandler struct {
	CreateUC *usecase.CreateBuyerUseCase
	UpdateUC *usecase.UpdateBuyerUseCase
	DeleteUC *usecase.DeleteBuyerUseCase
	GetUC    *usecase.GetBuyerUseCase
	ListUC   *usecase.ListBuyersUseCase

	rateLimiter *RateLimiter
}

func NewBuyerHandler(
	createUC *usecase.CreateBuyerUseCase,
	updateUC *usecase.UpdateBuyerUseCase,
	deleteUC *usecase.DeleteBuyerUseCase,
	getUC *usecase.GetBuyerUseCase,
	listUC *usecase.ListBuyersUseCase,
) *BuyerHandler {
	return &BuyerHandler{
		CreateUC:    createUC,
		UpdateUC:    updateUC,
		DeleteUC:    deleteUC,
		GetUC:       getUC,
		ListUC:      listUC,
		rateLimiter: NewRateLimiter(mutationRateLimit, mutationRateWindow),
	}
}

func (h *BuyerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	input := usecase.ListBuyersInput{
		Search:       params.Get("search"),
		City:         params.Get("city"),
		PropertyType: params.Get("propertyType"),
		Status:       params.Get("status"),
		Timeline:     params.Get("timeline"),
		Page:         page,
		Limit:        limit,
		SortBy:       params.Get("sortBy"),
		SortOrder:    params.Get("sortOrder"),
	}

	output, err := h.ListUC.Execute(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *BuyerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "no authenticated user")
		return
	}

	if !h.rateLimiter.Allow(actor.ID) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
		return
	}

	var input usecase.BuyerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON: "+err.Error())
		return
	}

	buyer, err := h.CreateUC.Execute(r.Context(), input, actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.RecordLeadCreated("api")
	writeJSON(w, http.StatusCreated, buyer)
}

func (h *BuyerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	output, err := h.GetUC.Execute(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// updateRequest is the full record plus the concurrency token the client
// read. The token is mandatory: without it a stale write cannot be detected.
type updateRequest struct {
	usecase.BuyerInput
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *BuyerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "no authenticated user")
		return
	}

	if !h.rateLimiter.Allow(actor.ID) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
		return
	}

	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON: "+err.Error())
		return
	}
	if req.UpdatedAt.IsZero() {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_UPDATED_AT", "updatedAt is required for concurrency control")
		return
	}

	buyer, err := h.UpdateUC.Execute(r.Context(), id, req.BuyerInput, actor, req.UpdatedAt)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, buyer)
}

func (h *BuyerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "no authenticated user")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.DeleteUC.Execute(r.Context(), id, actor); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
