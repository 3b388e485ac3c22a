package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/service"
	"go.uber.org/zap"
)

type ActivityHandler struct {
	activityService *service.ActivityService
	logger          *zap.Logger
}

func NewActivityHandler(activityService *service.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// @Summary Post update
// @Description Record a note, a stage change, or both as a single timeline entry
// @Tags Activity
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body domain.PostUpdateRequest true "Update data"
// @Success 201 {object} domain.ActivityEntryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /orders/{id}/updates [post]
func (h *ActivityHandler) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req domain.PostUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	entry, err := h.activityService.PostUpdate(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to post update")
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// @Summary Change stage
// @Description Move an order to a different pipeline stage
// @Tags Activity
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body domain.ChangeStageRequest true "Stage change data"
// @Success 201 {object} domain.ActivityEntryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /orders/{id}/stage [post]
func (h *ActivityHandler) ChangeStage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req domain.ChangeStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	entry, err := h.activityService.ChangeStage(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to change stage")
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// @Summary Get activity timeline
// @Description Get an order's activity feed, newest first by default
// @Tags Activity
// @Produce json
// @Param id path string true "Order ID"
// @Param order query string false "Sort order (asc, desc)" default(desc)
// @Param type query string false "Filter by entry type (order_created, stage_change, note, file_upload)"
// @Success 200 {array} domain.ActivityEntryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /orders/{id}/activity [get]
func (h *ActivityHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	descending := r.URL.Query().Get("order") != "asc"

	var entryType *domain.ActivityEntryType
	if t := r.URL.Query().Get("type"); t != "" {
		et := domain.ActivityEntryType(t)
		if !et.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid entry type")
			return
		}
		entryType = &et
	}

	entries, err := h.activityService.Timeline(r.Context(), id, descending, entryType)
	if err != nil {
		h.respondServiceError(w, err, "failed to get timeline")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

func (h *ActivityHandler) respondServiceError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, service.ErrNothingToRecord):
		respondWithError(w, http.StatusBadRequest, "Update must include a note or a stage change")
	case errors.Is(err, service.ErrSameStage):
		respondWithError(w, http.StatusBadRequest, "Order is already in the requested stage")
	case errors.Is(err, service.ErrInvalidStage):
		respondWithError(w, http.StatusBadRequest, "Invalid pipeline stage")
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(logMsg, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
