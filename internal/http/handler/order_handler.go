package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/repository"
	"github.com/orna-jewels/pipeline-api/internal/service"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// @Summary List orders
// @Description List orders and enquiries with optional filters
// @Tags Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param type query string false "Filter by record type (enquiry, order)"
// @Param stage query string false "Filter by pipeline stage"
// @Param category query string false "Filter by jewellery category"
// @Param salesperson query string false "Filter by salesperson name"
// @Param vendor query string false "Filter by vendor name"
// @Param dueBefore query string false "Delivery date before (YYYY-MM-DD)"
// @Param dueAfter query string false "Delivery date after (YYYY-MM-DD)"
// @Param createdAfter query string false "Created after date (YYYY-MM-DD)"
// @Param createdBefore query string false "Created before date (YYYY-MM-DD)"
// @Param q query string false "Search customer name, order number, or phone"
// @Param sort query string false "Sort by (created_desc, created_asc, updated_desc, updated_asc, delivery_asc, delivery_desc)"
// @Success 200 {object} domain.PaginatedResponse
// @Router /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}

	filters := &repository.OrderFilters{}

	if t := r.URL.Query().Get("type"); t != "" {
		recordType := domain.RecordType(t)
		if !recordType.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid record type")
			return
		}
		filters.Type = &recordType
	}

	if s := r.URL.Query().Get("stage"); s != "" {
		stage := domain.Stage(s)
		if !stage.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid pipeline stage")
			return
		}
		filters.Stage = &stage
	}

	if c := r.URL.Query().Get("category"); c != "" {
		category := domain.JewelleryCategory(c)
		filters.Category = &category
	}

	if sp := r.URL.Query().Get("salesperson"); sp != "" {
		filters.Salesperson = &sp
	}

	if v := r.URL.Query().Get("vendor"); v != "" {
		filters.Vendor = &v
	}

	if db := r.URL.Query().Get("dueBefore"); db != "" {
		if t, err := time.Parse("2006-01-02", db); err == nil {
			filters.DueBefore = &t
		}
	}
	if da := r.URL.Query().Get("dueAfter"); da != "" {
		if t, err := time.Parse("2006-01-02", da); err == nil {
			filters.DueAfter = &t
		}
	}
	if ca := r.URL.Query().Get("createdAfter"); ca != "" {
		if t, err := time.Parse("2006-01-02", ca); err == nil {
			filters.CreatedAfter = &t
		}
	}
	if cb := r.URL.Query().Get("createdBefore"); cb != "" {
		if t, err := time.Parse("2006-01-02", cb); err == nil {
			filters.CreatedBefore = &t
		}
	}

	if q := r.URL.Query().Get("q"); q != "" {
		filters.SearchQuery = &q
	}

	sortBy := repository.OrderSortByCreatedDesc
	if s := r.URL.Query().Get("sort"); s != "" {
		sortBy = repository.OrderSortOption(s)
	}

	result, err := h.orderService.List(r.Context(), page, pageSize, filters, sortBy)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Create enquiry
// @Description Create a new pre-sale enquiry in the Enquiry stage
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body domain.CreateEnquiryRequest true "Enquiry data"
// @Success 201 {object} domain.OrderDTO
// @Router /enquiries [post]
func (h *OrderHandler) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEnquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	enquiry, err := h.orderService.CreateEnquiry(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create enquiry", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create enquiry")
		return
	}

	respondJSON(w, http.StatusCreated, enquiry)
}

// @Summary Create order
// @Description Create a confirmed order directly, skipping the enquiry phase
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body domain.CreateOrderRequest true "Order data"
// @Success 201 {object} domain.OrderDTO
// @Router /orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create order", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// @Summary Get order
// @Description Get an order or enquiry by ID with its full activity feed
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.OrderDTO
// @Failure 404 {object} domain.APIError
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("failed to get order", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// @Summary Get order by token
// @Description Get an order by its shareable tracking token. Customer-facing; no auth.
// @Tags Orders
// @Produce json
// @Param token path string true "Shareable token"
// @Success 200 {object} domain.OrderDTO
// @Failure 404 {object} domain.APIError
// @Router /orders/token/{token} [get]
func (h *OrderHandler) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		respondWithError(w, http.StatusBadRequest, "Token is required")
		return
	}

	order, err := h.orderService.GetByToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Error("failed to get order by token", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// @Summary Confirm enquiry
// @Description Convert an enquiry into a confirmed order: assigns vendor and order number
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body domain.ConfirmOrderRequest true "Confirmation data"
// @Success 200 {object} domain.OrderDTO
// @Failure 409 {object} domain.APIError
// @Router /orders/{id}/confirm [post]
func (h *OrderHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req domain.ConfirmOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	order, err := h.orderService.Confirm(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrAlreadyConfirmed):
			respondWithError(w, http.StatusConflict, "Record is already a confirmed order")
		default:
			h.logger.Error("failed to confirm enquiry", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to confirm enquiry")
		}
		return
	}

	respondJSON(w, http.StatusOK, order)
}
