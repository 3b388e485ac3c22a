package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/logger"
	"github.com/orna-jewels/pipeline-api/internal/mapper"
	"github.com/orna-jewels/pipeline-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService owns the lifecycle of enquiries and orders: creation,
// confirmation, and the read paths. Every creation seeds the activity
// ledger with an order_created entry whose timestamp equals the record's
// CreatedAt, so the ledger is never empty.
type OrderService struct {
	orderRepo    *repository.OrderRepository
	activityRepo *repository.ActivityRepository
	numberSvc    *NumberSequenceService
	policy       domain.DwellPolicy
	staleDays    int
	dueSoonDays  int
	logger       *zap.Logger
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	activityRepo *repository.ActivityRepository,
	numberSvc *NumberSequenceService,
	policy domain.DwellPolicy,
	staleDays int,
	dueSoonDays int,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		activityRepo: activityRepo,
		numberSvc:    numberSvc,
		policy:       policy,
		staleDays:    staleDays,
		dueSoonDays:  dueSoonDays,
		logger:       logger,
	}
}

// CreateEnquiry creates a pre-sale enquiry in the Enquiry stage
func (s *OrderService) CreateEnquiry(ctx context.Context, req *domain.CreateEnquiryRequest) (*domain.OrderDTO, error) {
	order, err := s.buildOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	order.Type = domain.RecordTypeEnquiry
	order.CurrentStage = domain.StageEnquiry

	return s.persistNew(ctx, order, req.SalespersonName)
}

// CreateOrder creates a confirmed order directly, skipping the enquiry
// phase. It is assigned an order number immediately and starts in the
// Order Confirmed stage.
func (s *OrderService) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.OrderDTO, error) {
	order, err := s.buildOrder(ctx, &req.CreateEnquiryRequest)
	if err != nil {
		return nil, err
	}
	order.Type = domain.RecordTypeOrder
	order.CurrentStage = domain.StageOrderConfirmed
	order.VendorName = req.VendorName
	order.AdvancePaid = req.AdvancePaid
	order.SpecialInstructions = req.SpecialInstructions

	number, err := s.numberSvc.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}
	order.OrderNumber = number

	return s.persistNew(ctx, order, req.SalespersonName)
}

// Confirm converts an enquiry into a confirmed order: assigns the vendor
// and an order number, moves the record to Order Confirmed, and records
// the transition in the ledger as a single entry.
func (s *OrderService) Confirm(ctx context.Context, id uuid.UUID, req *domain.ConfirmOrderRequest) (*domain.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !order.IsEnquiry() {
		return nil, ErrAlreadyConfirmed
	}

	number, err := s.numberSvc.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	previousStage := order.CurrentStage

	err = s.orderRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		order.Type = domain.RecordTypeOrder
		order.OrderNumber = number
		order.VendorName = req.VendorName
		if req.AdvancePaid != nil {
			order.AdvancePaid = req.AdvancePaid
		}
		order.CurrentStage = domain.StageOrderConfirmed
		order.LastUpdatedAt = now

		if err := tx.Omit("ActivityFeed").Save(order).Error; err != nil {
			return fmt.Errorf("failed to confirm order: %w", err)
		}

		entry := &domain.ActivityEntry{
			OrderID:   order.ID,
			PostedBy:  req.PostedBy,
			ActorRole: actorRolePtr(domain.ActorRoleSales),
			Timestamp: now,
			Note:      req.Note,
		}
		// An enquiry already board-moved to Order Confirmed gets a note
		// instead of a redundant same-stage transition.
		if domain.CanTransition(previousStage, domain.StageOrderConfirmed) {
			entry.Type = domain.EntryTypeStageChange
			entry.NewStage = stagePtr(domain.StageOrderConfirmed)
			entry.PreviousStage = stagePtr(previousStage)
		} else {
			entry.Type = domain.EntryTypeNote
			if entry.Note == "" {
				entry.Note = fmt.Sprintf("Confirmed as order %s", number)
			}
		}
		return s.activityRepo.Append(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}

	logger.WithOrder(s.logger, order.ID.String(), number).Info("enquiry confirmed",
		zap.String("vendor", req.VendorName))

	return s.reload(ctx, order.ID)
}

// GetByID returns a single order with its full activity feed
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	dto := mapper.ToOrderDTO(order, s.policy, s.staleDays, s.dueSoonDays, time.Now().UTC())
	return &dto, nil
}

// GetByToken returns an order by its shareable tracking token
func (s *OrderService) GetByToken(ctx context.Context, token string) (*domain.OrderDTO, error) {
	order, err := s.orderRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by token: %w", err)
	}

	dto := mapper.ToOrderDTO(order, s.policy, s.staleDays, s.dueSoonDays, time.Now().UTC())
	return &dto, nil
}

// List returns a paginated, filtered page of orders
func (s *OrderService) List(ctx context.Context, page, pageSize int, filters *repository.OrderFilters, sortBy repository.OrderSortOption) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := s.orderRepo.List(ctx, page, pageSize, filters, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &domain.PaginatedResponse{
		Data:       mapper.ToOrderDTOs(orders, s.policy, s.staleDays, s.dueSoonDays, time.Now().UTC()),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// buildOrder maps the shared request fields onto a new Order
func (s *OrderService) buildOrder(ctx context.Context, req *domain.CreateEnquiryRequest) (*domain.Order, error) {
	certification := req.Certification
	if certification == "" {
		certification = domain.CertificationNone
	}

	order := &domain.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,

		SalespersonName: req.SalespersonName,

		Category:    req.Category,
		MetalType:   req.MetalType,
		MetalPurity: req.MetalPurity,
		MetalWeight: req.MetalWeight,
		Polish:      req.Polish,

		StoneDescription:   req.StoneDescription,
		StoneQuality:       req.StoneQuality,
		StoneCut:           req.StoneCut,
		StoneCaratEstimate: req.StoneCaratEstimate,

		RingSize:    req.RingSize,
		ChainLength: req.ChainLength,
		BangleSize:  req.BangleSize,

		Certification:     certification,
		CADDesignRequired: req.CADDesignRequired,
		TotalEstimate:     req.TotalEstimate,

		BudgetRange:   req.BudgetRange,
		Occasion:      req.Occasion,
		TimelineNotes: req.TimelineNotes,
	}

	if req.DeliveryDate != "" {
		d, err := time.Parse("2006-01-02", req.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid delivery date", ErrInvalidInput)
		}
		order.DeliveryDate = &d
	}

	token, err := s.generateToken(ctx, req.CustomerName, string(req.Category))
	if err != nil {
		return nil, err
	}
	order.ShareableToken = token

	return order, nil
}

// persistNew stores a new record and seeds its ledger inside one
// transaction. The order_created entry shares the record's CreatedAt so
// a fresh record is never stale.
func (s *OrderService) persistNew(ctx context.Context, order *domain.Order, postedBy string) (*domain.OrderDTO, error) {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.LastUpdatedAt = now

	err := s.orderRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("ActivityFeed").Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		entry := &domain.ActivityEntry{
			OrderID:   order.ID,
			PostedBy:  postedBy,
			ActorRole: actorRolePtr(domain.ActorRoleSales),
			Timestamp: now,
			Type:      domain.EntryTypeOrderCreated,
		}
		return s.activityRepo.Append(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("record created",
		zap.String("order_id", order.ID.String()),
		zap.String("type", string(order.Type)),
		zap.String("customer", order.CustomerName))

	return s.reload(ctx, order.ID)
}

func (s *OrderService) reload(ctx context.Context, id uuid.UUID) (*domain.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}
	dto := mapper.ToOrderDTO(order, s.policy, s.staleDays, s.dueSoonDays, time.Now().UTC())
	return &dto, nil
}

// generateToken builds a shareable tracking token from the customer name
// and category plus a random suffix, retrying on the unlikely collision.
func (s *OrderService) generateToken(ctx context.Context, customerName, category string) (string, error) {
	base := slugify(customerName + "-" + category)

	for attempt := 0; attempt < 5; attempt++ {
		suffix := make([]byte, 4)
		if _, err := rand.Read(suffix); err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		token := base + "-" + hex.EncodeToString(suffix)

		exists, err := s.orderRepo.TokenExists(ctx, token)
		if err != nil {
			return "", fmt.Errorf("failed to check token: %w", err)
		}
		if !exists {
			return token, nil
		}
	}

	return "", ErrConflict
}

// slugify lowercases and strips a string down to [a-z0-9-]
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func stagePtr(s domain.Stage) *domain.Stage {
	return &s
}

func actorRolePtr(r domain.ActorRole) *domain.ActorRole {
	return &r
}
