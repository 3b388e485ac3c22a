package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFilters contains all filter options for listing orders
type OrderFilters struct {
	Type          *domain.RecordType
	Stage         *domain.Stage
	Category      *domain.JewelleryCategory
	Salesperson   *string
	Vendor        *string
	DueBefore     *time.Time
	DueAfter      *time.Time
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	SearchQuery   *string
}

// OrderSortOption represents available sort options
type OrderSortOption string

const (
	OrderSortByCreatedDesc  OrderSortOption = "created_desc"
	OrderSortByCreatedAsc   OrderSortOption = "created_asc"
	OrderSortByUpdatedDesc  OrderSortOption = "updated_desc"
	OrderSortByUpdatedAsc   OrderSortOption = "updated_asc"
	OrderSortByDeliveryAsc  OrderSortOption = "delivery_asc"
	OrderSortByDeliveryDesc OrderSortOption = "delivery_desc"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	// Omit associations to avoid GORM trying to validate related records
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

// GetByID loads an order with its full activity feed in ledger order
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Preload("ActivityFeed", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, position ASC")
		}).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByToken loads an order by its shareable token. Tokens back the
// customer-facing tracking link, so this path never requires auth.
func (r *OrderRepository) GetByToken(ctx context.Context, token string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Preload("ActivityFeed", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, position ASC")
		}).
		Where("shareable_token = ?", token).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (r *OrderRepository) List(ctx context.Context, page, pageSize int, filters *OrderFilters, sortBy OrderSortOption) ([]domain.Order, int64, error) {
	var orders []domain.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Order{}).
		Preload("ActivityFeed", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, position ASC")
		})

	query = r.applyFilters(query, filters)

	// Count total matching records
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.applySorting(query, sortBy)

	// Apply pagination
	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Find(&orders).Error

	return orders, total, err
}

// GetActive returns all orders not yet picked up, with activity feeds,
// for the risk sweep and the dashboard. The active set is small enough
// that derived values are computed in memory.
func (r *OrderRepository) GetActive(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Preload("ActivityFeed", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC, position ASC")
		}).
		Where("current_stage <> ?", domain.StageCustomerPickup).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// CountByType returns the number of records of the given type
func (r *OrderRepository) CountByType(ctx context.Context, recordType domain.RecordType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("type = ?", recordType).
		Count(&count).Error
	return count, err
}

// CountByStage returns order counts grouped by pipeline stage
func (r *OrderRepository) CountByStage(ctx context.Context) (map[domain.Stage]int, error) {
	type stageRow struct {
		CurrentStage domain.Stage
		Count        int
	}

	var rows []stageRow
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("current_stage, COUNT(*) as count").
		Group("current_stage").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Stage]int, len(rows))
	for _, row := range rows {
		counts[row.CurrentStage] = row.Count
	}
	return counts, nil
}

// TokenExists reports whether a shareable token is already taken
func (r *OrderRepository) TokenExists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("shareable_token = ?", token).
		Count(&count).Error
	return count > 0, err
}

// WithTransaction executes operations within a transaction
func (r *OrderRepository) WithTransaction(ctx context.Context, fn func(*gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// applyFilters applies all filter criteria to the query
func (r *OrderRepository) applyFilters(query *gorm.DB, filters *OrderFilters) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}

	if filters.Stage != nil {
		query = query.Where("current_stage = ?", *filters.Stage)
	}

	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}

	if filters.Salesperson != nil {
		query = query.Where("salesperson_name = ?", *filters.Salesperson)
	}

	if filters.Vendor != nil {
		query = query.Where("vendor_name = ?", *filters.Vendor)
	}

	if filters.DueBefore != nil {
		query = query.Where("delivery_date <= ?", *filters.DueBefore)
	}

	if filters.DueAfter != nil {
		query = query.Where("delivery_date >= ?", *filters.DueAfter)
	}

	if filters.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filters.CreatedAfter)
	}

	if filters.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filters.CreatedBefore)
	}

	if filters.SearchQuery != nil && *filters.SearchQuery != "" {
		searchPattern := "%" + strings.ToLower(*filters.SearchQuery) + "%"
		query = query.Where(
			"LOWER(customer_name) LIKE ? OR LOWER(order_number) LIKE ? OR LOWER(customer_phone) LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	return query
}

// applySorting applies the sorting option to the query
func (r *OrderRepository) applySorting(query *gorm.DB, sortBy OrderSortOption) *gorm.DB {
	switch sortBy {
	case OrderSortByCreatedAsc:
		return query.Order("created_at ASC")
	case OrderSortByUpdatedDesc:
		return query.Order("last_updated_at DESC")
	case OrderSortByUpdatedAsc:
		return query.Order("last_updated_at ASC")
	case OrderSortByDeliveryAsc:
		return query.Order("delivery_date ASC NULLS LAST")
	case OrderSortByDeliveryDesc:
		return query.Order("delivery_date DESC NULLS LAST")
	default: // OrderSortByCreatedDesc
		return query.Order("created_at DESC")
	}
}
