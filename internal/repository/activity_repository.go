package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for the activity ledger.
// Entries are append-only: there is deliberately no Update or Delete here.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append writes a new ledger entry, assigning the next position for the
// order. Position is the tiebreak for entries sharing a timestamp, so it
// must be assigned inside the same transaction as the insert. Callers
// holding an open transaction pass it as tx; otherwise pass nil to use
// the repository's own connection.
func (r *ActivityRepository) Append(ctx context.Context, tx *gorm.DB, entry *domain.ActivityEntry) error {
	db := r.db
	if tx != nil {
		db = tx
	}

	var count int64
	if err := db.WithContext(ctx).Model(&domain.ActivityEntry{}).
		Where("order_id = ?", entry.OrderID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("counting ledger entries: %w", err)
	}
	entry.Position = int(count)

	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("appending ledger entry: %w", err)
	}
	return nil
}

// ListByOrder returns an order's full timeline. Ascending gives ledger
// order; descending gives the newest-first feed view.
func (r *ActivityRepository) ListByOrder(ctx context.Context, orderID uuid.UUID, descending bool) ([]domain.ActivityEntry, error) {
	order := "timestamp ASC, position ASC"
	if descending {
		order = "timestamp DESC, position DESC"
	}

	var entries []domain.ActivityEntry
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order(order).
		Find(&entries).Error
	return entries, err
}

// Latest returns the most recent entry for an order, or nil when the
// ledger is empty.
func (r *ActivityRepository) Latest(ctx context.Context, orderID uuid.UUID) (*domain.ActivityEntry, error) {
	var entry domain.ActivityEntry
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("timestamp DESC, position DESC").
		First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByType returns an order's entries of one type
func (r *ActivityRepository) ListByType(ctx context.Context, orderID uuid.UUID, entryType domain.ActivityEntryType, descending bool) ([]domain.ActivityEntry, error) {
	order := "timestamp ASC, position ASC"
	if descending {
		order = "timestamp DESC, position DESC"
	}

	var entries []domain.ActivityEntry
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND type = ?", orderID, entryType).
		Order(order).
		Find(&entries).Error
	return entries, err
}

// CountByOrder returns the number of entries in an order's ledger
func (r *ActivityRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ActivityEntry{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}
