package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NumberSequenceRepository handles database operations for order number
// sequences. One sequence exists per calendar year.
type NumberSequenceRepository struct {
	db *gorm.DB
}

// NewNumberSequenceRepository creates a new NumberSequenceRepository
func NewNumberSequenceRepository(db *gorm.DB) *NumberSequenceRepository {
	return &NumberSequenceRepository{db: db}
}

// GetNextNumber atomically retrieves and increments the sequence for a year.
// This method is thread-safe and uses SELECT FOR UPDATE to prevent race
// conditions. If no sequence exists for the year, it creates one starting at 1.
//
// Returns the next sequence number to use (already incremented in DB).
func (r *NumberSequenceRepository) GetNextNumber(ctx context.Context, year int) (int, error) {
	var seq domain.NumberSequence
	var nextSeq int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Try to get existing sequence with row lock for atomicity
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("year = ?", year).
			First(&seq)

		if result.Error == gorm.ErrRecordNotFound {
			seq = domain.NumberSequence{
				Year:         year,
				LastSequence: 1,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create number sequence: %w", err)
			}
			nextSeq = 1
		} else if result.Error != nil {
			return fmt.Errorf("failed to get number sequence: %w", result.Error)
		} else {
			// Increment existing sequence
			nextSeq = seq.LastSequence + 1
			if err := tx.Model(&seq).Updates(map[string]interface{}{
				"last_sequence": nextSeq,
				"updated_at":    time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to update number sequence: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return nextSeq, nil
}

// GetCurrentSequence retrieves the current sequence value without
// incrementing. Returns 0 if no sequence exists for the year.
func (r *NumberSequenceRepository) GetCurrentSequence(ctx context.Context, year int) (int, error) {
	var seq domain.NumberSequence
	result := r.db.WithContext(ctx).
		Where("year = ?", year).
		First(&seq)

	if result.Error == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if result.Error != nil {
		return 0, fmt.Errorf("failed to get number sequence: %w", result.Error)
	}

	return seq.LastSequence, nil
}
