package service

import (
	"context"
	"fmt"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/repository"
	"go.uber.org/zap"
)

// orderNumberPrefix is the fixed prefix for all order numbers
const orderNumberPrefix = "ORD"

// NumberSequenceService generates unique, formatted order numbers.
// Numbers are assigned when an enquiry is confirmed (or an order is
// created directly) and never reused.
//
// Format: ORD-{YEAR}-{SEQUENCE}
// Example: ORD-2026-001, ORD-2026-042
type NumberSequenceService struct {
	repo   *repository.NumberSequenceRepository
	logger *zap.Logger
}

// NewNumberSequenceService creates a new NumberSequenceService
func NewNumberSequenceService(
	repo *repository.NumberSequenceRepository,
	logger *zap.Logger,
) *NumberSequenceService {
	return &NumberSequenceService{
		repo:   repo,
		logger: logger,
	}
}

// GenerateOrderNumber generates the next unique order number.
// Format: ORD-YYYY-NNN (zero-padded to 3 digits, growing past 999).
func (s *NumberSequenceService) GenerateOrderNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()

	// Get the next sequence number (atomic operation)
	nextSeq, err := s.repo.GetNextNumber(ctx, year)
	if err != nil {
		s.logger.Error("failed to get next sequence number",
			zap.Int("year", year),
			zap.Error(err))
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}

	number := fmt.Sprintf("%s-%d-%03d", orderNumberPrefix, year, nextSeq)

	s.logger.Info("generated order number",
		zap.String("number", number),
		zap.Int("year", year),
		zap.Int("sequence", nextSeq))

	return number, nil
}

// GetCurrentSequence returns the current sequence value for a year
// without incrementing it. Returns 0 if no sequence exists.
func (s *NumberSequenceService) GetCurrentSequence(ctx context.Context, year int) (int, error) {
	return s.repo.GetCurrentSequence(ctx, year)
}
