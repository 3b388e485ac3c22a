package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/mapper"
	"github.com/orna-jewels/pipeline-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityService owns the append side of the ledger. A posted update
// becomes exactly one entry: a stage change absorbs any accompanying
// note, a bare note becomes a note entry, and an update carrying
// neither is rejected. Appending an entry and advancing the order's
// stage happen in one transaction, so the ledger and the order never
// disagree.
type ActivityService struct {
	orderRepo    *repository.OrderRepository
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

func NewActivityService(
	orderRepo *repository.OrderRepository,
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *ActivityService {
	return &ActivityService{
		orderRepo:    orderRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// PostUpdate records a note, a stage change, or both as a single ledger
// entry on the order's timeline.
func (s *ActivityService) PostUpdate(ctx context.Context, orderID uuid.UUID, req *domain.PostUpdateRequest) (*domain.ActivityEntryDTO, error) {
	if strings.TrimSpace(req.PostedBy) == "" {
		return nil, fmt.Errorf("%w: postedBy is required", ErrInvalidInput)
	}

	note := strings.TrimSpace(req.Note)
	if req.NewStage == nil && note == "" {
		return nil, ErrNothingToRecord
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if req.NewStage != nil {
		if !req.NewStage.IsValid() {
			return nil, ErrInvalidStage
		}
		// An unchanged stage is not a move: the note, if any, still lands
		// on the timeline as a plain note entry.
		if *req.NewStage != order.CurrentStage {
			return s.appendStageChange(ctx, order, *req.NewStage, req.PostedBy, req.ActorRole, note)
		}
		if note == "" {
			return nil, ErrNothingToRecord
		}
	}
	return s.appendNote(ctx, order, req.PostedBy, req.ActorRole, note)
}

// ChangeStage moves an order to a stage directly, for board drags.
// Unlike PostUpdate it has nothing to fall back on, so a same-stage
// request is rejected outright.
func (s *ActivityService) ChangeStage(ctx context.Context, orderID uuid.UUID, req *domain.ChangeStageRequest) (*domain.ActivityEntryDTO, error) {
	if strings.TrimSpace(req.PostedBy) == "" {
		return nil, fmt.Errorf("%w: postedBy is required", ErrInvalidInput)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return s.appendStageChange(ctx, order, req.NewStage, req.PostedBy, req.ActorRole, strings.TrimSpace(req.Note))
}

// Timeline returns an order's activity feed, optionally narrowed to one
// entry type. Descending is the feed view; ascending is ledger order.
func (s *ActivityService) Timeline(ctx context.Context, orderID uuid.UUID, descending bool, entryType *domain.ActivityEntryType) ([]domain.ActivityEntryDTO, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	var entries []domain.ActivityEntry
	var err error
	if entryType != nil {
		if !entryType.IsValid() {
			return nil, fmt.Errorf("%w: unknown entry type", ErrInvalidInput)
		}
		entries, err = s.activityRepo.ListByType(ctx, orderID, *entryType, descending)
	} else {
		entries, err = s.activityRepo.ListByOrder(ctx, orderID, descending)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	return mapper.ToActivityEntryDTOs(entries, time.Now().UTC()), nil
}

func (s *ActivityService) appendStageChange(ctx context.Context, order *domain.Order, newStage domain.Stage, postedBy string, role *domain.ActorRole, note string) (*domain.ActivityEntryDTO, error) {
	if !newStage.IsValid() {
		return nil, ErrInvalidStage
	}
	if !domain.CanTransition(order.CurrentStage, newStage) {
		return nil, ErrSameStage
	}

	now := time.Now().UTC()
	previousStage := order.CurrentStage

	entry := &domain.ActivityEntry{
		OrderID:       order.ID,
		PostedBy:      postedBy,
		ActorRole:     role,
		Timestamp:     now,
		Type:          domain.EntryTypeStageChange,
		Note:          note,
		NewStage:      &newStage,
		PreviousStage: &previousStage,
	}

	err := s.orderRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.activityRepo.Append(ctx, tx, entry); err != nil {
			return err
		}
		return tx.Model(&domain.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"current_stage":   newStage,
				"last_updated_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("stage changed",
		zap.String("order_id", order.ID.String()),
		zap.String("from", string(previousStage)),
		zap.String("to", string(newStage)),
		zap.String("posted_by", postedBy))

	dto := mapper.ToActivityEntryDTO(entry, now)
	return &dto, nil
}

func (s *ActivityService) appendNote(ctx context.Context, order *domain.Order, postedBy string, role *domain.ActorRole, note string) (*domain.ActivityEntryDTO, error) {
	now := time.Now().UTC()

	entry := &domain.ActivityEntry{
		OrderID:   order.ID,
		PostedBy:  postedBy,
		ActorRole: role,
		Timestamp: now,
		Type:      domain.EntryTypeNote,
		Note:      note,
	}

	err := s.orderRepo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.activityRepo.Append(ctx, tx, entry); err != nil {
			return err
		}
		return tx.Model(&domain.Order{}).
			Where("id = ?", order.ID).
			Update("last_updated_at", now).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("note posted",
		zap.String("order_id", order.ID.String()),
		zap.String("posted_by", postedBy))

	dto := mapper.ToActivityEntryDTO(entry, now)
	return &dto, nil
}
