package jobs

import (
	"context"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/repository"
	"go.uber.org/zap"
)

// RiskScanJob sweeps the active pipeline each morning and logs a digest
// of stale and stuck orders. Risk signals stay derived-only: the sweep
// never writes them back, it only surfaces them for the daily stand-up.
type RiskScanJob struct {
	orderRepo   *repository.OrderRepository
	policy      domain.DwellPolicy
	staleDays   int
	dueSoonDays int
	logger      *zap.Logger
}

// NewRiskScanJob creates a new risk scan job
func NewRiskScanJob(
	orderRepo *repository.OrderRepository,
	policy domain.DwellPolicy,
	staleDays int,
	dueSoonDays int,
	logger *zap.Logger,
) *RiskScanJob {
	return &RiskScanJob{
		orderRepo:   orderRepo,
		policy:      policy,
		staleDays:   staleDays,
		dueSoonDays: dueSoonDays,
		logger:      logger,
	}
}

// Name returns the job name for scheduler registration
func (j *RiskScanJob) Name() string {
	return "risk_scan"
}

// Run executes one sweep over the active pipeline
func (j *RiskScanJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now().UTC()

	orders, err := j.orderRepo.GetActive(ctx)
	if err != nil {
		j.logger.Error("risk scan failed to load active orders", zap.Error(err))
		return
	}

	var stale, stuck, overdue int
	for i := range orders {
		order := &orders[i]

		switch domain.ComputeRiskSignal(order, j.policy, j.staleDays, now) {
		case domain.RiskStale:
			stale++
			j.logger.Warn("order is stale",
				zap.String("order_id", order.ID.String()),
				zap.String("order_number", order.OrderNumber),
				zap.String("customer", order.CustomerName),
				zap.String("stage", string(order.CurrentStage)))
		case domain.RiskStuck:
			stuck++
			j.logger.Warn("order is stuck",
				zap.String("order_id", order.ID.String()),
				zap.String("order_number", order.OrderNumber),
				zap.String("customer", order.CustomerName),
				zap.String("stage", string(order.CurrentStage)),
				zap.Int("days_in_stage", domain.DaysInCurrentStage(order, now)))
		}

		if domain.UrgencyFor(order, j.dueSoonDays, now) == domain.UrgencyLevelOverdue {
			overdue++
			j.logger.Warn("order is past its delivery date",
				zap.String("order_id", order.ID.String()),
				zap.String("order_number", order.OrderNumber),
				zap.String("customer", order.CustomerName),
				zap.String("delivery_label", domain.FormatDaysRemaining(order, now)))
		}
	}

	j.logger.Info("risk scan complete",
		zap.Int("active_orders", len(orders)),
		zap.Int("stale", stale),
		zap.Int("stuck", stuck),
		zap.Int("overdue", overdue))
}
