package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/repository"
	"go.uber.org/zap"
)

// DashboardService builds the read-side summary: pipeline distribution,
// urgency and risk breakdowns, and the today's-focus list. Derived
// values are computed in memory over the active set, which for a single
// store stays small.
type DashboardService struct {
	orderRepo   *repository.OrderRepository
	policy      domain.DwellPolicy
	staleDays   int
	dueSoonDays int
	logger      *zap.Logger
}

func NewDashboardService(
	orderRepo *repository.OrderRepository,
	policy domain.DwellPolicy,
	staleDays int,
	dueSoonDays int,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		policy:      policy,
		staleDays:   staleDays,
		dueSoonDays: dueSoonDays,
		logger:      logger,
	}
}

// GetSummary returns the dashboard aggregate for the current clock
func (s *DashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummaryDTO, error) {
	now := time.Now().UTC()

	totalOrders, err := s.orderRepo.CountByType(ctx, domain.RecordTypeOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	totalEnquiries, err := s.orderRepo.CountByType(ctx, domain.RecordTypeEnquiry)
	if err != nil {
		return nil, fmt.Errorf("failed to count enquiries: %w", err)
	}

	stageCounts, err := s.orderRepo.CountByStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stages: %w", err)
	}

	active, err := s.orderRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active orders: %w", err)
	}

	summary := &domain.DashboardSummaryDTO{
		TotalOrders:    totalOrders,
		TotalEnquiries: totalEnquiries,
		StageCounts:    make([]domain.StageCountDTO, 0, len(domain.Stages)),
		UrgencyCounts:  make(map[string]int),
		RiskCounts:     make(map[string]int),
		TodaysFocus:    []domain.FocusEntryDTO{},
	}

	// Report every stage, including empty columns, in pipeline order
	for _, stage := range domain.Stages {
		summary.StageCounts = append(summary.StageCounts, domain.StageCountDTO{
			Stage: string(stage),
			Count: stageCounts[stage],
		})
	}

	for i := range active {
		order := &active[i]
		urgency := domain.UrgencyFor(order, s.dueSoonDays, now)
		risk := domain.ComputeRiskSignal(order, s.policy, s.staleDays, now)

		summary.UrgencyCounts[string(urgency)]++
		summary.RiskCounts[string(risk)]++

		if reason := focusReason(urgency, risk); reason != "" {
			summary.TodaysFocus = append(summary.TodaysFocus, domain.FocusEntryDTO{
				OrderID:       order.ID.String(),
				OrderNumber:   order.OrderNumber,
				CustomerName:  order.CustomerName,
				CurrentStage:  string(order.CurrentStage),
				Urgency:       string(urgency),
				RiskSignal:    string(risk),
				DeliveryLabel: domain.FormatDaysRemaining(order, now),
				Reason:        reason,
			})
		}
	}

	sortFocus(summary.TodaysFocus)

	return summary, nil
}

// focusReason decides whether an order belongs on the focus list and
// names the dominant reason. Overdue outranks risk signals, which
// outrank due-soon.
func focusReason(urgency domain.UrgencyLevel, risk domain.RiskSignal) string {
	switch {
	case urgency == domain.UrgencyLevelOverdue:
		return "delivery date passed"
	case risk == domain.RiskStale:
		return "no activity recorded recently"
	case risk == domain.RiskStuck:
		return "in stage longer than expected"
	case urgency == domain.UrgencyLevelDueSoon:
		return "delivery date approaching"
	}
	return ""
}

// sortFocus orders the focus list by severity: overdue first, then
// stale, stuck, due-soon.
func sortFocus(entries []domain.FocusEntryDTO) {
	rank := func(e domain.FocusEntryDTO) int {
		switch {
		case e.Urgency == string(domain.UrgencyLevelOverdue):
			return 0
		case e.RiskSignal == string(domain.RiskStale):
			return 1
		case e.RiskSignal == string(domain.RiskStuck):
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return rank(entries[i]) < rank(entries[j])
	})
}
