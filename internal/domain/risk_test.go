package domain_test

import (
	"testing"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

var riskNow = time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)

func orderWithFeed(stage domain.Stage, createdAt time.Time, feed ...domain.ActivityEntry) *domain.Order {
	return &domain.Order{
		CurrentStage: stage,
		CreatedAt:    createdAt,
		ActivityFeed: feed,
	}
}

func entryAt(ts time.Time, position int) domain.ActivityEntry {
	return domain.ActivityEntry{
		Type:      domain.EntryTypeNote,
		Timestamp: ts,
		Position:  position,
	}
}

func stageChangeAt(ts time.Time, position int, to domain.Stage) domain.ActivityEntry {
	return domain.ActivityEntry{
		Type:      domain.EntryTypeStageChange,
		Timestamp: ts,
		Position:  position,
		NewStage:  &to,
	}
}

func TestDaysSinceLastActivity(t *testing.T) {
	t.Run("empty feed yields no value", func(t *testing.T) {
		order := orderWithFeed(domain.StageBuilding, riskNow.AddDate(0, 0, -10))
		_, ok := domain.DaysSinceLastActivity(order, riskNow)
		assert.False(t, ok)
	})

	t.Run("uses the chronologically latest entry", func(t *testing.T) {
		order := orderWithFeed(domain.StageBuilding, riskNow.AddDate(0, 0, -10),
			entryAt(riskNow.AddDate(0, 0, -9), 0),
			entryAt(riskNow.AddDate(0, 0, -2), 1),
			entryAt(riskNow.AddDate(0, 0, -5), 2),
		)
		days, ok := domain.DaysSinceLastActivity(order, riskNow)
		assert.True(t, ok)
		assert.Equal(t, 2, days)
	})

	t.Run("position breaks timestamp ties", func(t *testing.T) {
		ts := riskNow.AddDate(0, 0, -3)
		order := orderWithFeed(domain.StageBuilding, riskNow.AddDate(0, 0, -10),
			entryAt(ts, 0),
			entryAt(ts, 1),
		)
		days, ok := domain.DaysSinceLastActivity(order, riskNow)
		assert.True(t, ok)
		assert.Equal(t, 3, days)
	})
}

func TestDaysInCurrentStage(t *testing.T) {
	t.Run("anchors on creation when never transitioned", func(t *testing.T) {
		order := orderWithFeed(domain.StageEnquiry, riskNow.AddDate(0, 0, -6),
			entryAt(riskNow.AddDate(0, 0, -6), 0),
		)
		assert.Equal(t, 6, domain.DaysInCurrentStage(order, riskNow))
	})

	t.Run("anchors on the latest entry into the current stage", func(t *testing.T) {
		order := orderWithFeed(domain.StageBuilding, riskNow.AddDate(0, 0, -20),
			stageChangeAt(riskNow.AddDate(0, 0, -15), 1, domain.StageBuilding),
			stageChangeAt(riskNow.AddDate(0, 0, -10), 2, domain.StageCertification),
			stageChangeAt(riskNow.AddDate(0, 0, -4), 3, domain.StageBuilding),
		)
		assert.Equal(t, 4, domain.DaysInCurrentStage(order, riskNow))
	})

	t.Run("ignores transitions into other stages", func(t *testing.T) {
		order := orderWithFeed(domain.StageEstimation, riskNow.AddDate(0, 0, -12),
			stageChangeAt(riskNow.AddDate(0, 0, -2), 1, domain.StageBuilding),
		)
		// stage change does not match the current stage, so creation anchors
		assert.Equal(t, 12, domain.DaysInCurrentStage(order, riskNow))
	})
}

func TestComputeRiskSignal(t *testing.T) {
	policy := domain.DefaultDwellPolicy

	t.Run("terminal orders never carry risk", func(t *testing.T) {
		order := orderWithFeed(domain.StageCustomerPickup, riskNow.AddDate(0, 0, -60),
			entryAt(riskNow.AddDate(0, 0, -60), 0),
		)
		assert.Equal(t, domain.RiskNone, domain.ComputeRiskSignal(order, policy, 7, riskNow))
	})

	t.Run("stale at exactly the threshold", func(t *testing.T) {
		order := orderWithFeed(domain.StageEnquiry, riskNow.AddDate(0, 0, -7),
			entryAt(riskNow.AddDate(0, 0, -7), 0),
		)
		assert.Equal(t, domain.RiskStale, domain.ComputeRiskSignal(order, policy, 7, riskNow))
	})

	t.Run("not stale one day under the threshold", func(t *testing.T) {
		order := orderWithFeed(domain.StageCADDesign, riskNow.AddDate(0, 0, -6),
			entryAt(riskNow.AddDate(0, 0, -6), 0),
		)
		assert.Equal(t, domain.RiskNone, domain.ComputeRiskSignal(order, policy, 7, riskNow))
	})

	t.Run("stale outranks stuck", func(t *testing.T) {
		// 10 days without activity in a 3-day stage: both conditions hold
		order := orderWithFeed(domain.StageEnquiry, riskNow.AddDate(0, 0, -10),
			entryAt(riskNow.AddDate(0, 0, -10), 0),
		)
		assert.Equal(t, domain.RiskStale, domain.ComputeRiskSignal(order, policy, 7, riskNow))
	})

	t.Run("stuck requires strictly exceeding the dwell threshold", func(t *testing.T) {
		// Enquiry dwell is 3 days. Recent activity keeps stale out of play.
		atThreshold := orderWithFeed(domain.StageEnquiry, riskNow.AddDate(0, 0, -3),
			entryAt(riskNow.AddDate(0, 0, -1), 0),
		)
		assert.Equal(t, domain.RiskNone, domain.ComputeRiskSignal(atThreshold, policy, 7, riskNow))

		pastThreshold := orderWithFeed(domain.StageEnquiry, riskNow.AddDate(0, 0, -4),
			entryAt(riskNow.AddDate(0, 0, -1), 0),
		)
		assert.Equal(t, domain.RiskStuck, domain.ComputeRiskSignal(pastThreshold, policy, 7, riskNow))
	})

	t.Run("stuck anchors on the entry into the current stage", func(t *testing.T) {
		// Old order, but it entered Building only 2 days ago (dwell 7)
		order := orderWithFeed(domain.StageBuilding, riskNow.AddDate(0, 0, -30),
			stageChangeAt(riskNow.AddDate(0, 0, -2), 5, domain.StageBuilding),
		)
		assert.Equal(t, domain.RiskNone, domain.ComputeRiskSignal(order, policy, 7, riskNow))
	})

	t.Run("empty feed still evaluates stuck from creation", func(t *testing.T) {
		order := orderWithFeed(domain.StageEstimation, riskNow.AddDate(0, 0, -8))
		assert.Equal(t, domain.RiskStuck, domain.ComputeRiskSignal(order, policy, 7, riskNow))
	})

	t.Run("non-positive stale threshold falls back to the default", func(t *testing.T) {
		order := orderWithFeed(domain.StageBuilding, riskNow.AddDate(0, 0, -8),
			entryAt(riskNow.AddDate(0, 0, -8), 0),
		)
		assert.Equal(t, domain.RiskStale, domain.ComputeRiskSignal(order, policy, 0, riskNow))
	})
}
