package domain

import (
	"time"

	"github.com/orna-jewels/pipeline-api/internal/timeutil"
)

// RiskSignal flags orders needing attention. Derived at read time, never
// persisted: two calls against different clocks may legitimately
// disagree.
type RiskSignal string

const (
	RiskNone  RiskSignal = "none"
	RiskStale RiskSignal = "stale"
	RiskStuck RiskSignal = "stuck"
)

// StaleThresholdDays is the default number of days without any ledger
// activity before an order is flagged stale.
const StaleThresholdDays = 7

// DaysSinceLastActivity returns the calendar days between now and the
// chronologically latest ledger entry. ok is false when the feed is
// empty (no signal derivable).
func DaysSinceLastActivity(order *Order, now time.Time) (int, bool) {
	latest, ok := latestEntry(order)
	if !ok {
		return 0, false
	}
	return timeutil.DaysBetween(latest.Timestamp, now), true
}

// DaysInCurrentStage returns how many calendar days the order has
// occupied its current stage. It anchors on the most recent stage_change
// entry whose NewStage equals the current stage; an order that never
// explicitly transitioned (still in its creation stage) anchors on
// CreatedAt.
func DaysInCurrentStage(order *Order, now time.Time) int {
	var entered *ActivityEntry
	for i := range order.ActivityFeed {
		e := &order.ActivityFeed[i]
		if e.Type != EntryTypeStageChange || e.NewStage == nil || *e.NewStage != order.CurrentStage {
			continue
		}
		if entered == nil || e.Timestamp.After(entered.Timestamp) ||
			(e.Timestamp.Equal(entered.Timestamp) && e.Position > entered.Position) {
			entered = e
		}
	}
	anchor := order.CreatedAt
	if entered != nil {
		anchor = entered.Timestamp
	}
	return timeutil.DaysBetween(anchor, now)
}

// ComputeRiskSignal classifies a non-terminal order as stale, stuck, or
// none. Stale takes priority over stuck; stuck requires strictly
// exceeding the dwell threshold (reaching it is not stuck).
func ComputeRiskSignal(order *Order, policy DwellPolicy, staleDays int, now time.Time) RiskSignal {
	if order.CurrentStage.IsTerminal() {
		return RiskNone
	}

	if staleDays <= 0 {
		staleDays = StaleThresholdDays
	}
	if days, ok := DaysSinceLastActivity(order, now); ok && days >= staleDays {
		return RiskStale
	}

	if expected, ok := policy.ExpectedDays(order.CurrentStage); ok {
		if DaysInCurrentStage(order, now) > expected {
			return RiskStuck
		}
	}

	return RiskNone
}

// latestEntry returns the chronologically latest ledger entry, breaking
// timestamp ties by insertion position.
func latestEntry(order *Order) (*ActivityEntry, bool) {
	if len(order.ActivityFeed) == 0 {
		return nil, false
	}
	latest := &order.ActivityFeed[0]
	for i := 1; i < len(order.ActivityFeed); i++ {
		e := &order.ActivityFeed[i]
		if e.Timestamp.After(latest.Timestamp) ||
			(e.Timestamp.Equal(latest.Timestamp) && e.Position > latest.Position) {
			latest = e
		}
	}
	return latest, true
}
