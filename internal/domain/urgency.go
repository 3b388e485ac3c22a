package domain

import (
	"fmt"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/timeutil"
)

// UrgencyLevel classifies delivery-date pressure, independent of the
// pipeline stage. Derived at read time, never persisted.
type UrgencyLevel string

const (
	UrgencyLevelOverdue UrgencyLevel = "overdue"
	UrgencyLevelDueSoon UrgencyLevel = "due-soon"
	UrgencyLevelOnTrack UrgencyLevel = "on-track"
	UrgencyLevelNone    UrgencyLevel = "none"
)

// DueSoonWindowDays is the default inclusive boundary for due-soon: a
// delivery exactly this many days out is still due-soon.
const DueSoonWindowDays = 7

// DaysRemaining returns the calendar days until the delivery date,
// negative when overdue. ok is false when no delivery date is set.
func DaysRemaining(order *Order, now time.Time) (int, bool) {
	if order.DeliveryDate == nil {
		return 0, false
	}
	return timeutil.DaysBetween(now, *order.DeliveryDate), true
}

// UrgencyFor classifies delivery pressure against the configured
// due-soon window (non-positive falls back to the default). The
// classifier and the label formatter both derive from the same
// DaysRemaining value so a badge and its text can never drift apart.
func UrgencyFor(order *Order, dueSoonDays int, now time.Time) UrgencyLevel {
	days, ok := DaysRemaining(order, now)
	if !ok {
		return UrgencyLevelNone
	}
	return classifyUrgency(days, dueSoonDays)
}

func classifyUrgency(daysRemaining, dueSoonDays int) UrgencyLevel {
	if dueSoonDays <= 0 {
		dueSoonDays = DueSoonWindowDays
	}
	switch {
	case daysRemaining < 0:
		return UrgencyLevelOverdue
	case daysRemaining <= dueSoonDays:
		return UrgencyLevelDueSoon
	default:
		return UrgencyLevelOnTrack
	}
}

// FormatDaysRemaining renders the delivery countdown for display:
// "3d overdue", "Due today", "Due tomorrow", "12d remaining", or
// "No date".
func FormatDaysRemaining(order *Order, now time.Time) string {
	days, ok := DaysRemaining(order, now)
	if !ok {
		return "No date"
	}
	switch {
	case days < 0:
		return fmt.Sprintf("%dd overdue", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("%dd remaining", days)
	}
}
