package domain_test

import (
	"testing"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

var urgencyNow = time.Date(2026, 6, 20, 9, 30, 0, 0, time.UTC)

func orderDueIn(days int) *domain.Order {
	due := urgencyNow.AddDate(0, 0, days)
	return &domain.Order{DeliveryDate: &due}
}

func TestDaysRemaining(t *testing.T) {
	t.Run("no delivery date yields no value", func(t *testing.T) {
		_, ok := domain.DaysRemaining(&domain.Order{}, urgencyNow)
		assert.False(t, ok)
	})

	t.Run("counts calendar days regardless of time of day", func(t *testing.T) {
		due := time.Date(2026, 6, 23, 0, 0, 0, 0, time.UTC)
		order := &domain.Order{DeliveryDate: &due}
		days, ok := domain.DaysRemaining(order, urgencyNow)
		assert.True(t, ok)
		assert.Equal(t, 3, days)
	})

	t.Run("negative when overdue", func(t *testing.T) {
		days, ok := domain.DaysRemaining(orderDueIn(-2), urgencyNow)
		assert.True(t, ok)
		assert.Equal(t, -2, days)
	})
}

func TestUrgencyFor(t *testing.T) {
	tests := []struct {
		name  string
		order *domain.Order
		want  domain.UrgencyLevel
	}{
		{"no delivery date", &domain.Order{}, domain.UrgencyLevelNone},
		{"one day past", orderDueIn(-1), domain.UrgencyLevelOverdue},
		{"due today", orderDueIn(0), domain.UrgencyLevelDueSoon},
		{"due in seven days is still due soon", orderDueIn(7), domain.UrgencyLevelDueSoon},
		{"due in eight days is on track", orderDueIn(8), domain.UrgencyLevelOnTrack},
		{"far out", orderDueIn(45), domain.UrgencyLevelOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.UrgencyFor(tt.order, domain.DueSoonWindowDays, urgencyNow))
		})
	}
}

func TestUrgencyForCustomWindow(t *testing.T) {
	t.Run("narrow window shrinks the due-soon band", func(t *testing.T) {
		assert.Equal(t, domain.UrgencyLevelDueSoon, domain.UrgencyFor(orderDueIn(3), 3, urgencyNow))
		assert.Equal(t, domain.UrgencyLevelOnTrack, domain.UrgencyFor(orderDueIn(4), 3, urgencyNow))
	})

	t.Run("non-positive window falls back to the default", func(t *testing.T) {
		assert.Equal(t, domain.UrgencyLevelDueSoon, domain.UrgencyFor(orderDueIn(7), 0, urgencyNow))
		assert.Equal(t, domain.UrgencyLevelOnTrack, domain.UrgencyFor(orderDueIn(8), -1, urgencyNow))
	})
}

func TestFormatDaysRemaining(t *testing.T) {
	tests := []struct {
		name  string
		order *domain.Order
		want  string
	}{
		{"no date", &domain.Order{}, "No date"},
		{"overdue", orderDueIn(-3), "3d overdue"},
		{"due today", orderDueIn(0), "Due today"},
		{"due tomorrow", orderDueIn(1), "Due tomorrow"},
		{"remaining", orderDueIn(12), "12d remaining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatDaysRemaining(tt.order, urgencyNow))
		})
	}
}
