package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/mapper"
	"github.com/stretchr/testify/assert"
)

func TestToOrderDTO_TimestampsAreUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	createdAt := time.Date(2026, 6, 20, 15, 30, 0, 0, ist)
	now := time.Date(2026, 6, 21, 9, 0, 0, 0, time.UTC)

	order := &domain.Order{
		ID:            uuid.New(),
		Type:          domain.RecordTypeEnquiry,
		CurrentStage:  domain.StageEnquiry,
		CreatedAt:     createdAt,
		LastUpdatedAt: createdAt,
	}

	dto := mapper.ToOrderDTO(order, domain.DefaultDwellPolicy, domain.StaleThresholdDays, domain.DueSoonWindowDays, now)

	// wall-clock offsets render as the same UTC instant
	assert.Equal(t, "2026-06-20T10:00:00Z", dto.CreatedAt)
	assert.Equal(t, "2026-06-20T10:00:00Z", dto.LastUpdatedAt)
}

func TestToActivityEntryDTO_TimestampIsUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	entry := &domain.ActivityEntry{
		ID:        uuid.New(),
		OrderID:   uuid.New(),
		PostedBy:  "Meera",
		Type:      domain.EntryTypeNote,
		Timestamp: time.Date(2026, 6, 20, 15, 30, 0, 0, ist),
	}

	dto := mapper.ToActivityEntryDTO(entry, time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-06-20T10:00:00Z", dto.Timestamp)
}
