package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/repository"
	"github.com/orna-jewels/pipeline-api/internal/service"
	"github.com/orna-jewels/pipeline-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNumberSequenceService_GenerateOrderNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), zap.NewNop())
	ctx := context.Background()
	year := time.Now().Year()

	first, err := svc.GenerateOrderNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORD-%d-001", year), first)

	second, err := svc.GenerateOrderNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORD-%d-002", year), second)
}

func TestNumberSequenceService_GetCurrentSequence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), zap.NewNop())
	ctx := context.Background()
	year := time.Now().Year()

	t.Run("zero before anything is issued", func(t *testing.T) {
		seq, err := svc.GetCurrentSequence(ctx, year)
		require.NoError(t, err)
		assert.Equal(t, 0, seq)
	})

	t.Run("reads back the last issued number without advancing", func(t *testing.T) {
		_, err := svc.GenerateOrderNumber(ctx)
		require.NoError(t, err)

		seq, err := svc.GetCurrentSequence(ctx, year)
		require.NoError(t, err)
		assert.Equal(t, 1, seq)

		seq, err = svc.GetCurrentSequence(ctx, year)
		require.NoError(t, err)
		assert.Equal(t, 1, seq)
	})

	t.Run("other years are independent", func(t *testing.T) {
		seq, err := svc.GetCurrentSequence(ctx, year-1)
		require.NoError(t, err)
		assert.Equal(t, 0, seq)
	})
}
