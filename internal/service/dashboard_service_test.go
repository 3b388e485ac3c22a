package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/repository"
	"github.com/orna-jewels/pipeline-api/internal/service"
	"github.com/orna-jewels/pipeline-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func createDashboardService(t *testing.T, db *gorm.DB) *service.DashboardService {
	return service.NewDashboardService(repository.NewOrderRepository(db),
		domain.DefaultDwellPolicy, domain.StaleThresholdDays, domain.DueSoonWindowDays, zap.NewNop())
}

func TestDashboardService_GetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createDashboardService(t, db)
	ctx := context.Background()

	now := time.Now().UTC()

	// healthy order with recent activity
	healthy := testutil.CreateTestOrder(t, db, "Priya Sharma", domain.StageBuilding)
	testutil.AppendTestEntry(t, db, healthy.ID, domain.EntryTypeOrderCreated, now.AddDate(0, 0, -1), 0)

	// stale order, quiet for 10 days
	stale := testutil.CreateTestOrder(t, db, "Anita Desai", domain.StageCertification)
	testutil.AppendTestEntry(t, db, stale.ID, domain.EntryTypeOrderCreated, now.AddDate(0, 0, -10), 0)
	require.NoError(t, db.Model(stale).Update("created_at", now.AddDate(0, 0, -10)).Error)

	// picked up long ago, must not appear anywhere in the active stats
	done := testutil.CreateTestOrder(t, db, "Rahul Verma", domain.StageCustomerPickup)
	testutil.AppendTestEntry(t, db, done.ID, domain.EntryTypeOrderCreated, now.AddDate(0, 0, -40), 0)

	enquiry := testutil.CreateTestEnquiry(t, db, "Kiran Rao")
	testutil.AppendTestEntry(t, db, enquiry.ID, domain.EntryTypeOrderCreated, now, 0)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	t.Run("totals split orders and enquiries", func(t *testing.T) {
		assert.Equal(t, int64(3), summary.TotalOrders)
		assert.Equal(t, int64(1), summary.TotalEnquiries)
	})

	t.Run("every stage is reported in pipeline order", func(t *testing.T) {
		require.Len(t, summary.StageCounts, len(domain.Stages))
		assert.Equal(t, string(domain.StageEnquiry), summary.StageCounts[0].Stage)
		assert.Equal(t, string(domain.StageCustomerPickup), summary.StageCounts[len(domain.Stages)-1].Stage)

		byStage := make(map[string]int)
		for _, sc := range summary.StageCounts {
			byStage[sc.Stage] = sc.Count
		}
		assert.Equal(t, 1, byStage[string(domain.StageBuilding)])
		assert.Equal(t, 1, byStage[string(domain.StageCustomerPickup)])
		assert.Equal(t, 0, byStage[string(domain.StageEstimation)])
	})

	t.Run("risk counts cover the active set only", func(t *testing.T) {
		total := 0
		for _, c := range summary.RiskCounts {
			total += c
		}
		assert.Equal(t, 3, total, "picked-up orders are excluded")
		assert.Equal(t, 1, summary.RiskCounts[string(domain.RiskStale)])
	})

	t.Run("the focus list flags the stale order", func(t *testing.T) {
		require.NotEmpty(t, summary.TodaysFocus)
		found := false
		for _, f := range summary.TodaysFocus {
			if f.CustomerName == "Anita Desai" {
				found = true
				assert.Equal(t, string(domain.RiskStale), f.RiskSignal)
				assert.Equal(t, "no activity recorded recently", f.Reason)
			}
			assert.NotEqual(t, "Rahul Verma", f.CustomerName)
		}
		assert.True(t, found)
	})
}

func TestDashboardService_GetSummary_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createDashboardService(t, db)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Len(t, summary.StageCounts, len(domain.Stages))
	assert.Empty(t, summary.TodaysFocus)
	assert.Empty(t, summary.UrgencyCounts)
}
