package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/repository"
	"github.com/orna-jewels/pipeline-api/internal/service"
	"github.com/orna-jewels/pipeline-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func createOrderService(t *testing.T, db *gorm.DB) *service.OrderService {
	logger := zap.NewNop()
	orderRepo := repository.NewOrderRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	numberSvc := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), logger)

	return service.NewOrderService(orderRepo, activityRepo, numberSvc,
		domain.DefaultDwellPolicy, domain.StaleThresholdDays, domain.DueSoonWindowDays, logger)
}

func enquiryRequest(customerName string) *domain.CreateEnquiryRequest {
	return &domain.CreateEnquiryRequest{
		CustomerName:    customerName,
		SalespersonName: "Meera",
		Category:        domain.CategoryRing,
		MetalType:       domain.MetalGold,
		MetalPurity:     domain.Purity18K,
	}
}

func TestOrderService_CreateEnquiry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createOrderService(t, db)
	ctx := context.Background()

	t.Run("creates an enquiry in the Enquiry stage", func(t *testing.T) {
		dto, err := svc.CreateEnquiry(ctx, enquiryRequest("Priya Sharma"))
		require.NoError(t, err)

		assert.Equal(t, string(domain.RecordTypeEnquiry), dto.Type)
		assert.Equal(t, string(domain.StageEnquiry), dto.CurrentStage)
		assert.Empty(t, dto.OrderNumber)
		assert.Empty(t, dto.VendorName)
	})

	t.Run("seeds the ledger with an order_created entry", func(t *testing.T) {
		dto, err := svc.CreateEnquiry(ctx, enquiryRequest("Anita Desai"))
		require.NoError(t, err)

		require.Len(t, dto.ActivityFeed, 1)
		entry := dto.ActivityFeed[0]
		assert.Equal(t, string(domain.EntryTypeOrderCreated), entry.Type)
		assert.Equal(t, "Meera", entry.PostedBy)
		// the seed entry shares the record's creation time, so a fresh
		// enquiry is never stale
		assert.Equal(t, dto.CreatedAt, entry.Timestamp)
		require.NotNil(t, dto.DaysSinceLastActivity)
		assert.Equal(t, 0, *dto.DaysSinceLastActivity)
	})

	t.Run("generates a readable shareable token", func(t *testing.T) {
		dto, err := svc.CreateEnquiry(ctx, enquiryRequest("Rahul Verma"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(dto.ShareableToken, "rahul-verma-ring-"),
			"got token %s", dto.ShareableToken)
	})

	t.Run("tokens are unique per record", func(t *testing.T) {
		first, err := svc.CreateEnquiry(ctx, enquiryRequest("Kiran Rao"))
		require.NoError(t, err)
		second, err := svc.CreateEnquiry(ctx, enquiryRequest("Kiran Rao"))
		require.NoError(t, err)

		assert.NotEqual(t, first.ShareableToken, second.ShareableToken)
	})

	t.Run("parses the delivery date", func(t *testing.T) {
		req := enquiryRequest("Deepa Nair")
		req.DeliveryDate = "2026-09-15"

		dto, err := svc.CreateEnquiry(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", dto.DeliveryDate)
	})

	t.Run("rejects a malformed delivery date", func(t *testing.T) {
		req := enquiryRequest("Deepa Nair")
		req.DeliveryDate = "15/09/2026"

		_, err := svc.CreateEnquiry(ctx, req)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("defaults certification to None", func(t *testing.T) {
		dto, err := svc.CreateEnquiry(ctx, enquiryRequest("Sunil Shetty"))
		require.NoError(t, err)
		assert.Equal(t, string(domain.CertificationNone), dto.Certification)
	})

	t.Run("hides the CAD Design column when not required", func(t *testing.T) {
		dto, err := svc.CreateEnquiry(ctx, enquiryRequest("Maya Iyer"))
		require.NoError(t, err)
		assert.NotContains(t, dto.VisibleStages, string(domain.StageCADDesign))
	})
}

func TestOrderService_CreateOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createOrderService(t, db)
	ctx := context.Background()

	req := &domain.CreateOrderRequest{
		CreateEnquiryRequest: *enquiryRequest("Vikram Malhotra"),
		VendorName:           "Kalyan Works",
	}

	dto, err := svc.CreateOrder(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.RecordTypeOrder), dto.Type)
	assert.Equal(t, string(domain.StageOrderConfirmed), dto.CurrentStage)
	assert.Equal(t, "Kalyan Works", dto.VendorName)
	assert.Equal(t, fmt.Sprintf("ORD-%d-001", time.Now().Year()), dto.OrderNumber)
	require.Len(t, dto.ActivityFeed, 1)
	assert.Equal(t, string(domain.EntryTypeOrderCreated), dto.ActivityFeed[0].Type)
}

func TestOrderService_Confirm(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createOrderService(t, db)
	ctx := context.Background()

	t.Run("converts an enquiry into an order", func(t *testing.T) {
		enquiry, err := svc.CreateEnquiry(ctx, enquiryRequest("Priya Sharma"))
		require.NoError(t, err)
		id := uuid.MustParse(enquiry.ID)

		dto, err := svc.Confirm(ctx, id, &domain.ConfirmOrderRequest{
			VendorName: "Kalyan Works",
			PostedBy:   "Meera",
			Note:       "Advance received",
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.RecordTypeOrder), dto.Type)
		assert.Equal(t, string(domain.StageOrderConfirmed), dto.CurrentStage)
		assert.Equal(t, "Kalyan Works", dto.VendorName)
		assert.NotEmpty(t, dto.OrderNumber)

		// creation entry plus exactly one stage_change recording the move
		require.Len(t, dto.ActivityFeed, 2)
		change := dto.ActivityFeed[1]
		assert.Equal(t, string(domain.EntryTypeStageChange), change.Type)
		assert.Equal(t, string(domain.StageEnquiry), change.PreviousStage)
		assert.Equal(t, string(domain.StageOrderConfirmed), change.NewStage)
		assert.Equal(t, "Advance received", change.Note)
	})

	t.Run("order numbers increment within the year", func(t *testing.T) {
		first, err := svc.CreateEnquiry(ctx, enquiryRequest("Anita Desai"))
		require.NoError(t, err)
		second, err := svc.CreateEnquiry(ctx, enquiryRequest("Rahul Verma"))
		require.NoError(t, err)

		a, err := svc.Confirm(ctx, uuid.MustParse(first.ID), &domain.ConfirmOrderRequest{VendorName: "Kalyan Works", PostedBy: "Meera"})
		require.NoError(t, err)
		b, err := svc.Confirm(ctx, uuid.MustParse(second.ID), &domain.ConfirmOrderRequest{VendorName: "Kalyan Works", PostedBy: "Meera"})
		require.NoError(t, err)

		assert.NotEqual(t, a.OrderNumber, b.OrderNumber)
	})

	t.Run("confirming an order twice fails", func(t *testing.T) {
		enquiry, err := svc.CreateEnquiry(ctx, enquiryRequest("Kiran Rao"))
		require.NoError(t, err)
		id := uuid.MustParse(enquiry.ID)

		_, err = svc.Confirm(ctx, id, &domain.ConfirmOrderRequest{VendorName: "Kalyan Works", PostedBy: "Meera"})
		require.NoError(t, err)

		_, err = svc.Confirm(ctx, id, &domain.ConfirmOrderRequest{VendorName: "Tanishq Atelier", PostedBy: "Meera"})
		assert.ErrorIs(t, err, service.ErrAlreadyConfirmed)
	})

	t.Run("an enquiry already moved to Order Confirmed gets a note instead of a transition", func(t *testing.T) {
		enquiry, err := svc.CreateEnquiry(ctx, enquiryRequest("Deepa Nair"))
		require.NoError(t, err)
		id := uuid.MustParse(enquiry.ID)

		activitySvc := createActivityService(t, db)
		_, err = activitySvc.ChangeStage(ctx, id, &domain.ChangeStageRequest{
			NewStage: domain.StageOrderConfirmed,
			PostedBy: "Meera",
		})
		require.NoError(t, err)

		dto, err := svc.Confirm(ctx, id, &domain.ConfirmOrderRequest{
			VendorName: "Kalyan Works",
			PostedBy:   "Meera",
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.RecordTypeOrder), dto.Type)
		require.Len(t, dto.ActivityFeed, 3)
		last := dto.ActivityFeed[2]
		assert.Equal(t, string(domain.EntryTypeNote), last.Type)
		assert.Empty(t, last.NewStage)
		assert.Contains(t, last.Note, dto.OrderNumber)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		_, err := svc.Confirm(ctx, uuid.New(), &domain.ConfirmOrderRequest{VendorName: "Kalyan Works", PostedBy: "Meera"})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestOrderService_GetByToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createOrderService(t, db)
	ctx := context.Background()

	created, err := svc.CreateEnquiry(ctx, enquiryRequest("Priya Sharma"))
	require.NoError(t, err)

	t.Run("resolves the shareable token", func(t *testing.T) {
		dto, err := svc.GetByToken(ctx, created.ShareableToken)
		require.NoError(t, err)
		assert.Equal(t, created.ID, dto.ID)
		require.Len(t, dto.ActivityFeed, 1)
	})

	t.Run("unknown token fails with not found", func(t *testing.T) {
		_, err := svc.GetByToken(ctx, "no-such-token-0000")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := createOrderService(t, db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateEnquiry(ctx, enquiryRequest(fmt.Sprintf("Customer %d", i)))
		require.NoError(t, err)
	}

	t.Run("paginates", func(t *testing.T) {
		page, err := svc.List(ctx, 1, 2, nil, repository.OrderSortByCreatedDesc)
		require.NoError(t, err)

		assert.Equal(t, int64(3), page.Total)
		assert.Equal(t, 2, page.TotalPages)
		dtos, ok := page.Data.([]domain.OrderDTO)
		require.True(t, ok)
		assert.Len(t, dtos, 2)
	})

	t.Run("clamps invalid paging input", func(t *testing.T) {
		page, err := svc.List(ctx, 0, -5, nil, repository.OrderSortByCreatedDesc)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.PageSize)
	})
}
