package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with the full schema
// migrated. Each call returns an isolated database, so tests never share
// state.
func SetupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "Failed to open in-memory test database")

	err = db.AutoMigrate(
		&domain.Order{},
		&domain.ActivityEntry{},
		&domain.NumberSequence{},
	)
	require.NoError(t, err)

	return db
}

// CreateTestEnquiry creates an enquiry-stage order for the given customer
// and returns it. Associations are omitted so the seeded activity entry can
// be controlled by the test.
func CreateTestEnquiry(t *testing.T, db *gorm.DB, customerName string) *domain.Order {
	order := &domain.Order{
		Type:            domain.RecordTypeEnquiry,
		CustomerName:    customerName,
		SalespersonName: "Meera",
		Category:        domain.CategoryRing,
		MetalType:       domain.MetalGold,
		MetalPurity:     domain.Purity18K,
		Certification:   domain.CertificationNone,
		CurrentStage:    domain.StageEnquiry,
		ShareableToken:  uniqueToken(customerName),
		LastUpdatedAt:   time.Now().UTC(),
	}
	err := db.Omit(clause.Associations).Create(order).Error
	require.NoError(t, err)
	return order
}

// CreateTestOrder creates a confirmed order in the given stage and returns it.
func CreateTestOrder(t *testing.T, db *gorm.DB, customerName string, stage domain.Stage) *domain.Order {
	order := &domain.Order{
		Type:            domain.RecordTypeOrder,
		OrderNumber:     fmt.Sprintf("ORD-%d-%03d", time.Now().Year(), time.Now().UnixNano()%1000),
		CustomerName:    customerName,
		SalespersonName: "Meera",
		VendorName:      "Kalyan Works",
		Category:        domain.CategoryNecklace,
		MetalType:       domain.MetalGold,
		MetalPurity:     domain.Purity22K,
		Certification:   domain.CertificationNone,
		CurrentStage:    stage,
		ShareableToken:  uniqueToken(customerName),
		LastUpdatedAt:   time.Now().UTC(),
	}
	err := db.Omit(clause.Associations).Create(order).Error
	require.NoError(t, err)
	return order
}

// AppendTestEntry inserts an activity entry directly, bypassing the service
// layer, so tests can construct feeds with specific timestamps.
func AppendTestEntry(t *testing.T, db *gorm.DB, orderID uuid.UUID, entryType domain.ActivityEntryType, ts time.Time, position int) *domain.ActivityEntry {
	role := domain.ActorRoleSales
	entry := &domain.ActivityEntry{
		OrderID:   orderID,
		PostedBy:  "Meera",
		ActorRole: &role,
		Timestamp: ts,
		Position:  position,
		Type:      entryType,
	}
	err := db.Create(entry).Error
	require.NoError(t, err)
	return entry
}

func uniqueToken(name string) string {
	return fmt.Sprintf("%s-test-%d", name, time.Now().UnixNano())
}
