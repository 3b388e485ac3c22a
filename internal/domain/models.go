package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordType distinguishes pre-sale enquiries from confirmed orders
type RecordType string

const (
	RecordTypeEnquiry RecordType = "enquiry"
	RecordTypeOrder   RecordType = "order"
)

// IsValid checks if the RecordType is a valid enum value
func (rt RecordType) IsValid() bool {
	switch rt {
	case RecordTypeEnquiry, RecordTypeOrder:
		return true
	}
	return false
}

// JewelleryCategory represents the product category of an order
type JewelleryCategory string

const (
	CategoryRing     JewelleryCategory = "Ring"
	CategoryNecklace JewelleryCategory = "Necklace"
	CategoryBracelet JewelleryCategory = "Bracelet"
	CategoryEarrings JewelleryCategory = "Earrings"
	CategoryBangle   JewelleryCategory = "Bangle"
	CategoryPendant  JewelleryCategory = "Pendant"
	CategoryChain    JewelleryCategory = "Chain"
	CategoryBrooch   JewelleryCategory = "Brooch"
	CategoryOther    JewelleryCategory = "Other"
)

// MetalType represents the base metal of a piece
type MetalType string

const (
	MetalGold      MetalType = "Gold"
	MetalSilver    MetalType = "Silver"
	MetalPlatinum  MetalType = "Platinum"
	MetalRoseGold  MetalType = "Rose Gold"
	MetalWhiteGold MetalType = "White Gold"
)

// MetalPurity represents the purity grade of the metal
type MetalPurity string

const (
	Purity18K      MetalPurity = "18K"
	Purity22K      MetalPurity = "22K"
	Purity24K      MetalPurity = "24K"
	PuritySterling MetalPurity = "925 Sterling"
	PurityPlatinum MetalPurity = "950 Platinum"
	PurityOther    MetalPurity = "Other"
)

// CertificationType represents the certification requested for a piece
type CertificationType string

const (
	CertificationJewellery CertificationType = "Jewellery"
	CertificationGIA       CertificationType = "GIA"
	CertificationIGI       CertificationType = "IGI"
	CertificationSGL       CertificationType = "SGL"
	CertificationNone      CertificationType = "None"
)

// ActorRole identifies the party posting an activity entry
type ActorRole string

const (
	ActorRoleSales    ActorRole = "sales"
	ActorRoleVendor   ActorRole = "vendor"
	ActorRoleOwner    ActorRole = "owner"
	ActorRoleCustomer ActorRole = "customer"
)

// IsValid checks if the ActorRole is a valid enum value
func (ar ActorRole) IsValid() bool {
	switch ar {
	case ActorRoleSales, ActorRoleVendor, ActorRoleOwner, ActorRoleCustomer:
		return true
	}
	return false
}

// ActivityEntryType represents the kind of an activity ledger entry
type ActivityEntryType string

const (
	EntryTypeOrderCreated ActivityEntryType = "order_created"
	EntryTypeStageChange  ActivityEntryType = "stage_change"
	EntryTypeNote         ActivityEntryType = "note"
	EntryTypeFileUpload   ActivityEntryType = "file_upload"
)

// IsValid checks if the ActivityEntryType is a valid enum value
func (et ActivityEntryType) IsValid() bool {
	switch et {
	case EntryTypeOrderCreated, EntryTypeStageChange, EntryTypeNote, EntryTypeFileUpload:
		return true
	}
	return false
}

// FileType classifies an attached file's format
type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypePDF   FileType = "pdf"
	FileTypeOther FileType = "other"
)

// Order represents an enquiry or confirmed order moving through the
// production pipeline. It is the aggregate root: the activity feed is
// owned exclusively by the order and is append-only.
type Order struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	Type           RecordType `gorm:"type:varchar(20);not null;index"`
	OrderNumber    string     `gorm:"type:varchar(50);column:order_number;index"`
	ShareableToken string     `gorm:"type:varchar(120);not null;uniqueIndex;column:shareable_token"`

	// Customer
	CustomerName    string `gorm:"type:varchar(200);not null;index;column:customer_name"`
	CustomerPhone   string `gorm:"type:varchar(50);column:customer_phone"`
	CustomerEmail   string `gorm:"type:varchar(255);column:customer_email"`
	CustomerAddress string `gorm:"type:varchar(500);column:customer_address"`

	// Staff
	SalespersonName string `gorm:"type:varchar(200);not null;column:salesperson_name"`
	VendorName      string `gorm:"type:varchar(200);column:vendor_name"`

	// Product
	Category    JewelleryCategory `gorm:"type:varchar(50);not null;index"`
	MetalType   MetalType         `gorm:"type:varchar(50);not null;column:metal_type"`
	MetalPurity MetalPurity       `gorm:"type:varchar(50);not null;column:metal_purity"`
	MetalWeight *float64          `gorm:"type:decimal(10,3);column:metal_weight"`
	Polish      string            `gorm:"type:varchar(100)"`

	// Stones
	StoneDescription   string   `gorm:"type:varchar(500);column:stone_description"`
	StoneQuality       string   `gorm:"type:varchar(100);column:stone_quality"`
	StoneCut           string   `gorm:"type:varchar(100);column:stone_cut"`
	StoneCaratEstimate *float64 `gorm:"type:decimal(10,3);column:stone_carat_estimate"`

	// Sizing
	RingSize    string `gorm:"type:varchar(20);column:ring_size"`
	ChainLength string `gorm:"type:varchar(20);column:chain_length"`
	BangleSize  string `gorm:"type:varchar(20);column:bangle_size"`

	// Order specifics
	Certification     CertificationType `gorm:"type:varchar(50);not null;default:'None'"`
	CADDesignRequired bool              `gorm:"not null;default:false;column:cad_design_required"`
	AdvancePaid       *float64          `gorm:"type:decimal(15,2);column:advance_paid"`
	TotalEstimate     *float64          `gorm:"type:decimal(15,2);column:total_estimate"`
	DeliveryDate      *time.Time        `gorm:"type:date;column:delivery_date;index"`

	// Pipeline
	CurrentStage  Stage     `gorm:"type:varchar(50);not null;index;column:current_stage"`
	CreatedAt     time.Time `gorm:"not null"`
	LastUpdatedAt time.Time `gorm:"not null;column:last_updated_at;index"`

	// Activity: append-only ledger, ordered by (timestamp, position)
	ActivityFeed []ActivityEntry `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// Extra
	SpecialInstructions string `gorm:"type:text;column:special_instructions"`
	BudgetRange         string `gorm:"type:varchar(100);column:budget_range"`
	Occasion            string `gorm:"type:varchar(100)"`
	TimelineNotes       string `gorm:"type:text;column:timeline_notes"`
}

// BeforeCreate assigns the ID application-side so the schema works on
// both postgres and the sqlite test database.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// IsEnquiry reports whether the record is still a pre-sale enquiry
func (o *Order) IsEnquiry() bool {
	return o.Type == RecordTypeEnquiry
}

// ActivityEntry is an immutable fact on an order's timeline. Entries are
// created once and never mutated or deleted. Position preserves insertion
// order as the tiebreak for entries sharing a timestamp.
type ActivityEntry struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID         `gorm:"type:uuid;not null;index;column:order_id"`
	PostedBy  string            `gorm:"type:varchar(200);not null;column:posted_by"`
	ActorRole *ActorRole        `gorm:"type:varchar(20);column:actor_role"`
	Timestamp time.Time         `gorm:"not null;index"`
	Position  int               `gorm:"not null;default:0"`
	Type      ActivityEntryType `gorm:"type:varchar(30);not null;index"`

	// note entries: required; stage_change entries: optional inline comment
	Note string `gorm:"type:text"`

	// stage_change entries only
	NewStage      *Stage `gorm:"type:varchar(50);column:new_stage"`
	PreviousStage *Stage `gorm:"type:varchar(50);column:previous_stage"`

	// file_upload entries only (metadata; storage is out of scope)
	FileURL  string   `gorm:"type:varchar(500);column:file_url"`
	Filename string   `gorm:"type:varchar(255)"`
	FileType FileType `gorm:"type:varchar(20);column:file_type"`
}

// TableName overrides the default table name
func (ActivityEntry) TableName() string {
	return "activity_entries"
}

// BeforeCreate assigns the ID application-side
func (e *ActivityEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NumberSequence tracks the last issued order number per year. Order
// numbers are assigned when an enquiry is confirmed, formatted as
// ORD-YYYY-NNN.
type NumberSequence struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Year         int       `gorm:"not null;uniqueIndex"`
	LastSequence int       `gorm:"not null;default:0;column:last_sequence"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName overrides the default table name
func (NumberSequence) TableName() string {
	return "number_sequences"
}

// BeforeCreate assigns the ID application-side
func (n *NumberSequence) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
