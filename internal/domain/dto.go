package domain

// OrderDTO is the API representation of an order or enquiry. The derived
// block (urgency, risk, day counters) is computed at map time against the
// current clock and is never stored.
type OrderDTO struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	OrderNumber    string `json:"orderNumber,omitempty"`
	ShareableToken string `json:"shareableToken"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	CustomerAddress string `json:"customerAddress,omitempty"`

	SalespersonName string `json:"salespersonName"`
	VendorName      string `json:"vendorName,omitempty"`

	Category    string   `json:"category"`
	MetalType   string   `json:"metalType"`
	MetalPurity string   `json:"metalPurity"`
	MetalWeight *float64 `json:"metalWeight,omitempty"`
	Polish      string   `json:"polish,omitempty"`

	StoneDescription   string   `json:"stoneDescription,omitempty"`
	StoneQuality       string   `json:"stoneQuality,omitempty"`
	StoneCut           string   `json:"stoneCut,omitempty"`
	StoneCaratEstimate *float64 `json:"stoneCaratEstimate,omitempty"`

	RingSize    string `json:"ringSize,omitempty"`
	ChainLength string `json:"chainLength,omitempty"`
	BangleSize  string `json:"bangleSize,omitempty"`

	Certification     string   `json:"certification"`
	CADDesignRequired bool     `json:"cadDesignRequired"`
	AdvancePaid       *float64 `json:"advancePaid,omitempty"`
	TotalEstimate     *float64 `json:"totalEstimate,omitempty"`
	DeliveryDate      string   `json:"deliveryDate,omitempty"`

	CurrentStage  string   `json:"currentStage"`
	VisibleStages []string `json:"visibleStages"`
	CreatedAt     string   `json:"createdAt"`
	LastUpdatedAt string   `json:"lastUpdatedAt"`

	SpecialInstructions string `json:"specialInstructions,omitempty"`
	BudgetRange         string `json:"budgetRange,omitempty"`
	Occasion            string `json:"occasion,omitempty"`
	TimelineNotes       string `json:"timelineNotes,omitempty"`

	// Derived values, recomputed on every read
	Urgency               string `json:"urgency"`
	DeliveryLabel         string `json:"deliveryLabel"`
	RiskSignal            string `json:"riskSignal"`
	DaysInCurrentStage    int    `json:"daysInCurrentStage"`
	DaysSinceLastActivity *int   `json:"daysSinceLastActivity,omitempty"`

	ActivityFeed []ActivityEntryDTO `json:"activityFeed,omitempty"`
}

// ActivityEntryDTO is the API representation of a ledger entry
type ActivityEntryDTO struct {
	ID            string       `json:"id"`
	OrderID       string       `json:"orderId"`
	PostedBy      string       `json:"postedBy"`
	ActorRole     string       `json:"actorRole,omitempty"`
	Timestamp     string       `json:"timestamp"`
	RelativeTime  string       `json:"relativeTime"`
	Type          string       `json:"type"`
	Note          string       `json:"note,omitempty"`
	NewStage      string       `json:"newStage,omitempty"`
	PreviousStage string       `json:"previousStage,omitempty"`
	File          *FileMetaDTO `json:"file,omitempty"`
}

// FileMetaDTO carries attachment metadata for file_upload entries
type FileMetaDTO struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	FileType string `json:"fileType"`
}

// CreateEnquiryRequest creates a pre-sale enquiry. The creation path
// seeds the ledger with the order_created entry.
type CreateEnquiryRequest struct {
	CustomerName    string `json:"customerName" validate:"required,max=200"`
	CustomerPhone   string `json:"customerPhone" validate:"omitempty,max=50"`
	CustomerEmail   string `json:"customerEmail" validate:"omitempty,email"`
	CustomerAddress string `json:"customerAddress" validate:"omitempty,max=500"`

	SalespersonName string `json:"salespersonName" validate:"required,max=200"`

	Category    JewelleryCategory `json:"category" validate:"required"`
	MetalType   MetalType         `json:"metalType" validate:"required"`
	MetalPurity MetalPurity       `json:"metalPurity" validate:"required"`
	MetalWeight *float64          `json:"metalWeight" validate:"omitempty,gt=0"`
	Polish      string            `json:"polish" validate:"omitempty,max=100"`

	StoneDescription   string   `json:"stoneDescription" validate:"omitempty,max=500"`
	StoneQuality       string   `json:"stoneQuality" validate:"omitempty,max=100"`
	StoneCut           string   `json:"stoneCut" validate:"omitempty,max=100"`
	StoneCaratEstimate *float64 `json:"stoneCaratEstimate" validate:"omitempty,gt=0"`

	RingSize    string `json:"ringSize" validate:"omitempty,max=20"`
	ChainLength string `json:"chainLength" validate:"omitempty,max=20"`
	BangleSize  string `json:"bangleSize" validate:"omitempty,max=20"`

	Certification     CertificationType `json:"certification" validate:"omitempty"`
	CADDesignRequired bool              `json:"cadDesignRequired"`
	TotalEstimate     *float64          `json:"totalEstimate" validate:"omitempty,gte=0"`
	DeliveryDate      string            `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`

	BudgetRange   string `json:"budgetRange" validate:"omitempty,max=100"`
	Occasion      string `json:"occasion" validate:"omitempty,max=100"`
	TimelineNotes string `json:"timelineNotes" validate:"omitempty"`
}

// CreateOrderRequest creates a confirmed order directly (skipping the
// enquiry phase). It extends the enquiry payload with production fields.
type CreateOrderRequest struct {
	CreateEnquiryRequest

	VendorName          string   `json:"vendorName" validate:"required,max=200"`
	AdvancePaid         *float64 `json:"advancePaid" validate:"omitempty,gte=0"`
	SpecialInstructions string   `json:"specialInstructions" validate:"omitempty"`
}

// PostUpdateRequest is the unified post-update payload: a note, a stage
// move, or both in a single ledger entry.
type PostUpdateRequest struct {
	PostedBy  string     `json:"postedBy" validate:"required,max=200"`
	ActorRole *ActorRole `json:"actorRole" validate:"omitempty,oneof=sales vendor owner customer"`
	Note      string     `json:"note" validate:"omitempty"`
	NewStage  *Stage     `json:"newStage" validate:"omitempty"`
}

// ChangeStageRequest moves an order to a stage directly (board drag)
type ChangeStageRequest struct {
	NewStage  Stage      `json:"newStage" validate:"required"`
	PostedBy  string     `json:"postedBy" validate:"required,max=200"`
	ActorRole *ActorRole `json:"actorRole" validate:"omitempty,oneof=sales vendor owner customer"`
	Note      string     `json:"note" validate:"omitempty"`
}

// ConfirmOrderRequest converts an enquiry into a confirmed order
type ConfirmOrderRequest struct {
	VendorName  string   `json:"vendorName" validate:"required,max=200"`
	PostedBy    string   `json:"postedBy" validate:"required,max=200"`
	AdvancePaid *float64 `json:"advancePaid" validate:"omitempty,gte=0"`
	Note        string   `json:"note" validate:"omitempty"`
}

// PaginatedResponse wraps list results with pagination metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// StageCountDTO is one column of the pipeline summary
type StageCountDTO struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// DashboardSummaryDTO aggregates the read-side dashboard: pipeline
// distribution, urgency and risk breakdowns, and the focus list of
// orders needing attention today.
type DashboardSummaryDTO struct {
	TotalOrders    int64           `json:"totalOrders"`
	TotalEnquiries int64           `json:"totalEnquiries"`
	StageCounts    []StageCountDTO `json:"stageCounts"`
	UrgencyCounts  map[string]int  `json:"urgencyCounts"`
	RiskCounts     map[string]int  `json:"riskCounts"`
	TodaysFocus    []FocusEntryDTO `json:"todaysFocus"`
}

// FocusEntryDTO is one row of the today's-focus list
type FocusEntryDTO struct {
	OrderID       string `json:"orderId"`
	OrderNumber   string `json:"orderNumber,omitempty"`
	CustomerName  string `json:"customerName"`
	CurrentStage  string `json:"currentStage"`
	Urgency       string `json:"urgency"`
	RiskSignal    string `json:"riskSignal"`
	DeliveryLabel string `json:"deliveryLabel"`
	Reason        string `json:"reason"`
}
