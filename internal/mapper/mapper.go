package mapper

import (
	"time"

	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/orna-jewels/pipeline-api/internal/timeutil"
)

// ToOrderDTO converts an Order to an OrderDTO. The derived block
// (urgency, risk, day counters, labels) is computed here against now so
// every read surface reports the same values for the same clock.
func ToOrderDTO(order *domain.Order, policy domain.DwellPolicy, staleDays, dueSoonDays int, now time.Time) domain.OrderDTO {
	visible := domain.VisibleStages(order.CADDesignRequired)
	visibleStages := make([]string, len(visible))
	for i, s := range visible {
		visibleStages[i] = string(s)
	}

	dto := domain.OrderDTO{
		ID:             order.ID.String(),
		Type:           string(order.Type),
		OrderNumber:    order.OrderNumber,
		ShareableToken: order.ShareableToken,

		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerEmail:   order.CustomerEmail,
		CustomerAddress: order.CustomerAddress,

		SalespersonName: order.SalespersonName,
		VendorName:      order.VendorName,

		Category:    string(order.Category),
		MetalType:   string(order.MetalType),
		MetalPurity: string(order.MetalPurity),
		MetalWeight: order.MetalWeight,
		Polish:      order.Polish,

		StoneDescription:   order.StoneDescription,
		StoneQuality:       order.StoneQuality,
		StoneCut:           order.StoneCut,
		StoneCaratEstimate: order.StoneCaratEstimate,

		RingSize:    order.RingSize,
		ChainLength: order.ChainLength,
		BangleSize:  order.BangleSize,

		Certification:     string(order.Certification),
		CADDesignRequired: order.CADDesignRequired,
		AdvancePaid:       order.AdvancePaid,
		TotalEstimate:     order.TotalEstimate,

		CurrentStage:  string(order.CurrentStage),
		VisibleStages: visibleStages,
		CreatedAt:     order.CreatedAt.UTC().Format(time.RFC3339),
		LastUpdatedAt: order.LastUpdatedAt.UTC().Format(time.RFC3339),

		SpecialInstructions: order.SpecialInstructions,
		BudgetRange:         order.BudgetRange,
		Occasion:            order.Occasion,
		TimelineNotes:       order.TimelineNotes,

		Urgency:            string(domain.UrgencyFor(order, dueSoonDays, now)),
		DeliveryLabel:      domain.FormatDaysRemaining(order, now),
		RiskSignal:         string(domain.ComputeRiskSignal(order, policy, staleDays, now)),
		DaysInCurrentStage: domain.DaysInCurrentStage(order, now),
	}

	if order.DeliveryDate != nil {
		dto.DeliveryDate = order.DeliveryDate.Format("2006-01-02")
	}

	if days, ok := domain.DaysSinceLastActivity(order, now); ok {
		dto.DaysSinceLastActivity = &days
	}

	if len(order.ActivityFeed) > 0 {
		dto.ActivityFeed = make([]domain.ActivityEntryDTO, len(order.ActivityFeed))
		for i := range order.ActivityFeed {
			dto.ActivityFeed[i] = ToActivityEntryDTO(&order.ActivityFeed[i], now)
		}
	}

	return dto
}

// ToOrderDTOs converts a slice of orders
func ToOrderDTOs(orders []domain.Order, policy domain.DwellPolicy, staleDays, dueSoonDays int, now time.Time) []domain.OrderDTO {
	dtos := make([]domain.OrderDTO, len(orders))
	for i := range orders {
		dtos[i] = ToOrderDTO(&orders[i], policy, staleDays, dueSoonDays, now)
	}
	return dtos
}

// ToActivityEntryDTO converts an ActivityEntry to its DTO
func ToActivityEntryDTO(entry *domain.ActivityEntry, now time.Time) domain.ActivityEntryDTO {
	dto := domain.ActivityEntryDTO{
		ID:           entry.ID.String(),
		OrderID:      entry.OrderID.String(),
		PostedBy:     entry.PostedBy,
		Timestamp:    entry.Timestamp.UTC().Format(time.RFC3339),
		RelativeTime: timeutil.RelativeLabel(entry.Timestamp, now),
		Type:         string(entry.Type),
		Note:         entry.Note,
	}

	if entry.ActorRole != nil {
		dto.ActorRole = string(*entry.ActorRole)
	}
	if entry.NewStage != nil {
		dto.NewStage = string(*entry.NewStage)
	}
	if entry.PreviousStage != nil {
		dto.PreviousStage = string(*entry.PreviousStage)
	}
	if entry.Type == domain.EntryTypeFileUpload && entry.FileURL != "" {
		dto.File = &domain.FileMetaDTO{
			URL:      entry.FileURL,
			Filename: entry.Filename,
			FileType: string(entry.FileType),
		}
	}

	return dto
}

// ToActivityEntryDTOs converts a slice of entries
func ToActivityEntryDTOs(entries []domain.ActivityEntry, now time.Time) []domain.ActivityEntryDTO {
	dtos := make([]domain.ActivityEntryDTO, len(entries))
	for i := range entries {
		dtos[i] = ToActivityEntryDTO(&entries[i], now)
	}
	return dtos
}
