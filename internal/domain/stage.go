package domain

import "strings"

// Stage represents a position in the fixed production pipeline
type Stage string

const (
	StageEnquiry        Stage = "Enquiry"
	StageEstimation     Stage = "Estimation"
	StageCADDesign      Stage = "CAD Design"
	StageOrderConfirmed Stage = "Order Confirmed"
	StageBuilding       Stage = "Building"
	StageCertification  Stage = "Certification"
	StageShippedToStore Stage = "Shipped to Store"
	StageCustomerPickup Stage = "Customer Pickup"
)

// Stages is the full pipeline in order. All before/after comparisons use
// the index in this slice.
var Stages = []Stage{
	StageEnquiry,
	StageEstimation,
	StageCADDesign,
	StageOrderConfirmed,
	StageBuilding,
	StageCertification,
	StageShippedToStore,
	StageCustomerPickup,
}

// IsValid checks if the Stage is a valid enum value
func (s Stage) IsValid() bool {
	return StageIndex(s) >= 0
}

// IsTerminal reports whether the stage ends the pipeline. A terminal
// order carries no risk signals.
func (s Stage) IsTerminal() bool {
	return s == StageCustomerPickup
}

// StageIndex returns the position of a stage in the pipeline, or -1 for
// an unknown value.
func StageIndex(s Stage) int {
	for i, stage := range Stages {
		if stage == s {
			return i
		}
	}
	return -1
}

// IsStageComplete reports whether stage is strictly before current in the
// pipeline order.
func IsStageComplete(stage, current Stage) bool {
	return StageIndex(stage) < StageIndex(current)
}

// VisibleStages returns the pipeline as rendered for an order. Orders
// without CAD design skip the CAD Design column, but the stage stays a
// legal value if ever set on the order.
func VisibleStages(cadDesignRequired bool) []Stage {
	if cadDesignRequired {
		return Stages
	}
	visible := make([]Stage, 0, len(Stages)-1)
	for _, s := range Stages {
		if s == StageCADDesign {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}

// CanTransition is the single place the transition policy lives. Moves
// are unrestricted in both directions (backward moves are used for
// corrections); only the same-stage no-op is rejected. A forward-only
// policy would be added here without touching callers.
func CanTransition(from, to Stage) bool {
	return to != from
}

// DwellPolicy maps each non-terminal stage to the number of days an
// order is expected to spend in it. Stages absent from the table
// (Customer Pickup) are excluded from stuck evaluation. The table is
// operational policy: tunable via configuration, not hard-coded
// branches.
type DwellPolicy map[Stage]int

// DefaultDwellPolicy is the out-of-the-box threshold table.
var DefaultDwellPolicy = DwellPolicy{
	StageEnquiry:        3,
	StageEstimation:     5,
	StageCADDesign:      7,
	StageOrderConfirmed: 3,
	StageBuilding:       7,
	StageCertification:  5,
	StageShippedToStore: 3,
}

// ExpectedDays returns the dwell threshold for a stage. ok is false for
// terminal or unconfigured stages.
func (p DwellPolicy) ExpectedDays(s Stage) (int, bool) {
	days, ok := p[s]
	return days, ok
}

// Key returns the configuration key for a stage: lowercase with spaces
// replaced by dashes ("CAD Design" -> "cad-design").
func (s Stage) Key() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

// DwellPolicyWithOverrides builds a policy from the defaults plus
// configured per-stage overrides keyed by Stage.Key. Unknown keys are
// ignored; terminal stages cannot be given a threshold.
func DwellPolicyWithOverrides(overrides map[string]int) DwellPolicy {
	policy := make(DwellPolicy, len(DefaultDwellPolicy))
	for stage, days := range DefaultDwellPolicy {
		policy[stage] = days
	}
	for key, days := range overrides {
		if days <= 0 {
			continue
		}
		for _, stage := range Stages {
			if stage.IsTerminal() {
				continue
			}
			if stage.Key() == key {
				policy[stage] = days
			}
		}
	}
	return policy
}
