package domain_test

import (
	"testing"

	"github.com/orna-jewels/pipeline-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStageIndex(t *testing.T) {
	assert.Equal(t, 0, domain.StageIndex(domain.StageEnquiry))
	assert.Equal(t, 3, domain.StageIndex(domain.StageOrderConfirmed))
	assert.Equal(t, 7, domain.StageIndex(domain.StageCustomerPickup))
	assert.Equal(t, -1, domain.StageIndex(domain.Stage("Polishing")))
}

func TestStage_IsValid(t *testing.T) {
	for _, s := range domain.Stages {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}
	assert.False(t, domain.Stage("").IsValid())
	assert.False(t, domain.Stage("enquiry").IsValid(), "stage values are case sensitive")
}

func TestStage_IsTerminal(t *testing.T) {
	assert.True(t, domain.StageCustomerPickup.IsTerminal())
	assert.False(t, domain.StageShippedToStore.IsTerminal())
	assert.False(t, domain.StageEnquiry.IsTerminal())
}

func TestIsStageComplete(t *testing.T) {
	assert.True(t, domain.IsStageComplete(domain.StageEnquiry, domain.StageBuilding))
	assert.False(t, domain.IsStageComplete(domain.StageBuilding, domain.StageBuilding))
	assert.False(t, domain.IsStageComplete(domain.StageShippedToStore, domain.StageBuilding))
}

func TestVisibleStages(t *testing.T) {
	t.Run("with CAD design the full pipeline is visible", func(t *testing.T) {
		visible := domain.VisibleStages(true)
		assert.Len(t, visible, 8)
		assert.Contains(t, visible, domain.StageCADDesign)
	})

	t.Run("without CAD design the CAD column is skipped", func(t *testing.T) {
		visible := domain.VisibleStages(false)
		assert.Len(t, visible, 7)
		assert.NotContains(t, visible, domain.StageCADDesign)
		// Surrounding stages keep their relative order
		assert.Equal(t, domain.StageEstimation, visible[1])
		assert.Equal(t, domain.StageOrderConfirmed, visible[2])
	})
}

func TestCanTransition(t *testing.T) {
	t.Run("forward moves are allowed", func(t *testing.T) {
		assert.True(t, domain.CanTransition(domain.StageEnquiry, domain.StageEstimation))
		assert.True(t, domain.CanTransition(domain.StageBuilding, domain.StageCustomerPickup))
	})

	t.Run("backward moves are allowed for corrections", func(t *testing.T) {
		assert.True(t, domain.CanTransition(domain.StageCertification, domain.StageBuilding))
		assert.True(t, domain.CanTransition(domain.StageCustomerPickup, domain.StageShippedToStore))
	})

	t.Run("same stage is rejected", func(t *testing.T) {
		for _, s := range domain.Stages {
			assert.False(t, domain.CanTransition(s, s))
		}
	})
}

func TestStage_Key(t *testing.T) {
	assert.Equal(t, "enquiry", domain.StageEnquiry.Key())
	assert.Equal(t, "cad-design", domain.StageCADDesign.Key())
	assert.Equal(t, "shipped-to-store", domain.StageShippedToStore.Key())
}

func TestDwellPolicy_ExpectedDays(t *testing.T) {
	days, ok := domain.DefaultDwellPolicy.ExpectedDays(domain.StageBuilding)
	assert.True(t, ok)
	assert.Equal(t, 7, days)

	_, ok = domain.DefaultDwellPolicy.ExpectedDays(domain.StageCustomerPickup)
	assert.False(t, ok, "terminal stage has no dwell threshold")
}

func TestDwellPolicyWithOverrides(t *testing.T) {
	t.Run("no overrides returns the defaults", func(t *testing.T) {
		policy := domain.DwellPolicyWithOverrides(nil)
		assert.Equal(t, domain.DefaultDwellPolicy, policy)
	})

	t.Run("override replaces one stage and keeps the rest", func(t *testing.T) {
		policy := domain.DwellPolicyWithOverrides(map[string]int{"cad-design": 10})

		days, _ := policy.ExpectedDays(domain.StageCADDesign)
		assert.Equal(t, 10, days)

		days, _ = policy.ExpectedDays(domain.StageEstimation)
		assert.Equal(t, 5, days)
	})

	t.Run("non-positive and unknown overrides are ignored", func(t *testing.T) {
		policy := domain.DwellPolicyWithOverrides(map[string]int{
			"building":        0,
			"polishing":       4,
			"customer-pickup": 2,
		})
		assert.Equal(t, domain.DefaultDwellPolicy, policy)
	})

	t.Run("defaults are not mutated", func(t *testing.T) {
		domain.DwellPolicyWithOverrides(map[string]int{"enquiry": 99})
		days, _ := domain.DefaultDwellPolicy.ExpectedDays(domain.StageEnquiry)
		assert.Equal(t, 3, days)
	})
}
