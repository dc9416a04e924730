package carbon

import (
	"math"

	"github.com/haneul-labs/haneul/internal/facility"
)

// Technology is one abatement option inside a sector's ordered stack.
// MaxReduction fractions are independent caps, not cumulative percentages of
// baseline: the MAC algorithm accumulates them until the target is met.
type Technology struct {
	Name          string
	BaseCost      float64 // USD per tCO2e at the reference year
	MaxReduction  float64 // fraction of sector emissions it can remove
	AvailableYear int
	LearningRate  float64 // annual cost decay
}

// techReferenceYear anchors the learning-curve decay.
const techReferenceYear = 2024

// technologyStacks lists abatement options for the sectors where discrete
// technology pathways are established. Sectors without a stack fall back to
// the tiered base-cost model in mac.go.
var technologyStacks = map[facility.Sector][]Technology{
	facility.SectorPower: {
		{Name: "coal_to_gas_switching", BaseCost: 25, MaxReduction: 0.20, AvailableYear: 2024, LearningRate: 0.01},
		{Name: "onshore_renewables", BaseCost: 35, MaxReduction: 0.35, AvailableYear: 2024, LearningRate: 0.04},
		{Name: "offshore_wind", BaseCost: 65, MaxReduction: 0.25, AvailableYear: 2027, LearningRate: 0.05},
		{Name: "grid_storage", BaseCost: 95, MaxReduction: 0.10, AvailableYear: 2028, LearningRate: 0.06},
		{Name: "ccs_retrofit", BaseCost: 140, MaxReduction: 0.25, AvailableYear: 2032, LearningRate: 0.03},
	},
	facility.SectorSteel: {
		{Name: "scrap_eaf_expansion", BaseCost: 40, MaxReduction: 0.25, AvailableYear: 2024, LearningRate: 0.015},
		{Name: "hydrogen_injection_bf", BaseCost: 85, MaxReduction: 0.15, AvailableYear: 2027, LearningRate: 0.04},
		{Name: "hydrogen_dri", BaseCost: 160, MaxReduction: 0.40, AvailableYear: 2031, LearningRate: 0.05},
		{Name: "ccus_steel", BaseCost: 190, MaxReduction: 0.20, AvailableYear: 2033, LearningRate: 0.03},
	},
	facility.SectorCement: {
		{Name: "clinker_substitution", BaseCost: 20, MaxReduction: 0.20, AvailableYear: 2024, LearningRate: 0.01},
		{Name: "alternative_fuels", BaseCost: 45, MaxReduction: 0.20, AvailableYear: 2025, LearningRate: 0.02},
		{Name: "kiln_electrification", BaseCost: 120, MaxReduction: 0.20, AvailableYear: 2030, LearningRate: 0.04},
		{Name: "cement_ccs", BaseCost: 170, MaxReduction: 0.35, AvailableYear: 2032, LearningRate: 0.03},
	},
	facility.SectorPetrochemical: {
		{Name: "process_efficiency", BaseCost: 15, MaxReduction: 0.15, AvailableYear: 2024, LearningRate: 0.01},
		{Name: "electric_cracking", BaseCost: 110, MaxReduction: 0.30, AvailableYear: 2029, LearningRate: 0.05},
		{Name: "bio_feedstock", BaseCost: 150, MaxReduction: 0.25, AvailableYear: 2030, LearningRate: 0.04},
		{Name: "petchem_ccs", BaseCost: 185, MaxReduction: 0.20, AvailableYear: 2033, LearningRate: 0.03},
	},
	facility.SectorRefining: {
		{Name: "energy_integration", BaseCost: 18, MaxReduction: 0.15, AvailableYear: 2024, LearningRate: 0.01},
		{Name: "green_hydrogen_supply", BaseCost: 130, MaxReduction: 0.30, AvailableYear: 2028, LearningRate: 0.06},
		{Name: "refinery_ccs", BaseCost: 175, MaxReduction: 0.25, AvailableYear: 2032, LearningRate: 0.03},
	},
	facility.SectorAutomotive: {
		{Name: "paint_shop_electrification", BaseCost: 30, MaxReduction: 0.25, AvailableYear: 2024, LearningRate: 0.02},
		{Name: "onsite_renewables_ppa", BaseCost: 50, MaxReduction: 0.40, AvailableYear: 2025, LearningRate: 0.04},
		{Name: "green_logistics_fleet", BaseCost: 90, MaxReduction: 0.20, AvailableYear: 2028, LearningRate: 0.05},
	},
}

// TechnologyCost projects a technology's unit cost to the target year through
// a time-indexed learning curve. Returns +Inf before the availability year.
// True experience curves are production-volume-indexed; the time index is a
// documented approximation.
func TechnologyCost(tech Technology, targetYear int) float64 {
	if targetYear < tech.AvailableYear {
		return math.Inf(1)
	}
	return tech.BaseCost * math.Pow(1-tech.LearningRate, float64(targetYear-techReferenceYear))
}
