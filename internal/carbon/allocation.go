package carbon

import "github.com/haneul-labs/haneul/internal/facility"

// Allocation is the free-allocation relief a facility receives under an
// emissions trading scheme for a given year.
type Allocation struct {
	Ratio    float64 `json:"ratio"`
	FreeTons float64 `json:"free_tons"`
}

// allocationBaseYear anchors the tightening schedule.
const allocationBaseYear = 2024

type allocationRule struct {
	baseRatio  float64
	tightening float64 // ratio points removed per year past the base year
}

// allocationRules covers the energy-intensive, trade-exposed sectors that
// receive free allocation under the K-ETS. Sectors absent here get no relief.
var allocationRules = map[facility.Sector]allocationRule{
	facility.SectorPower:         {baseRatio: 0.85, tightening: 0.030},
	facility.SectorSteel:         {baseRatio: 0.97, tightening: 0.020},
	facility.SectorCement:        {baseRatio: 0.95, tightening: 0.022},
	facility.SectorPetrochemical: {baseRatio: 0.93, tightening: 0.024},
	facility.SectorRefining:      {baseRatio: 0.90, tightening: 0.026},
}

// FreeAllocation computes the free-allocation ratio and exempted tonnage for
// a sector and year. The ratio tightens linearly from the base year and never
// goes below zero.
func FreeAllocation(sector facility.Sector, baselineEmissions float64, year int) Allocation {
	rule, ok := allocationRules[sector]
	if !ok {
		return Allocation{}
	}
	ratio := rule.baseRatio - rule.tightening*float64(year-allocationBaseYear)
	if ratio < 0 {
		ratio = 0
	}
	return Allocation{Ratio: ratio, FreeTons: baselineEmissions * ratio}
}
