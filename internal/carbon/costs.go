package carbon

import "github.com/haneul-labs/haneul/internal/facility"

// CostBreakdown splits the cost of moving from current to target emissions
// into up-front CAPEX and annualized OPEX.
type CostBreakdown struct {
	TotalCost  float64 `json:"total_cost"`
	CAPEX      float64 `json:"capex"`
	AnnualOPEX float64 `json:"annual_opex"`
	MAC        float64 `json:"marginal_abatement_cost"`
}

// capexShare is the fixed per-sector CAPEX fraction of total transition cost.
var capexShare = map[facility.Sector]float64{
	facility.SectorPower:         0.75,
	facility.SectorSteel:         0.70,
	facility.SectorCement:        0.65,
	facility.SectorPetrochemical: 0.70,
	facility.SectorRefining:      0.72,
	facility.SectorShipbuilding:  0.55,
	facility.SectorAutomotive:    0.60,
	facility.SectorElectronics:   0.50,
	facility.SectorConstruction:  0.45,
	facility.SectorLogistics:     0.55,
}

const defaultCapexShare = 0.60

// TransitionCosts prices the reduction from current to target emissions for
// one year. A non-positive reduction yields an all-zero breakdown; a zero
// current baseline is guarded the same way.
func TransitionCosts(currentEmissions, targetEmissions float64, sector facility.Sector, year, timeframeYears int) CostBreakdown {
	reduction := currentEmissions - targetEmissions
	if reduction <= 0 || currentEmissions <= 0 {
		return CostBreakdown{}
	}
	if timeframeYears <= 0 {
		timeframeYears = 1
	}

	mac := MarginalAbatementCost(sector, reduction/currentEmissions, year)
	total := mac * reduction

	share, ok := capexShare[sector]
	if !ok {
		share = defaultCapexShare
	}

	return CostBreakdown{
		TotalCost:  total,
		CAPEX:      total * share,
		AnnualOPEX: total * (1 - share) / float64(timeframeYears),
		MAC:        mac,
	}
}
