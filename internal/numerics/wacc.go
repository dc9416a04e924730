package numerics

import (
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// scenarioRiskPremium reflects policy-uncertainty pricing per pathway.
var scenarioRiskPremium = map[scenario.ID]float64{
	scenario.NetZero2050:       0.010,
	scenario.Below2C:           0.008,
	scenario.DelayedTransition: 0.020,
	scenario.CurrentPolicies:   0.015,
}

// sectorTransitionSpread prices long-run transition-policy exposure per
// sector. Unlisted sectors carry the default spread.
var sectorTransitionSpread = map[facility.Sector]float64{
	facility.SectorPower:         0.020,
	facility.SectorSteel:         0.018,
	facility.SectorCement:        0.016,
	facility.SectorPetrochemical: 0.015,
	facility.SectorRefining:      0.022,
	facility.SectorShipbuilding:  0.008,
	facility.SectorAutomotive:    0.010,
	facility.SectorElectronics:   0.004,
	facility.SectorConstruction:  0.006,
	facility.SectorLogistics:     0.007,
}

const defaultTransitionSpread = 0.010

// ScenarioAdjustedWACC adds a scenario risk premium and a sector transition
// spread to the base discount rate. The spread is halved under the two most
// ambitious pathways, where long-run policy uncertainty is lower once the
// transition is underway. The result is never below baseRate.
func ScenarioAdjustedWACC(baseRate float64, sc scenario.ID, sector facility.Sector) float64 {
	premium := scenarioRiskPremium[scenario.GetOrDefault(sc).ID]

	spread, ok := sectorTransitionSpread[sector]
	if !ok {
		spread = defaultTransitionSpread
	}
	if sc == scenario.NetZero2050 || sc == scenario.Below2C {
		spread /= 2
	}
	return baseRate + premium + spread
}
