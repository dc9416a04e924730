// Package climate maps scenario identifiers onto warming trajectories and
// derives hazard frequency/intensity multipliers and cumulative sea-level
// rise from them. Everything here is pure lookup and interpolation over
// tables frozen at process start.
package climate

import (
	"github.com/haneul-labs/haneul/internal/numerics"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// Hazard enumerates the physical hazards the engine models.
type Hazard string

const (
	HazardFlood        Hazard = "flood"
	HazardTyphoon      Hazard = "typhoon"
	HazardHeatwave     Hazard = "heatwave"
	HazardDrought      Hazard = "drought"
	HazardSeaLevelRise Hazard = "sea_level_rise"
)

// Hazards lists the modeled hazards in a fixed order.
func Hazards() []Hazard {
	return []Hazard{HazardFlood, HazardTyphoon, HazardHeatwave, HazardDrought, HazardSeaLevelRise}
}

// baselineWarming anchors deltas at the observed year-2020 warming level.
const baselineWarming = 1.1

// warmingPathways holds sparse year -> °C-above-preindustrial knots per
// scenario archetype.
var warmingPathways = map[scenario.ID]map[int]float64{
	scenario.NetZero2050: {
		2020: 1.2, 2030: 1.40, 2040: 1.48, 2050: 1.50, 2070: 1.45, 2100: 1.40,
	},
	scenario.Below2C: {
		2020: 1.2, 2030: 1.45, 2040: 1.58, 2050: 1.70, 2070: 1.78, 2100: 1.80,
	},
	scenario.DelayedTransition: {
		2020: 1.2, 2030: 1.50, 2040: 1.72, 2050: 1.90, 2070: 2.10, 2100: 2.30,
	},
	scenario.CurrentPolicies: {
		2020: 1.2, 2030: 1.55, 2040: 1.85, 2050: 2.10, 2070: 2.50, 2100: 2.90,
	},
}

// Per-hazard response rates: multiplier = 1 + rate * warmingDelta.
var frequencyRates = map[Hazard]float64{
	HazardFlood:        0.35,
	HazardTyphoon:      0.15,
	HazardHeatwave:     0.80,
	HazardDrought:      0.40,
	HazardSeaLevelRise: 0.00,
}

var intensityRates = map[Hazard]float64{
	HazardFlood:        0.20,
	HazardTyphoon:      0.12,
	HazardHeatwave:     0.30,
	HazardDrought:      0.25,
	HazardSeaLevelRise: 0.00,
}

// Sea-level rise rate model: baseline annual rise plus a warming-sensitive
// slope, integrated year by year.
const (
	slrBaseRateMMPerYear = 3.5
	slrSlopeMMPerDegree  = 2.0
)

// WarmingAt returns the °C above pre-industrial for a scenario and year.
// Unknown scenarios resolve to the default intermediate pathway.
func WarmingAt(sc scenario.ID, year int) float64 {
	pathway, ok := warmingPathways[sc]
	if !ok {
		pathway = warmingPathways[scenario.GetOrDefault(sc).ID]
	}
	// The pathway tables are never empty, so interpolation cannot fail.
	v, _ := numerics.InterpolateLinear(pathway, float64(year))
	return v
}

// WarmingDelta returns warming above the 2020 observed baseline, floored at 0.
func WarmingDelta(sc scenario.ID, year int) float64 {
	delta := WarmingAt(sc, year) - baselineWarming
	if delta < 0 {
		return 0
	}
	return delta
}

// FrequencyMultiplier scales a hazard's event frequency with warming.
// Always >= 1.
func FrequencyMultiplier(h Hazard, sc scenario.ID, year int) float64 {
	return 1 + frequencyRates[h]*WarmingDelta(sc, year)
}

// IntensityMultiplier scales a hazard's event severity with warming.
// Always >= 1.
func IntensityMultiplier(h Hazard, sc scenario.ID, year int) float64 {
	return 1 + intensityRates[h]*WarmingDelta(sc, year)
}

// SeaLevelRiseMM integrates the annually varying rise rate from baseYear+1
// through year. Returns 0 when year <= baseYear.
func SeaLevelRiseMM(sc scenario.ID, year, baseYear int) float64 {
	if year <= baseYear {
		return 0
	}
	var total float64
	for y := baseYear + 1; y <= year; y++ {
		total += slrBaseRateMMPerYear + slrSlopeMMPerDegree*WarmingDelta(sc, y)
	}
	return total
}
