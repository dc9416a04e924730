package service

import (
	"github.com/haneul-labs/haneul/internal/climate"
	"github.com/haneul-labs/haneul/internal/facility"
)

// regionBaseline holds the hardcoded per-district hazard statistics used when
// the weather override is absent. Rainfall parameters are the Gumbel fit of
// annual-maximum daily rainfall in mm.
type regionBaseline struct {
	rainfallLocation float64
	rainfallScale    float64
	typhoonFrequency float64 // strikes per year
	heatwaveDays     float64 // days per year at baseline warming
	droughtDays      float64 // days per year at baseline warming
	maxWindSpeed     float64 // m/s, historical peak
}

var regionBaselines = map[facility.Region]regionBaseline{
	facility.RegionCoastalSouth:  {rainfallLocation: 180, rainfallScale: 55, typhoonFrequency: 1.8, heatwaveDays: 12, droughtDays: 18, maxWindSpeed: 44},
	facility.RegionCoastalEast:   {rainfallLocation: 150, rainfallScale: 45, typhoonFrequency: 1.2, heatwaveDays: 10, droughtDays: 22, maxWindSpeed: 40},
	facility.RegionCoastalWest:   {rainfallLocation: 160, rainfallScale: 50, typhoonFrequency: 0.9, heatwaveDays: 14, droughtDays: 20, maxWindSpeed: 36},
	facility.RegionInlandCentral: {rainfallLocation: 140, rainfallScale: 40, typhoonFrequency: 0.4, heatwaveDays: 16, droughtDays: 25, maxWindSpeed: 28},
	facility.RegionInlandSouth:   {rainfallLocation: 150, rainfallScale: 45, typhoonFrequency: 0.7, heatwaveDays: 18, droughtDays: 28, maxWindSpeed: 30},
	facility.RegionMountain:      {rainfallLocation: 170, rainfallScale: 60, typhoonFrequency: 0.5, heatwaveDays: 8, droughtDays: 15, maxWindSpeed: 32},
}

// floodReturnPeriods are the fixed return periods the flood model integrates
// across, in years.
var floodReturnPeriods = []float64{5, 10, 20, 50, 100, 200, 500}

// Runoff model converting a daily rainfall total into ponding depth.
const (
	runoffCoefficient  = 0.6  // impervious industrial site
	accumulationFactor = 1.4  // catchment concentration
	drainageCapacityMM = 80.0 // rainfall absorbed before ponding starts
)

// depthDamageCurve maps flood depth (cm) to a damage fraction of asset value.
// Breakpoints are part of the external contract for report consumers.
var depthDamageCurve = map[int]float64{
	0:   0.00,
	10:  0.05,
	30:  0.12,
	50:  0.20,
	100: 0.35,
	150: 0.45,
	200: 0.55,
	300: 0.70,
}

// typhoonCategoryBase is the baseline category distribution of landfalling
// typhoons, categories 1..5. Sums to 1.0 and is part of the external
// contract.
var typhoonCategoryBase = []float64{0.30, 0.30, 0.20, 0.15, 0.05}

// typhoonDamageRate is the asset damage fraction per category.
var typhoonDamageRate = []float64{0.002, 0.005, 0.012, 0.030, 0.070}

// typhoonBIDays is the expected interruption days per category.
var typhoonBIDays = []float64{1, 2, 4, 7, 14}

// typhoonShiftPerDegree is the probability mass moved from categories 1-2
// into 4-5 per degree of warming delta, before renormalization.
const typhoonShiftPerDegree = 0.04

// heatwaveDaysPerDegree is the linear increment in annual heatwave days per
// degree of delta warming.
const heatwaveDaysPerDegree = 6.0

// Sector outdoor work fractions for heatwave productivity losses; the
// remainder is indoor exposure.
var outdoorShare = map[facility.Sector]float64{
	facility.SectorPower:         0.15,
	facility.SectorSteel:         0.30,
	facility.SectorCement:        0.40,
	facility.SectorPetrochemical: 0.20,
	facility.SectorRefining:      0.20,
	facility.SectorShipbuilding:  0.60,
	facility.SectorAutomotive:    0.10,
	facility.SectorElectronics:   0.05,
	facility.SectorConstruction:  0.70,
	facility.SectorLogistics:     0.50,
}

const defaultOutdoorShare = 0.25

// Daily productivity loss rates during a heatwave day, as a fraction of that
// day's revenue contribution.
const (
	outdoorLossRate = 0.30
	indoorLossRate  = 0.05
)

// heavyIndustry sectors additionally lose equipment efficiency on heatwave
// days (cooling limits on furnaces, turbines, crackers).
var heavyIndustry = map[facility.Sector]bool{
	facility.SectorPower:         true,
	facility.SectorSteel:         true,
	facility.SectorCement:        true,
	facility.SectorPetrochemical: true,
	facility.SectorRefining:      true,
}

// equipmentLossPerDay is the revenue fraction lost to derating per heatwave
// day in heavy industry.
const equipmentLossPerDay = 0.0002

// waterIntensity is the fraction of revenue dependent on process water.
var waterIntensity = map[facility.Sector]float64{
	facility.SectorPower:         0.30,
	facility.SectorSteel:         0.25,
	facility.SectorCement:        0.15,
	facility.SectorPetrochemical: 0.30,
	facility.SectorRefining:      0.25,
	facility.SectorShipbuilding:  0.08,
	facility.SectorAutomotive:    0.12,
	facility.SectorElectronics:   0.40,
	facility.SectorConstruction:  0.10,
	facility.SectorLogistics:     0.05,
}

const defaultWaterIntensity = 0.10

// Sea-level rise adaptation model: partial flood-defense uptake dampens the
// raw depth-damage response, with a hard cap, annualized over a fixed
// horizon.
const (
	slrDampening    = 0.30
	slrDamageCap    = 0.50
	slrHorizonYears = 30
)

// hazardCorrelations is the hand-curated pairwise correlation table for the
// compound EAL aggregation. Unlisted pairs are independent. All values lie in
// [-1, 1] and are part of the external contract.
var hazardCorrelations = map[[2]climate.Hazard]float64{
	{climate.HazardFlood, climate.HazardTyphoon}:        0.40,
	{climate.HazardFlood, climate.HazardHeatwave}:       -0.15,
	{climate.HazardFlood, climate.HazardDrought}:        -0.30,
	{climate.HazardFlood, climate.HazardSeaLevelRise}:   0.30,
	{climate.HazardTyphoon, climate.HazardSeaLevelRise}: 0.25,
	{climate.HazardHeatwave, climate.HazardDrought}:     0.45,
}

// correlation looks up a pair in either order.
func correlation(a, b climate.Hazard) float64 {
	if rho, ok := hazardCorrelations[[2]climate.Hazard{a, b}]; ok {
		return rho
	}
	if rho, ok := hazardCorrelations[[2]climate.Hazard{b, a}]; ok {
		return rho
	}
	return 0
}
