package service

import (
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// decarbCurve parameterizes the logistic decarbonization pathway per
// scenario: how fast the S-curve rises and where its midpoint sits.
type decarbCurve struct {
	steepness float64
	midpoint  float64
}

var decarbCurves = map[scenario.ID]decarbCurve{
	scenario.NetZero2050:       {steepness: 0.25, midpoint: 2035},
	scenario.Below2C:           {steepness: 0.18, midpoint: 2038},
	scenario.DelayedTransition: {steepness: 0.35, midpoint: 2042},
	scenario.CurrentPolicies:   {steepness: 0.10, midpoint: 2050},
}

// sectorTransition shifts the scenario midpoint and caps the achievable
// asymptote per sector. Faster-transitioning sectors get an earlier midpoint
// and a higher cap.
type sectorTransition struct {
	midpointShift float64 // years, negative = earlier
	asymptoteCap  float64 // ceiling on the reduction fraction
}

var sectorTransitions = map[facility.Sector]sectorTransition{
	facility.SectorPower:         {midpointShift: -3, asymptoteCap: 0.98},
	facility.SectorSteel:         {midpointShift: +2, asymptoteCap: 0.85},
	facility.SectorCement:        {midpointShift: +2, asymptoteCap: 0.80},
	facility.SectorPetrochemical: {midpointShift: +3, asymptoteCap: 0.75},
	facility.SectorRefining:      {midpointShift: +4, asymptoteCap: 0.70},
	facility.SectorShipbuilding:  {midpointShift: 0, asymptoteCap: 0.85},
	facility.SectorAutomotive:    {midpointShift: -2, asymptoteCap: 0.95},
	facility.SectorElectronics:   {midpointShift: -2, asymptoteCap: 0.95},
	facility.SectorConstruction:  {midpointShift: +1, asymptoteCap: 0.85},
	facility.SectorLogistics:     {midpointShift: 0, asymptoteCap: 0.90},
}

var defaultSectorTransition = sectorTransition{midpointShift: 0, asymptoteCap: 0.85}

// energyCostShare is the fraction of revenue spent on energy inputs.
var energyCostShare = map[facility.Sector]float64{
	facility.SectorPower:         0.45,
	facility.SectorSteel:         0.20,
	facility.SectorCement:        0.30,
	facility.SectorPetrochemical: 0.18,
	facility.SectorRefining:      0.12,
	facility.SectorShipbuilding:  0.06,
	facility.SectorAutomotive:    0.04,
	facility.SectorElectronics:   0.08,
	facility.SectorConstruction:  0.05,
	facility.SectorLogistics:     0.15,
}

const defaultEnergyShare = 0.10

// passThrough is the fraction of carbon cost a sector can push to customers.
var passThrough = map[facility.Sector]float64{
	facility.SectorPower:         0.70,
	facility.SectorSteel:         0.40,
	facility.SectorCement:        0.55,
	facility.SectorPetrochemical: 0.45,
	facility.SectorRefining:      0.60,
	facility.SectorShipbuilding:  0.30,
	facility.SectorAutomotive:    0.35,
	facility.SectorElectronics:   0.25,
	facility.SectorConstruction:  0.50,
	facility.SectorLogistics:     0.65,
}

const defaultPassThrough = 0.45

// demandElasticity is the demand response to a passed-through price increase.
var demandElasticity = map[facility.Sector]float64{
	facility.SectorPower:         0.30,
	facility.SectorSteel:         0.60,
	facility.SectorCement:        0.50,
	facility.SectorPetrochemical: 0.55,
	facility.SectorRefining:      0.45,
	facility.SectorShipbuilding:  0.70,
	facility.SectorAutomotive:    0.80,
	facility.SectorElectronics:   0.65,
	facility.SectorConstruction:  0.40,
	facility.SectorLogistics:     0.35,
}

const defaultElasticity = 0.50

// scope3Exposure converts upstream/downstream emissions into a chargeable
// exposure rate against the carbon price.
var scope3Exposure = map[facility.Sector]float64{
	facility.SectorPower:         0.05,
	facility.SectorSteel:         0.15,
	facility.SectorCement:        0.10,
	facility.SectorPetrochemical: 0.25,
	facility.SectorRefining:      0.35,
	facility.SectorShipbuilding:  0.12,
	facility.SectorAutomotive:    0.30,
	facility.SectorElectronics:   0.18,
	facility.SectorConstruction:  0.20,
	facility.SectorLogistics:     0.22,
}

const defaultScope3Exposure = 0.15

// phaseOutSchedule covers sectors with a scheduled asset phase-out. AtRisk is
// the fraction of asset value written down progressively from the start year;
// cleanup is the one-off residual cost ratio booked at the phase-out year.
type phaseOutSchedule struct {
	startYear    int
	phaseOutYear int
	atRisk       float64
	cleanup      float64
}

var phaseOuts = map[facility.Sector]phaseOutSchedule{
	facility.SectorPower:    {startYear: 2028, phaseOutYear: 2040, atRisk: 0.40, cleanup: 0.02},
	facility.SectorRefining: {startYear: 2030, phaseOutYear: 2045, atRisk: 0.30, cleanup: 0.015},
}

// fossilDependent marks sectors exposed to structural market-share loss under
// the ambitious pathways.
var fossilDependent = map[facility.Sector]bool{
	facility.SectorPower:         true,
	facility.SectorRefining:      true,
	facility.SectorPetrochemical: true,
}
