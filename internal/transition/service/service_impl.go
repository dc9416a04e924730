// Package service implements the transition risk simulator: per facility and
// year it projects a logistic decarbonization pathway, prices the residual
// emissions, and discounts the resulting EBITDA deltas to NPV.
package service

import (
	"context"

	"github.com/haneul-labs/haneul/internal/carbon"
	"github.com/haneul-labs/haneul/internal/config"
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/numerics"
	"github.com/haneul-labs/haneul/internal/risk"
	"github.com/haneul-labs/haneul/internal/scenario"
	transitiondomain "github.com/haneul-labs/haneul/internal/transition/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log         *zap.Logger
	assumptions config.Assumptions
}

type ServiceParam struct {
	fx.In

	Log         *zap.Logger
	Assumptions config.Assumptions
}

func NewService(p ServiceParam) transitiondomain.Service {
	return &Service{
		log:         p.Log.Named("transition.service"),
		assumptions: p.Assumptions,
	}
}

// Analyse runs the simulator for every facility under one scenario/regime.
// Facility output order follows input order.
func (s *Service) Analyse(ctx context.Context, sc scenario.ID, regime carbon.Regime, facilities []facility.Facility) (*transitiondomain.Analysis, error) {
	resolved := scenario.GetOrDefault(sc)
	set := resolveFacilities(facilities)

	results := make([]transitiondomain.FacilityResult, 0, len(set))
	levels := make([]risk.Level, 0, len(set))
	var totalNPV, totalEmissions float64

	for _, fac := range set {
		result := s.simulateFacility(fac, resolved, regime)
		totalNPV += result.NPV
		totalEmissions += fac.Scope1 + fac.Scope2
		levels = append(levels, result.RiskLevel)
		results = append(results, result)
	}

	s.log.Debug("scenario analysed",
		zap.String("scenario", string(resolved.ID)),
		zap.String("regime", string(regime)),
		zap.Int("facilities", len(results)),
		zap.Float64("total_npv", totalNPV),
	)

	return &transitiondomain.Analysis{
		Scenario:               resolved,
		Regime:                 regime,
		Facilities:             results,
		TotalNPV:               totalNPV,
		TotalBaselineEmissions: totalEmissions,
		AvgRiskLevel:           risk.Majority(levels),
	}, nil
}

// Summary condenses an Analyse run into the dashboard view.
func (s *Service) Summary(ctx context.Context, sc scenario.ID, regime carbon.Regime, facilities []facility.Facility) (*transitiondomain.Summary, error) {
	analysis, err := s.Analyse(ctx, sc, regime, facilities)
	if err != nil {
		return nil, err
	}
	return summarize(analysis), nil
}

// Compare runs every canonical scenario under one regime.
func (s *Service) Compare(ctx context.Context, regime carbon.Regime, facilities []facility.Facility) (*transitiondomain.Comparison, error) {
	scenarios := scenario.List()
	summaries := make([]transitiondomain.Summary, 0, len(scenarios))
	for _, sc := range scenarios {
		analysis, err := s.Analyse(ctx, sc.ID, regime, facilities)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summarize(analysis))
	}
	return &transitiondomain.Comparison{Regime: regime, Scenarios: summaries}, nil
}

func summarize(a *transitiondomain.Analysis) *transitiondomain.Summary {
	high := 0
	for _, f := range a.Facilities {
		if f.RiskLevel == risk.LevelHigh {
			high++
		}
	}
	return &transitiondomain.Summary{
		ScenarioID:     a.Scenario.ID,
		ScenarioName:   a.Scenario.Name,
		Regime:         a.Regime,
		FacilityCount:  len(a.Facilities),
		TotalNPV:       a.TotalNPV,
		TotalEmissions: a.TotalBaselineEmissions,
		AvgRiskLevel:   a.AvgRiskLevel,
		HighRiskCount:  high,
	}
}

func resolveFacilities(facilities []facility.Facility) []facility.Facility {
	if len(facilities) == 0 {
		return facility.SamplePortfolio()
	}
	return facilities
}

func (s *Service) simulateFacility(fac facility.Facility, sc scenario.Scenario, regime carbon.Regime) transitiondomain.FacilityResult {
	a := s.assumptions
	horizon := a.HorizonEnd - a.BaseYear + 1

	impacts := make([]transitiondomain.AnnualImpact, 0, horizon)
	cashflows := make(map[int]float64, horizon)
	for year := a.BaseYear; year <= a.HorizonEnd; year++ {
		impact := s.annualImpact(fac, sc, regime, year, horizon)
		cashflows[year] = impact.EBITDADelta
		impacts = append(impacts, impact)
	}

	wacc := numerics.ScenarioAdjustedWACC(a.BaseDiscountRate, sc.ID, fac.Sector)
	npv := numerics.PresentValue(cashflows, wacc, a.BaseYear)

	level := risk.LevelLow
	if fac.AssetValue > 0 {
		level = risk.FromAssetRatio(npv / fac.AssetValue)
	}

	return transitiondomain.FacilityResult{
		Facility:     fac,
		Impacts:      impacts,
		NPV:          npv,
		DiscountRate: wacc,
		RiskLevel:    level,
	}
}

func (s *Service) annualImpact(fac facility.Facility, sc scenario.Scenario, regime carbon.Regime, year, horizon int) transitiondomain.AnnualImpact {
	a := s.assumptions
	baseline := fac.Scope1 + fac.Scope2

	// (1) logistic reduction factor with sector-shifted midpoint and capped
	// asymptote.
	curve := decarbCurves[sc.ID]
	st, ok := sectorTransitions[fac.Sector]
	if !ok {
		st = defaultSectorTransition
	}
	maxReduction := sc.ReductionTarget
	if maxReduction > st.asymptoteCap {
		maxReduction = st.asymptoteCap
	}
	reduction := numerics.LogisticCurve(float64(year), maxReduction, curve.steepness, curve.midpoint+st.midpointShift)

	// (2) residual scope 1/2 emissions.
	emissions := baseline * (1 - reduction)

	// (3) carbon cost; under the K-ETS only emissions above the free
	// allocation are charged.
	price := carbon.PriceAt(sc.ID, year, regime)
	charged := emissions
	if regime == carbon.RegimeKETS {
		alloc := carbon.FreeAllocation(fac.Sector, baseline, year)
		charged = emissions - alloc.FreeTons
		if charged < 0 {
			charged = 0
		}
	}
	carbonCost := charged * price

	// (4) transition CAPEX/OPEX for this year's reduction step.
	costs := carbon.TransitionCosts(baseline, emissions, fac.Sector, year, horizon)
	annualCAPEX := costs.CAPEX / float64(horizon)

	// (5) energy-cost delta: declining green premium on the energy share of
	// revenue, net of pass-through.
	premium := a.GreenPremiumStart - a.GreenPremiumDecay*float64(year-a.BaseYear)
	if premium < a.GreenPremiumFloor {
		premium = a.GreenPremiumFloor
	}
	share, ok := energyCostShare[fac.Sector]
	if !ok {
		share = defaultEnergyShare
	}
	pt, ok := passThrough[fac.Sector]
	if !ok {
		pt = defaultPassThrough
	}
	energyDelta := fac.Revenue * share * premium * reduction * (1 - pt)

	// (6) revenue impact: demand elasticity on the passed-through cost
	// fraction, residual-burden margin erosion, and a structural share shift
	// for fossil sectors under the ambitious pathways. Hard ceiling at 50%
	// of baseline revenue.
	var revenueImpact float64
	if fac.Revenue > 0 {
		elasticity, ok := demandElasticity[fac.Sector]
		if !ok {
			elasticity = defaultElasticity
		}
		passedFraction := carbonCost * pt / fac.Revenue
		revenueImpact = fac.Revenue * elasticity * passedFraction
		revenueImpact += carbonCost * (1 - pt) * a.ResidualMarginRate
		if fossilDependent[fac.Sector] && (sc.ID == scenario.NetZero2050 || sc.ID == scenario.Below2C) {
			revenueImpact += fac.Revenue * a.MarketShareShiftRate * reduction
		}
		if cap := fac.Revenue * 0.5; revenueImpact > cap {
			revenueImpact = cap
		}
	}

	// (7) stranded-asset writedown on a scheduled phase-out.
	writedown := strandedWritedown(fac, year)

	// (8) scope-3 cost at the sector exposure rate.
	exposure, ok := scope3Exposure[fac.Sector]
	if !ok {
		exposure = defaultScope3Exposure
	}
	scope3Cost := fac.Scope3 * price * exposure

	return transitiondomain.AnnualImpact{
		Year:              year,
		CarbonCost:        carbonCost,
		TransitionCAPEX:   annualCAPEX,
		TransitionOPEX:    costs.AnnualOPEX,
		EnergyCostDelta:   energyDelta,
		RevenueImpact:     revenueImpact,
		StrandedWritedown: writedown,
		Scope3Cost:        scope3Cost,
		EBITDADelta:       -(carbonCost + costs.AnnualOPEX + energyDelta + revenueImpact + writedown + scope3Cost),
	}
}

// strandedWritedown books a progressive annual writedown of the at-risk asset
// fraction until the scheduled phase-out year, then a one-off residual
// cleanup cost, then nothing.
func strandedWritedown(fac facility.Facility, year int) float64 {
	sched, ok := phaseOuts[fac.Sector]
	if !ok || year < sched.startYear {
		return 0
	}
	switch {
	case year < sched.phaseOutYear:
		span := sched.phaseOutYear - sched.startYear
		return fac.AssetValue * sched.atRisk / float64(span)
	case year == sched.phaseOutYear:
		return fac.AssetValue * sched.cleanup
	default:
		return 0
	}
}
