package service

import (
	"github.com/haneul-labs/haneul/internal/climate"
	"github.com/haneul-labs/haneul/internal/facility"
	physicaldomain "github.com/haneul-labs/haneul/internal/physical/domain"
	"github.com/haneul-labs/haneul/internal/risk"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// Water curtailment assumed on drought days for the water-dependent revenue
// share.
const droughtCurtailment = 0.5

// assessDrought models chronic water-stress losses: revenue at risk from the
// sector's water intensity on drought days, plus a severity-tiered
// interruption cost.
func assessDrought(fac facility.Facility, base regionBaseline, sc scenario.ID, year int) physicaldomain.Assessment {
	freqMult := climate.FrequencyMultiplier(climate.HazardDrought, sc, year)

	days := base.droughtDays * freqMult

	intensity, ok := waterIntensity[fac.Sector]
	if !ok {
		intensity = defaultWaterIntensity
	}

	revenueAtRisk := fac.Revenue * intensity * (days / 365) * droughtCurtailment
	biCost := droughtInterruption(fac.Revenue, days)
	eal := revenueAtRisk + biCost

	level := risk.LevelLow
	if fac.AssetValue > 0 {
		level = risk.FromLossRatio(eal / fac.AssetValue)
	}

	return physicaldomain.Assessment{
		Hazard:               climate.HazardDrought,
		RiskLevel:            level,
		AnnualProbability:    1, // chronic
		PotentialLoss:        revenueAtRisk,
		ReturnPeriod:         1,
		ClimateMultiplier:    freqMult,
		BusinessInterruption: biCost,
		ExpectedAnnualLoss:   eal,
	}
}

// droughtInterruption tiers the interruption cost by annual drought-day
// severity.
func droughtInterruption(revenue, days float64) float64 {
	switch {
	case days > 40:
		return revenue * 0.010
	case days > 25:
		return revenue * 0.005
	default:
		return revenue * 0.002
	}
}
