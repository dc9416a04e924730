package service

import (
	"github.com/haneul-labs/haneul/internal/climate"
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/numerics"
	physicaldomain "github.com/haneul-labs/haneul/internal/physical/domain"
	"github.com/haneul-labs/haneul/internal/risk"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// assessFlood integrates Gumbel-quantile rainfall losses across the fixed
// return-period bands. Climate change both shrinks the effective return
// periods (frequency) and scales the rainfall itself (intensity).
func assessFlood(fac facility.Facility, base regionBaseline, sc scenario.ID, year int) physicaldomain.Assessment {
	freqMult := climate.FrequencyMultiplier(climate.HazardFlood, sc, year)
	intMult := climate.IntensityMultiplier(climate.HazardFlood, sc, year)

	type bandResult struct {
		loss   float64
		biCost float64
	}
	results := make([]bandResult, len(floodReturnPeriods))

	var refLoss float64
	for i, period := range floodReturnPeriods {
		adjusted := period / freqMult
		if adjusted <= 1 {
			adjusted = 1.01
		}
		rainfall, err := numerics.GumbelQuantile(base.rainfallLocation, base.rainfallScale, adjusted)
		if err != nil {
			continue
		}
		rainfall *= intMult

		depth := floodDepthCM(rainfall)
		damage := depthDamage(depth)
		loss := fac.AssetValue * damage
		biCost := interruptionDays(depth) * fac.Revenue / 365

		results[i] = bandResult{loss: loss, biCost: biCost}
		if period == 100 {
			refLoss = loss
		}
	}

	// Probability-band integration: each band is weighted by the exceedance
	// mass between consecutive return periods.
	var eal, biTotal float64
	for i, period := range floodReturnPeriods {
		bandProb := 1 / period
		if i < len(floodReturnPeriods)-1 {
			bandProb -= 1 / floodReturnPeriods[i+1]
		}
		eal += bandProb * results[i].loss
		biTotal += bandProb * results[i].biCost
	}
	eal += biTotal

	adjusted100 := 100 / freqMult
	level := risk.LevelLow
	if fac.AssetValue > 0 {
		level = risk.FromLossRatio(eal / fac.AssetValue)
	}

	return physicaldomain.Assessment{
		Hazard:               climate.HazardFlood,
		RiskLevel:            level,
		AnnualProbability:    1 / adjusted100,
		PotentialLoss:        refLoss,
		ReturnPeriod:         adjusted100,
		ClimateMultiplier:    freqMult,
		BusinessInterruption: biTotal,
		ExpectedAnnualLoss:   eal,
	}
}

// floodDepthCM converts a daily rainfall total (mm) into ponding depth (cm)
// through the fixed runoff/accumulation model.
func floodDepthCM(rainfallMM float64) float64 {
	effective := rainfallMM*runoffCoefficient*accumulationFactor - drainageCapacityMM
	if effective <= 0 {
		return 0
	}
	return effective / 10
}

// depthDamage evaluates the depth-damage lookup curve at a depth in cm.
func depthDamage(depthCM float64) float64 {
	if depthCM <= 0 {
		return 0
	}
	// The curve flattens past its last breakpoint rather than extrapolating.
	if depthCM >= 300 {
		return depthDamageCurve[300]
	}
	v, _ := numerics.InterpolateLinear(depthDamageCurve, depthCM)
	if v < 0 {
		return 0
	}
	return v
}

// interruptionDays tiers business-interruption days by flood depth severity.
func interruptionDays(depthCM float64) float64 {
	switch {
	case depthCM < 10:
		return 0
	case depthCM < 50:
		return 2
	case depthCM < 100:
		return 7
	case depthCM < 200:
		return 15
	default:
		return 30
	}
}
