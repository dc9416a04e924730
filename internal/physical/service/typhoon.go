package service

import (
	"github.com/haneul-labs/haneul/internal/climate"
	"github.com/haneul-labs/haneul/internal/facility"
	physicaldomain "github.com/haneul-labs/haneul/internal/physical/domain"
	"github.com/haneul-labs/haneul/internal/risk"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// assessTyphoon models Poisson-style annual strike frequency with a
// warming-shifted category distribution. An observed site wind speed, when
// available, corrects the regional frequency by up to ±20%.
func assessTyphoon(fac facility.Facility, base regionBaseline, observedWind float64, sc scenario.ID, year int) physicaldomain.Assessment {
	freqMult := climate.FrequencyMultiplier(climate.HazardTyphoon, sc, year)
	delta := climate.WarmingDelta(sc, year)

	frequency := base.typhoonFrequency * windCorrection(observedWind, base.maxWindSpeed) * freqMult

	dist := shiftedCategoryDistribution(delta)

	var damageRate, biDays float64
	for i, p := range dist {
		damageRate += p * typhoonDamageRate[i]
		biDays += p * typhoonBIDays[i]
	}

	eal := frequency * damageRate * fac.AssetValue
	biCost := frequency * biDays * fac.Revenue / 365
	eal += biCost

	probability := frequency
	if probability > 1 {
		probability = 1
	}
	returnPeriod := 0.0
	if frequency > 0 {
		returnPeriod = 1 / frequency
	}

	level := risk.LevelLow
	if fac.AssetValue > 0 {
		level = risk.FromLossRatio(eal / fac.AssetValue)
	}

	return physicaldomain.Assessment{
		Hazard:               climate.HazardTyphoon,
		RiskLevel:            level,
		AnnualProbability:    probability,
		PotentialLoss:        typhoonDamageRate[len(typhoonDamageRate)-1] * fac.AssetValue,
		ReturnPeriod:         returnPeriod,
		ClimateMultiplier:    freqMult,
		BusinessInterruption: biCost,
		ExpectedAnnualLoss:   eal,
	}
}

// windCorrection scales the regional strike frequency by the ratio of an
// observed peak wind speed to the regional historical peak, clamped to ±20%.
// A zero observation leaves the baseline untouched.
func windCorrection(observed, regional float64) float64 {
	if observed <= 0 || regional <= 0 {
		return 1
	}
	ratio := observed / regional
	if ratio < 0.8 {
		return 0.8
	}
	if ratio > 1.2 {
		return 1.2
	}
	return ratio
}

// shiftedCategoryDistribution transfers probability mass from categories 1-2
// into 4-5 proportional to the warming delta, then renormalizes so the
// distribution always sums to 1.
func shiftedCategoryDistribution(delta float64) []float64 {
	dist := make([]float64, len(typhoonCategoryBase))
	copy(dist, typhoonCategoryBase)
	if delta <= 0 {
		return dist
	}

	shift := typhoonShiftPerDegree * delta
	fromCat1 := dist[0] * shift
	fromCat2 := dist[1] * shift
	dist[0] -= fromCat1
	dist[1] -= fromCat2
	dist[3] += fromCat1
	dist[4] += fromCat2

	var sum float64
	for _, p := range dist {
		sum += p
	}
	for i := range dist {
		dist[i] /= sum
	}
	return dist
}
