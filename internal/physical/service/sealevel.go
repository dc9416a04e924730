package service

import (
	"github.com/haneul-labs/haneul/internal/climate"
	"github.com/haneul-labs/haneul/internal/facility"
	physicaldomain "github.com/haneul-labs/haneul/internal/physical/domain"
	"github.com/haneul-labs/haneul/internal/risk"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// assessSeaLevel models chronic inundation exposure for coastal districts.
// Cumulative rise maps through the depth-damage curve at a dampened, capped
// rate reflecting partial adaptation, annualized over a fixed horizon.
// Non-coastal regions return a near-zero placeholder.
func assessSeaLevel(fac facility.Facility, region facility.Region, sc scenario.ID, year, baseYear int) physicaldomain.Assessment {
	if !region.Coastal() {
		return physicaldomain.Assessment{
			Hazard:            climate.HazardSeaLevelRise,
			RiskLevel:         risk.LevelLow,
			AnnualProbability: 0,
			ReturnPeriod:      0,
			ClimateMultiplier: 1,
		}
	}

	riseMM := climate.SeaLevelRiseMM(sc, year, baseYear)
	depthCM := riseMM / 10

	damage := depthDamage(depthCM) * slrDampening
	if damage > slrDamageCap {
		damage = slrDamageCap
	}

	potentialLoss := fac.AssetValue * damage
	eal := potentialLoss / slrHorizonYears

	level := risk.LevelLow
	if fac.AssetValue > 0 {
		level = risk.FromLossRatio(eal / fac.AssetValue)
	}

	return physicaldomain.Assessment{
		Hazard:             climate.HazardSeaLevelRise,
		RiskLevel:          level,
		AnnualProbability:  1, // chronic
		PotentialLoss:      potentialLoss,
		ReturnPeriod:       1,
		ClimateMultiplier:  1,
		ExpectedAnnualLoss: eal,
	}
}
