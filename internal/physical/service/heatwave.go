package service

import (
	"github.com/haneul-labs/haneul/internal/climate"
	"github.com/haneul-labs/haneul/internal/facility"
	physicaldomain "github.com/haneul-labs/haneul/internal/physical/domain"
	"github.com/haneul-labs/haneul/internal/risk"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// assessHeatwave models chronic heat-stress losses: productivity declines on
// heatwave days split by the sector's outdoor/indoor exposure, plus equipment
// derating for heavy industry. No return period applies.
func assessHeatwave(fac facility.Facility, baselineDays float64, sc scenario.ID, year int) physicaldomain.Assessment {
	freqMult := climate.FrequencyMultiplier(climate.HazardHeatwave, sc, year)
	delta := climate.WarmingDelta(sc, year)

	days := baselineDays + heatwaveDaysPerDegree*delta

	outdoor, ok := outdoorShare[fac.Sector]
	if !ok {
		outdoor = defaultOutdoorShare
	}

	dailyRevenue := fac.Revenue / 365
	productivityLoss := days * dailyRevenue * (outdoor*outdoorLossRate + (1-outdoor)*indoorLossRate)

	var equipmentLoss float64
	if heavyIndustry[fac.Sector] {
		equipmentLoss = days * equipmentLossPerDay * fac.Revenue
	}

	eal := productivityLoss + equipmentLoss

	level := risk.LevelLow
	if fac.AssetValue > 0 {
		level = risk.FromLossRatio(eal / fac.AssetValue)
	}

	return physicaldomain.Assessment{
		Hazard:               climate.HazardHeatwave,
		RiskLevel:            level,
		AnnualProbability:    1, // chronic
		PotentialLoss:        eal,
		ReturnPeriod:         1,
		ClimateMultiplier:    freqMult,
		BusinessInterruption: productivityLoss,
		ExpectedAnnualLoss:   eal,
	}
}
