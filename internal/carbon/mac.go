package carbon

import (
	"math"
	"sort"

	"github.com/haneul-labs/haneul/internal/facility"
)

// sectorBaseCost is the flat per-sector abatement cost (USD/tCO2e) used when
// no technology stack applies. Unknown sectors get the published default.
var sectorBaseCost = map[facility.Sector]float64{
	facility.SectorPower:         60,
	facility.SectorSteel:         95,
	facility.SectorCement:        80,
	facility.SectorPetrochemical: 90,
	facility.SectorRefining:      85,
	facility.SectorShipbuilding:  55,
	facility.SectorAutomotive:    45,
	facility.SectorElectronics:   40,
	facility.SectorConstruction:  50,
	facility.SectorLogistics:     65,
}

const defaultBaseCost = 70.0

// BaseCost returns the flat per-sector abatement cost.
func BaseCost(sector facility.Sector) float64 {
	if c, ok := sectorBaseCost[sector]; ok {
		return c
	}
	return defaultBaseCost
}

// MarginalAbatementCost returns the USD/tCO2e cost of the marginal technology
// needed to reach reductionFraction of sector emissions in the given year.
//
// Technologies available by the target year are sorted by projected cost and
// consumed greedily until their cumulative capacity covers the target. When
// the full stack is insufficient, an exponential backstop penalty scales the
// most expensive option by the overshoot. The tiered shape mirrors empirical
// abatement curves: cheap measures first, sharply rising cost near full
// decarbonization.
func MarginalAbatementCost(sector facility.Sector, reductionFraction float64, year int) float64 {
	if reductionFraction <= 0 {
		return 0
	}

	stack, ok := technologyStacks[sector]
	if !ok {
		return steppedBaseCost(sector, reductionFraction)
	}

	type pricedTech struct {
		cost     float64
		capacity float64
	}
	available := make([]pricedTech, 0, len(stack))
	for _, tech := range stack {
		cost := TechnologyCost(tech, year)
		if math.IsInf(cost, 1) {
			continue
		}
		available = append(available, pricedTech{cost: cost, capacity: tech.MaxReduction})
	}
	if len(available) == 0 {
		// Nothing deployable yet; only expensive bespoke measures exist.
		return BaseCost(sector) * 3
	}

	sort.Slice(available, func(i, j int) bool { return available[i].cost < available[j].cost })

	var cumulative float64
	for _, t := range available {
		cumulative += t.capacity
		if cumulative >= reductionFraction {
			return t.cost
		}
	}

	// Stack exhausted: backstop penalty proportional to the overshoot.
	overshoot := reductionFraction - cumulative
	mostExpensive := available[len(available)-1].cost
	return mostExpensive * (1 + 3*(math.Exp(overshoot)-1))
}

// steppedBaseCost is the 4-tier fallback curve for sectors without a
// technology stack.
func steppedBaseCost(sector facility.Sector, reductionFraction float64) float64 {
	base := BaseCost(sector)
	switch {
	case reductionFraction <= 0.25:
		return base * 0.5
	case reductionFraction <= 0.50:
		return base
	case reductionFraction <= 0.75:
		return base * 2
	default:
		return base * 4
	}
}
