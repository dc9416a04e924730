package carbon

import (
	"math"
	"testing"

	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/scenario"
	"github.com/stretchr/testify/assert"
)

func TestPriceAt_MatchesPublishedAnchors(t *testing.T) {
	anchors := map[scenario.ID]map[int]float64{
		scenario.NetZero2050:       {2025: 75, 2030: 130, 2050: 250},
		scenario.Below2C:           {2025: 50, 2030: 90, 2050: 180},
		scenario.DelayedTransition: {2025: 10, 2030: 30, 2050: 200},
		scenario.CurrentPolicies:   {2025: 5, 2030: 10, 2050: 30},
	}

	for sc, years := range anchors {
		for year, want := range years {
			got := PriceAt(sc, year, RegimeGlobal)
			assert.InDelta(t, want, got, 0.01, "scenario %s year %d", sc, year)
		}
	}
}

func TestPriceTrajectory_NonDecreasingUnderTighteningPolicy(t *testing.T) {
	years := make([]int, 0, 26)
	for y := 2025; y <= 2050; y++ {
		years = append(years, y)
	}

	for _, sc := range scenario.List() {
		for _, regime := range Regimes() {
			points := PriceTrajectory(sc.ID, years, regime)
			assert.Len(t, points, len(years))
			for i := 1; i < len(points); i++ {
				assert.GreaterOrEqual(t, points[i].Price, points[i-1].Price,
					"scenario %s regime %s year %d", sc.ID, regime, points[i].Year)
			}
		}
	}
}

func TestPriceAt_KETSBelowGlobalForNetZero(t *testing.T) {
	// Korean allowances have traded well below the global net-zero path.
	global := PriceAt(scenario.NetZero2050, 2030, RegimeGlobal)
	kets := PriceAt(scenario.NetZero2050, 2030, RegimeKETS)

	assert.Less(t, kets, global)
	assert.Greater(t, kets, 0.0)
}

func TestPriceAt_EUCarriesPremium(t *testing.T) {
	global := PriceAt(scenario.Below2C, 2030, RegimeGlobal)
	eu := PriceAt(scenario.Below2C, 2030, RegimeEU)

	assert.InDelta(t, global*1.15, eu, 0.01)
}

func TestPriceAt_NeverNegative(t *testing.T) {
	for _, sc := range scenario.List() {
		for _, year := range []int{2020, 2025, 2060, 2100} {
			for _, regime := range Regimes() {
				assert.GreaterOrEqual(t, PriceAt(sc.ID, year, regime), 0.0)
			}
		}
	}
}

func TestParseRegime(t *testing.T) {
	regime, err := ParseRegime("kets")
	assert.NoError(t, err)
	assert.Equal(t, RegimeKETS, regime)

	_, err = ParseRegime("california")
	assert.ErrorIs(t, err, ErrUnknownRegime)
}

func TestMarginalAbatementCost_ZeroAtZeroReduction(t *testing.T) {
	for _, sector := range facility.Sectors() {
		assert.Equal(t, 0.0, MarginalAbatementCost(sector, 0, 2030))
		assert.Equal(t, 0.0, MarginalAbatementCost(sector, -0.1, 2030))
	}
}

func TestMarginalAbatementCost_NonDecreasingInReduction(t *testing.T) {
	for _, sector := range facility.Sectors() {
		previous := 0.0
		for _, fraction := range []float64{0.05, 0.15, 0.30, 0.50, 0.70, 0.85, 0.95} {
			cost := MarginalAbatementCost(sector, fraction, 2035)
			assert.GreaterOrEqual(t, cost, previous, "sector %s fraction %v", sector, fraction)
			previous = cost
		}
	}
}

func TestMarginalAbatementCost_WithinStackClimbsTiers(t *testing.T) {
	// Power's stack covers both fractions in 2040; the deeper cut lands on
	// a pricier tier.
	shallow := MarginalAbatementCost(facility.SectorPower, 0.90, 2040)
	deep := MarginalAbatementCost(facility.SectorPower, 0.99, 2040)

	assert.Greater(t, deep, shallow)
}

func TestMarginalAbatementCost_BackstopAboveStackCapacity(t *testing.T) {
	// Refining's three options cover 0.70 of emissions by 2035. At exactly
	// full capacity the marginal cost is the priciest deployable option;
	// past it the exponential backstop applies.
	refineryCCS := TechnologyCost(technologyStacks[facility.SectorRefining][2], 2035)

	atCapacity := MarginalAbatementCost(facility.SectorRefining, 0.70, 2035)
	assert.InDelta(t, refineryCCS, atCapacity, 1e-9)

	justBeyond := MarginalAbatementCost(facility.SectorRefining, 0.71, 2035)
	assert.Greater(t, justBeyond, atCapacity)

	deep := MarginalAbatementCost(facility.SectorRefining, 0.90, 2035)
	assert.InDelta(t, refineryCCS*(1+3*(math.Exp(0.20)-1)), deep, 1e-6)
}

func TestMarginalAbatementCost_LearningLowersCosts(t *testing.T) {
	early := MarginalAbatementCost(facility.SectorSteel, 0.40, 2028)
	late := MarginalAbatementCost(facility.SectorSteel, 0.40, 2045)

	assert.LessOrEqual(t, late, early)
}

func TestTechnologyCost_UnavailableBeforeIntroduction(t *testing.T) {
	tech := Technology{
		Name:          "h2_dri",
		BaseCost:      140,
		MaxReduction:  0.60,
		AvailableYear: 2032,
		LearningRate:  0.03,
	}

	assert.True(t, TechnologyCost(tech, 2030) > 1e17)
	assert.InDelta(t, 140, TechnologyCost(tech, 2024), 1e-9)
}

func TestFreeAllocation_DeclinesAnnually(t *testing.T) {
	baseline := 1_000_000.0

	now := FreeAllocation(facility.SectorSteel, baseline, 2024)
	later := FreeAllocation(facility.SectorSteel, baseline, 2030)

	assert.InDelta(t, 0.97, now.Ratio, 1e-9)
	assert.Less(t, later.Ratio, now.Ratio)
	assert.InDelta(t, later.Ratio*baseline, later.FreeTons, 1e-6)
}

func TestFreeAllocation_UncoveredSector(t *testing.T) {
	alloc := FreeAllocation(facility.SectorElectronics, 500_000, 2030)

	assert.Equal(t, 0.0, alloc.Ratio)
	assert.Equal(t, 0.0, alloc.FreeTons)
}

func TestFreeAllocation_NeverNegative(t *testing.T) {
	alloc := FreeAllocation(facility.SectorPower, 1_000_000, 2100)

	assert.GreaterOrEqual(t, alloc.Ratio, 0.0)
	assert.GreaterOrEqual(t, alloc.FreeTons, 0.0)
}

func TestTransitionCosts_GuardsDegenerateInputs(t *testing.T) {
	zero := TransitionCosts(1_000_000, 1_000_000, facility.SectorCement, 2030, 10)
	assert.Equal(t, 0.0, zero.TotalCost)

	zero = TransitionCosts(0, 0, facility.SectorCement, 2030, 10)
	assert.Equal(t, 0.0, zero.TotalCost)
}

func TestTransitionCosts_SplitsCapexAndOpex(t *testing.T) {
	breakdown := TransitionCosts(1_000_000, 600_000, facility.SectorCement, 2030, 10)

	assert.Greater(t, breakdown.TotalCost, 0.0)
	assert.InDelta(t, breakdown.TotalCost, breakdown.CAPEX+breakdown.AnnualOPEX*10, breakdown.TotalCost*1e-9)
	assert.Greater(t, breakdown.MAC, 0.0)
}
