package climate

import (
	"testing"

	"github.com/haneul-labs/haneul/internal/scenario"
	"github.com/stretchr/testify/assert"
)

func TestWarmingAt_OrderedByScenarioSeverity(t *testing.T) {
	for _, year := range []int{2040, 2050, 2070, 2100} {
		netZero := WarmingAt(scenario.NetZero2050, year)
		below2c := WarmingAt(scenario.Below2C, year)
		delayed := WarmingAt(scenario.DelayedTransition, year)
		current := WarmingAt(scenario.CurrentPolicies, year)

		assert.LessOrEqual(t, netZero, below2c, "year %d", year)
		assert.LessOrEqual(t, below2c, delayed, "year %d", year)
		assert.LessOrEqual(t, delayed, current, "year %d", year)
	}
}

func TestWarmingAt_UnknownScenarioUsesDefaultPathway(t *testing.T) {
	got := WarmingAt(scenario.ID("rcp_banana"), 2050)

	assert.Equal(t, WarmingAt(scenario.DelayedTransition, 2050), got)
}

func TestWarmingDelta_FlooredAtZero(t *testing.T) {
	// Every pathway starts above the 1.1C observed baseline, and the floor
	// covers early years.
	assert.GreaterOrEqual(t, WarmingDelta(scenario.NetZero2050, 2000), 0.0)
	assert.Greater(t, WarmingDelta(scenario.CurrentPolicies, 2050), 0.0)
}

func TestMultipliers_NeverBelowOne(t *testing.T) {
	for _, h := range Hazards() {
		for _, sc := range scenario.List() {
			for _, year := range []int{2020, 2035, 2050, 2100} {
				assert.GreaterOrEqual(t, FrequencyMultiplier(h, sc.ID, year), 1.0,
					"freq %s %s %d", h, sc.ID, year)
				assert.GreaterOrEqual(t, IntensityMultiplier(h, sc.ID, year), 1.0,
					"intensity %s %s %d", h, sc.ID, year)
			}
		}
	}
}

func TestMultipliers_SeaLevelRiseIsFlat(t *testing.T) {
	// SLR exposure is handled through cumulative rise, not event multipliers.
	assert.Equal(t, 1.0, FrequencyMultiplier(HazardSeaLevelRise, scenario.CurrentPolicies, 2100))
	assert.Equal(t, 1.0, IntensityMultiplier(HazardSeaLevelRise, scenario.CurrentPolicies, 2100))
}

func TestSeaLevelRiseMM_ZeroAtBaseYear(t *testing.T) {
	assert.Equal(t, 0.0, SeaLevelRiseMM(scenario.NetZero2050, 2025, 2025))
	assert.Equal(t, 0.0, SeaLevelRiseMM(scenario.NetZero2050, 2020, 2025))
}

func TestSeaLevelRiseMM_GrowsWithHorizonAndScenario(t *testing.T) {
	early := SeaLevelRiseMM(scenario.CurrentPolicies, 2035, 2025)
	late := SeaLevelRiseMM(scenario.CurrentPolicies, 2050, 2025)
	assert.Greater(t, late, early)

	benign := SeaLevelRiseMM(scenario.NetZero2050, 2050, 2025)
	assert.GreaterOrEqual(t, late, benign)

	// At minimum the baseline rate accrues every year.
	assert.GreaterOrEqual(t, early, 3.5*10)
}
