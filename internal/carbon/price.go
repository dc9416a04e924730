package carbon

import (
	"math"

	"github.com/haneul-labs/haneul/internal/numerics"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// PricePoint is one year of a carbon price trajectory, in USD/tCO2e.
type PricePoint struct {
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}

const (
	// krwPerUSD is the fixed conversion rate applied to K-ETS prices.
	krwPerUSD = 1350.0
	// euPremium is the flat multiplier distinguishing the EU benchmark
	// variant from the global path.
	euPremium = 1.15
)

// globalPaths holds the 8-knot USD price paths per scenario. The 2025, 2030
// and 2050 knots deliberately equal the legacy scenario anchors; downstream
// compliance reports embed those three figures.
var globalPaths = map[scenario.ID]map[int]float64{
	scenario.NetZero2050: {
		2025: 75, 2030: 130, 2035: 160, 2040: 190, 2045: 220, 2050: 250, 2055: 270, 2060: 285,
	},
	scenario.Below2C: {
		2025: 50, 2030: 90, 2035: 115, 2040: 140, 2045: 160, 2050: 180, 2055: 192, 2060: 200,
	},
	scenario.DelayedTransition: {
		2025: 10, 2030: 30, 2035: 95, 2040: 140, 2045: 175, 2050: 200, 2055: 215, 2060: 225,
	},
	scenario.CurrentPolicies: {
		2025: 5, 2030: 10, 2035: 14, 2040: 18, 2045: 24, 2050: 30, 2055: 33, 2060: 36,
	},
}

// ketsPaths holds the K-ETS allowance price knots in KRW/tCO2e.
var ketsPaths = map[scenario.ID]map[int]float64{
	scenario.NetZero2050: {
		2025: 30_000, 2030: 60_000, 2040: 120_000, 2050: 200_000,
	},
	scenario.Below2C: {
		2025: 25_000, 2030: 45_000, 2040: 90_000, 2050: 150_000,
	},
	scenario.DelayedTransition: {
		2025: 12_000, 2030: 20_000, 2040: 80_000, 2050: 160_000,
	},
	scenario.CurrentPolicies: {
		2025: 9_000, 2030: 12_000, 2040: 20_000, 2050: 30_000,
	},
}

// PriceTrajectory returns the carbon price for each requested year under the
// given scenario and regime. Unknown scenarios fall back to the legacy
// three-anchor path of the default archetype. Prices are floored at zero and
// rounded to two decimals.
func PriceTrajectory(sc scenario.ID, years []int, regime Regime) []PricePoint {
	out := make([]PricePoint, 0, len(years))
	for _, year := range years {
		out = append(out, PricePoint{Year: year, Price: PriceAt(sc, year, regime)})
	}
	return out
}

// PriceAt returns the USD carbon price for a single scenario/year/regime.
func PriceAt(sc scenario.ID, year int, regime Regime) float64 {
	var price float64
	if regime == RegimeKETS {
		price = ketsPriceUSD(sc, year)
	} else {
		price = globalPrice(sc, year)
		if regime == RegimeEU {
			price *= euPremium
		}
	}
	if price < 0 {
		price = 0
	}
	return math.Round(price*100) / 100
}

func globalPrice(sc scenario.ID, year int) float64 {
	knots, ok := globalPaths[sc]
	if !ok {
		knots = legacyAnchors(sc)
	}
	v, _ := numerics.InterpolateLinear(knots, float64(year))
	return v
}

func ketsPriceUSD(sc scenario.ID, year int) float64 {
	knots, ok := ketsPaths[sc]
	if !ok {
		knots = ketsPaths[scenario.GetOrDefault(sc).ID]
	}
	krw, _ := numerics.InterpolateLinear(knots, float64(year))
	return krw / krwPerUSD
}

func legacyAnchors(sc scenario.ID) map[int]float64 {
	anchors := scenario.GetOrDefault(sc).Anchors
	return map[int]float64{
		2025: anchors.Y2025,
		2030: anchors.Y2030,
		2050: anchors.Y2050,
	}
}
