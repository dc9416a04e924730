// Package risk holds the shared three-tier risk classification used by both
// the transition simulator and the physical hazard engine.
package risk

// Level is a facility risk tier.
type Level string

const (
	LevelHigh   Level = "HIGH"
	LevelMedium Level = "MEDIUM"
	LevelLow    Level = "LOW"
)

// NPV-to-asset thresholds shared by transition NPV and compound physical EAL
// classification.
const (
	highAssetRatio   = -0.15
	mediumAssetRatio = -0.05
)

// FromAssetRatio classifies a (signed) impact expressed as a fraction of
// asset value: <= -15% is High, <= -5% Medium, otherwise Low.
func FromAssetRatio(ratio float64) Level {
	switch {
	case ratio <= highAssetRatio:
		return LevelHigh
	case ratio <= mediumAssetRatio:
		return LevelMedium
	default:
		return LevelLow
	}
}

// FromLossRatio classifies an expected annual loss as a fraction of assets:
// >= 0.5% is High, >= 0.1% Medium, otherwise Low. Used per hazard.
func FromLossRatio(ratio float64) Level {
	switch {
	case ratio >= 0.005:
		return LevelHigh
	case ratio >= 0.001:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Majority returns the most frequent level in the slice. Ties resolve toward
// the more severe tier; an empty slice is Low.
func Majority(levels []Level) Level {
	counts := map[Level]int{}
	for _, l := range levels {
		counts[l]++
	}
	best := LevelLow
	bestCount := 0
	for _, l := range []Level{LevelHigh, LevelMedium, LevelLow} {
		if counts[l] > bestCount {
			best = l
			bestCount = counts[l]
		}
	}
	return best
}
