package service

import (
	"math"

	"github.com/haneul-labs/haneul/internal/climate"
)

// HazardEAL pairs a hazard with its expected annual loss for aggregation.
type HazardEAL struct {
	Hazard climate.Hazard
	EAL    float64
}

// CompoundEAL combines per-hazard expected annual losses into a single
// figure: the plain sum plus a pairwise correction ρ_ij*sqrt(EAL_i*EAL_j)
// over the curated correlation table. This is a first-order
// variance-covariance approximation, not a copula model. The result is
// floored at zero.
func CompoundEAL(parts []HazardEAL) float64 {
	var total float64
	for _, p := range parts {
		total += p.EAL
	}

	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			rho := correlation(parts[i].Hazard, parts[j].Hazard)
			if rho == 0 {
				continue
			}
			total += rho * math.Sqrt(parts[i].EAL*parts[j].EAL)
		}
	}

	if total < 0 {
		return 0
	}
	return total
}
