// Package numerics holds the shared math primitives used across the risk
// engine: discounting, sparse-knot interpolation, extreme-value quantiles,
// logistic diffusion, and scenario-adjusted discount rates.
package numerics

import (
	"errors"
	"math"
	"sort"
)

// ErrInvalidInput flags malformed numeric arguments, e.g. an empty
// interpolation table or a non-positive Gumbel scale.
var ErrInvalidInput = errors.New("invalid_input")

// PresentValue discounts each cashflow by (1+rate)^(year-baseYear) and sums
// the result. Entries before baseYear contribute nothing.
func PresentValue(cashflows map[int]float64, rate float64, baseYear int) float64 {
	var total float64
	for year, amount := range cashflows {
		if year < baseYear {
			continue
		}
		total += amount / math.Pow(1+rate, float64(year-baseYear))
	}
	return total
}

// InterpolateLinear evaluates a piecewise-linear curve defined by sparse
// year->value knots. Targets outside the knot range are extrapolated from the
// two nearest boundary knots, not clamped.
func InterpolateLinear(knots map[int]float64, target float64) (float64, error) {
	if len(knots) == 0 {
		return 0, ErrInvalidInput
	}

	years := make([]int, 0, len(knots))
	for y := range knots {
		years = append(years, y)
	}
	sort.Ints(years)

	if len(years) == 1 {
		return knots[years[0]], nil
	}

	first, last := years[0], years[len(years)-1]
	switch {
	case target <= float64(first):
		return lerp(float64(first), knots[first], float64(years[1]), knots[years[1]], target), nil
	case target >= float64(last):
		prev := years[len(years)-2]
		return lerp(float64(prev), knots[prev], float64(last), knots[last], target), nil
	}

	for i := 1; i < len(years); i++ {
		if target <= float64(years[i]) {
			lo, hi := years[i-1], years[i]
			return lerp(float64(lo), knots[lo], float64(hi), knots[hi], target), nil
		}
	}
	return knots[last], nil
}

func lerp(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// GumbelQuantile returns the Gumbel (Type-I extreme value) quantile for the
// given return period: location - scale*ln(-ln(1-1/T)).
func GumbelQuantile(location, scale, returnPeriod float64) (float64, error) {
	if scale <= 0 || returnPeriod <= 1 {
		return 0, ErrInvalidInput
	}
	return location - scale*math.Log(-math.Log(1-1/returnPeriod)), nil
}

// LogisticCurve evaluates max / (1 + exp(-steepness*(t-midpoint))). The
// exponent is clamped to ±500 so extreme t never overflows.
func LogisticCurve(t, max, steepness, midpoint float64) float64 {
	exponent := -steepness * (t - midpoint)
	if exponent > 500 {
		exponent = 500
	} else if exponent < -500 {
		exponent = -500
	}
	return max / (1 + math.Exp(exponent))
}

// ExceedanceProbability returns the probability of at least one event with the
// given return period occurring within the horizon: 1-(1-1/T)^n.
func ExceedanceProbability(returnPeriod float64, horizonYears int) float64 {
	if returnPeriod <= 0 {
		return 1.0
	}
	return 1 - math.Pow(1-1/returnPeriod, float64(horizonYears))
}
