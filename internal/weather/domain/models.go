// Package domain defines the capability interface for the optional
// weather-data override. The physical risk engine accepts either a fetched
// baseline or computes from hardcoded region parameters; a provider failure
// is always recovered locally, never surfaced to callers.
package domain

import (
	"context"
	"errors"
)

// ErrUnavailable signals a failed fetch or insufficient archive history. The
// hazard models treat it as "use the hardcoded baseline".
var ErrUnavailable = errors.New("external_data_unavailable")

// Baseline carries site-specific climate statistics estimated from archive
// observations.
type Baseline struct {
	// Gumbel parameters of the annual-maximum daily rainfall series, in mm.
	RainfallLocation float64 `json:"rainfall_location"`
	RainfallScale    float64 `json:"rainfall_scale"`
	// Mean annual count of days at or above the heatwave threshold.
	HeatwaveDays float64 `json:"heatwave_days"`
	// Mean summer peak temperature, °C.
	SummerPeakTemp float64 `json:"summer_peak_temp"`
	// Highest observed 10m wind speed, m/s.
	MaxWindSpeed float64 `json:"max_wind_speed"`
	// Number of complete years behind the estimates.
	YearsOfRecord int `json:"years_of_record"`
}

// Provider resolves a climate baseline for a coordinate. Implementations must
// honor ctx cancellation and bound any network fetch by the caller-supplied
// deadline.
type Provider interface {
	Baseline(ctx context.Context, lat, lon float64) (Baseline, error)
}
