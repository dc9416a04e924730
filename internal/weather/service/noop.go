package service

import (
	"context"

	weatherdomain "github.com/haneul-labs/haneul/internal/weather/domain"
)

// NoOpProvider always reports the override as unavailable, forcing the hazard
// models onto their hardcoded baselines. It serves deployments without the
// weather API enabled and keeps tests network-free.
type NoOpProvider struct{}

func (NoOpProvider) Baseline(ctx context.Context, lat, lon float64) (weatherdomain.Baseline, error) {
	return weatherdomain.Baseline{}, weatherdomain.ErrUnavailable
}
