package domain

import (
	"context"

	"github.com/haneul-labs/haneul/internal/carbon"
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// Service is the transition risk simulator. A nil or empty facility slice
// resolves to the built-in sample portfolio; callers substituting their own
// set are indistinguishable from the default path. All methods are pure and
// safe for concurrent use.
type Service interface {
	Analyse(ctx context.Context, sc scenario.ID, regime carbon.Regime, facilities []facility.Facility) (*Analysis, error)
	Summary(ctx context.Context, sc scenario.ID, regime carbon.Regime, facilities []facility.Facility) (*Summary, error)
	Compare(ctx context.Context, regime carbon.Regime, facilities []facility.Facility) (*Comparison, error)
}
