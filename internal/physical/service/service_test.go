package service

import (
	"context"
	"errors"
	"testing"

	"github.com/haneul-labs/haneul/internal/climate"
	"github.com/haneul-labs/haneul/internal/config"
	"github.com/haneul-labs/haneul/internal/facility"
	physicaldomain "github.com/haneul-labs/haneul/internal/physical/domain"
	"github.com/haneul-labs/haneul/internal/scenario"
	weatherdomain "github.com/haneul-labs/haneul/internal/weather/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubProvider struct {
	baseline weatherdomain.Baseline
	err      error
	calls    int
}

func (s *stubProvider) Baseline(ctx context.Context, lat, lon float64) (weatherdomain.Baseline, error) {
	s.calls++
	return s.baseline, s.err
}

func newTestService(p weatherdomain.Provider) *Service {
	if p == nil {
		p = &stubProvider{err: weatherdomain.ErrUnavailable}
	}
	return &Service{
		log:         zap.NewNop(),
		weather:     p,
		assumptions: config.DefaultAssumptions(),
	}
}

func TestAssess_DefaultsAndShape(t *testing.T) {
	svc := newTestService(nil)

	report, err := svc.Assess(context.Background(), physicaldomain.Request{})
	assert.NoError(t, err)

	assert.Equal(t, len(facility.SamplePortfolio()), report.TotalFacilities)
	assert.Equal(t, scenario.DelayedTransition, report.Scenario.ID)
	assert.Equal(t, 2050, report.AssessmentYear)
	assert.Equal(t, physicaldomain.DataSourceBaseline, report.DataSource)
	assert.Greater(t, report.WarmingAbovePreindustrial, 1.1)
	assert.NotEmpty(t, report.MethodologyNotes)

	for _, h := range climate.Hazards() {
		assert.Equal(t, "operational", report.ModelStatus[string(h)])
	}
	for _, fr := range report.Facilities {
		assert.Len(t, fr.Assessments, 5)
		assert.GreaterOrEqual(t, fr.CompoundEAL, 0.0)
	}
	total := report.OverallRiskSummary.High + report.OverallRiskSummary.Medium + report.OverallRiskSummary.Low
	assert.Equal(t, report.TotalFacilities, total)
}

func TestAssess_WarmerScenarioNeverReducesLosses(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	benign, err := svc.Assess(ctx, physicaldomain.Request{Scenario: scenario.NetZero2050, Year: 2050})
	assert.NoError(t, err)
	severe, err := svc.Assess(ctx, physicaldomain.Request{Scenario: scenario.CurrentPolicies, Year: 2050})
	assert.NoError(t, err)

	var benignTotal, severeTotal float64
	for i := range benign.Facilities {
		benignTotal += benign.Facilities[i].CompoundEAL
		severeTotal += severe.Facilities[i].CompoundEAL
	}
	assert.GreaterOrEqual(t, severeTotal, benignTotal)
}

func TestAssess_WeatherFailureFallsBackSilently(t *testing.T) {
	stub := &stubProvider{err: weatherdomain.ErrUnavailable}
	svc := newTestService(stub)

	report, err := svc.Assess(context.Background(), physicaldomain.Request{UseAPIData: true})
	assert.NoError(t, err)

	assert.Greater(t, stub.calls, 0)
	assert.Equal(t, physicaldomain.DataSourceBaseline, report.DataSource)
	for _, fr := range report.Facilities {
		assert.Equal(t, physicaldomain.DataSourceBaseline, fr.DataSource)
	}
}

func TestAssess_WeatherOverrideReportedTruthfully(t *testing.T) {
	stub := &stubProvider{baseline: weatherdomain.Baseline{
		RainfallLocation: 140,
		RainfallScale:    42,
		HeatwaveDays:     18,
		SummerPeakTemp:   35.2,
		MaxWindSpeed:     38,
		YearsOfRecord:    25,
	}}
	svc := newTestService(stub)

	report, err := svc.Assess(context.Background(), physicaldomain.Request{UseAPIData: true})
	assert.NoError(t, err)

	assert.Equal(t, physicaldomain.DataSourceWeather, report.DataSource)
	for _, fr := range report.Facilities {
		assert.Equal(t, physicaldomain.DataSourceWeather, fr.DataSource)
	}
}

func TestAssess_WithoutOverrideNeverCallsProvider(t *testing.T) {
	stub := &stubProvider{}
	svc := newTestService(stub)

	_, err := svc.Assess(context.Background(), physicaldomain.Request{UseAPIData: false})
	assert.NoError(t, err)
	assert.Equal(t, 0, stub.calls)
}

func TestAssess_NonSentinelProviderErrorStillRecovers(t *testing.T) {
	stub := &stubProvider{err: errors.New("dial tcp: connection refused")}
	svc := newTestService(stub)

	report, err := svc.Assess(context.Background(), physicaldomain.Request{UseAPIData: true})
	assert.NoError(t, err)
	assert.Equal(t, physicaldomain.DataSourceBaseline, report.DataSource)
}

func TestAssess_InlandFacilityHasNoSeaLevelExposure(t *testing.T) {
	svc := newTestService(nil)
	inland := facility.Facility{
		ID:         "FAC-INLAND",
		Sector:     facility.SectorCement,
		Latitude:   36.98,
		Longitude:  128.37,
		Revenue:    200_000_000,
		AssetValue: 500_000_000,
	}

	report, err := svc.Assess(context.Background(), physicaldomain.Request{
		Scenario:   scenario.CurrentPolicies,
		Year:       2050,
		Facilities: []facility.Facility{inland},
	})
	assert.NoError(t, err)

	fr := report.Facilities[0]
	assert.False(t, fr.Region.Coastal())
	for _, a := range fr.Assessments {
		if a.Hazard == climate.HazardSeaLevelRise {
			assert.Equal(t, 0.0, a.ExpectedAnnualLoss)
		}
	}
}

func TestShiftedCategoryDistribution_SumsToOne(t *testing.T) {
	for _, delta := range []float64{0, 0.3, 0.8, 1.5, 3.0} {
		dist := shiftedCategoryDistribution(delta)
		assert.Len(t, dist, 5)
		sum := 0.0
		for _, p := range dist {
			assert.GreaterOrEqual(t, p, 0.0, "delta %v", delta)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 0.01, "delta %v", delta)
	}
}

func TestShiftedCategoryDistribution_WarmingFavorsSevereCategories(t *testing.T) {
	baseline := shiftedCategoryDistribution(0)
	shifted := shiftedCategoryDistribution(2.0)

	assert.Greater(t, shifted[3]+shifted[4], baseline[3]+baseline[4])
}

func TestCompoundEAL_ZeroCorrelationsAreAdditive(t *testing.T) {
	// Heatwave and sea-level rise carry no tabulated correlation.
	parts := []HazardEAL{
		{Hazard: climate.HazardHeatwave, EAL: 1000},
		{Hazard: climate.HazardSeaLevelRise, EAL: 500},
	}

	assert.InDelta(t, 1500, CompoundEAL(parts), 1e-9)
}

func TestCompoundEAL_PositiveCorrelationAddsPremium(t *testing.T) {
	parts := []HazardEAL{
		{Hazard: climate.HazardFlood, EAL: 1000},
		{Hazard: climate.HazardTyphoon, EAL: 1000},
	}

	// Sum plus 0.40 * sqrt(1000*1000).
	assert.InDelta(t, 2400, CompoundEAL(parts), 1e-9)
}

func TestCompoundEAL_ZeroLossContributesNothing(t *testing.T) {
	parts := []HazardEAL{
		{Hazard: climate.HazardFlood, EAL: 1000},
		{Hazard: climate.HazardTyphoon, EAL: 0},
	}

	assert.InDelta(t, 1000, CompoundEAL(parts), 1e-9)
}

func TestCompoundEAL_NeverNegative(t *testing.T) {
	// Strong negative correlations cannot drive the total below zero.
	parts := []HazardEAL{
		{Hazard: climate.HazardFlood, EAL: 1},
		{Hazard: climate.HazardDrought, EAL: 1},
		{Hazard: climate.HazardHeatwave, EAL: 1},
	}

	assert.GreaterOrEqual(t, CompoundEAL(parts), 0.0)
	assert.Equal(t, 0.0, CompoundEAL(nil))
}

func TestWindCorrection_Clamped(t *testing.T) {
	assert.InDelta(t, 1.2, windCorrection(100, 30), 1e-9)
	assert.InDelta(t, 0.8, windCorrection(10, 30), 1e-9)
	assert.InDelta(t, 1.0, windCorrection(30, 30), 1e-9)
	// Missing observation leaves the regional statistics untouched.
	assert.InDelta(t, 1.0, windCorrection(0, 30), 1e-9)
}

func TestFloodAssessment_IntensifiesWithWarming(t *testing.T) {
	fac := facility.SamplePortfolio()[0]
	base := regionBaselines[facility.RegionCoastalWest]

	benign := assessFlood(fac, base, scenario.NetZero2050, 2050)
	severe := assessFlood(fac, base, scenario.CurrentPolicies, 2050)

	assert.GreaterOrEqual(t, severe.ExpectedAnnualLoss, benign.ExpectedAnnualLoss)
	assert.Greater(t, severe.ClimateMultiplier, 1.0)
}
