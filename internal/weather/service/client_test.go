package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haneul-labs/haneul/internal/observability/metrics"
	weatherdomain "github.com/haneul-labs/haneul/internal/weather/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// archivePayload builds a synthetic daily archive with one row per year on
// July 15th, enough for the annual-maxima reduction.
func archivePayload(years int) archiveResponse {
	var payload archiveResponse
	firstYear := time.Now().UTC().Year() - years
	for y := 0; y < years; y++ {
		year := firstYear + y
		payload.Daily.Time = append(payload.Daily.Time, fmt.Sprintf("%d-07-15", year))
		// Vary the annual maximum so the Gumbel fit is non-degenerate.
		payload.Daily.PrecipitationSum = append(payload.Daily.PrecipitationSum, 100+float64(y%7)*15)
		payload.Daily.TemperatureMax = append(payload.Daily.TemperatureMax, 30+float64(y%5))
		payload.Daily.WindSpeedMax = append(payload.Daily.WindSpeedMax, 72+float64(y%3))
	}
	return payload
}

func TestClientBaseline_DerivesSiteStatistics(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latitude"))
		assert.NotEmpty(t, r.URL.Query().Get("start_date"))
		_ = json.NewEncoder(w).Encode(archivePayload(25))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, 2*time.Second, zap.NewNop())

	baseline, err := client.Baseline(context.Background(), 36.89, 126.63)
	assert.NoError(t, err)

	assert.Equal(t, 25, baseline.YearsOfRecord)
	assert.Greater(t, baseline.RainfallScale, 0.0)
	assert.Greater(t, baseline.RainfallLocation, 0.0)
	// Temperatures 33 and 34 occur in two of every five synthetic years.
	assert.Greater(t, baseline.HeatwaveDays, 0.0)
	// 74 km/h peak converts to ~20.6 m/s.
	assert.InDelta(t, 74.0/3.6, baseline.MaxWindSpeed, 1e-9)
}

func TestClientBaseline_ShortHistoryIsUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(archivePayload(12))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, 2*time.Second, zap.NewNop())

	_, err := client.Baseline(context.Background(), 36.89, 126.63)
	assert.ErrorIs(t, err, weatherdomain.ErrUnavailable)
}

func TestClientBaseline_UpstreamErrorIsUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, 2*time.Second, zap.NewNop())

	_, err := client.Baseline(context.Background(), 36.89, 126.63)
	assert.ErrorIs(t, err, weatherdomain.ErrUnavailable)
}

func TestClientBaseline_UnreachableHostIsUnavailable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, zap.NewNop())

	_, err := client.Baseline(context.Background(), 36.89, 126.63)
	assert.ErrorIs(t, err, weatherdomain.ErrUnavailable)
}

func TestDeriveBaseline_DegenerateRainfall(t *testing.T) {
	var payload archiveResponse
	firstYear := 1990
	for y := 0; y < 25; y++ {
		payload.Daily.Time = append(payload.Daily.Time, fmt.Sprintf("%d-07-15", firstYear+y))
		payload.Daily.PrecipitationSum = append(payload.Daily.PrecipitationSum, 100) // constant
		payload.Daily.TemperatureMax = append(payload.Daily.TemperatureMax, 30)
		payload.Daily.WindSpeedMax = append(payload.Daily.WindSpeedMax, 40)
	}

	_, err := deriveBaseline(payload)
	assert.Error(t, err)
}

type countingProvider struct {
	baseline weatherdomain.Baseline
	err      error
	calls    int
}

func (c *countingProvider) Baseline(ctx context.Context, lat, lon float64) (weatherdomain.Baseline, error) {
	c.calls++
	return c.baseline, c.err
}

func TestCachingProvider_MemoizesByCoordinate(t *testing.T) {
	inner := &countingProvider{baseline: weatherdomain.Baseline{RainfallScale: 40, YearsOfRecord: 25}}
	provider := NewCachingProvider(inner, nil, time.Hour, zap.NewNop(), nil)
	ctx := context.Background()

	first, err := provider.Baseline(ctx, 36.894, 126.631)
	assert.NoError(t, err)
	second, err := provider.Baseline(ctx, 36.894, 126.631)
	assert.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first, second)

	// Coordinates rounding to the same 0.01 grid share an entry.
	_, err = provider.Baseline(ctx, 36.8941, 126.6309)
	assert.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	// A different grid cell misses.
	_, err = provider.Baseline(ctx, 35.10, 129.04)
	assert.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func weatherFetchCounts(t *testing.T, registry *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := registry.Gather()
	assert.NoError(t, err)

	counts := map[string]float64{}
	for _, fam := range families {
		if fam.GetName() != "haneul_weather_fetches_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "outcome" {
					counts[label.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}
	return counts
}

func TestCachingProvider_CountsFetchOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	obs, err := metrics.New(registry)
	assert.NoError(t, err)

	inner := &countingProvider{baseline: weatherdomain.Baseline{YearsOfRecord: 25}}
	provider := NewCachingProvider(inner, nil, time.Hour, zap.NewNop(), obs)
	ctx := context.Background()

	_, err = provider.Baseline(ctx, 36.89, 126.63)
	assert.NoError(t, err)
	_, err = provider.Baseline(ctx, 36.89, 126.63)
	assert.NoError(t, err)

	inner.err = weatherdomain.ErrUnavailable
	_, err = provider.Baseline(ctx, 35.10, 129.04)
	assert.ErrorIs(t, err, weatherdomain.ErrUnavailable)

	counts := weatherFetchCounts(t, registry)
	assert.Equal(t, 1.0, counts["miss"])
	assert.Equal(t, 1.0, counts["hit"])
	assert.Equal(t, 1.0, counts["error"])
}

func TestCachingProvider_ErrorsAreNotCached(t *testing.T) {
	inner := &countingProvider{err: weatherdomain.ErrUnavailable}
	provider := NewCachingProvider(inner, nil, time.Hour, zap.NewNop(), nil)
	ctx := context.Background()

	_, err := provider.Baseline(ctx, 36.89, 126.63)
	assert.ErrorIs(t, err, weatherdomain.ErrUnavailable)
	_, err = provider.Baseline(ctx, 36.89, 126.63)
	assert.ErrorIs(t, err, weatherdomain.ErrUnavailable)

	assert.Equal(t, 2, inner.calls)
}
