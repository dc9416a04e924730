// Package service implements the weather-override provider against an
// open-meteo style archive API, with a TTL cache in front.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	weatherdomain "github.com/haneul-labs/haneul/internal/weather/domain"
	"go.uber.org/zap"
)

const (
	// minYearsOfRecord is the shortest archive history accepted for Gumbel
	// parameter estimation.
	minYearsOfRecord = 20
	// heatwaveThresholdC matches the KMA heatwave advisory threshold.
	heatwaveThresholdC = 33.0
	// eulerMascheroni appears in the method-of-moments Gumbel fit.
	eulerMascheroni = 0.5772156649
)

// Client fetches archive daily observations and derives a Baseline.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.Named("weather.client"),
	}
}

type archiveResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		WindSpeedMax     []float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

// Baseline fetches roughly 25 years of daily history and estimates the site
// statistics. Any transport, decode, or history-length problem maps to
// ErrUnavailable so the caller can degrade to hardcoded baselines.
func (c *Client) Baseline(ctx context.Context, lat, lon float64) (weatherdomain.Baseline, error) {
	end := time.Now().UTC().AddDate(0, 0, -7)
	start := end.AddDate(-25, 0, 0)

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.2f", lat))
	q.Set("longitude", fmt.Sprintf("%.2f", lon))
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))
	q.Set("daily", "precipitation_sum,temperature_2m_max,wind_speed_10m_max")
	q.Set("timezone", "UTC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return weatherdomain.Baseline{}, weatherdomain.ErrUnavailable
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("archive fetch failed", zap.Error(err))
		return weatherdomain.Baseline{}, weatherdomain.ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("archive fetch rejected", zap.Int("status", resp.StatusCode))
		return weatherdomain.Baseline{}, weatherdomain.ErrUnavailable
	}

	var payload archiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weatherdomain.Baseline{}, weatherdomain.ErrUnavailable
	}

	baseline, err := deriveBaseline(payload)
	if err != nil {
		c.log.Warn("archive history insufficient", zap.Error(err))
		return weatherdomain.Baseline{}, weatherdomain.ErrUnavailable
	}
	return baseline, nil
}

// deriveBaseline reduces daily series to annual statistics and fits the
// rainfall Gumbel parameters by the method of moments.
func deriveBaseline(payload archiveResponse) (weatherdomain.Baseline, error) {
	daily := payload.Daily
	n := len(daily.Time)
	if n == 0 || len(daily.PrecipitationSum) != n || len(daily.TemperatureMax) != n {
		return weatherdomain.Baseline{}, fmt.Errorf("mismatched daily series")
	}

	type yearStats struct {
		maxRain      float64
		heatwaveDays int
		peakTemp     float64
	}
	years := map[int]*yearStats{}
	var maxWindKMH float64

	for i := 0; i < n; i++ {
		t, err := time.Parse("2006-01-02", daily.Time[i])
		if err != nil {
			continue
		}
		ys, ok := years[t.Year()]
		if !ok {
			ys = &yearStats{}
			years[t.Year()] = ys
		}
		if daily.PrecipitationSum[i] > ys.maxRain {
			ys.maxRain = daily.PrecipitationSum[i]
		}
		if daily.TemperatureMax[i] >= heatwaveThresholdC {
			ys.heatwaveDays++
		}
		if daily.TemperatureMax[i] > ys.peakTemp {
			ys.peakTemp = daily.TemperatureMax[i]
		}
		if i < len(daily.WindSpeedMax) && daily.WindSpeedMax[i] > maxWindKMH {
			maxWindKMH = daily.WindSpeedMax[i]
		}
	}

	if len(years) < minYearsOfRecord {
		return weatherdomain.Baseline{}, fmt.Errorf("only %d complete years of record", len(years))
	}

	maxima := make([]float64, 0, len(years))
	var heatwaveSum, peakSum float64
	for _, ys := range years {
		maxima = append(maxima, ys.maxRain)
		heatwaveSum += float64(ys.heatwaveDays)
		peakSum += ys.peakTemp
	}

	mean, std := momentStats(maxima)
	if std <= 0 {
		return weatherdomain.Baseline{}, fmt.Errorf("degenerate rainfall series")
	}
	scale := std * math.Sqrt(6) / math.Pi
	location := mean - eulerMascheroni*scale

	count := float64(len(years))
	return weatherdomain.Baseline{
		RainfallLocation: location,
		RainfallScale:    scale,
		HeatwaveDays:     heatwaveSum / count,
		SummerPeakTemp:   peakSum / count,
		MaxWindSpeed:     maxWindKMH / 3.6,
		YearsOfRecord:    len(years),
	}, nil
}

func momentStats(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	for _, v := range values {
		std += (v - mean) * (v - mean)
	}
	std = math.Sqrt(std / float64(len(values)))
	return mean, std
}
