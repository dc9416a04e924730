// Package metrics exposes the engine's prometheus instruments.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the application-level instruments.
type Metrics struct {
	transitionAnalyses *prometheus.CounterVec
	analysisDuration   *prometheus.HistogramVec
	physicalReports    *prometheus.CounterVec
	assessmentDuration prometheus.Histogram
	weatherFetches     *prometheus.CounterVec
	facilitySets       prometheus.Counter
}

// NewRegistry builds the process registry with runtime collectors attached.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// New registers the engine instruments on the registry.
func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		transitionAnalyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haneul_transition_analyses_total",
			Help: "Transition risk analyses served, by scenario and pricing regime.",
		}, []string{"scenario", "regime"}),
		analysisDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "haneul_transition_analysis_duration_seconds",
			Help:    "Wall time spent computing a transition analysis.",
			Buckets: prometheus.DefBuckets,
		}, []string{"scenario"}),
		physicalReports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haneul_physical_reports_total",
			Help: "Physical hazard reports served, by scenario and data source.",
		}, []string{"scenario", "data_source"}),
		assessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "haneul_physical_assessment_duration_seconds",
			Help:    "Wall time spent assessing a full portfolio.",
			Buckets: prometheus.DefBuckets,
		}),
		weatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haneul_weather_fetches_total",
			Help: "Weather baseline lookups, by outcome.",
		}, []string{"outcome"}),
		facilitySets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "haneul_facility_sets_created_total",
			Help: "Uploaded facility sets accepted for analysis.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.transitionAnalyses,
		m.analysisDuration,
		m.physicalReports,
		m.assessmentDuration,
		m.weatherFetches,
		m.facilitySets,
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordTransitionAnalysis counts one served analysis and its duration.
func (m *Metrics) RecordTransitionAnalysis(scenario, regime string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.transitionAnalyses.WithLabelValues(scenario, regime).Inc()
	m.analysisDuration.WithLabelValues(scenario).Observe(elapsed.Seconds())
}

// RecordPhysicalReport counts one served hazard report and its duration.
func (m *Metrics) RecordPhysicalReport(scenario, dataSource string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.physicalReports.WithLabelValues(scenario, dataSource).Inc()
	m.assessmentDuration.Observe(elapsed.Seconds())
}

// RecordWeatherFetch counts one upstream baseline lookup.
// Outcome is one of "hit", "miss", "error".
func (m *Metrics) RecordWeatherFetch(outcome string) {
	if m == nil {
		return
	}
	m.weatherFetches.WithLabelValues(outcome).Inc()
}

// RecordFacilitySet counts one accepted facility upload.
func (m *Metrics) RecordFacilitySet() {
	if m == nil {
		return
	}
	m.facilitySets.Inc()
}
