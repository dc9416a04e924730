// Package domain defines the value objects produced by the physical hazard
// engine: per-hazard assessments, facility-level compound results, and the
// portfolio report.
package domain

import (
	"context"

	"github.com/haneul-labs/haneul/internal/climate"
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/risk"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// Assessment is one (facility, hazard) physical-risk result.
type Assessment struct {
	Hazard               climate.Hazard `json:"hazard"`
	RiskLevel            risk.Level     `json:"risk_level"`
	AnnualProbability    float64        `json:"annual_probability"`
	PotentialLoss        float64        `json:"potential_loss"`
	ReturnPeriod         float64        `json:"return_period"`
	ClimateMultiplier    float64        `json:"climate_multiplier"`
	BusinessInterruption float64        `json:"business_interruption_cost"`
	ExpectedAnnualLoss   float64        `json:"expected_annual_loss"`
}

// FacilityRisk combines the five hazard assessments for one facility into a
// compound expected annual loss.
type FacilityRisk struct {
	Facility     facility.Facility `json:"facility"`
	Region       facility.Region   `json:"region"`
	Assessments  []Assessment      `json:"assessments"`
	CompoundEAL  float64           `json:"compound_eal"`
	OverallLevel risk.Level        `json:"overall_risk_level"`
	// DataSource records whether this facility's baselines came from the
	// weather override or the hardcoded region parameters.
	DataSource string `json:"data_source"`
}

// RiskSummary counts facilities per overall tier.
type RiskSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Report is the portfolio-level physical risk assessment. Facility order
// matches input order.
type Report struct {
	TotalFacilities           int               `json:"total_facilities"`
	OverallRiskSummary        RiskSummary       `json:"overall_risk_summary"`
	Facilities                []FacilityRisk    `json:"facilities"`
	ModelStatus               map[string]string `json:"model_status"`
	Scenario                  scenario.Scenario `json:"scenario"`
	AssessmentYear            int               `json:"assessment_year"`
	WarmingAbovePreindustrial float64           `json:"warming_above_preindustrial"`
	// DataSource truthfully reflects whether the weather override was
	// exercised successfully, not merely requested.
	DataSource       string   `json:"data_source"`
	MethodologyNotes []string `json:"methodology_notes"`
}

// Request parameterizes one assessment run. Zero values select the defaults:
// the intermediate scenario, year 2050, hardcoded baselines, and the built-in
// sample portfolio.
type Request struct {
	Scenario   scenario.ID
	Year       int
	UseAPIData bool
	Facilities []facility.Facility
}

// Service is the physical hazard engine. Pure and safe for concurrent use;
// the optional weather override is the only collaborator that touches the
// network, and its failures always degrade to hardcoded baselines.
type Service interface {
	Assess(ctx context.Context, req Request) (*Report, error)
}

// Data source values reported per facility and per report.
const (
	DataSourceBaseline = "hardcoded_baselines"
	DataSourceWeather  = "weather_api_override"
)
