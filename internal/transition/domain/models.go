// Package domain defines the value objects produced by the transition risk
// simulator. Everything here is constructed fresh per computation and never
// persisted.
package domain

import (
	"github.com/haneul-labs/haneul/internal/carbon"
	"github.com/haneul-labs/haneul/internal/facility"
	"github.com/haneul-labs/haneul/internal/risk"
	"github.com/haneul-labs/haneul/internal/scenario"
)

// AnnualImpact is one (facility, scenario, year) transition-risk result.
// All amounts are USD; EBITDADelta is signed (losses negative).
type AnnualImpact struct {
	Year              int     `json:"year"`
	CarbonCost        float64 `json:"carbon_cost"`
	TransitionCAPEX   float64 `json:"transition_capex"`
	TransitionOPEX    float64 `json:"transition_opex"`
	EnergyCostDelta   float64 `json:"energy_cost_delta"`
	RevenueImpact     float64 `json:"revenue_impact"`
	StrandedWritedown float64 `json:"stranded_writedown"`
	Scope3Cost        float64 `json:"scope3_cost"`
	EBITDADelta       float64 `json:"ebitda_delta"`
}

// FacilityResult is the full transition-risk projection for one facility.
type FacilityResult struct {
	Facility     facility.Facility `json:"facility"`
	Impacts      []AnnualImpact    `json:"annual_impacts"`
	NPV          float64           `json:"npv"`
	DiscountRate float64           `json:"discount_rate"`
	RiskLevel    risk.Level        `json:"risk_level"`
}

// Analysis is the portfolio-level result of one scenario run. Facility order
// matches the input order.
type Analysis struct {
	Scenario               scenario.Scenario `json:"scenario"`
	Regime                 carbon.Regime     `json:"pricing_regime"`
	Facilities             []FacilityResult  `json:"facilities"`
	TotalNPV               float64           `json:"total_npv"`
	TotalBaselineEmissions float64           `json:"total_baseline_emissions"`
	AvgRiskLevel           risk.Level        `json:"avg_risk_level"`
}

// Summary is the condensed view of an Analysis used by dashboards.
type Summary struct {
	ScenarioID     scenario.ID   `json:"scenario_id"`
	ScenarioName   string        `json:"scenario_name"`
	Regime         carbon.Regime `json:"pricing_regime"`
	FacilityCount  int           `json:"facility_count"`
	TotalNPV       float64       `json:"total_npv"`
	TotalEmissions float64       `json:"total_baseline_emissions"`
	AvgRiskLevel   risk.Level    `json:"avg_risk_level"`
	HighRiskCount  int           `json:"high_risk_count"`
}

// Comparison places the per-scenario summaries side by side under one regime.
type Comparison struct {
	Regime    carbon.Regime `json:"pricing_regime"`
	Scenarios []Summary     `json:"scenarios"`
}
