package model

import (
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
)

// PropertyMetrics bundles every per-property calculator result.
// Money is in major units; Display holds pre-formatted strings for the
// headline amounts in the property's currency.
type PropertyMetrics struct {
	PropertyID       string                         `json:"propertyId"`
	Name             string                         `json:"name"`
	Currency         string                         `json:"currency"`
	EvaluationYear   int                            `json:"evaluationYear"`
	MarketValue      float64                        `json:"marketValue"`
	AnnualNetYield   float64                        `json:"annualNetYield"`
	CapRate          float64                        `json:"capRate"`
	CashOnCash       float64                        `json:"cashOnCash"`
	Efficiency       float64                        `json:"efficiency"`
	Amortization     finance.Amortization           `json:"amortization"`
	RealAppreciation finance.RealAppreciationResult `json:"realAppreciation"`
	TrueROI          finance.TrueROIResult          `json:"trueRoi"`
	HistoricalMIRR   MIRRSummary                    `json:"historicalMirr"`
	Display          map[string]string              `json:"display"`
}

// Score reduces the metrics to the input of the portfolio aggregator.
func (m PropertyMetrics) Score(monthlyRent, monthlyExpenses float64) finance.PropertyScore {
	return finance.PropertyScore{
		ID:              m.PropertyID,
		RealROI:         m.RealAppreciation.RealAppreciationRate,
		MonthlyRent:     monthlyRent,
		MonthlyExpenses: monthlyExpenses,
		MarketValue:     m.MarketValue,
	}
}

// PropertyProjection is the projection table of one property.
type PropertyProjection struct {
	PropertyID        string                  `json:"propertyId"`
	Country           string                  `json:"country"`
	InflationAdjusted bool                    `json:"inflationAdjusted"`
	Rows              []finance.ProjectionRow `json:"rows"`
}

// PortfolioSummary is the aggregated view over all properties.
type PortfolioSummary struct {
	Score           finance.PortfolioScore `json:"score"`
	Properties      []PropertyMetrics      `json:"properties"`
	CashAtHandLabel string                 `json:"cashAtHandLabel"`
}

// PortfolioSnapshot is a stored portfolio score taken at a point in time.
type PortfolioSnapshot struct {
	ID      string                 `json:"id"`
	TakenAt time.Time              `json:"takenAt"`
	Score   finance.PortfolioScore `json:"score"`
}

// ProjectionFilter selects the projection horizon and mode.
type ProjectionFilter struct {
	Years             []int
	InflationAdjusted bool
}

// AmortizationResult is the loan summary with an optional monthly schedule.
type AmortizationResult struct {
	finance.Amortization
	Schedule []finance.AmortizationRow `json:"schedule,omitempty"`
}

// MIRRSummary adds the percentage views of a MIRR result.
type MIRRSummary struct {
	finance.MIRRResult
	MonthlyPercent float64 `json:"monthlyPercent"`
	AnnualPercent  float64 `json:"annualPercent"`
}

// NewMIRRSummary wraps r with its percentage views.
func NewMIRRSummary(r finance.MIRRResult) MIRRSummary {
	return MIRRSummary{
		MIRRResult:     r,
		MonthlyPercent: r.MonthlyPercent(),
		AnnualPercent:  r.AnnualPercent(),
	}
}
