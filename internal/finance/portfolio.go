package finance

import "math"

// Star rating bounds.
const (
	MinStars = 1
	MaxStars = 5
)

// PropertyScore is one property reduced to what the aggregator needs.
// RealROI is the annualized real appreciation rate in percent; money is in
// major units.
type PropertyScore struct {
	ID              string  `json:"id"`
	RealROI         float64 `json:"realRoi"`
	MonthlyRent     float64 `json:"monthlyRent"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	MarketValue     float64 `json:"marketValue"`
}

// PortfolioScore is the portfolio-level summary.
type PortfolioScore struct {
	PropertyCount         int     `json:"propertyCount"`
	RentGeneratingCount   int     `json:"rentGeneratingCount"`
	RealROIAll            float64 `json:"realRoiAll"`
	RealROIRentGenerating float64 `json:"realRoiRentGenerating"`
	TotalCashAtHand       float64 `json:"totalCashAtHand"`
	RentGeneratingValue   float64 `json:"rentGeneratingValue"`
	Efficiency            float64 `json:"efficiency"`
	ROIStars              int     `json:"roiStars"`
	EfficiencyStars       int     `json:"efficiencyStars"`
	OverallRating         float64 `json:"overallRating"`
}

// AggregatePortfolio folds per-property scores into portfolio metrics.
//
// Real ROI means skip properties whose rate is zero (undefined). Cash at hand
// and efficiency only consider rent-generating properties. An empty portfolio
// returns zero metrics with one star everywhere.
func AggregatePortfolio(properties []PropertyScore) PortfolioScore {
	var (
		sumAll, sumRent     float64
		countAll, countRent int
		cash, value         float64
		rentGenerating      int
	)

	for _, p := range properties {
		if p.RealROI != 0 {
			sumAll += p.RealROI
			countAll++
		}
		if p.MonthlyRent <= 0 {
			continue
		}
		rentGenerating++
		if p.RealROI != 0 {
			sumRent += p.RealROI
			countRent++
		}
		cash += (p.MonthlyRent - p.MonthlyExpenses) * 12
		value += p.MarketValue
	}

	score := PortfolioScore{
		PropertyCount:       len(properties),
		RentGeneratingCount: rentGenerating,
		TotalCashAtHand:     roundMoney(cash),
		RentGeneratingValue: roundMoney(value),
	}
	if countAll > 0 {
		score.RealROIAll = roundPercent(sumAll / float64(countAll))
	}
	if countRent > 0 {
		score.RealROIRentGenerating = roundPercent(sumRent / float64(countRent))
	}
	if value > 0 {
		score.Efficiency = roundPercent(cash / value * 100)
	}

	score.ROIStars = StarRating(score.RealROIRentGenerating)
	score.EfficiencyStars = StarRating(score.Efficiency)
	score.OverallRating = float64(score.ROIStars+score.EfficiencyStars) / 2
	return score
}

// StarRating bands a yearly percentage into 1-5 stars, one star per two
// percentage points.
func StarRating(rate float64) int {
	stars := int(math.Ceil(rate / 2))
	return min(max(stars, MinStars), MaxStars)
}
