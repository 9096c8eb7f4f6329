package finance_test

import (
	"math"
	"testing"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
)

func zeroInflation(years ...int) *finance.InflationTable {
	points := make([]finance.InflationDataPoint, len(years))
	for i, y := range years {
		points[i] = finance.InflationDataPoint{Year: y, Rate: 0}
	}
	return finance.NewInflationTable(points)
}

// TestRealAppreciation tests nominal and inflation-adjusted appreciation.
//
// WHY: Real ROI drives the portfolio star rating. With no inflation it must
// match the nominal figures, and invalid holding periods must not produce
// garbage rates.
func TestRealAppreciation(t *testing.T) {
	t.Run("nominal and real coincide without inflation", func(t *testing.T) {
		in := finance.AppreciationInput{
			PurchasePrice: 100000,
			CurrentValue:  133100,
			PurchaseDate:  date(t, "2020-06-01"),
			CurrentYear:   2023,
		}

		got := finance.RealAppreciation(in, zeroInflation(2021, 2022, 2023))

		if got.YearsHeld != 3 {
			t.Errorf("Expected 3 years held, got %d", got.YearsHeld)
		}
		if got.InflationFactor != 1 {
			t.Errorf("Expected factor 1, got %v", got.InflationFactor)
		}
		if got.NominalROI != 33.1 || got.RealAppreciation != 33.1 {
			t.Errorf("Expected nominal and real ROI 33.1, got %v and %v", got.NominalROI, got.RealAppreciation)
		}
		if got.NominalAppreciationRate != 10 || got.RealAppreciationRate != 10 {
			t.Errorf("Expected 10%% yearly, got %v and %v", got.NominalAppreciationRate, got.RealAppreciationRate)
		}
	})

	t.Run("single year nominal ROI equals real rate without inflation", func(t *testing.T) {
		in := finance.AppreciationInput{
			PurchasePrice: 100000,
			CurrentValue:  105000,
			PurchaseDate:  date(t, "2022-03-10"),
			CurrentYear:   2023,
		}

		got := finance.RealAppreciation(in, zeroInflation(2023))

		if got.NominalROI != got.RealAppreciationRate {
			t.Errorf("Expected nominal ROI %v to equal real rate %v", got.NominalROI, got.RealAppreciationRate)
		}
	})

	t.Run("inflation eats nominal gain", func(t *testing.T) {
		table := finance.NewInflationTable([]finance.InflationDataPoint{
			{Year: 2021, Rate: 10},
			{Year: 2022, Rate: 10},
		})
		in := finance.AppreciationInput{
			PurchasePrice: 100000,
			CurrentValue:  121000,
			PurchaseDate:  date(t, "2020-01-01"),
			CurrentYear:   2022,
		}

		got := finance.RealAppreciation(in, table)

		if got.NominalROI != 21 {
			t.Errorf("Expected nominal ROI 21, got %v", got.NominalROI)
		}
		if got.InflationFactor != 1.21 {
			t.Errorf("Expected factor 1.21, got %v", got.InflationFactor)
		}
		if got.AdjustedPurchasePrice != 121000 {
			t.Errorf("Expected adjusted price 121000, got %v", got.AdjustedPurchasePrice)
		}
		if got.RealAppreciation != 0 || got.RealAppreciationRate != 0 {
			t.Errorf("Expected zero real appreciation, got %v / %v", got.RealAppreciation, got.RealAppreciationRate)
		}
	})

	t.Run("missing years use the fallback rate", func(t *testing.T) {
		in := finance.AppreciationInput{
			PurchasePrice: 100000,
			CurrentValue:  100000,
			PurchaseDate:  date(t, "2030-01-01"),
			CurrentYear:   2032,
		}

		got := finance.RealAppreciation(in, finance.DefaultInflationTable())

		if got.InflationFactor != 1.051 {
			t.Errorf("Expected factor 1.051 (1.025^2), got %v", got.InflationFactor)
		}
	})

	t.Run("total loss never yields NaN", func(t *testing.T) {
		in := finance.AppreciationInput{
			PurchasePrice: 100000,
			CurrentValue:  0,
			PurchaseDate:  date(t, "2015-01-01"),
			CurrentYear:   2020,
		}

		got := finance.RealAppreciation(in, finance.DefaultInflationTable())

		if math.IsNaN(got.RealAppreciationRate) || got.RealAppreciationRate != -100 {
			t.Errorf("Expected -100, got %v", got.RealAppreciationRate)
		}
	})

	t.Run("degenerate input returns zero result", func(t *testing.T) {
		tests := []struct {
			name string
			in   finance.AppreciationInput
		}{
			{
				name: "purchase year equals current year",
				in:   finance.AppreciationInput{PurchasePrice: 100000, CurrentValue: 120000, PurchaseDate: date(t, "2024-02-01"), CurrentYear: 2024},
			},
			{
				name: "future purchase",
				in:   finance.AppreciationInput{PurchasePrice: 100000, CurrentValue: 120000, PurchaseDate: date(t, "2027-02-01"), CurrentYear: 2024},
			},
			{
				name: "zero price",
				in:   finance.AppreciationInput{PurchasePrice: 0, CurrentValue: 120000, PurchaseDate: date(t, "2010-02-01"), CurrentYear: 2024},
			},
			{
				name: "negative price",
				in:   finance.AppreciationInput{PurchasePrice: -1, CurrentValue: 120000, PurchaseDate: date(t, "2010-02-01"), CurrentYear: 2024},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := finance.RealAppreciation(tt.in, finance.DefaultInflationTable())
				if got != (finance.RealAppreciationResult{}) {
					t.Errorf("Expected zero result, got %+v", got)
				}
			})
		}
	})
}

func TestTrueROI(t *testing.T) {
	t.Run("combines appreciation and cash flow", func(t *testing.T) {
		in := finance.TrueROIInput{
			PurchasePrice:   200000,
			CurrentValue:    240000,
			PurchaseDate:    date(t, "2019-05-01"),
			CurrentYear:     2024,
			MonthlyRent:     1500,
			MonthlyExpenses: 300,
			MonthlyMortgage: 700,
		}

		got := finance.TrueROI(in)

		if got.YearsHeld != 5 {
			t.Errorf("Expected 5 years, got %d", got.YearsHeld)
		}
		if got.TotalCashFlow != 30000 {
			t.Errorf("Expected cash flow 30000, got %v", got.TotalCashFlow)
		}
		if got.TotalReturn != 70000 {
			t.Errorf("Expected total return 70000, got %v", got.TotalReturn)
		}
		if got.TotalROI != 35 {
			t.Errorf("Expected total ROI 35, got %v", got.TotalROI)
		}
		if got.AppreciationROI != 20 || got.CashFlowROI != 15 {
			t.Errorf("Expected 20/15 split, got %v/%v", got.AppreciationROI, got.CashFlowROI)
		}
		if !approxEqual(got.AnnualizedROI, 6.19, 0.01) {
			t.Errorf("Expected annualized ROI ~6.19, got %v", got.AnnualizedROI)
		}
	})

	t.Run("loss beyond the purchase price is capped at -100", func(t *testing.T) {
		in := finance.TrueROIInput{
			PurchasePrice:   100000,
			CurrentValue:    10000,
			PurchaseDate:    date(t, "2020-01-01"),
			CurrentYear:     2022,
			MonthlyExpenses: 5000,
		}

		got := finance.TrueROI(in)

		if got.AnnualizedROI != -100 {
			t.Errorf("Expected -100, got %v", got.AnnualizedROI)
		}
	})

	t.Run("same year purchase returns zero result", func(t *testing.T) {
		in := finance.TrueROIInput{
			PurchasePrice: 100000,
			CurrentValue:  150000,
			PurchaseDate:  date(t, "2024-01-01"),
			CurrentYear:   2024,
			MonthlyRent:   1000,
		}

		if got := finance.TrueROI(in); got != (finance.TrueROIResult{}) {
			t.Errorf("Expected zero result, got %+v", got)
		}
	})
}
