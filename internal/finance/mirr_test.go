package finance_test

import (
	"math"
	"testing"
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
)

// TestMIRR tests the modified internal rate of return.
//
// WHY: MIRR is undefined for some cash-flow shapes. Callers rely on the Valid
// flag instead of checking for NaN or Infinity.
func TestMIRR(t *testing.T) {
	t.Run("two period series", func(t *testing.T) {
		got := finance.MIRR([]float64{-100, 110}, 0, 0)

		if !got.Valid {
			t.Fatal("Expected valid result")
		}
		if got.Monthly != 0.1 {
			t.Errorf("Expected monthly 0.1, got %v", got.Monthly)
		}
		if got.MonthlyPercent() != 10 {
			t.Errorf("Expected 10%%, got %v", got.MonthlyPercent())
		}
		if !approxEqual(got.Annual, math.Pow(1.1, 12)-1, 1e-6) {
			t.Errorf("Expected annual %v, got %v", math.Pow(1.1, 12)-1, got.Annual)
		}
		if got.Periods != 1 {
			t.Errorf("Expected 1 period, got %d", got.Periods)
		}
	})

	t.Run("reinvestment rate compounds inflows", func(t *testing.T) {
		got := finance.MIRR([]float64{-1000, 100, 1100}, 0, 10)

		if got.FutureValue != 1210 {
			t.Errorf("Expected FV 1210, got %v", got.FutureValue)
		}
		if got.Monthly != 0.1 {
			t.Errorf("Expected monthly 0.1, got %v", got.Monthly)
		}
	})

	t.Run("finance rate discounts outflows", func(t *testing.T) {
		got := finance.MIRR([]float64{-1000, -1100, 2420}, 10, 0)

		if got.PresentValue != -2000 {
			t.Errorf("Expected PV -2000, got %v", got.PresentValue)
		}
		if got.Monthly != 0.1 {
			t.Errorf("Expected monthly 0.1, got %v", got.Monthly)
		}
	})

	t.Run("degenerate series are invalid", func(t *testing.T) {
		tests := []struct {
			name  string
			flows []float64
		}{
			{"all positive", []float64{100, 50, 50}},
			{"all negative", []float64{-100, -50}},
			{"empty", []float64{}},
			{"single entry", []float64{-100}},
			{"all zero", []float64{0, 0, 0}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := finance.MIRR(tt.flows, 1, 1)
				if got.Valid {
					t.Errorf("Expected invalid result for %v", tt.flows)
				}
				if math.IsNaN(got.Monthly) || math.IsInf(got.Monthly, 0) || math.IsNaN(got.Annual) {
					t.Errorf("Expected finite rates, got %v / %v", got.Monthly, got.Annual)
				}
			})
		}
	})

	t.Run("result keeps its own copy of the series", func(t *testing.T) {
		flows := []float64{-100, 110}
		got := finance.MIRR(flows, 0, 0)
		flows[1] = 0

		if got.CashFlows[1] != 110 {
			t.Errorf("Expected result series unchanged, got %v", got.CashFlows)
		}
	})
}

func TestHistoricalCashFlows(t *testing.T) {
	t.Run("adds the equity to the final month", func(t *testing.T) {
		flows := finance.HistoricalCashFlows(finance.HistoricalInput{
			PurchaseDate:       date(t, "2024-01-15"),
			AsOf:               date(t, "2024-04-15"),
			InitialInvestment:  50000,
			MonthlyRent:        1500,
			MonthlyExpenses:    300,
			MonthlyMortgage:    700,
			CurrentValue:       300000,
			OutstandingBalance: 200000,
		})

		expected := []float64{-50000, 500, 500, 100500}
		if len(flows) != len(expected) {
			t.Fatalf("Expected %d flows, got %d", len(expected), len(flows))
		}
		for i := range expected {
			if flows[i] != expected[i] {
				t.Errorf("Flow %d: expected %v, got %v", i, expected[i], flows[i])
			}
		}
	})

	t.Run("purchase after as-of date gives a single entry", func(t *testing.T) {
		flows := finance.HistoricalCashFlows(finance.HistoricalInput{
			PurchaseDate:      date(t, "2025-01-01"),
			AsOf:              date(t, "2024-01-01"),
			InitialInvestment: 1000,
		})

		if len(flows) != 1 {
			t.Fatalf("Expected 1 flow, got %d", len(flows))
		}
		if finance.MIRR(flows, 0, 0).Valid {
			t.Error("Expected MIRR over a single entry to be invalid")
		}
	})
}

func TestProjectedCashFlows(t *testing.T) {
	base := finance.ProjectedInput{
		HorizonMonths:     12,
		InitialInvestment: 100000,
		CurrentValue:      100000,
		MonthlyRent:       1000,
		MonthlyExpenses:   200,
	}

	t.Run("flat growth", func(t *testing.T) {
		flows := finance.ProjectedCashFlows(base)

		if len(flows) != 13 {
			t.Fatalf("Expected 13 flows, got %d", len(flows))
		}
		if flows[0] != -100000 {
			t.Errorf("Expected outlay -100000, got %v", flows[0])
		}
		if flows[6] != 800 {
			t.Errorf("Expected 800 in month 6, got %v", flows[6])
		}
		if flows[12] != 100800 {
			t.Errorf("Expected terminal 100800, got %v", flows[12])
		}
	})

	t.Run("rent grows monthly", func(t *testing.T) {
		in := base
		in.AnnualRentGrowth = 12

		flows := finance.ProjectedCashFlows(in)

		if !approxEqual(flows[1], 1010-200, 1e-9) {
			t.Errorf("Expected 810 in month 1, got %v", flows[1])
		}
	})

	t.Run("loan balance is subtracted and mortgage stops at loan end", func(t *testing.T) {
		in := base
		in.HorizonMonths = 6
		in.MonthlyMortgage = 1000
		in.LoanBalance = 3000
		in.LoanRemainingMonths = 3

		flows := finance.ProjectedCashFlows(in)

		if flows[3] != -200 {
			t.Errorf("Expected -200 while paying the mortgage, got %v", flows[3])
		}
		if flows[4] != 800 {
			t.Errorf("Expected 800 after the loan ends, got %v", flows[4])
		}
		if flows[6] != 100800 {
			t.Errorf("Expected terminal 100800 with the loan repaid, got %v", flows[6])
		}
	})

	t.Run("outstanding loan reduces the terminal value", func(t *testing.T) {
		in := base
		in.HorizonMonths = 6
		in.LoanBalance = 12000
		in.LoanRemainingMonths = 12

		flows := finance.ProjectedCashFlows(in)

		if !approxEqual(flows[6], 800+100000-6000, 1e-6) {
			t.Errorf("Expected terminal 94800, got %v", flows[6])
		}
	})

	t.Run("horizon is capped", func(t *testing.T) {
		in := base
		in.HorizonMonths = 10000

		if flows := finance.ProjectedCashFlows(in); len(flows) != finance.MaxHorizonMonths+1 {
			t.Errorf("Expected %d flows, got %d", finance.MaxHorizonMonths+1, len(flows))
		}
	})
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		start, end string
		expected   int
	}{
		{"2024-01-15", "2025-01-15", 12},
		{"2024-01-31", "2024-02-29", 0},
		{"2024-01-31", "2024-03-31", 2},
		{"2025-01-15", "2024-01-15", -12},
		{"2024-05-01", "2024-05-20", 0},
	}

	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			start, _ := time.Parse("2006-01-02", tt.start)
			end, _ := time.Parse("2006-01-02", tt.end)

			if got := finance.MonthsBetween(start, end); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

// TestMIRR_RateFloor tests rates that leave no discount or growth factor.
//
// WHY: At -100% the factor (1+rate)^t is zero, so an outflow divides by zero.
// The result must be invalid instead of a finite-looking -100%.
func TestMIRR_RateFloor(t *testing.T) {
	tests := []struct {
		name         string
		financeRate  float64
		reinvestRate float64
	}{
		{name: "finance rate of -100", financeRate: -100},
		{name: "finance rate below -100", financeRate: -150},
		{name: "reinvest rate of -100", reinvestRate: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.MIRR([]float64{-100, -50, 200}, tt.financeRate, tt.reinvestRate)

			if got.Valid {
				t.Fatalf("Expected invalid result, got %+v", got)
			}
			if got.Monthly != 0 || got.Annual != 0 {
				t.Errorf("Expected zero rates, got monthly %v annual %v", got.Monthly, got.Annual)
			}
		})
	}

	t.Run("rate just above the floor stays valid", func(t *testing.T) {
		got := finance.MIRR([]float64{-100, 110}, -99, 0)

		if !got.Valid {
			t.Fatal("Expected valid result")
		}
		if got.PresentValue != -100 {
			t.Errorf("Expected PV -100, got %v", got.PresentValue)
		}
	})
}
