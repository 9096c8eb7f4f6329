package finance

import (
	"math"
	"time"
)

// MaxHorizonMonths bounds projected cash-flow series to 40 years.
const MaxHorizonMonths = 40 * 12

// HistoricalInput describes a property's cash flows from purchase to AsOf.
// Amounts are major units.
type HistoricalInput struct {
	PurchaseDate       time.Time
	AsOf               time.Time
	InitialInvestment  float64
	MonthlyRent        float64
	MonthlyExpenses    float64
	MonthlyMortgage    float64
	CurrentValue       float64
	OutstandingBalance float64
}

// HistoricalCashFlows builds the monthly series from the purchase date to
// AsOf. Month 0 is the initial investment as an outflow; every following month
// carries rent - expenses - mortgage, and the final month also receives the
// equity held today (current value minus the outstanding loan balance).
func HistoricalCashFlows(in HistoricalInput) []float64 {
	months := max(MonthsBetween(in.PurchaseDate, in.AsOf), 0)
	monthly := in.MonthlyRent - in.MonthlyExpenses - in.MonthlyMortgage

	flows := make([]float64, months+1)
	flows[0] = -in.InitialInvestment
	for t := 1; t <= months; t++ {
		flows[t] = monthly
	}
	flows[months] += in.CurrentValue - in.OutstandingBalance
	return flows
}

// ProjectedInput describes the starting point of a forward-looking series.
// Growth rates are yearly percentages, compounded monthly at rate/12.
type ProjectedInput struct {
	HorizonMonths      int
	InitialInvestment  float64
	CurrentValue       float64
	MonthlyRent        float64
	MonthlyExpenses    float64
	MonthlyMortgage    float64
	AnnualRentGrowth   float64
	AnnualAppreciation float64

	LoanBalance         float64
	LoanRate            float64
	LoanRemainingMonths int
}

// ProjectedCashFlows builds a monthly series over HorizonMonths (capped at
// MaxHorizonMonths). Rent grows monthly; the mortgage is paid only while the
// loan runs. The final month receives the projected value less the loan
// balance still owed at the horizon.
func ProjectedCashFlows(in ProjectedInput) []float64 {
	months := min(max(in.HorizonMonths, 0), MaxHorizonMonths)
	rentGrowth := in.AnnualRentGrowth / 100 / 12
	appreciation := in.AnnualAppreciation / 100 / 12

	flows := make([]float64, months+1)
	flows[0] = -in.InitialInvestment
	for t := 1; t <= months; t++ {
		rent := in.MonthlyRent * math.Pow(1+rentGrowth, float64(t))
		flow := rent - in.MonthlyExpenses
		if t <= in.LoanRemainingMonths {
			flow -= in.MonthlyMortgage
		}
		flows[t] = flow
	}
	if months == 0 {
		return flows
	}

	value := in.CurrentValue * math.Pow(1+appreciation, float64(months))
	owed := remainingBalance(in.LoanBalance, in.LoanRate, in.LoanRemainingMonths, months)
	flows[months] += value - owed
	return flows
}

// MonthsBetween counts the whole months from start to end. It is negative
// when end is before start.
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months > 0 && end.Day() < start.Day() {
		months--
	} else if months < 0 && end.Day() > start.Day() {
		months++
	}
	return months
}
