package finance

import "math"

// MIRRResult is a modified internal rate of return together with the series
// it was computed from. Callers must check Valid before trusting the rates.
type MIRRResult struct {
	Valid        bool      `json:"valid"`
	Monthly      float64   `json:"monthly"`
	Annual       float64   `json:"annual"`
	PresentValue float64   `json:"presentValue"`
	FutureValue  float64   `json:"futureValue"`
	Periods      int       `json:"periods"`
	CashFlows    []float64 `json:"cashFlows"`
}

// MonthlyPercent returns the monthly rate as a percentage rounded to 2 decimals.
func (r MIRRResult) MonthlyPercent() float64 { return roundPercent(r.Monthly * 100) }

// AnnualPercent returns the annual rate as a percentage rounded to 2 decimals.
func (r MIRRResult) AnnualPercent() float64 { return roundPercent(r.Annual * 100) }

// MIRR computes the modified internal rate of return of a chronological
// monthly cash-flow series. Element 0 is the initial outlay.
//
// Outflows are discounted to period 0 at financeRate and inflows compounded to
// the last period at reinvestRate, both monthly percentages. The result is
// invalid when the series has fewer than two entries or when either the
// discounted outflows or the compounded inflows sum to zero, which covers
// all-positive and all-negative series. A rate at or below -100% has no
// discount factor and is invalid as well.
func MIRR(cashFlows []float64, financeRate, reinvestRate float64) MIRRResult {
	result := MIRRResult{CashFlows: append([]float64(nil), cashFlows...)}
	n := len(cashFlows) - 1
	if n <= 0 {
		return result
	}
	result.Periods = n
	if financeRate <= -100 || reinvestRate <= -100 {
		return result
	}

	f := financeRate / 100
	r := reinvestRate / 100

	var pv, fv float64
	for t, cf := range cashFlows {
		switch {
		case cf < 0:
			pv += cf / math.Pow(1+f, float64(t))
		case cf > 0:
			fv += cf * math.Pow(1+r, float64(n-t))
		}
	}
	if !isFinite(pv) || !isFinite(fv) {
		return result
	}
	result.PresentValue = roundMoney(pv)
	result.FutureValue = roundMoney(fv)

	if pv == 0 || fv == 0 {
		return result
	}

	monthly := math.Pow(math.Abs(fv/pv), 1/float64(n)) - 1
	annual := math.Pow(1+monthly, 12) - 1
	if math.IsNaN(monthly) || math.IsInf(monthly, 0) || math.IsInf(annual, 0) {
		return result
	}

	result.Valid = true
	result.Monthly = roundRate(monthly)
	result.Annual = roundRate(annual)
	return result
}
