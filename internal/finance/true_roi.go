package finance

import "time"

// TrueROIInput extends the appreciation facts with the monthly cash flow.
type TrueROIInput struct {
	PurchasePrice   float64
	CurrentValue    float64
	PurchaseDate    time.Time
	CurrentYear     int
	MonthlyRent     float64
	MonthlyExpenses float64
	MonthlyMortgage float64
}

// TrueROIResult is the return on a property including the cash it produced.
type TrueROIResult struct {
	YearsHeld        int     `json:"yearsHeld"`
	AppreciationGain float64 `json:"appreciationGain"`
	TotalCashFlow    float64 `json:"totalCashFlow"`
	TotalReturn      float64 `json:"totalReturn"`
	TotalROI         float64 `json:"totalRoi"`
	AnnualizedROI    float64 `json:"annualizedRoi"`
	AppreciationROI  float64 `json:"appreciationRoi"`
	CashFlowROI      float64 `json:"cashFlowRoi"`
}

// TrueROI adds the cash flow earned over the holding period to the
// appreciation gain. The cash flow is (rent - expenses - mortgage) * 12 for
// every year held. Same guard as RealAppreciation.
func TrueROI(in TrueROIInput) TrueROIResult {
	years := in.CurrentYear - in.PurchaseDate.Year()
	p := in.PurchasePrice
	if years <= 0 || p <= 0 {
		return TrueROIResult{}
	}

	gain := in.CurrentValue - p
	cashFlow := (in.MonthlyRent - in.MonthlyExpenses - in.MonthlyMortgage) * 12 * float64(years)
	total := gain + cashFlow

	return TrueROIResult{
		YearsHeld:        years,
		AppreciationGain: roundMoney(gain),
		TotalCashFlow:    roundMoney(cashFlow),
		TotalReturn:      roundMoney(total),
		TotalROI:         roundPercent(total / p * 100),
		AnnualizedROI:    roundPercent(annualize((total+p)/p, years)),
		AppreciationROI:  roundPercent(gain / p * 100),
		CashFlowROI:      roundPercent(cashFlow / p * 100),
	}
}
