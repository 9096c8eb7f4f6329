package request

// Calculator requests carry amounts in major units and rates as percentages.

type AmortizationRequest struct {
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annualRate"`
	TermMonths      int     `json:"termMonths"`
	ElapsedMonths   int     `json:"elapsedMonths"`
	IncludeSchedule bool    `json:"includeSchedule"`
}

type ROIRequest struct {
	PurchasePrice float64 `json:"purchasePrice"`
	CurrentValue  float64 `json:"currentValue"`
	PurchaseDate  string  `json:"purchaseDate"`
	CurrentYear   int     `json:"currentYear"`
}

type TrueROIRequest struct {
	ROIRequest
	MonthlyRent     float64 `json:"monthlyRent"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	MonthlyMortgage float64 `json:"monthlyMortgage"`
}

// MIRRRequest rates are monthly percentages.
type MIRRRequest struct {
	CashFlows    []float64 `json:"cashFlows"`
	FinanceRate  float64   `json:"financeRate"`
	ReinvestRate float64   `json:"reinvestRate"`
}

// ProjectionRequest uses the stored settings of Country, or the selected
// country when empty. Years defaults to the standard horizon list.
type ProjectionRequest struct {
	Years             []int   `json:"years"`
	Country           string  `json:"country"`
	InflationAdjusted bool    `json:"inflationAdjusted"`
	CurrentValue      float64 `json:"currentValue"`
	MonthlyRent       float64 `json:"monthlyRent"`
	MonthlyExpenses   float64 `json:"monthlyExpenses"`
	CurrentNetEquity  float64 `json:"currentNetEquity"`
	PurchasePrice     float64 `json:"purchasePrice"`
}
