package request

// CreatePropertyRequest represents the request body for creating a property.
// Money fields are in cents. OutstandingBalance and CurrentNetEquity are
// derived from the loan terms and current value when omitted.
type CreatePropertyRequest struct {
	Name               string  `json:"name"`
	Address            string  `json:"address"`
	CountryCode        string  `json:"countryCode"`
	PurchasePrice      int64   `json:"purchasePrice"`
	CurrentValue       int64   `json:"currentValue"`
	PurchaseDate       string  `json:"purchaseDate"`
	MonthlyRent        int64   `json:"monthlyRent"`
	MonthlyExpenses    int64   `json:"monthlyExpenses"`
	MonthlyMortgage    int64   `json:"monthlyMortgage"`
	DownPayment        int64   `json:"downPayment"`
	LoanRate           float64 `json:"loanRate"`
	LoanTermMonths     int     `json:"loanTermMonths"`
	LoanElapsedMonths  int     `json:"loanElapsedMonths"`
	OutstandingBalance *int64  `json:"outstandingBalance,omitempty"`
	CurrentNetEquity   *int64  `json:"currentNetEquity,omitempty"`
}

// UpdatePropertyRequest represents the request body for updating a property.
// Only provided fields are changed.
type UpdatePropertyRequest struct {
	Name               *string  `json:"name,omitempty"`
	Address            *string  `json:"address,omitempty"`
	CountryCode        *string  `json:"countryCode,omitempty"`
	PurchasePrice      *int64   `json:"purchasePrice,omitempty"`
	CurrentValue       *int64   `json:"currentValue,omitempty"`
	PurchaseDate       *string  `json:"purchaseDate,omitempty"`
	MonthlyRent        *int64   `json:"monthlyRent,omitempty"`
	MonthlyExpenses    *int64   `json:"monthlyExpenses,omitempty"`
	MonthlyMortgage    *int64   `json:"monthlyMortgage,omitempty"`
	DownPayment        *int64   `json:"downPayment,omitempty"`
	LoanRate           *float64 `json:"loanRate,omitempty"`
	LoanTermMonths     *int     `json:"loanTermMonths,omitempty"`
	LoanElapsedMonths  *int     `json:"loanElapsedMonths,omitempty"`
	OutstandingBalance *int64   `json:"outstandingBalance,omitempty"`
	CurrentNetEquity   *int64   `json:"currentNetEquity,omitempty"`
}
