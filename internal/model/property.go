package model

import (
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/currency"
)

// Property represents a property record from the database.
// All monetary values are stored in cents; rates are percentages.
type Property struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Address            string         `json:"address"`
	CountryCode        string         `json:"countryCode"`
	PurchasePrice      currency.Cents `json:"purchasePrice"`
	CurrentValue       currency.Cents `json:"currentValue"`
	PurchaseDate       time.Time      `json:"purchaseDate"`
	MonthlyRent        currency.Cents `json:"monthlyRent"`
	MonthlyExpenses    currency.Cents `json:"monthlyExpenses"`
	MonthlyMortgage    currency.Cents `json:"monthlyMortgage"`
	DownPayment        currency.Cents `json:"downPayment"`
	LoanRate           float64        `json:"loanRate"`
	LoanTermMonths     int            `json:"loanTermMonths"`
	LoanElapsedMonths  int            `json:"loanElapsedMonths"`
	OutstandingBalance currency.Cents `json:"outstandingBalance"`
	CurrentNetEquity   currency.Cents `json:"currentNetEquity"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// HasLoan reports whether the property carries a mortgage.
func (p Property) HasLoan() bool {
	return p.LoanTermMonths > 0 && p.OutstandingBalance > 0
}

// IsRentGenerating reports whether the property earns rent.
func (p Property) IsRentGenerating() bool {
	return p.MonthlyRent > 0
}
