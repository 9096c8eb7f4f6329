package service

import (
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

// evaluation holds the read-only assumptions of one calculation pass.
type evaluation struct {
	settings model.CountrySettings
	table    *finance.InflationTable
	year     int
	asOf     time.Time
}

// evaluationDate is the end of the evaluation year, or now when that is earlier.
func evaluationDate(year int, now time.Time) time.Time {
	now = now.UTC()
	endOfYear := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if now.Before(endOfYear) {
		return now
	}
	return endOfYear
}

// initialInvestment is the cash put in at purchase: the down payment, or the
// full price for a cash purchase.
func initialInvestment(p model.Property) float64 {
	if p.DownPayment > 0 {
		return p.DownPayment.Major()
	}
	return p.PurchasePrice.Major()
}

// loanPrincipal is the amount originally borrowed.
func loanPrincipal(p model.Property) float64 {
	return max(p.PurchasePrice.Major()-p.DownPayment.Major(), 0)
}

// deriveLoanState fills the outstanding balance and net equity from the loan
// terms and current value.
func deriveLoanState(p *model.Property) {
	if p.LoanTermMonths > 0 {
		schedule := finance.Amortize(loanPrincipal(*p), p.LoanRate, p.LoanTermMonths, p.LoanElapsedMonths)
		p.OutstandingBalance = currency.FromMajor(schedule.RemainingBalance)
	} else {
		p.OutstandingBalance = 0
	}
	p.CurrentNetEquity = p.CurrentValue - p.OutstandingBalance
}

func monthlyCashFlow(p model.Property) float64 {
	return p.MonthlyRent.Major() - p.MonthlyExpenses.Major() - p.MonthlyMortgage.Major()
}
