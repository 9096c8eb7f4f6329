package service

import (
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

// computeMetrics runs every per-property calculator for one property.
// It is pure and safe to call concurrently with a shared evaluation.
func computeMetrics(p model.Property, ev evaluation) model.PropertyMetrics {
	rent := p.MonthlyRent.Major()
	expenses := p.MonthlyExpenses.Major()
	value := p.CurrentValue.Major()

	annualRent := rent * 12
	annualExpenses := expenses * 12
	netYield := finance.NetYield(annualRent, annualExpenses)

	m := model.PropertyMetrics{
		PropertyID:     p.ID,
		Name:           p.Name,
		Currency:       ev.settings.Currency,
		EvaluationYear: ev.year,
		MarketValue:    value,
		AnnualNetYield: netYield,
		CapRate:        finance.CapRate(netYield, value),
		CashOnCash:     finance.CashOnCash(monthlyCashFlow(p)*12, initialInvestment(p)),
		Efficiency:     finance.Efficiency(netYield, value),
	}

	if p.LoanTermMonths > 0 {
		m.Amortization = finance.Amortize(loanPrincipal(p), p.LoanRate, p.LoanTermMonths, p.LoanElapsedMonths)
	}

	m.RealAppreciation = finance.RealAppreciation(finance.AppreciationInput{
		PurchasePrice: p.PurchasePrice.Major(),
		CurrentValue:  value,
		PurchaseDate:  p.PurchaseDate,
		CurrentYear:   ev.year,
	}, ev.table)

	m.TrueROI = finance.TrueROI(finance.TrueROIInput{
		PurchasePrice:   p.PurchasePrice.Major(),
		CurrentValue:    value,
		PurchaseDate:    p.PurchaseDate,
		CurrentYear:     ev.year,
		MonthlyRent:     rent,
		MonthlyExpenses: expenses,
		MonthlyMortgage: p.MonthlyMortgage.Major(),
	})

	flows := finance.HistoricalCashFlows(finance.HistoricalInput{
		PurchaseDate:       p.PurchaseDate,
		AsOf:               ev.asOf,
		InitialInvestment:  initialInvestment(p),
		MonthlyRent:        rent,
		MonthlyExpenses:    expenses,
		MonthlyMortgage:    p.MonthlyMortgage.Major(),
		CurrentValue:       value,
		OutstandingBalance: p.OutstandingBalance.Major(),
	})
	financeRate, reinvestRate := mirrRates(ev.settings)
	m.HistoricalMIRR = model.NewMIRRSummary(finance.MIRR(flows, financeRate, reinvestRate))

	code := ev.settings.Currency
	m.Display = map[string]string{
		"currentValue":        currency.Format(p.CurrentValue, code, false),
		"currentValueCompact": currency.Format(p.CurrentValue, code, true),
		"purchasePrice":       currency.Format(p.PurchasePrice, code, false),
		"netEquity":           currency.Format(p.CurrentNetEquity, code, false),
		"annualNetYield":      currency.Format(currency.FromMajor(netYield), code, false),
		"monthlyCashFlow":     currency.Format(currency.FromMajor(monthlyCashFlow(p)), code, false),
	}

	return m
}

// mirrRates returns the monthly finance and reinvestment rates in percent:
// borrowing at the mortgage rate, reinvesting at the inflation rate.
func mirrRates(settings model.CountrySettings) (financeRate, reinvestRate float64) {
	return settings.MortgageRate / 12, settings.InflationRate / 12
}

// projectionInput reduces a property to the projection starting point.
func projectionInput(p model.Property) finance.ProjectionInput {
	return finance.ProjectionInput{
		CurrentValue:     p.CurrentValue.Major(),
		MonthlyRent:      p.MonthlyRent.Major(),
		MonthlyExpenses:  p.MonthlyExpenses.Major(),
		CurrentNetEquity: p.CurrentNetEquity.Major(),
		PurchasePrice:    p.PurchasePrice.Major(),
	}
}

// projectedInput describes the forward series: the equity held today is the
// capital committed at month 0.
func projectedInput(p model.Property, settings finance.CountrySettings, horizonMonths int) finance.ProjectedInput {
	return finance.ProjectedInput{
		HorizonMonths:       horizonMonths,
		InitialInvestment:   p.CurrentNetEquity.Major(),
		CurrentValue:        p.CurrentValue.Major(),
		MonthlyRent:         p.MonthlyRent.Major(),
		MonthlyExpenses:     p.MonthlyExpenses.Major(),
		MonthlyMortgage:     p.MonthlyMortgage.Major(),
		AnnualRentGrowth:    settings.RentGrowthRate(),
		AnnualAppreciation:  settings.AppreciationRate,
		LoanBalance:         p.OutstandingBalance.Major(),
		LoanRate:            p.LoanRate,
		LoanRemainingMonths: max(p.LoanTermMonths-p.LoanElapsedMonths, 0),
	}
}
