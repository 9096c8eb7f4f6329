package finance

import (
	"errors"
	"math"
	"slices"
)

// Projection assumptions.
const (
	// RentGrowthShare is the fraction of appreciation that rent growth tracks.
	RentGrowthShare = 0.7
	// ExpenseGrowthRate is the yearly expense inflation, in percent.
	ExpenseGrowthRate = 2.0
)

// DefaultProjectionYears are the horizons shown on a property projection.
var DefaultProjectionYears = []int{0, 1, 2, 3, 4, 5, 10, 15, 25, 30}

// ErrNegativeYear is returned when a projection is asked for a negative year.
var ErrNegativeYear = errors.New("projection year cannot be negative")

// ErrInvalidInflation is returned for an inflation-adjusted projection whose
// inflation rate is at or below -100%, where no deflator exists.
var ErrInvalidInflation = errors.New("inflation rate must be above -100 for an inflation-adjusted projection")

// ProjectionInput is the current state of a property, in major units.
type ProjectionInput struct {
	CurrentValue     float64
	MonthlyRent      float64
	MonthlyExpenses  float64
	CurrentNetEquity float64
	PurchasePrice    float64
}

// ProjectionRow is one projected year. Money is rounded to cents and the cap
// rate to 2 decimals.
type ProjectionRow struct {
	Year            int     `json:"year"`
	MarketValue     float64 `json:"marketValue"`
	MonthlyRent     float64 `json:"monthlyRent"`
	AnnualRent      float64 `json:"annualRent"`
	AnnualExpenses  float64 `json:"annualExpenses"`
	NetCashFlow     float64 `json:"netCashFlow"`
	CashAtHand      float64 `json:"cashAtHand"`
	NetEquity       float64 `json:"netEquity"`
	SellingCosts    float64 `json:"sellingCosts"`
	CapitalGainsTax float64 `json:"capitalGainsTax"`
	TaxBenefit      float64 `json:"taxBenefit"`
	AfterTaxEquity  float64 `json:"afterTaxEquity"`
	CapRate         float64 `json:"capRate"`
}

// Project produces one row per requested year, in ascending order with
// duplicates removed.
//
// Market value compounds at the settings' appreciation rate, rent at
// RentGrowthShare of it, and expenses at ExpenseGrowthRate. Net equity assumes
// no amortization beyond what CurrentNetEquity already reflects. Cash at hand
// is the net cash flow collected over years 0..y-1. When inflationAdjusted is
// set every monetary field is deflated by (1+inflation)^-y; the cap rate
// never is.
func Project(years []int, in ProjectionInput, settings CountrySettings, inflationAdjusted bool) ([]ProjectionRow, error) {
	sorted := slices.Clone(years)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if len(sorted) > 0 && sorted[0] < 0 {
		return nil, ErrNegativeYear
	}
	if inflationAdjusted && settings.InflationRate <= -100 {
		return nil, ErrInvalidInflation
	}

	appreciation := settings.AppreciationRate / 100
	rentGrowth := settings.RentGrowthRate() / 100
	inflation := settings.InflationRate / 100
	sellingRate := settings.SellingCostRate / 100
	taxRate := settings.CapitalGainsTaxRate / 100
	debt := in.CurrentValue - in.CurrentNetEquity

	netCashFlow := func(y int) float64 {
		rent := in.MonthlyRent * math.Pow(1+rentGrowth, float64(y)) * 12
		expenses := in.MonthlyExpenses * math.Pow(1+ExpenseGrowthRate/100, float64(y)) * 12
		return rent - expenses
	}

	rows := make([]ProjectionRow, 0, len(sorted))
	cashAtHand := 0.0
	collected := 0
	for _, y := range sorted {
		for ; collected < y; collected++ {
			cashAtHand += netCashFlow(collected)
		}

		value := in.CurrentValue * math.Pow(1+appreciation, float64(y))
		monthlyRent := in.MonthlyRent * math.Pow(1+rentGrowth, float64(y))
		annualRent := monthlyRent * 12
		annualExpenses := in.MonthlyExpenses * math.Pow(1+ExpenseGrowthRate/100, float64(y)) * 12
		equity := value - debt

		selling := value * sellingRate
		appreciated := max(value-in.PurchasePrice, 0)
		tax := max(value-in.PurchasePrice-selling, 0) * taxRate
		benefit := min(selling, appreciated) * taxRate

		capRate := 0.0
		if value > 0 {
			capRate = annualRent / value * 100
		}

		deflator := 1.0
		if inflationAdjusted {
			deflator = math.Pow(1+inflation, -float64(y))
		}
		m := func(v float64) float64 { return roundMoney(v * deflator) }

		rows = append(rows, ProjectionRow{
			Year:            y,
			MarketValue:     m(value),
			MonthlyRent:     m(monthlyRent),
			AnnualRent:      m(annualRent),
			AnnualExpenses:  m(annualExpenses),
			NetCashFlow:     m(annualRent - annualExpenses),
			CashAtHand:      m(cashAtHand),
			NetEquity:       m(equity),
			SellingCosts:    m(selling),
			CapitalGainsTax: m(tax),
			TaxBenefit:      m(benefit),
			AfterTaxEquity:  m(equity - selling - tax),
			CapRate:         roundPercent(capRate),
		})
	}
	return rows, nil
}
