package model

import "github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"

// CountrySettings represents a stored bundle of macro assumptions.
type CountrySettings struct {
	Code                string  `json:"code"`
	Name                string  `json:"name"`
	Currency            string  `json:"currency"`
	AppreciationRate    float64 `json:"appreciationRate"`
	InflationRate       float64 `json:"inflationRate"`
	SellingCostRate     float64 `json:"sellingCostRate"`
	CapitalGainsTaxRate float64 `json:"capitalGainsTaxRate"`
	MortgageRate        float64 `json:"mortgageRate"`
}

// Assumptions converts the record into the calculator settings.
func (c CountrySettings) Assumptions() finance.CountrySettings {
	return finance.CountrySettings{
		Code:                c.Code,
		Name:                c.Name,
		Currency:            c.Currency,
		AppreciationRate:    c.AppreciationRate,
		InflationRate:       c.InflationRate,
		SellingCostRate:     c.SellingCostRate,
		CapitalGainsTaxRate: c.CapitalGainsTaxRate,
		MortgageRate:        c.MortgageRate,
	}
}

// SelectedCountrySetting is the app_setting key holding the active country.
const SelectedCountrySetting = "selected_country"
