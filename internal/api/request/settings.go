package request

// UpdateCountrySettingsRequest represents the request body for creating or
// replacing a country bundle. Rates are percentages.
type UpdateCountrySettingsRequest struct {
	Name                string  `json:"name"`
	Currency            string  `json:"currency"`
	AppreciationRate    float64 `json:"appreciationRate"`
	InflationRate       float64 `json:"inflationRate"`
	SellingCostRate     float64 `json:"sellingCostRate"`
	CapitalGainsTaxRate float64 `json:"capitalGainsTaxRate"`
	MortgageRate        float64 `json:"mortgageRate"`
}

type SelectCountryRequest struct {
	Code string `json:"code"`
}

type UpdateInflationRateRequest struct {
	Rate *float64 `json:"rate"`
}
