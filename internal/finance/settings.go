package finance

// CountrySettings is the bundle of macro assumptions for one jurisdiction.
// All rates are yearly percentages.
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

// RentGrowthRate is the yearly rent growth implied by the settings: rent
// tracks RentGrowthShare of appreciation.
func (s CountrySettings) RentGrowthRate() float64 {
	return s.AppreciationRate * RentGrowthShare
}
