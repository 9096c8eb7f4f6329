package finance

import "time"

// AppreciationInput holds the facts needed for the appreciation metrics.
// Prices are major currency units.
type AppreciationInput struct {
	PurchasePrice float64
	CurrentValue  float64
	PurchaseDate  time.Time
	CurrentYear   int
}

// YearsHeld is the number of calendar years between purchase and CurrentYear.
func (in AppreciationInput) YearsHeld() int {
	return in.CurrentYear - in.PurchaseDate.Year()
}

// RealAppreciationResult is the appreciation-only return of a property, both
// nominal and adjusted for inflation since the purchase year.
type RealAppreciationResult struct {
	YearsHeld               int     `json:"yearsHeld"`
	NominalROI              float64 `json:"nominalRoi"`
	NominalAppreciationRate float64 `json:"nominalAppreciationRate"`
	InflationFactor         float64 `json:"inflationFactor"`
	AdjustedPurchasePrice   float64 `json:"adjustedPurchasePrice"`
	RealAppreciation        float64 `json:"realAppreciation"`
	RealAppreciationRate    float64 `json:"realAppreciationRate"`
}

// RealAppreciation compares the current value to the purchase price, with and
// without inflation.
//
// The cumulative inflation factor multiplies (1 + rate/100) over every year
// after the purchase year up to CurrentYear, taking rates from table; missing
// years use FallbackInflationRate. A purchase with no full year held, or a
// non-positive price, returns the zero result.
func RealAppreciation(in AppreciationInput, table *InflationTable) RealAppreciationResult {
	years := in.YearsHeld()
	if years <= 0 || in.PurchasePrice <= 0 {
		return RealAppreciationResult{}
	}

	p, v := in.PurchasePrice, in.CurrentValue
	factor := table.CumulativeFactor(in.PurchaseDate.Year(), in.CurrentYear)
	adjusted := p * factor

	return RealAppreciationResult{
		YearsHeld:               years,
		NominalROI:              roundPercent((v - p) / p * 100),
		NominalAppreciationRate: roundPercent(annualize(v/p, years)),
		InflationFactor:         roundFactor(factor),
		AdjustedPurchasePrice:   roundMoney(adjusted),
		RealAppreciation:        roundPercent((v - adjusted) / adjusted * 100),
		RealAppreciationRate:    roundPercent(annualize(v/adjusted, years)),
	}
}
