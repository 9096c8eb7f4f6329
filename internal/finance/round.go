package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Rounding places used at the output boundary of the calculators.
const (
	percentPlaces = 2
	factorPlaces  = 3
	moneyPlaces   = 2
	ratePlaces    = 6
)

// round rounds half away from zero using decimal arithmetic, so 1.005 becomes
// 1.01 instead of the 1.00 math.Round gives on the binary representation.
// Non-finite values collapse to zero.
func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func round(value float64, places int32) float64 {
	if !isFinite(value) {
		return 0
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

func roundPercent(value float64) float64 { return round(value, percentPlaces) }
func roundFactor(value float64) float64  { return round(value, factorPlaces) }
func roundMoney(value float64) float64   { return round(value, moneyPlaces) }
func roundRate(value float64) float64    { return round(value, ratePlaces) }

// annualize converts a total growth ratio over years into a yearly
// percentage. A ratio of zero or below is a total loss (-100%).
func annualize(ratio float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	if ratio <= 0 {
		return -100
	}
	return (math.Pow(ratio, 1/float64(years)) - 1) * 100
}
