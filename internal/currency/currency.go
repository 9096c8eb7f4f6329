// Package currency holds the minor-unit money type used for stored values and
// the display formatting of amounts.
package currency

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCode is used when a currency code is empty or unknown.
const DefaultCode = money.USD

// Cents is an amount in minor currency units.
type Cents int64

// Major returns the amount in major units (123456 -> 1234.56).
func (c Cents) Major() float64 {
	return decimal.New(int64(c), -2).InexactFloat64()
}

// FromMajor converts a major-unit amount to cents, rounding half away from
// zero to the nearest cent. Non-finite values convert to zero.
func FromMajor(value float64) Cents {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return Cents(decimal.NewFromFloat(value).Shift(2).Round(0).IntPart())
}

// Format renders an amount in the given currency. Without compact it is the
// standard two-decimal string ("$1,234.56"). Compact shortens thousands,
// millions and billions to one decimal ("$1.2K", "$3.5M").
func Format(amount Cents, code string, compact bool) string {
	cur := lookup(code)
	if !compact || abs(amount) < 100000 {
		return money.New(int64(amount), cur.Code).Display()
	}

	major := math.Abs(amount.Major())
	band := 0
	for band < len(compactBands)-1 && major >= compactBands[band+1].size {
		band++
	}
	scaled := decimal.NewFromFloat(major / compactBands[band].size).Round(1)
	// 999,960 rounds to 1000.0K and is shown as 1M.
	if scaled.GreaterThanOrEqual(decimal.NewFromInt(1000)) && band < len(compactBands)-1 {
		band++
		scaled = decimal.NewFromFloat(major / compactBands[band].size).Round(1)
	}
	suffix := compactBands[band].suffix

	number := strings.TrimSuffix(scaled.StringFixed(1), ".0")
	number = strings.Replace(number, ".", cur.Decimal, 1)

	result := strings.Replace(cur.Template, "1", number+suffix, 1)
	result = strings.Replace(result, "$", cur.Grapheme, 1)
	if amount < 0 {
		result = "-" + result
	}
	return result
}

var compactBands = []struct {
	size   float64
	suffix string
}{
	{1e3, "K"},
	{1e6, "M"},
	{1e9, "B"},
}

// Known reports whether code is a currency go-money knows about.
func Known(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

func lookup(code string) *money.Currency {
	if cur := money.GetCurrency(strings.ToUpper(code)); cur != nil {
		return cur
	}
	return money.GetCurrency(DefaultCode)
}

func abs(c Cents) Cents {
	if c < 0 {
		return -c
	}
	return c
}
