package validation

import (
	"regexp"
	"strings"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/currency"
)

var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// ValidateCountryCode checks for an ISO 3166-1 alpha-2 style code.
func ValidateCountryCode(code string) error {
	errors := make(map[string]string)
	validateCountryField(errors, code)
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateCountrySettings(req request.UpdateCountrySettingsRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if !currency.Known(req.Currency) {
		errors["currency"] = "unknown currency code: " + req.Currency
	}

	for field, rate := range map[string]float64{
		"appreciationRate":    req.AppreciationRate,
		"inflationRate":       req.InflationRate,
		"sellingCostRate":     req.SellingCostRate,
		"capitalGainsTaxRate": req.CapitalGainsTaxRate,
		"mortgageRate":        req.MortgageRate,
	} {
		if rate < -100 || rate > 100 {
			errors[field] = field + " must be between -100 and 100"
		}
	}
	if req.InflationRate <= -100 {
		errors["inflationRate"] = "inflationRate must be above -100"
	}
	if req.SellingCostRate < 0 {
		errors["sellingCostRate"] = "sellingCostRate cannot be negative"
	}
	if req.CapitalGainsTaxRate < 0 {
		errors["capitalGainsTaxRate"] = "capitalGainsTaxRate cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateInflationRate checks a stored inflation override.
func ValidateInflationRate(year int, req request.UpdateInflationRateRequest) error {
	errors := make(map[string]string)

	if year < 1900 || year > 2200 {
		errors["year"] = "year must be between 1900 and 2200"
	}
	if req.Rate == nil {
		errors["rate"] = "rate is required"
	} else if *req.Rate <= -100 || *req.Rate > 1000 {
		errors["rate"] = "rate must be above -100 and at most 1000"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateCountryField(errors map[string]string, code string) {
	if strings.TrimSpace(code) == "" {
		errors["countryCode"] = "country code is required"
	} else if !countryCodePattern.MatchString(code) {
		errors["countryCode"] = "country code must be two upper-case letters"
	}
}
