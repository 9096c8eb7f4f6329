package validation

import (
	"strings"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
)

// MaxLoanTermMonths bounds mortgage terms to 50 years.
const MaxLoanTermMonths = 600

func ValidateCreateProperty(req request.CreatePropertyRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if len(req.Address) > 255 {
		errors["address"] = "address must be 255 characters or less"
	}

	validateCountryField(errors, req.CountryCode)

	if req.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be positive"
	}
	if req.CurrentValue < 0 {
		errors["currentValue"] = "current value cannot be negative"
	}

	if strings.TrimSpace(req.PurchaseDate) == "" {
		errors["purchaseDate"] = "purchase date is required"
	} else if _, err := ParseDate(req.PurchaseDate); err != nil {
		errors["purchaseDate"] = "purchase date must be YYYY-MM-DD"
	}

	validateNonNegative(errors, "monthlyRent", req.MonthlyRent)
	validateNonNegative(errors, "monthlyExpenses", req.MonthlyExpenses)
	validateNonNegative(errors, "monthlyMortgage", req.MonthlyMortgage)
	validateNonNegative(errors, "downPayment", req.DownPayment)
	if _, negative := errors["downPayment"]; !negative {
		validateDownPayment(errors, req.DownPayment, req.PurchasePrice)
	}

	validateLoan(errors, req.LoanRate, req.LoanTermMonths, req.LoanElapsedMonths)

	if req.OutstandingBalance != nil {
		validateNonNegative(errors, "outstandingBalance", *req.OutstandingBalance)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateProperty validates the provided fields only. Loan terms are
// checked against each other after merging in ValidateLoanTerms.
func ValidateUpdateProperty(req request.UpdatePropertyRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}
	if req.Address != nil && len(*req.Address) > 255 {
		errors["address"] = "address must be 255 characters or less"
	}
	if req.CountryCode != nil {
		validateCountryField(errors, *req.CountryCode)
	}
	if req.PurchasePrice != nil && *req.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be positive"
	}
	if req.CurrentValue != nil && *req.CurrentValue < 0 {
		errors["currentValue"] = "current value cannot be negative"
	}
	if req.PurchaseDate != nil {
		if _, err := ParseDate(*req.PurchaseDate); err != nil {
			errors["purchaseDate"] = "purchase date must be YYYY-MM-DD"
		}
	}

	for field, value := range map[string]*int64{
		"monthlyRent":        req.MonthlyRent,
		"monthlyExpenses":    req.MonthlyExpenses,
		"monthlyMortgage":    req.MonthlyMortgage,
		"downPayment":        req.DownPayment,
		"outstandingBalance": req.OutstandingBalance,
	} {
		if value != nil {
			validateNonNegative(errors, field, *value)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateLoanTerms checks a merged set of loan terms.
func ValidateLoanTerms(rate float64, termMonths, elapsedMonths int) error {
	errors := make(map[string]string)
	validateLoan(errors, rate, termMonths, elapsedMonths)
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateDownPayment checks the down payment of a merged property against its
// purchase price.
func ValidateDownPayment(downPayment, purchasePrice int64) error {
	errors := make(map[string]string)
	validateDownPayment(errors, downPayment, purchasePrice)
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateDownPayment(errors map[string]string, downPayment, purchasePrice int64) {
	if downPayment > purchasePrice && purchasePrice > 0 {
		errors["downPayment"] = "down payment cannot exceed purchase price"
	}
}

func validateLoan(errors map[string]string, rate float64, termMonths, elapsedMonths int) {
	if rate < 0 || rate > 100 {
		errors["loanRate"] = "loan rate must be between 0 and 100"
	}
	if termMonths < 0 || termMonths > MaxLoanTermMonths {
		errors["loanTermMonths"] = "loan term must be between 0 and 600 months"
	}
	if elapsedMonths < 0 {
		errors["loanElapsedMonths"] = "elapsed months cannot be negative"
	} else if elapsedMonths > termMonths {
		errors["loanElapsedMonths"] = "elapsed months cannot exceed loan term"
	}
}

func validateNonNegative(errors map[string]string, field string, value int64) {
	if value < 0 {
		errors[field] = field + " cannot be negative"
	}
}
