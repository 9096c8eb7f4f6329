package validation

import (
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
)

// MaxCashFlowPeriods bounds the length of a MIRR series.
const MaxCashFlowPeriods = finance.MaxHorizonMonths + 1

func ValidateAmortizationRequest(req request.AmortizationRequest) error {
	errors := make(map[string]string)

	if req.Principal < 0 {
		errors["principal"] = "principal cannot be negative"
	}
	validateLoan(errors, req.AnnualRate, req.TermMonths, req.ElapsedMonths)
	if msg, ok := errors["loanRate"]; ok {
		delete(errors, "loanRate")
		errors["annualRate"] = msg
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateROIRequest(req request.ROIRequest) error {
	errors := make(map[string]string)
	validateROI(errors, req)
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateTrueROIRequest(req request.TrueROIRequest) error {
	errors := make(map[string]string)
	validateROI(errors, req.ROIRequest)
	if req.MonthlyRent < 0 {
		errors["monthlyRent"] = "monthly rent cannot be negative"
	}
	if req.MonthlyExpenses < 0 {
		errors["monthlyExpenses"] = "monthly expenses cannot be negative"
	}
	if req.MonthlyMortgage < 0 {
		errors["monthlyMortgage"] = "monthly mortgage cannot be negative"
	}
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateMIRRRequest(req request.MIRRRequest) error {
	errors := make(map[string]string)

	if len(req.CashFlows) < 2 {
		errors["cashFlows"] = "at least two cash flows are required"
	} else if len(req.CashFlows) > MaxCashFlowPeriods {
		errors["cashFlows"] = "too many cash flows"
	}
	if req.FinanceRate <= -100 {
		errors["financeRate"] = "finance rate must be above -100"
	}
	if req.ReinvestRate <= -100 {
		errors["reinvestRate"] = "reinvest rate must be above -100"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateProjectionRequest(req request.ProjectionRequest) error {
	errors := make(map[string]string)

	for _, year := range req.Years {
		if year < 0 || year > request.MaxProjectionYear {
			errors["years"] = "years must be between 0 and 100"
			break
		}
	}
	if req.Country != "" {
		validateCountryField(errors, req.Country)
		if msg, ok := errors["countryCode"]; ok {
			delete(errors, "countryCode")
			errors["country"] = msg
		}
	}
	if req.CurrentValue < 0 {
		errors["currentValue"] = "current value cannot be negative"
	}
	if req.MonthlyRent < 0 {
		errors["monthlyRent"] = "monthly rent cannot be negative"
	}
	if req.MonthlyExpenses < 0 {
		errors["monthlyExpenses"] = "monthly expenses cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateROI(errors map[string]string, req request.ROIRequest) {
	if req.PurchasePrice < 0 {
		errors["purchasePrice"] = "purchase price cannot be negative"
	}
	if req.CurrentValue < 0 {
		errors["currentValue"] = "current value cannot be negative"
	}
	if _, err := ParseDate(req.PurchaseDate); err != nil {
		errors["purchaseDate"] = "purchase date must be YYYY-MM-DD"
	}
	if req.CurrentYear < 0 {
		errors["currentYear"] = "current year cannot be negative"
	}
}
