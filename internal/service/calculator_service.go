package service

import (
	"context"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/validation"
)

// CalculatorService runs the calculators on transient input that is not
// stored. Amounts are major units.
type CalculatorService struct {
	settingsService  *SettingsService
	inflationService *InflationService
	evaluationYear   int
}

// NewCalculatorService creates a new CalculatorService. evaluationYear is
// used when a request leaves the current year unset.
func NewCalculatorService(
	settingsService *SettingsService,
	inflationService *InflationService,
	evaluationYear int,
) *CalculatorService {
	return &CalculatorService{
		settingsService:  settingsService,
		inflationService: inflationService,
		evaluationYear:   evaluationYear,
	}
}

func (s *CalculatorService) Amortization(req request.AmortizationRequest) model.AmortizationResult {
	result := model.AmortizationResult{
		Amortization: finance.Amortize(req.Principal, req.AnnualRate, req.TermMonths, req.ElapsedMonths),
	}
	if req.IncludeSchedule {
		result.Schedule = finance.AmortizationSchedule(req.Principal, req.AnnualRate, req.TermMonths)
	}
	return result
}

// RealAppreciation computes nominal and inflation-adjusted appreciation with
// the effective inflation table.
func (s *CalculatorService) RealAppreciation(ctx context.Context, req request.ROIRequest) (finance.RealAppreciationResult, error) {
	purchaseDate, err := validation.ParseDate(req.PurchaseDate)
	if err != nil {
		return finance.RealAppreciationResult{}, err
	}

	table, err := s.inflationService.Table(ctx)
	if err != nil {
		return finance.RealAppreciationResult{}, err
	}

	return finance.RealAppreciation(finance.AppreciationInput{
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  req.CurrentValue,
		PurchaseDate:  purchaseDate,
		CurrentYear:   s.currentYear(req.CurrentYear),
	}, table), nil
}

func (s *CalculatorService) TrueROI(req request.TrueROIRequest) (finance.TrueROIResult, error) {
	purchaseDate, err := validation.ParseDate(req.PurchaseDate)
	if err != nil {
		return finance.TrueROIResult{}, err
	}

	return finance.TrueROI(finance.TrueROIInput{
		PurchasePrice:   req.PurchasePrice,
		CurrentValue:    req.CurrentValue,
		PurchaseDate:    purchaseDate,
		CurrentYear:     s.currentYear(req.CurrentYear),
		MonthlyRent:     req.MonthlyRent,
		MonthlyExpenses: req.MonthlyExpenses,
		MonthlyMortgage: req.MonthlyMortgage,
	}), nil
}

func (s *CalculatorService) MIRR(req request.MIRRRequest) model.MIRRSummary {
	return model.NewMIRRSummary(finance.MIRR(req.CashFlows, req.FinanceRate, req.ReinvestRate))
}

// Projection uses the settings of req.Country, or the selected country.
func (s *CalculatorService) Projection(ctx context.Context, req request.ProjectionRequest) ([]finance.ProjectionRow, error) {
	settings, err := s.settingsService.ResolveCountry(ctx, req.Country)
	if err != nil {
		return nil, err
	}

	years := req.Years
	if len(years) == 0 {
		years = finance.DefaultProjectionYears
	}

	return finance.Project(years, finance.ProjectionInput{
		CurrentValue:     req.CurrentValue,
		MonthlyRent:      req.MonthlyRent,
		MonthlyExpenses:  req.MonthlyExpenses,
		CurrentNetEquity: req.CurrentNetEquity,
		PurchasePrice:    req.PurchasePrice,
	}, settings.Assumptions(), req.InflationAdjusted)
}

func (s *CalculatorService) currentYear(year int) int {
	if year > 0 {
		return year
	}
	return s.evaluationYear
}
