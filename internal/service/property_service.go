package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/validation"
)

// PropertyService handles property records and the per-property calculators.
// Inflation table and country settings are loaded once per call and passed
// into the calculators as values.
type PropertyService struct {
	propertyRepo     *repository.PropertyRepository
	settingsService  *SettingsService
	inflationService *InflationService
	evaluationYear   int
	now              func() time.Time
}

// NewPropertyService creates a new PropertyService. evaluationYear is the
// "current year" every ROI calculation measures against.
func NewPropertyService(
	propertyRepo *repository.PropertyRepository,
	settingsService *SettingsService,
	inflationService *InflationService,
	evaluationYear int,
) *PropertyService {
	return &PropertyService{
		propertyRepo:     propertyRepo,
		settingsService:  settingsService,
		inflationService: inflationService,
		evaluationYear:   evaluationYear,
		now:              time.Now,
	}
}

// WithClock returns a copy of the service that reads the time from now.
func (s *PropertyService) WithClock(now func() time.Time) *PropertyService {
	clone := *s
	clone.now = now
	return &clone
}

// EvaluationYear returns the year calculations are measured against.
func (s *PropertyService) EvaluationYear() int {
	return s.evaluationYear
}

// GetProperties returns every stored property.
func (s *PropertyService) GetProperties(ctx context.Context) ([]model.Property, error) {
	return s.propertyRepo.GetProperties(ctx)
}

// GetProperty returns one property or apperrors.ErrPropertyNotFound.
func (s *PropertyService) GetProperty(ctx context.Context, id string) (model.Property, error) {
	return s.propertyRepo.GetProperty(ctx, id)
}

// CreateProperty stores a new property. The country must exist; the
// outstanding balance and net equity are derived from the loan terms unless
// provided.
//
// Returns apperrors.ErrCountryNotFound for an unknown country code.
func (s *PropertyService) CreateProperty(ctx context.Context, req request.CreatePropertyRequest) (*model.Property, error) {
	if _, err := s.settingsService.GetCountry(ctx, req.CountryCode); err != nil {
		return nil, err
	}

	purchaseDate, err := validation.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Second)
	property := &model.Property{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(req.Name),
		Address:           strings.TrimSpace(req.Address),
		CountryCode:       strings.ToUpper(req.CountryCode),
		PurchasePrice:     currency.Cents(req.PurchasePrice),
		CurrentValue:      currency.Cents(req.CurrentValue),
		PurchaseDate:      purchaseDate,
		MonthlyRent:       currency.Cents(req.MonthlyRent),
		MonthlyExpenses:   currency.Cents(req.MonthlyExpenses),
		MonthlyMortgage:   currency.Cents(req.MonthlyMortgage),
		DownPayment:       currency.Cents(req.DownPayment),
		LoanRate:          req.LoanRate,
		LoanTermMonths:    req.LoanTermMonths,
		LoanElapsedMonths: req.LoanElapsedMonths,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	deriveLoanState(property)
	if req.OutstandingBalance != nil {
		property.OutstandingBalance = currency.Cents(*req.OutstandingBalance)
		property.CurrentNetEquity = property.CurrentValue - property.OutstandingBalance
	}
	if req.CurrentNetEquity != nil {
		property.CurrentNetEquity = currency.Cents(*req.CurrentNetEquity)
	}

	if err := s.propertyRepo.InsertProperty(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

// UpdateProperty changes the provided fields of a property. When loan terms,
// price or value change and the derived amounts are not provided, they are
// derived again.
func (s *PropertyService) UpdateProperty(
	ctx context.Context,
	id string,
	req request.UpdatePropertyRequest,
) (*model.Property, error) {
	property, err := s.propertyRepo.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		property.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		property.Address = strings.TrimSpace(*req.Address)
	}
	if req.CountryCode != nil {
		if _, err := s.settingsService.GetCountry(ctx, *req.CountryCode); err != nil {
			return nil, err
		}
		property.CountryCode = strings.ToUpper(*req.CountryCode)
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := validation.ParseDate(*req.PurchaseDate)
		if err != nil {
			return nil, err
		}
		property.PurchaseDate = purchaseDate
	}

	setCents(&property.PurchasePrice, req.PurchasePrice)
	setCents(&property.CurrentValue, req.CurrentValue)
	setCents(&property.MonthlyRent, req.MonthlyRent)
	setCents(&property.MonthlyExpenses, req.MonthlyExpenses)
	setCents(&property.MonthlyMortgage, req.MonthlyMortgage)
	setCents(&property.DownPayment, req.DownPayment)
	if req.LoanRate != nil {
		property.LoanRate = *req.LoanRate
	}
	if req.LoanTermMonths != nil {
		property.LoanTermMonths = *req.LoanTermMonths
	}
	if req.LoanElapsedMonths != nil {
		property.LoanElapsedMonths = *req.LoanElapsedMonths
	}

	if err := validation.ValidateLoanTerms(property.LoanRate, property.LoanTermMonths, property.LoanElapsedMonths); err != nil {
		return nil, err
	}
	if err := validation.ValidateDownPayment(int64(property.DownPayment), int64(property.PurchasePrice)); err != nil {
		return nil, err
	}

	loanChanged := req.PurchasePrice != nil || req.DownPayment != nil || req.LoanRate != nil ||
		req.LoanTermMonths != nil || req.LoanElapsedMonths != nil
	if loanChanged && req.OutstandingBalance == nil {
		deriveLoanState(&property)
	}
	if req.OutstandingBalance != nil {
		property.OutstandingBalance = currency.Cents(*req.OutstandingBalance)
	}
	if req.CurrentNetEquity != nil {
		property.CurrentNetEquity = currency.Cents(*req.CurrentNetEquity)
	} else if loanChanged || req.CurrentValue != nil || req.OutstandingBalance != nil {
		property.CurrentNetEquity = property.CurrentValue - property.OutstandingBalance
	}

	property.UpdatedAt = s.now().UTC().Truncate(time.Second)

	if err := s.propertyRepo.UpdateProperty(ctx, &property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return &property, nil
}

// DeleteProperty removes a property.
func (s *PropertyService) DeleteProperty(ctx context.Context, id string) error {
	return s.propertyRepo.DeleteProperty(ctx, id)
}

// GetMetrics runs every per-property calculator for one property.
func (s *PropertyService) GetMetrics(ctx context.Context, id string) (model.PropertyMetrics, error) {
	property, err := s.propertyRepo.GetProperty(ctx, id)
	if err != nil {
		return model.PropertyMetrics{}, err
	}

	ev, err := s.evaluationFor(ctx, property.CountryCode)
	if err != nil {
		return model.PropertyMetrics{}, err
	}

	return computeMetrics(property, ev), nil
}

// GetProjection builds the year-indexed projection of one property using the
// assumptions of its country.
func (s *PropertyService) GetProjection(
	ctx context.Context,
	id string,
	filter model.ProjectionFilter,
) (model.PropertyProjection, error) {
	property, err := s.propertyRepo.GetProperty(ctx, id)
	if err != nil {
		return model.PropertyProjection{}, err
	}

	settings, err := s.settingsService.GetCountry(ctx, property.CountryCode)
	if err != nil {
		return model.PropertyProjection{}, err
	}

	rows, err := finance.Project(filter.Years, projectionInput(property), settings.Assumptions(), filter.InflationAdjusted)
	if err != nil {
		return model.PropertyProjection{}, err
	}

	return model.PropertyProjection{
		PropertyID:        property.ID,
		Country:           settings.Code,
		InflationAdjusted: filter.InflationAdjusted,
		Rows:              rows,
	}, nil
}

// GetProjectedMIRR computes the forward-looking MIRR of one property over
// horizonMonths.
func (s *PropertyService) GetProjectedMIRR(ctx context.Context, id string, horizonMonths int) (model.MIRRSummary, error) {
	property, err := s.propertyRepo.GetProperty(ctx, id)
	if err != nil {
		return model.MIRRSummary{}, err
	}

	settings, err := s.settingsService.GetCountry(ctx, property.CountryCode)
	if err != nil {
		return model.MIRRSummary{}, err
	}

	flows := finance.ProjectedCashFlows(projectedInput(property, settings.Assumptions(), horizonMonths))
	financeRate, reinvestRate := mirrRates(settings)
	return model.NewMIRRSummary(finance.MIRR(flows, financeRate, reinvestRate)), nil
}

// evaluationFor loads the assumptions for one calculation pass.
func (s *PropertyService) evaluationFor(ctx context.Context, countryCode string) (evaluation, error) {
	settings, err := s.settingsService.GetCountry(ctx, countryCode)
	if err != nil {
		return evaluation{}, err
	}

	table, err := s.inflationService.Table(ctx)
	if err != nil {
		return evaluation{}, err
	}

	return evaluation{
		settings: settings,
		table:    table,
		year:     s.evaluationYear,
		asOf:     evaluationDate(s.evaluationYear, s.now()),
	}, nil
}

func setCents(dst *currency.Cents, value *int64) {
	if value != nil {
		*dst = currency.Cents(*value)
	}
}
