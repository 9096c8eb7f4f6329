package service

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// PortfolioService aggregates the per-property metrics into portfolio scores.
type PortfolioService struct {
	propertyRepo     *repository.PropertyRepository
	settingsService  *SettingsService
	inflationService *InflationService
	evaluationYear   int
	now              func() time.Time
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(
	propertyRepo *repository.PropertyRepository,
	settingsService *SettingsService,
	inflationService *InflationService,
	evaluationYear int,
) *PortfolioService {
	return &PortfolioService{
		propertyRepo:     propertyRepo,
		settingsService:  settingsService,
		inflationService: inflationService,
		evaluationYear:   evaluationYear,
		now:              time.Now,
	}
}

// WithClock returns a copy of the service that reads the time from now.
func (s *PortfolioService) WithClock(now func() time.Time) *PortfolioService {
	clone := *s
	clone.now = now
	return &clone
}

// GetSummary computes the metrics of every property concurrently and folds
// them into the portfolio score. Properties keep their stored order.
//
// Amounts are summed as stored; properties in different currencies are not
// converted.
func (s *PortfolioService) GetSummary(ctx context.Context) (model.PortfolioSummary, error) {
	properties, err := s.propertyRepo.GetProperties(ctx)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	table, err := s.inflationService.Table(ctx)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	countries, err := s.settingsService.GetCountries(ctx)
	if err != nil {
		return model.PortfolioSummary{}, err
	}
	byCode := make(map[string]model.CountrySettings, len(countries))
	for _, c := range countries {
		byCode[c.Code] = c
	}

	selected, err := s.settingsService.GetSelectedCountry(ctx)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	asOf := evaluationDate(s.evaluationYear, s.now())
	metrics := make([]model.PropertyMetrics, len(properties))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range properties {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			settings, ok := byCode[p.CountryCode]
			if !ok {
				return fmt.Errorf("property %s: %w", p.ID, apperrors.ErrCountryNotFound)
			}
			metrics[i] = computeMetrics(p, evaluation{
				settings: settings,
				table:    table,
				year:     s.evaluationYear,
				asOf:     asOf,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.PortfolioSummary{}, err
	}

	scores := make([]finance.PropertyScore, len(properties))
	for i, p := range properties {
		scores[i] = metrics[i].Score(p.MonthlyRent.Major(), p.MonthlyExpenses.Major())
	}
	score := finance.AggregatePortfolio(scores)

	return model.PortfolioSummary{
		Score:           score,
		Properties:      metrics,
		CashAtHandLabel: currency.Format(currency.FromMajor(score.TotalCashAtHand), selected.Currency, true),
	}, nil
}
