package service

import (
	"context"
	"fmt"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
)

// InflationService merges stored inflation overrides over the built-in
// historical table.
type InflationService struct {
	inflationRepo *repository.InflationRepository
}

// NewInflationService creates a new InflationService.
func NewInflationService(inflationRepo *repository.InflationRepository) *InflationService {
	return &InflationService{inflationRepo: inflationRepo}
}

// Table returns the effective inflation table for one calculation pass.
func (s *InflationService) Table(ctx context.Context) (*finance.InflationTable, error) {
	overrides, err := s.inflationRepo.GetRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inflation overrides: %w", err)
	}
	return finance.DefaultInflationTable().With(overrides...), nil
}

// GetRates returns the effective table as points ordered by year.
func (s *InflationService) GetRates(ctx context.Context) ([]finance.InflationDataPoint, error) {
	table, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}
	return table.Points(), nil
}

// SetRate stores an override for year.
func (s *InflationService) SetRate(ctx context.Context, year int, rate float64) (finance.InflationDataPoint, error) {
	point := finance.InflationDataPoint{Year: year, Rate: rate}
	if err := s.inflationRepo.UpsertRate(ctx, point); err != nil {
		return finance.InflationDataPoint{}, fmt.Errorf("failed to set inflation rate: %w", err)
	}
	return point, nil
}
