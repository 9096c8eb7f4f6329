package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
)

// SettingsService handles country assumption bundles and the selected country.
type SettingsService struct {
	settingsRepo   *repository.SettingsRepository
	defaultCountry string
}

// NewSettingsService creates a new SettingsService. defaultCountry is used
// until a country has been selected explicitly.
func NewSettingsService(settingsRepo *repository.SettingsRepository, defaultCountry string) *SettingsService {
	return &SettingsService{
		settingsRepo:   settingsRepo,
		defaultCountry: strings.ToUpper(defaultCountry),
	}
}

// GetCountries returns every stored country bundle.
func (s *SettingsService) GetCountries(ctx context.Context) ([]model.CountrySettings, error) {
	return s.settingsRepo.GetCountries(ctx)
}

// GetCountry returns the bundle for code, case-insensitively.
func (s *SettingsService) GetCountry(ctx context.Context, code string) (model.CountrySettings, error) {
	return s.settingsRepo.GetCountry(ctx, strings.ToUpper(code))
}

// UpdateCountry creates or replaces the bundle for code.
func (s *SettingsService) UpdateCountry(
	ctx context.Context,
	code string,
	req request.UpdateCountrySettingsRequest,
) (model.CountrySettings, error) {
	settings := model.CountrySettings{
		Code:                strings.ToUpper(code),
		Name:                strings.TrimSpace(req.Name),
		Currency:            strings.ToUpper(req.Currency),
		AppreciationRate:    req.AppreciationRate,
		InflationRate:       req.InflationRate,
		SellingCostRate:     req.SellingCostRate,
		CapitalGainsTaxRate: req.CapitalGainsTaxRate,
		MortgageRate:        req.MortgageRate,
	}

	if err := s.settingsRepo.UpsertCountry(ctx, settings); err != nil {
		return model.CountrySettings{}, fmt.Errorf("failed to update country settings: %w", err)
	}

	return settings, nil
}

// GetSelectedCountry returns the bundle of the selected country, falling
// back to the configured default when nothing has been selected.
func (s *SettingsService) GetSelectedCountry(ctx context.Context) (model.CountrySettings, error) {
	code, err := s.settingsRepo.GetSetting(ctx, model.SelectedCountrySetting)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		code = s.defaultCountry
	} else if err != nil {
		return model.CountrySettings{}, err
	}

	return s.GetCountry(ctx, code)
}

// SetSelectedCountry stores code as the selected country. The country must exist.
func (s *SettingsService) SetSelectedCountry(ctx context.Context, code string) (model.CountrySettings, error) {
	settings, err := s.GetCountry(ctx, code)
	if err != nil {
		return model.CountrySettings{}, err
	}

	if err := s.settingsRepo.SetSetting(ctx, model.SelectedCountrySetting, settings.Code); err != nil {
		return model.CountrySettings{}, fmt.Errorf("failed to select country: %w", err)
	}

	return settings, nil
}

// ResolveCountry returns the bundle for code, or the selected one when code is empty.
func (s *SettingsService) ResolveCountry(ctx context.Context, code string) (model.CountrySettings, error) {
	if strings.TrimSpace(code) == "" {
		return s.GetSelectedCountry(ctx)
	}
	return s.GetCountry(ctx, code)
}
