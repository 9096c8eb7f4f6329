package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

// SettingsRepository provides data access methods for the country_settings
// and app_setting tables.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetCountries retrieves every stored country bundle ordered by code.
func (r *SettingsRepository) GetCountries(ctx context.Context) ([]model.CountrySettings, error) {
	query := `
		SELECT code, name, currency, appreciation_rate, inflation_rate,
			selling_cost_rate, capital_gains_tax_rate, mortgage_rate
		FROM country_settings
		ORDER BY code ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query country_settings table: %w", err)
	}
	defer rows.Close()

	countries := []model.CountrySettings{}

	for rows.Next() {
		var c model.CountrySettings
		err := rows.Scan(
			&c.Code,
			&c.Name,
			&c.Currency,
			&c.AppreciationRate,
			&c.InflationRate,
			&c.SellingCostRate,
			&c.CapitalGainsTaxRate,
			&c.MortgageRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan country_settings table results: %w", err)
		}
		countries = append(countries, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country_settings table: %w", err)
	}

	return countries, nil
}

// GetCountry retrieves the bundle for one country code.
func (r *SettingsRepository) GetCountry(ctx context.Context, code string) (model.CountrySettings, error) {
	query := `
		SELECT code, name, currency, appreciation_rate, inflation_rate,
			selling_cost_rate, capital_gains_tax_rate, mortgage_rate
		FROM country_settings
		WHERE code = ?
	`

	var c model.CountrySettings
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&c.Code,
		&c.Name,
		&c.Currency,
		&c.AppreciationRate,
		&c.InflationRate,
		&c.SellingCostRate,
		&c.CapitalGainsTaxRate,
		&c.MortgageRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CountrySettings{}, apperrors.ErrCountryNotFound
	}
	if err != nil {
		return model.CountrySettings{}, fmt.Errorf("failed to query country settings: %w", err)
	}

	return c, nil
}

// UpsertCountry inserts or replaces the bundle for c.Code.
func (r *SettingsRepository) UpsertCountry(ctx context.Context, c model.CountrySettings) error {
	query := `
		INSERT INTO country_settings (code, name, currency, appreciation_rate, inflation_rate,
			selling_cost_rate, capital_gains_tax_rate, mortgage_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			currency = excluded.currency,
			appreciation_rate = excluded.appreciation_rate,
			inflation_rate = excluded.inflation_rate,
			selling_cost_rate = excluded.selling_cost_rate,
			capital_gains_tax_rate = excluded.capital_gains_tax_rate,
			mortgage_rate = excluded.mortgage_rate
	`

	_, err := r.db.ExecContext(ctx, query,
		c.Code,
		c.Name,
		c.Currency,
		c.AppreciationRate,
		c.InflationRate,
		c.SellingCostRate,
		c.CapitalGainsTaxRate,
		c.MortgageRate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert country settings: %w", err)
	}

	return nil
}

// GetSetting reads an app_setting value by key.
func (r *SettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM app_setting WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query app_setting: %w", err)
	}

	return value, nil
}

// SetSetting stores an app_setting value, replacing any previous value.
func (r *SettingsRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_setting (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to store app_setting: %w", err)
	}

	return nil
}
