package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
)

// InflationRepository provides data access for stored inflation overrides.
type InflationRepository struct {
	db *sql.DB
}

// NewInflationRepository creates a new InflationRepository with the provided database connection.
func NewInflationRepository(db *sql.DB) *InflationRepository {
	return &InflationRepository{db: db}
}

// GetRates returns all stored overrides ordered by year.
func (r *InflationRepository) GetRates(ctx context.Context) ([]finance.InflationDataPoint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT year, rate FROM inflation_rate ORDER BY year ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inflation_rate table: %w", err)
	}
	defer rows.Close()

	points := []finance.InflationDataPoint{}

	for rows.Next() {
		var p finance.InflationDataPoint
		if err := rows.Scan(&p.Year, &p.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan inflation_rate table results: %w", err)
		}
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inflation_rate table: %w", err)
	}

	return points, nil
}

// UpsertRate stores the override for one year.
func (r *InflationRepository) UpsertRate(ctx context.Context, point finance.InflationDataPoint) error {
	query := `
		INSERT INTO inflation_rate (year, rate) VALUES (?, ?)
		ON CONFLICT(year) DO UPDATE SET rate = excluded.rate
	`

	if _, err := r.db.ExecContext(ctx, query, point.Year, point.Rate); err != nil {
		return fmt.Errorf("failed to upsert inflation rate: %w", err)
	}

	return nil
}
