package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

// PropertyRepository provides data access methods for the property table.
type PropertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new PropertyRepository with the provided database connection.
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

const propertyColumns = `
	id, name, address, country_code, purchase_price, current_value, purchase_date,
	monthly_rent, monthly_expenses, monthly_mortgage, down_payment,
	loan_rate, loan_term_months, loan_elapsed_months, outstanding_balance,
	current_net_equity, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (model.Property, error) {
	var p model.Property
	var purchaseDate, createdAt, updatedAt string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.CountryCode,
		&p.PurchasePrice,
		&p.CurrentValue,
		&purchaseDate,
		&p.MonthlyRent,
		&p.MonthlyExpenses,
		&p.MonthlyMortgage,
		&p.DownPayment,
		&p.LoanRate,
		&p.LoanTermMonths,
		&p.LoanElapsedMonths,
		&p.OutstandingBalance,
		&p.CurrentNetEquity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.Property{}, err
	}

	if p.PurchaseDate, err = ParseTime(purchaseDate); err != nil {
		return model.Property{}, fmt.Errorf("failed to parse purchase_date: %w", err)
	}
	if p.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Property{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if p.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Property{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return p, nil
}

// GetProperties retrieves all properties ordered by purchase date.
// Returns an empty slice if no properties exist.
func (r *PropertyRepository) GetProperties(ctx context.Context) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM property ORDER BY purchase_date ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query property table: %w", err)
	}
	defer rows.Close()

	properties := []model.Property{}

	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property table results: %w", err)
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property table: %w", err)
	}

	return properties, nil
}

// GetProperty retrieves a single property by ID.
// Returns apperrors.ErrPropertyNotFound when no row matches.
func (r *PropertyRepository) GetProperty(ctx context.Context, propertyID string) (model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM property WHERE id = ?`

	p, err := scanProperty(r.db.QueryRowContext(ctx, query, propertyID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Property{}, apperrors.ErrPropertyNotFound
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to query property: %w", err)
	}

	return p, nil
}

// InsertProperty stores a new property. The caller assigns ID and timestamps.
func (r *PropertyRepository) InsertProperty(ctx context.Context, p *model.Property) error {
	query := `
		INSERT INTO property (` + propertyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Address,
		p.CountryCode,
		p.PurchasePrice,
		p.CurrentValue,
		formatDate(p.PurchaseDate),
		p.MonthlyRent,
		p.MonthlyExpenses,
		p.MonthlyMortgage,
		p.DownPayment,
		p.LoanRate,
		p.LoanTermMonths,
		p.LoanElapsedMonths,
		p.OutstandingBalance,
		p.CurrentNetEquity,
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}

	return nil
}

// UpdateProperty overwrites every mutable column of an existing property.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, p *model.Property) error {
	query := `
		UPDATE property
		SET name = ?, address = ?, country_code = ?, purchase_price = ?, current_value = ?,
			purchase_date = ?, monthly_rent = ?, monthly_expenses = ?, monthly_mortgage = ?,
			down_payment = ?, loan_rate = ?, loan_term_months = ?, loan_elapsed_months = ?,
			outstanding_balance = ?, current_net_equity = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Address,
		p.CountryCode,
		p.PurchasePrice,
		p.CurrentValue,
		formatDate(p.PurchaseDate),
		p.MonthlyRent,
		p.MonthlyExpenses,
		p.MonthlyMortgage,
		p.DownPayment,
		p.LoanRate,
		p.LoanTermMonths,
		p.LoanElapsedMonths,
		p.OutstandingBalance,
		p.CurrentNetEquity,
		formatTimestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

// DeleteProperty removes a property by ID.
func (r *PropertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	query := `DELETE FROM property WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}
