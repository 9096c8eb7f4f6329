package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

// DictionaryRepository provides data access methods for the dictionary_entry table.
type DictionaryRepository struct {
	db *sql.DB
}

// NewDictionaryRepository creates a new DictionaryRepository with the provided database connection.
func NewDictionaryRepository(db *sql.DB) *DictionaryRepository {
	return &DictionaryRepository{db: db}
}

// GetEntries retrieves glossary entries ordered by term.
// An empty category returns every entry.
func (r *DictionaryRepository) GetEntries(ctx context.Context, category string) ([]model.DictionaryEntry, error) {
	query := `
		SELECT id, term, definition, category, created_at
		FROM dictionary_entry
		WHERE 1=1
	`
	var args []any

	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	query += " ORDER BY term COLLATE NOCASE ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dictionary_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.DictionaryEntry{}

	for rows.Next() {
		var e model.DictionaryEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Term, &e.Definition, &e.Category, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan dictionary_entry table results: %w", err)
		}
		if e.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dictionary_entry table: %w", err)
	}

	return entries, nil
}

// GetEntry retrieves one glossary entry by ID.
func (r *DictionaryRepository) GetEntry(ctx context.Context, entryID string) (model.DictionaryEntry, error) {
	query := `
		SELECT id, term, definition, category, created_at
		FROM dictionary_entry
		WHERE id = ?
	`

	var e model.DictionaryEntry
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, entryID).Scan(&e.ID, &e.Term, &e.Definition, &e.Category, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DictionaryEntry{}, apperrors.ErrDictionaryEntryNotFound
	}
	if err != nil {
		return model.DictionaryEntry{}, fmt.Errorf("failed to query dictionary entry: %w", err)
	}

	if e.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.DictionaryEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return e, nil
}

// InsertEntry stores a new glossary entry.
// Returns apperrors.ErrDuplicateEntry when the term already exists.
func (r *DictionaryRepository) InsertEntry(ctx context.Context, e *model.DictionaryEntry) error {
	query := `
		INSERT INTO dictionary_entry (id, term, definition, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, e.ID, e.Term, e.Definition, e.Category, formatTimestamp(e.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to insert dictionary entry: %w", err)
	}

	return nil
}

// UpdateEntry overwrites the term, definition and category of an entry.
func (r *DictionaryRepository) UpdateEntry(ctx context.Context, e *model.DictionaryEntry) error {
	query := `
		UPDATE dictionary_entry
		SET term = ?, definition = ?, category = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, e.Term, e.Definition, e.Category, e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to update dictionary entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrDictionaryEntryNotFound
	}

	return nil
}

// DeleteEntry removes a glossary entry by ID.
func (r *DictionaryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dictionary_entry WHERE id = ?`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete dictionary entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrDictionaryEntryNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
