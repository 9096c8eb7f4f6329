package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the portfolio_snapshot table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// InsertSnapshot stores one portfolio snapshot.
func (r *SnapshotRepository) InsertSnapshot(ctx context.Context, s *model.PortfolioSnapshot) error {
	query := `
		INSERT INTO portfolio_snapshot (
			id, taken_at, property_count, rent_generating_count, real_roi_all,
			real_roi_rent_generating, total_cash_at_hand, rent_generating_value,
			efficiency, roi_stars, efficiency_stars, overall_rating
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		formatTimestamp(s.TakenAt),
		s.Score.PropertyCount,
		s.Score.RentGeneratingCount,
		s.Score.RealROIAll,
		s.Score.RealROIRentGenerating,
		s.Score.TotalCashAtHand,
		s.Score.RentGeneratingValue,
		s.Score.Efficiency,
		s.Score.ROIStars,
		s.Score.EfficiencyStars,
		s.Score.OverallRating,
	)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio snapshot: %w", err)
	}

	return nil
}

// GetSnapshots returns the most recent snapshots, newest first.
// A limit of zero or less returns every snapshot.
func (r *SnapshotRepository) GetSnapshots(ctx context.Context, limit int) ([]model.PortfolioSnapshot, error) {
	query := `
		SELECT id, taken_at, property_count, rent_generating_count, real_roi_all,
			real_roi_rent_generating, total_cash_at_hand, rent_generating_value,
			efficiency, roi_stars, efficiency_stars, overall_rating
		FROM portfolio_snapshot
		ORDER BY taken_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PortfolioSnapshot{}

	for rows.Next() {
		var s model.PortfolioSnapshot
		var takenAt string
		err := rows.Scan(
			&s.ID,
			&takenAt,
			&s.Score.PropertyCount,
			&s.Score.RentGeneratingCount,
			&s.Score.RealROIAll,
			&s.Score.RealROIRentGenerating,
			&s.Score.TotalCashAtHand,
			&s.Score.RentGeneratingValue,
			&s.Score.Efficiency,
			&s.Score.ROIStars,
			&s.Score.EfficiencyStars,
			&s.Score.OverallRating,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_snapshot table results: %w", err)
		}
		if s.TakenAt, err = ParseTime(takenAt); err != nil {
			return nil, fmt.Errorf("failed to parse taken_at: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_snapshot table: %w", err)
	}

	return snapshots, nil
}
