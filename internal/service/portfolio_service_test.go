package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/testutil"
)

// TestPortfolioService_GetSummary tests the portfolio aggregation.
//
// WHY: The summary is the headline of the dashboard. Cash at hand and
// efficiency must only count rent-generating properties, and an empty
// portfolio must still produce a valid one-star score.
func TestPortfolioService_GetSummary(t *testing.T) {
	t.Run("empty portfolio rates one star", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		// Execute
		summary, err := svc.GetSummary(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.Score.PropertyCount != 0 {
			t.Errorf("Expected 0 properties, got %d", summary.Score.PropertyCount)
		}
		if summary.Score.ROIStars != 1 || summary.Score.EfficiencyStars != 1 {
			t.Errorf("Expected one star each, got %d/%d", summary.Score.ROIStars, summary.Score.EfficiencyStars)
		}
		if summary.Score.OverallRating != 1 {
			t.Errorf("Expected overall rating 1, got %v", summary.Score.OverallRating)
		}
		if summary.CashAtHandLabel != "$0.00" {
			t.Errorf("Expected label $0.00, got %q", summary.CashAtHandLabel)
		}
	})

	t.Run("aggregates rent-generating properties", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		first := testutil.CreateRentalProperty(t, db, 250000, 50000)
		second := testutil.CreateRentalProperty(t, db, 250000, 50000)
		testutil.CreateProperty(t, db, "Vacant Lot")

		// Execute
		summary, err := svc.GetSummary(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		score := summary.Score
		if score.PropertyCount != 3 || score.RentGeneratingCount != 2 {
			t.Errorf("Expected 3 properties with 2 rent-generating, got %d/%d",
				score.PropertyCount, score.RentGeneratingCount)
		}
		if score.TotalCashAtHand != 48000 {
			t.Errorf("Expected cash at hand 48000, got %v", score.TotalCashAtHand)
		}
		if score.RentGeneratingValue != 600000 {
			t.Errorf("Expected rent-generating value 600000, got %v", score.RentGeneratingValue)
		}
		if score.Efficiency != 8 || score.EfficiencyStars != 4 {
			t.Errorf("Expected efficiency 8 with 4 stars, got %v with %d", score.Efficiency, score.EfficiencyStars)
		}
		if summary.CashAtHandLabel != "$48K" {
			t.Errorf("Expected label $48K, got %q", summary.CashAtHandLabel)
		}
		if score.RealROIAll <= 0 {
			t.Errorf("Expected positive real ROI, got %v", score.RealROIAll)
		}

		if len(summary.Properties) != 3 {
			t.Fatalf("Expected 3 property metrics, got %d", len(summary.Properties))
		}
		ids := map[string]bool{}
		for _, m := range summary.Properties {
			ids[m.PropertyID] = true
		}
		if !ids[first.ID] || !ids[second.ID] {
			t.Errorf("Expected metrics for both rentals, got %v", ids)
		}
	})

	t.Run("labels cash in the selected currency", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		testutil.CreateRentalProperty(t, db, 250000, 50000)
		if _, err := testutil.NewTestSettingsService(t, db).SetSelectedCountry(context.Background(), "NL"); err != nil {
			t.Fatalf("SetSelectedCountry() returned unexpected error: %v", err)
		}
		svc := testutil.NewTestPortfolioService(t, db)

		// Execute
		summary, err := svc.GetSummary(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.CashAtHandLabel != "€24K" && summary.CashAtHandLabel != "24K €" && summary.CashAtHandLabel != "24K€" {
			t.Errorf("Expected a euro label for 24K, got %q", summary.CashAtHandLabel)
		}
	})

	t.Run("keeps stored property order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		older := testutil.NewProperty().WithPurchaseDate(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)).Build(t, db)
		newer := testutil.NewProperty().WithPurchaseDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)).Build(t, db)
		svc := testutil.NewTestPortfolioService(t, db)

		summary, err := svc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.Properties[0].PropertyID != older.ID || summary.Properties[1].PropertyID != newer.ID {
			t.Errorf("Expected purchase-date order")
		}
	})
}
