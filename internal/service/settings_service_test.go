package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/testutil"
)

// TestSettingsService_Countries tests the country bundle operations.
//
// WHY: Country bundles replace the hard-coded assumptions; the seeded
// defaults must be present and updates must be visible immediately.
func TestSettingsService_Countries(t *testing.T) {
	t.Run("returns seeded countries", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		// Execute
		countries, err := svc.GetCountries(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetCountries() returned unexpected error: %v", err)
		}
		codes := make([]string, len(countries))
		for i, c := range countries {
			codes[i] = c.Code
		}
		want := []string{"DE", "GB", "NL", "US"}
		if len(codes) != len(want) {
			t.Fatalf("Expected %v, got %v", want, codes)
		}
		for i := range want {
			if codes[i] != want[i] {
				t.Errorf("Expected %v, got %v", want, codes)
				break
			}
		}
	})

	t.Run("looks up case-insensitively", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		nl, err := svc.GetCountry(context.Background(), "nl")
		if err != nil {
			t.Fatalf("GetCountry() returned unexpected error: %v", err)
		}
		if nl.Currency != "EUR" {
			t.Errorf("Expected EUR, got %q", nl.Currency)
		}
	})

	t.Run("creates and replaces a country", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)
		req := request.UpdateCountrySettingsRequest{
			Name:             "Belgium",
			Currency:         "eur",
			AppreciationRate: 3,
			InflationRate:    2.2,
			SellingCostRate:  3,
			MortgageRate:     3.9,
		}

		// Execute
		created, err := svc.UpdateCountry(context.Background(), "be", req)
		if err != nil {
			t.Fatalf("UpdateCountry() returned unexpected error: %v", err)
		}
		req.AppreciationRate = 3.5
		if _, err := svc.UpdateCountry(context.Background(), "BE", req); err != nil {
			t.Fatalf("UpdateCountry() returned unexpected error: %v", err)
		}
		stored, err := svc.GetCountry(context.Background(), "BE")

		// Assert
		if err != nil {
			t.Fatalf("GetCountry() returned unexpected error: %v", err)
		}
		if created.Code != "BE" || created.Currency != "EUR" {
			t.Errorf("Expected normalized codes, got %+v", created)
		}
		if stored.AppreciationRate != 3.5 {
			t.Errorf("Expected replaced appreciation 3.5, got %v", stored.AppreciationRate)
		}
		testutil.AssertRowCount(t, db, "country_settings", 5)
	})

	t.Run("returns not found for unknown code", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		if _, err := svc.GetCountry(context.Background(), "XX"); !errors.Is(err, apperrors.ErrCountryNotFound) {
			t.Errorf("Expected ErrCountryNotFound, got %v", err)
		}
	})
}

// TestSettingsService_SelectedCountry tests the selected-country setting.
//
// WHY: The selected country only changes through an explicit call, and a
// missing setting must fall back to the configured default.
func TestSettingsService_SelectedCountry(t *testing.T) {
	t.Run("returns seeded selection", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		selected, err := svc.GetSelectedCountry(context.Background())
		if err != nil {
			t.Fatalf("GetSelectedCountry() returned unexpected error: %v", err)
		}
		if selected.Code != "US" {
			t.Errorf("Expected US, got %q", selected.Code)
		}
	})

	t.Run("persists a new selection", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		// Execute
		if _, err := svc.SetSelectedCountry(context.Background(), "gb"); err != nil {
			t.Fatalf("SetSelectedCountry() returned unexpected error: %v", err)
		}
		selected, err := testutil.NewTestSettingsService(t, db).GetSelectedCountry(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetSelectedCountry() returned unexpected error: %v", err)
		}
		if selected.Code != "GB" {
			t.Errorf("Expected GB, got %q", selected.Code)
		}
	})

	t.Run("rejects unknown country", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		if _, err := svc.SetSelectedCountry(context.Background(), "XX"); !errors.Is(err, apperrors.ErrCountryNotFound) {
			t.Errorf("Expected ErrCountryNotFound, got %v", err)
		}
	})

	t.Run("falls back to default when unset", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		if _, err := db.Exec("DELETE FROM app_setting"); err != nil {
			t.Fatalf("Failed to clear app_setting: %v", err)
		}
		svc := testutil.NewTestSettingsService(t, db)

		// Execute
		selected, err := svc.GetSelectedCountry(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetSelectedCountry() returned unexpected error: %v", err)
		}
		if selected.Code != "US" {
			t.Errorf("Expected default US, got %q", selected.Code)
		}
	})

	t.Run("ResolveCountry prefers the explicit code", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		de, err := svc.ResolveCountry(context.Background(), "DE")
		if err != nil || de.Code != "DE" {
			t.Errorf("ResolveCountry(DE) = %q, %v", de.Code, err)
		}
		us, err := svc.ResolveCountry(context.Background(), " ")
		if err != nil || us.Code != "US" {
			t.Errorf("ResolveCountry(blank) = %q, %v", us.Code, err)
		}
	})
}

func TestInflationService(t *testing.T) {
	t.Run("merges overrides over the built-in table", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInflationService(t, db)
		testutil.SetInflationRate(t, db, 2022, 7.5)
		testutil.SetInflationRate(t, db, 2030, 2.0)

		// Execute
		table, err := svc.Table(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("Table() returned unexpected error: %v", err)
		}
		if rate, ok := table.Rate(2022); !ok || rate != 7.5 {
			t.Errorf("Expected override 7.5 for 2022, got %v (%v)", rate, ok)
		}
		if rate, ok := table.Rate(2030); !ok || rate != 2.0 {
			t.Errorf("Expected added year 2030, got %v (%v)", rate, ok)
		}
		if rate, ok := table.Rate(2021); !ok || rate != 4.7 {
			t.Errorf("Expected built-in 4.7 for 2021, got %v (%v)", rate, ok)
		}
	})

	t.Run("SetRate stores an override", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInflationService(t, db)

		if _, err := svc.SetRate(context.Background(), 2025, 3.0); err != nil {
			t.Fatalf("SetRate() returned unexpected error: %v", err)
		}
		if _, err := svc.SetRate(context.Background(), 2025, 2.7); err != nil {
			t.Fatalf("SetRate() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "inflation_rate", 1)

		points, err := svc.GetRates(context.Background())
		if err != nil {
			t.Fatalf("GetRates() returned unexpected error: %v", err)
		}
		last := points[len(points)-1]
		if last.Year != 2025 || last.Rate != 2.7 {
			t.Errorf("Expected last point 2025 at 2.7, got %+v", last)
		}
	})
}
