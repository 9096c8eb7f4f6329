package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/handlers"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/testutil"
)

func TestSettingsHandler(t *testing.T) {
	t.Run("GET /api/settings/country lists seeded countries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSettingsHandler(testutil.NewTestSettingsService(t, db))
		w := httptest.NewRecorder()

		handler.Countries(w, httptest.NewRequest(http.MethodGet, "/api/settings/country", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		if countries := testutil.DecodeJSON[[]model.CountrySettings](t, w); len(countries) != 4 {
			t.Errorf("Expected 4 countries, got %d", len(countries))
		}
	})

	t.Run("GET /api/settings/country/{code} is case-insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSettingsHandler(testutil.NewTestSettingsService(t, db))
		w := httptest.NewRecorder()

		handler.GetCountry(w, testutil.NewRequestWithURLParams(http.MethodGet, "/api/settings/country/de", map[string]string{"code": "de"}))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		if country := testutil.DecodeJSON[model.CountrySettings](t, w); country.Code != "DE" {
			t.Errorf("Expected DE, got %q", country.Code)
		}
	})

	t.Run("GET /api/settings/country/{code} returns 404 and 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSettingsHandler(testutil.NewTestSettingsService(t, db))

		tests := []struct {
			code string
			want int
		}{
			{"XX", http.StatusNotFound},
			{"USA", http.StatusBadRequest},
			{"1A", http.StatusBadRequest},
		}
		for _, tt := range tests {
			w := httptest.NewRecorder()
			handler.GetCountry(w, testutil.NewRequestWithURLParams(http.MethodGet, "/", map[string]string{"code": tt.code}))
			if w.Code != tt.want {
				t.Errorf("code %q: expected %d, got %d", tt.code, tt.want, w.Code)
			}
		}
	})

	t.Run("PUT /api/settings/country/{code} creates a bundle", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSettingsHandler(testutil.NewTestSettingsService(t, db))
		body := map[string]any{
			"name":             "Belgium",
			"currency":         "EUR",
			"appreciationRate": 3,
			"inflationRate":    2,
			"sellingCostRate":  3,
			"mortgageRate":     3.9,
		}
		req := testutil.WithURLParams(
			testutil.NewJSONRequest(t, http.MethodPut, "/api/settings/country/BE", body),
			map[string]string{"code": "BE"},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.UpdateCountry(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		testutil.AssertRowCount(t, db, "country_settings", 5)
	})

	t.Run("PUT /api/settings/country/{code} validates currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSettingsHandler(testutil.NewTestSettingsService(t, db))
		req := testutil.WithURLParams(
			testutil.NewJSONRequest(t, http.MethodPut, "/", map[string]any{"name": "Nowhere", "currency": "ZZZ"}),
			map[string]string{"code": "ZZ"},
		)
		w := httptest.NewRecorder()

		handler.UpdateCountry(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}
		if fields := decodeFieldErrors(t, w); fields["currency"] == nil {
			t.Errorf("Expected currency error, got %v", fields)
		}
	})

	t.Run("PUT /api/settings/selected changes the selection", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSettingsHandler(testutil.NewTestSettingsService(t, db))

		w := httptest.NewRecorder()
		handler.SelectCountry(w, testutil.NewJSONRequest(t, http.MethodPut, "/api/settings/selected", map[string]string{"code": "gb"}))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		w = httptest.NewRecorder()
		handler.SelectedCountry(w, httptest.NewRequest(http.MethodGet, "/api/settings/selected", nil))
		if selected := testutil.DecodeJSON[model.CountrySettings](t, w); selected.Code != "GB" {
			t.Errorf("Expected GB selected, got %q", selected.Code)
		}
	})

	t.Run("PUT /api/settings/selected rejects unknown country", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSettingsHandler(testutil.NewTestSettingsService(t, db))
		w := httptest.NewRecorder()

		handler.SelectCountry(w, testutil.NewJSONRequest(t, http.MethodPut, "/", map[string]string{"code": "XX"}))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestInflationHandler(t *testing.T) {
	t.Run("PUT /api/inflation/{year} stores an override", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInflationHandler(testutil.NewTestInflationService(t, db))
		req := testutil.WithURLParams(
			testutil.NewJSONRequest(t, http.MethodPut, "/api/inflation/2025", map[string]float64{"rate": 2.6}),
			map[string]string{"year": "2025"},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.SetRate(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		w = httptest.NewRecorder()
		handler.Rates(w, httptest.NewRequest(http.MethodGet, "/api/inflation", nil))
		rates := testutil.DecodeJSON[[]finance.InflationDataPoint](t, w)
		last := rates[len(rates)-1]
		if last.Year != 2025 || last.Rate != 2.6 {
			t.Errorf("Expected 2025 at 2.6 last, got %+v", last)
		}
	})

	t.Run("PUT /api/inflation/{year} validates input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewInflationHandler(testutil.NewTestInflationService(t, db))

		tests := []struct {
			name string
			year string
			body any
		}{
			{"non-numeric year", "abc", map[string]float64{"rate": 2}},
			{"year out of range", "1800", map[string]float64{"rate": 2}},
			{"missing rate", "2025", map[string]any{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := testutil.WithURLParams(
					testutil.NewJSONRequest(t, http.MethodPut, "/", tt.body),
					map[string]string{"year": tt.year},
				)
				w := httptest.NewRecorder()

				handler.SetRate(w, req)

				if w.Code != http.StatusBadRequest {
					t.Errorf("Expected status 400, got %d", w.Code)
				}
			})
		}
	})
}
