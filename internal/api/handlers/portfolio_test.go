package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/handlers"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/testutil"
)

// TestPortfolioHandler tests the portfolio summary and snapshot endpoints.
//
// WHY: The dashboard reads the summary on every load and charts the
// snapshot history; both must keep their JSON contract.
func TestPortfolioHandler(t *testing.T) {
	t.Run("GET /api/portfolio/summary aggregates properties", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db), testutil.NewTestSnapshotService(t, db))
		testutil.CreateRentalProperty(t, db, 250000, 50000)
		testutil.CreateRentalProperty(t, db, 250000, 50000)
		w := httptest.NewRecorder()

		// Execute
		handler.Summary(w, httptest.NewRequest(http.MethodGet, "/api/portfolio/summary", nil))

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		summary := testutil.DecodeJSON[model.PortfolioSummary](t, w)
		if summary.Score.PropertyCount != 2 || summary.CashAtHandLabel != "$48K" {
			t.Errorf("Unexpected summary %+v", summary.Score)
		}
	})

	t.Run("POST snapshot then GET history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db), testutil.NewTestSnapshotService(t, db))

		w := httptest.NewRecorder()
		handler.Snapshot(w, httptest.NewRequest(http.MethodPost, "/api/portfolio/snapshot", nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}
		snapshot := testutil.DecodeJSON[model.PortfolioSnapshot](t, w)

		w = httptest.NewRecorder()
		handler.History(w, httptest.NewRequest(http.MethodGet, "/api/portfolio/history", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		history := testutil.DecodeJSON[[]model.PortfolioSnapshot](t, w)
		if len(history) != 1 || history[0].ID != snapshot.ID {
			t.Errorf("Expected the stored snapshot, got %+v", history)
		}
	})

	t.Run("GET /api/portfolio/history validates limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db), testutil.NewTestSnapshotService(t, db))

		for _, limit := range []string{"0", "abc", "5000"} {
			w := httptest.NewRecorder()
			handler.History(w, testutil.NewRequestWithQueryParams(http.MethodGet, "/", map[string]string{"limit": limit}))
			if w.Code != http.StatusBadRequest {
				t.Errorf("limit %q: expected 400, got %d", limit, w.Code)
			}
		}
	})
}
