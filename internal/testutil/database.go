package testutil

import (
	"database/sql"
	"testing"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/database"
	_ "modernc.org/sqlite" // Test Package
)

// userTables lists the tables holding data created by tests, children first.
// Country settings and app settings are seed data and are left alone.
var userTables = []string{
	"portfolio_snapshot",
	"property",
	"inflation_rate",
	"dictionary_entry",
}

// SetupTestDB returns an in-memory SQLite database with every migration
// applied, so tests see the seeded country bundles and glossary exactly as the
// server does. The database is closed when the test ends.
//
//	db := testutil.SetupTestDB(t)
//	svc := testutil.NewTestPropertyService(t, db)
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	// Each pooled connection to :memory: opens its own empty database.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY",
	} {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to apply %q: %v", pragma, err)
		}
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CleanDatabase deletes everything tests create while keeping seed data, for
// subtests that share one database.
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, table := range userTables {
		//nolint:gosec // G202: table names come from userTables
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	//nolint:gosec // G202: table names are test literals
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}

// AssertRowCount fails the test unless table holds expected rows.
//
//	testutil.AssertRowCount(t, db, "property", 2)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	if actual := CountRows(t, db, table); actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
