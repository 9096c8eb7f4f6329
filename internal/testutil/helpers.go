package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
)

// TestEvaluationYear is the evaluation year used by the test services.
const TestEvaluationYear = 2024

// TestNow is the clock used by the test services: mid-way through
// TestEvaluationYear.
var TestNow = time.Date(TestEvaluationYear, time.July, 1, 0, 0, 0, 0, time.UTC)

func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	return service.NewSettingsService(repository.NewSettingsRepository(db), "US")
}

func NewTestInflationService(t *testing.T, db *sql.DB) *service.InflationService {
	t.Helper()

	return service.NewInflationService(repository.NewInflationRepository(db))
}

func NewTestDictionaryService(t *testing.T, db *sql.DB) *service.DictionaryService {
	t.Helper()

	return service.NewDictionaryService(repository.NewDictionaryRepository(db))
}

func NewTestPropertyService(t *testing.T, db *sql.DB) *service.PropertyService {
	t.Helper()

	return service.NewPropertyService(
		repository.NewPropertyRepository(db),
		NewTestSettingsService(t, db),
		NewTestInflationService(t, db),
		TestEvaluationYear,
	).WithClock(func() time.Time { return TestNow })
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		repository.NewPropertyRepository(db),
		NewTestSettingsService(t, db),
		NewTestInflationService(t, db),
		TestEvaluationYear,
	).WithClock(func() time.Time { return TestNow })
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		NewTestPortfolioService(t, db),
		repository.NewSnapshotRepository(db),
	)
}

func NewTestCalculatorService(t *testing.T, db *sql.DB) *service.CalculatorService {
	t.Helper()

	return service.NewCalculatorService(
		NewTestSettingsService(t, db),
		NewTestInflationService(t, db),
		TestEvaluationYear,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakePropertyName generates a unique property name for testing.
//
// Example usage:
//
//	name := testutil.MakePropertyName("Beach House")
//	// Returns: "Beach House ABC123"
func MakePropertyName(base string) string {
	if base == "" {
		base = "Property"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeTerm generates a unique glossary term for testing.
func MakeTerm(base string) string {
	if base == "" {
		base = "Term"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
