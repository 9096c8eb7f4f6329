package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

// PropertyBuilder provides a fluent interface for creating test properties.
// Amounts are in cents.
//
// Example usage:
//
//	// Simple creation with defaults
//	property := testutil.NewProperty().Build(t, db)
//
//	// Customized property
//	property := testutil.NewProperty().
//	    WithName("Canal House").
//	    WithCountry("NL").
//	    WithRent(180000, 40000).
//	    Build(t, db)
type PropertyBuilder struct {
	property model.Property
}

// NewProperty creates a PropertyBuilder with sensible defaults: a US cash
// purchase in 2015 with no rent.
func NewProperty() *PropertyBuilder {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &PropertyBuilder{property: model.Property{
		ID:               MakeID(),
		Name:             MakePropertyName("Test Property"),
		Address:          "1 Test Street",
		CountryCode:      "US",
		PurchasePrice:    20000000,
		CurrentValue:     30000000,
		PurchaseDate:     time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC),
		CurrentNetEquity: 30000000,
		CreatedAt:        created,
		UpdatedAt:        created,
	}}
}

// WithID sets a custom ID.
func (b *PropertyBuilder) WithID(id string) *PropertyBuilder {
	b.property.ID = id
	return b
}

// WithName sets a custom name.
func (b *PropertyBuilder) WithName(name string) *PropertyBuilder {
	b.property.Name = name
	return b
}

// WithCountry sets the country code.
func (b *PropertyBuilder) WithCountry(code string) *PropertyBuilder {
	b.property.CountryCode = code
	return b
}

// WithPrices sets the purchase price and current value; net equity follows
// the current value less the outstanding balance.
func (b *PropertyBuilder) WithPrices(purchase, current currency.Cents) *PropertyBuilder {
	b.property.PurchasePrice = purchase
	b.property.CurrentValue = current
	b.property.CurrentNetEquity = current - b.property.OutstandingBalance
	return b
}

// WithPurchaseDate sets the purchase date.
func (b *PropertyBuilder) WithPurchaseDate(date time.Time) *PropertyBuilder {
	b.property.PurchaseDate = date
	return b
}

// WithRent sets the monthly rent and expenses.
func (b *PropertyBuilder) WithRent(rent, expenses currency.Cents) *PropertyBuilder {
	b.property.MonthlyRent = rent
	b.property.MonthlyExpenses = expenses
	return b
}

// WithLoan sets the financing terms.
func (b *PropertyBuilder) WithLoan(downPayment, monthlyMortgage currency.Cents, rate float64, termMonths, elapsedMonths int, balance currency.Cents) *PropertyBuilder {
	b.property.DownPayment = downPayment
	b.property.MonthlyMortgage = monthlyMortgage
	b.property.LoanRate = rate
	b.property.LoanTermMonths = termMonths
	b.property.LoanElapsedMonths = elapsedMonths
	b.property.OutstandingBalance = balance
	b.property.CurrentNetEquity = b.property.CurrentValue - balance
	return b
}

// Build creates the property in the database and returns it.
func (b *PropertyBuilder) Build(t *testing.T, db *sql.DB) model.Property {
	t.Helper()

	p := b.property
	query := `
		INSERT INTO property (
			id, name, address, country_code, purchase_price, current_value, purchase_date,
			monthly_rent, monthly_expenses, monthly_mortgage, down_payment,
			loan_rate, loan_term_months, loan_elapsed_months, outstanding_balance,
			current_net_equity, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		p.ID, p.Name, p.Address, p.CountryCode, p.PurchasePrice, p.CurrentValue,
		p.PurchaseDate.Format("2006-01-02"),
		p.MonthlyRent, p.MonthlyExpenses, p.MonthlyMortgage, p.DownPayment,
		p.LoanRate, p.LoanTermMonths, p.LoanElapsedMonths, p.OutstandingBalance,
		p.CurrentNetEquity, p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}

	return p
}

// Convenience functions

// CreateProperty creates a property with the given name and default values.
//
// Example usage:
//
//	property := testutil.CreateProperty(t, db, "Beach House")
func CreateProperty(t *testing.T, db *sql.DB, name string) model.Property {
	t.Helper()
	return NewProperty().WithName(name).Build(t, db)
}

// CreateRentalProperty creates a rent-generating property.
//
// Example usage:
//
//	property := testutil.CreateRentalProperty(t, db, 250000, 50000)
func CreateRentalProperty(t *testing.T, db *sql.DB, rent, expenses currency.Cents) model.Property {
	t.Helper()
	return NewProperty().WithRent(rent, expenses).Build(t, db)
}

// DictionaryEntryBuilder provides a fluent interface for creating glossary entries.
type DictionaryEntryBuilder struct {
	entry model.DictionaryEntry
}

// NewDictionaryEntry creates a DictionaryEntryBuilder with a unique term.
func NewDictionaryEntry() *DictionaryEntryBuilder {
	return &DictionaryEntryBuilder{entry: model.DictionaryEntry{
		ID:         MakeID(),
		Term:       MakeTerm("Term"),
		Definition: "A test definition.",
		Category:   "test",
		CreatedAt:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}}
}

// WithTerm sets the term.
func (b *DictionaryEntryBuilder) WithTerm(term string) *DictionaryEntryBuilder {
	b.entry.Term = term
	return b
}

// WithCategory sets the category.
func (b *DictionaryEntryBuilder) WithCategory(category string) *DictionaryEntryBuilder {
	b.entry.Category = category
	return b
}

// Build creates the entry in the database and returns it.
func (b *DictionaryEntryBuilder) Build(t *testing.T, db *sql.DB) model.DictionaryEntry {
	t.Helper()

	e := b.entry
	_, err := db.Exec(
		`INSERT INTO dictionary_entry (id, term, definition, category, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Term, e.Definition, e.Category, e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test dictionary entry: %v", err)
	}

	return e
}

// SetInflationRate stores an inflation override for year.
func SetInflationRate(t *testing.T, db *sql.DB, year int, rate float64) {
	t.Helper()

	if _, err := db.Exec(`INSERT OR REPLACE INTO inflation_rate (year, rate) VALUES (?, ?)`, year, rate); err != nil {
		t.Fatalf("Failed to set inflation rate: %v", err)
	}
}
