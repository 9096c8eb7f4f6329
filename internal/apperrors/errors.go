package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPropertyNotFound indicates that a property with the given ID does not exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrCountryNotFound indicates that no country settings exist for the given code.
	ErrCountryNotFound = errors.New("country settings not found")

	// ErrDictionaryEntryNotFound indicates that a dictionary entry with the given ID does not exist.
	ErrDictionaryEntryNotFound = errors.New("dictionary entry not found")

	// ErrSettingNotFound indicates that an application setting has not been stored.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	ErrInvalidYear = errors.New("invalid year")

	// Generic operation failure constants
	ErrFailedToRetrieve = errors.New("failed to retrieve data")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	// Property operation errors
	ErrFailedToRetrieveProperties = errors.New("failed to retrieve properties")
	ErrFailedToRetrieveProperty   = errors.New("failed to retrieve property")
	ErrFailedToCalculateMetrics   = errors.New("failed to calculate property metrics")

	// Portfolio operation errors
	ErrFailedToGetPortfolioSummary = errors.New("failed to get portfolio summary")
	ErrFailedToGetPortfolioHistory = errors.New("failed to get portfolio history")
	ErrFailedToTakeSnapshot        = errors.New("failed to take portfolio snapshot")

	// Settings operation errors
	ErrFailedToRetrieveSettings  = errors.New("failed to retrieve settings")
	ErrFailedToRetrieveInflation = errors.New("failed to retrieve inflation table")
	ErrFailedToRetrieveEntries   = errors.New("failed to retrieve dictionary entries")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
