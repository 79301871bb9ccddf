/*
errors.go - Centralized error types for the budgeting domain

PURPOSE:
  All sentinel errors in one place for consistency and discoverability.
  The engine and API layers wrap these with additional context and map
  them to HTTP status codes.

NOTE ON VALIDATION:
  The engine assumes pre-validated numeric input (amounts > 0, percentages
  in range). Those checks belong to the caller - the HTTP layer here - so
  there are deliberately no "invalid amount" errors in the domain package.
*/
package budget

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrIncomeNotFound is returned when a referenced income source doesn't exist.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrExpenseNotFound is returned when a referenced bill doesn't exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrPaycheckNotFound is returned when a referenced paycheck doesn't exist.
	ErrPaycheckNotFound = errors.New("paycheck not found")

	// ErrDailyExpenseNotFound is returned when a referenced daily expense doesn't exist.
	ErrDailyExpenseNotFound = errors.New("daily expense not found")

	// ErrMemberNotFound is returned when a referenced household member doesn't exist.
	ErrMemberNotFound = errors.New("household member not found")

	// ErrInvalidMonthKey is returned for period strings not in YYYY-MM form.
	ErrInvalidMonthKey = errors.New("invalid month key: want YYYY-MM")
)

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrIncomeNotFound) ||
		errors.Is(err, ErrExpenseNotFound) ||
		errors.Is(err, ErrPaycheckNotFound) ||
		errors.Is(err, ErrDailyExpenseNotFound) ||
		errors.Is(err, ErrMemberNotFound)
}
