/*
Package engine owns the budgeting application state: one controller holds
every collection, all mutation goes through its methods, and state is
persisted through an opaque key-value contract.

PURPOSE:
  The budget package computes; this package remembers. The Controller is the
  single writer over incomes, bills, paychecks, the payment ledger, and the
  monthly archives. Hosts (the HTTP layer, tests) call its operations and
  read its derived summaries.

SEE ALSO:
  - controller.go: The state owner and its mutation operations
  - ledger.go: Payment recording and paid-status queries
  - rollover.go: Month-boundary archive and reset
  - persistence.go: JSON encoding over the Store contract
*/
package engine

import "context"

// =============================================================================
// STORE - Key-value persistence contract
// =============================================================================

// Store is the engine's only view of storage: raw bytes by key. The engine
// has no knowledge of the underlying technology; backup and restore work by
// reading and replacing these keys wholesale.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

// Storage keys. One collection per key; external backup tooling can treat
// the whole set as one blob.
const (
	keyIncome        = "budget_income"
	keyExpenses      = "budget_expenses"
	keyPaychecks     = "budget_paychecks"
	keyPercentages   = "budget_percentages"
	keySettings      = "budget_settings"
	keyDailyExpenses = "budget_daily_expenses"
	keySpendingTotal = "budget_spending_total"
	keySavingsTotal  = "budget_savings_total"
	keyHousehold     = "budget_household"
	keyPayments      = "budget_payments"
	keyMonthStates   = "budget_month_states"
	keyArchives      = "budget_archives"
	keyLastReset     = "budget_last_reset_date"
)
