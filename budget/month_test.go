package budget_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/budget-engine/budget"
)

func TestMonthKey(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, budget.MonthKey("2026-01"), budget.MonthOf(jan))

	key, err := budget.ParseMonthKey("2026-01")
	assert.NoError(t, err)
	assert.True(t, key.Valid())
	assert.True(t, key.Before(budget.MonthKey("2026-02")))

	_, err = budget.ParseMonthKey("January 2026")
	assert.ErrorIs(t, err, budget.ErrInvalidMonthKey)
	assert.False(t, budget.MonthKey("2026-13").Valid())
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	d := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, budget.SameMonth(a, b))
	assert.False(t, budget.SameMonth(b, c))
	// Same month number, different year.
	assert.False(t, budget.SameMonth(a, d))
}

func TestPaymentTarget(t *testing.T) {
	billT := budget.BillTarget("rent-1")
	id, ok := billT.ExpenseID()
	assert.True(t, ok)
	assert.Equal(t, "rent-1", id)
	assert.Equal(t, "rent-1", billT.LedgerID())
	assert.False(t, billT.IsTithe())

	tithe := budget.TitheTarget()
	_, ok = tithe.ExpenseID()
	assert.False(t, ok)
	assert.Equal(t, budget.TitheLedgerID, tithe.LedgerID())
	assert.True(t, tithe.IsTithe())

	// Storage round-trip through the reserved ledger id.
	assert.True(t, budget.TargetFromLedgerID(budget.TitheLedgerID).IsTithe())
	assert.False(t, budget.TargetFromLedgerID("tithe-fund").IsTithe())
}
