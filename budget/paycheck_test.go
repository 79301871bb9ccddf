/*
paycheck_test.go - Paycheck allocation tests

Tests for:
- The cycle divisors (/4 weekly, /2 biweekly - NOT the income multipliers)
- The spillover policy: spending absorbs overpayment first, underpayment
  flows entirely to savings, nothing goes negative
- The sweep-to-savings override
- Edited one-time expenses replacing a bill's cycle amount
*/
package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/budget-engine/budget"
)

func money(f float64) budget.Money { return budget.NewMoney(f) }

func TestCycleAmount(t *testing.T) {
	monthly := money(100)

	assert.True(t, budget.CycleAmount(monthly, budget.PaycheckWeekly).Equal(money(25)))
	assert.True(t, budget.CycleAmount(monthly, budget.PaycheckBiweekly).Equal(money(50)))
	assert.True(t, budget.CycleAmount(monthly, budget.PaycheckMonthly).Equal(money(100)))
}

// =============================================================================
// SPILLOVER POLICY
// =============================================================================

func TestSpilloverSplit_OverpaymentAbsorbedBySpendingFirst(t *testing.T) {
	// Paid 150 over budget; spending base 200 absorbs it all, savings untouched.
	spending, savings := budget.SpilloverSplit(money(250), money(100), money(200), money(100))

	assert.True(t, spending.Equal(money(50)), "spending: %s", spending)
	assert.True(t, savings.Equal(money(100)), "savings: %s", savings)
}

func TestSpilloverSplit_OverpaymentSpillsIntoSavings(t *testing.T) {
	// Paid 250 over budget; spending base 200 is wiped out, the remaining 50
	// comes out of savings.
	spending, savings := budget.SpilloverSplit(money(350), money(100), money(200), money(100))

	assert.True(t, spending.IsZero(), "spending: %s", spending)
	assert.True(t, savings.Equal(money(50)), "savings: %s", savings)
}

func TestSpilloverSplit_OverpaymentBeyondBothFloorsAtZero(t *testing.T) {
	// Overpayment larger than both bases: neither amount goes negative.
	spending, savings := budget.SpilloverSplit(money(500), money(100), money(200), money(100))

	assert.True(t, spending.IsZero())
	assert.True(t, savings.IsZero())
}

func TestSpilloverSplit_UnderpaymentGoesEntirelyToSavings(t *testing.T) {
	// Paid 60 under budget; spending keeps its base, savings grows by the
	// unused bill share.
	spending, savings := budget.SpilloverSplit(money(40), money(100), money(200), money(100))

	assert.True(t, spending.Equal(money(200)), "spending: %s", spending)
	assert.True(t, savings.Equal(money(160)), "savings: %s", savings)
}

func TestSpilloverSplit_ExactBudgetKeepsBases(t *testing.T) {
	spending, savings := budget.SpilloverSplit(money(100), money(100), money(200), money(100))

	assert.True(t, spending.Equal(money(200)))
	assert.True(t, savings.Equal(money(100)))
}

// =============================================================================
// ALLOCATE
// =============================================================================

func TestAllocate_SweepRemainderToSavings(t *testing.T) {
	// 1000 check, 300 in bills, sweep on: spending zeroed, the whole 700
	// remainder goes to savings regardless of the configured split.
	alloc := budget.Allocate(budget.AllocationInput{
		Amount:            money(1000),
		Frequency:         budget.PaycheckMonthly,
		SelectedBills:     []budget.ExpenseItem{bill("rent", 300)},
		Settings:          budget.DefaultSettings(),
		BillsPercentage:   decimal.NewFromInt(30),
		SpendMultiplier:   budget.DefaultSpendMultiplier,
		SavingsMultiplier: budget.DefaultSavingsMultiplier,

		SweepRemainderToSavings: true,
	})

	assert.True(t, alloc.SpendingAmount.IsZero(), "spending: %s", alloc.SpendingAmount)
	assert.True(t, alloc.SavingsAmount.Equal(money(700)), "savings: %s", alloc.SavingsAmount)
}

func TestAllocate_TitheAddsToBillsPaid(t *testing.T) {
	settings := budget.AppSettings{TitheEnabled: true, TithePercentage: decimal.NewFromInt(10)}

	alloc := budget.Allocate(budget.AllocationInput{
		Amount:            money(1000),
		Frequency:         budget.PaycheckMonthly,
		SelectedBills:     []budget.ExpenseItem{bill("rent", 300)},
		Settings:          settings,
		BillsPercentage:   decimal.NewFromInt(40),
		SpendMultiplier:   budget.DefaultSpendMultiplier,
		SavingsMultiplier: budget.DefaultSavingsMultiplier,
	})

	assert.True(t, alloc.TitheAmount.Equal(money(100)), "tithe: %s", alloc.TitheAmount)
	assert.True(t, alloc.ActualBillsPaid.Equal(money(400)), "actual: %s", alloc.ActualBillsPaid)
	// Exactly on budget: bases pass through.
	assert.True(t, alloc.SpendingAmount.Equal(alloc.SpendingBase))
	assert.True(t, alloc.SavingsAmount.Equal(alloc.SavingsBase))
}

func TestAllocate_CycleAdjustsSelectedBills(t *testing.T) {
	// A 100/month bill paid from a weekly check costs 25 this cycle.
	alloc := budget.Allocate(budget.AllocationInput{
		Amount:            money(500),
		Frequency:         budget.PaycheckWeekly,
		SelectedBills:     []budget.ExpenseItem{bill("internet", 100)},
		Settings:          budget.DefaultSettings(),
		BillsPercentage:   decimal.NewFromInt(20),
		SpendMultiplier:   budget.DefaultSpendMultiplier,
		SavingsMultiplier: budget.DefaultSavingsMultiplier,
	})

	assert.True(t, alloc.ActualBillsPaid.Equal(money(25)), "actual: %s", alloc.ActualBillsPaid)
}

func TestAllocate_EditedOneTimeExpenseOverridesBillAmount(t *testing.T) {
	// An edited one-time item sharing a selected bill's id replaces that
	// bill's cycle amount; a non-edited one adds on top.
	alloc := budget.Allocate(budget.AllocationInput{
		Amount:        money(1000),
		Frequency:     budget.PaycheckWeekly,
		SelectedBills: []budget.ExpenseItem{bill("internet", 100)}, // cycle 25
		OneTimeExpenses: []budget.OneTimeExpense{
			{ID: "internet", Amount: money(40), IsEdited: true},
			{ID: "copay", Amount: money(15)},
		},
		Settings:          budget.DefaultSettings(),
		BillsPercentage:   decimal.NewFromInt(20),
		SpendMultiplier:   budget.DefaultSpendMultiplier,
		SavingsMultiplier: budget.DefaultSavingsMultiplier,
	})

	// 40 (override) + 15 (addition), not 25 + 40 + 15.
	assert.True(t, alloc.ActualBillsPaid.Equal(money(55)), "actual: %s", alloc.ActualBillsPaid)
}

func TestAllocate_ZeroBillsPercentageTreatsBillsAsOverpayment(t *testing.T) {
	// With no bill-eligible income the budgeted bill share is zero, so any
	// selected bill is pure overpayment absorbed from spending.
	alloc := budget.Allocate(budget.AllocationInput{
		Amount:            money(1000),
		Frequency:         budget.PaycheckMonthly,
		SelectedBills:     []budget.ExpenseItem{bill("rent", 300)},
		Settings:          budget.DefaultSettings(),
		BillsPercentage:   decimal.Zero,
		SpendMultiplier:   budget.DefaultSpendMultiplier,
		SavingsMultiplier: budget.DefaultSavingsMultiplier,
	})

	// Bases: 1000 x 60% = 600 spending, 400 savings. Overpayment 300 comes
	// out of spending.
	assert.True(t, alloc.SpendingAmount.Equal(money(300)), "spending: %s", alloc.SpendingAmount)
	assert.True(t, alloc.SavingsAmount.Equal(money(400)), "savings: %s", alloc.SavingsAmount)
}
