/*
percentages_test.go - Percentage derivation tests

Tests for:
- The bills/spend/savings split over bill-eligible income
- The zero-income guard
- Overcommitment (negative percentages are not clamped)
*/
package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/budget-engine/budget"
)

func bill(name string, amount float64) budget.ExpenseItem {
	return budget.ExpenseItem{ID: name, Name: name, Amount: budget.NewMoney(amount)}
}

func TestComputePercentages_EndToEnd(t *testing.T) {
	// 4000/month income, 1500 bills, 10% tithe:
	//   committed = 1500 + 400 = 1900  -> bills   47.5%
	//   remaining = 2100, x0.6 / x0.4  -> spend   31.5%, savings 21%
	incomes := []budget.Income{income("salary", 4000, budget.IncomeMonthly)}
	bills := []budget.ExpenseItem{bill("rent", 1000), bill("utilities", 500)}
	settings := budget.AppSettings{TitheEnabled: true, TithePercentage: decimal.NewFromInt(10)}

	got := budget.ComputePercentages(incomes, bills, settings,
		budget.DefaultSpendMultiplier, budget.DefaultSavingsMultiplier)

	assert.True(t, got.BillsPercentage.Equal(decimal.NewFromFloat(47.5)), "bills: %s", got.BillsPercentage)
	assert.True(t, got.SpendPercentage.Equal(decimal.NewFromFloat(31.5)), "spend: %s", got.SpendPercentage)
	assert.True(t, got.SavingsPercentage.Equal(decimal.NewFromInt(21)), "savings: %s", got.SavingsPercentage)
}

func TestComputePercentages_ZeroIncomeGuard(t *testing.T) {
	// No income must never divide by zero; multipliers are still echoed back.
	got := budget.ComputePercentages(nil, []budget.ExpenseItem{bill("rent", 1000)},
		budget.DefaultSettings(), budget.DefaultSpendMultiplier, budget.DefaultSavingsMultiplier)

	assert.True(t, got.BillsPercentage.IsZero())
	assert.True(t, got.SpendPercentage.IsZero())
	assert.True(t, got.SavingsPercentage.IsZero())
	assert.True(t, got.SpendMultiplier.Equal(budget.DefaultSpendMultiplier))
	assert.True(t, got.SavingsMultiplier.Equal(budget.DefaultSavingsMultiplier))
}

func TestComputePercentages_OvercommitmentIsNotClamped(t *testing.T) {
	// Bills above income produce a negative remainder: the spend/savings
	// percentages go negative and stay that way. That is the signal the
	// user needs to see.
	incomes := []budget.Income{income("salary", 1000, budget.IncomeMonthly)}
	bills := []budget.ExpenseItem{bill("rent", 1200)}

	got := budget.ComputePercentages(incomes, bills, budget.DefaultSettings(),
		budget.DefaultSpendMultiplier, budget.DefaultSavingsMultiplier)

	assert.True(t, got.BillsPercentage.Equal(decimal.NewFromInt(120)), "bills: %s", got.BillsPercentage)
	assert.True(t, got.SpendPercentage.IsNegative(), "spend: %s", got.SpendPercentage)
	assert.True(t, got.SavingsPercentage.IsNegative(), "savings: %s", got.SavingsPercentage)
}

func TestTithingAmount(t *testing.T) {
	incomes := []budget.Income{income("salary", 4000, budget.IncomeMonthly)}

	t.Run("disabled is zero", func(t *testing.T) {
		got := budget.TithingAmount(incomes, budget.DefaultSettings())
		assert.True(t, got.IsZero())
	})

	t.Run("enabled applies percentage to bill-eligible income", func(t *testing.T) {
		settings := budget.AppSettings{TitheEnabled: true, TithePercentage: decimal.NewFromInt(10)}
		got := budget.TithingAmount(incomes, settings)
		assert.True(t, got.Equal(budget.MustParseMoney("400")), "got %s", got)
	})
}

func TestTotalBills(t *testing.T) {
	got := budget.TotalBills([]budget.ExpenseItem{bill("a", 100.50), bill("b", 49.50)})
	assert.True(t, got.Equal(budget.MustParseMoney("150")), "got %s", got)
}
