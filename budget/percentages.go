/*
percentages.go - Bills/spend/savings percentage derivation

PURPOSE:
  Derives the budgeted split of bill-eligible monthly income: what share is
  consumed by recurring bills plus tithe, and how the remainder divides
  between discretionary spending and savings.

DIVIDE-BY-ZERO:
  Income-for-bills of zero returns all-zero percentages, never NaN or a
  panic. The multipliers are still echoed back so the caller can display
  the configured split.

OVERCOMMITMENT:
  remaining = income - (bills + tithe) may be negative. It is not clamped:
  a negative spend/savings percentage is a valid, displayable signal that
  bills exceed income.
*/
package budget

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// TotalBills sums the monthly due amounts of all recurring bills.
func TotalBills(bills []ExpenseItem) Money {
	total := ZeroMoney()
	for _, b := range bills {
		total = total.Add(b.Amount)
	}
	return total
}

// TithingAmount is the monthly tithe: bill-eligible income times the
// configured percentage, or zero when tithing is disabled.
func TithingAmount(incomes []Income, settings AppSettings) Money {
	if !settings.TitheEnabled {
		return ZeroMoney()
	}
	return TotalMonthlyIncomeForBills(incomes).Mul(settings.TithePercentage.Div(hundred))
}

// ComputePercentages derives the budgeted split from current incomes, bills,
// and settings. The multipliers are stored as given - callers are expected
// to have validated that they sum to 1.0; the engine does not re-normalize.
func ComputePercentages(incomes []Income, bills []ExpenseItem, settings AppSettings, spendMult, savingsMult decimal.Decimal) BudgetPercentages {
	incomeForBills := TotalMonthlyIncomeForBills(incomes)

	if incomeForBills.IsZero() {
		return BudgetPercentages{
			BillsPercentage:   decimal.Zero,
			SpendPercentage:   decimal.Zero,
			SavingsPercentage: decimal.Zero,
			SpendMultiplier:   spendMult,
			SavingsMultiplier: savingsMult,
		}
	}

	committed := TotalBills(bills).Add(TithingAmount(incomes, settings))
	remaining := incomeForBills.Sub(committed)

	return BudgetPercentages{
		BillsPercentage:   committed.Value.Div(incomeForBills.Value).Mul(hundred),
		SpendPercentage:   remaining.Mul(spendMult).Value.Div(incomeForBills.Value).Mul(hundred),
		SavingsPercentage: remaining.Mul(savingsMult).Value.Div(incomeForBills.Value).Mul(hundred),
		SpendMultiplier:   spendMult,
		SavingsMultiplier: savingsMult,
	}
}
