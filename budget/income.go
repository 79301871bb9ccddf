/*
income.go - Income normalization to monthly equivalents

PURPOSE:
  Converts heterogeneous income records (weekly/biweekly/monthly/yearly)
  into monthly-equivalent totals, and separates bill-eligible income from
  total income.

THE MULTIPLIERS:
  weekly   x 4.33
  biweekly x 2.17
  monthly  x 1
  yearly   / 12

  4.33 and 2.17 approximate average weeks per month (52/12 and 26/12).
  They are intentionally not 4 and 2: a month is slightly longer than four
  weeks, and using the averages spreads income evenly across the year.
  These exact values are load-bearing for numeric compatibility - every
  percentage downstream is derived from them.

NOTE:
  These multipliers are NOT the per-paycheck bill divisors (/4, /2) used by
  the paycheck processor. See paycheck.go - the two tables must stay distinct.
*/
package budget

import "github.com/shopspring/decimal"

var (
	weeksPerMonth   = decimal.NewFromFloat(4.33)
	biweeksPerMonth = decimal.NewFromFloat(2.17)
	monthsPerYear   = decimal.NewFromInt(12)
)

// MonthlyEquivalent normalizes one income to a per-month amount using the
// fixed multiplier table. Unknown frequencies contribute nothing.
func MonthlyEquivalent(inc Income) Money {
	switch inc.Frequency {
	case IncomeWeekly:
		return inc.Amount.Mul(weeksPerMonth)
	case IncomeBiweekly:
		return inc.Amount.Mul(biweeksPerMonth)
	case IncomeMonthly:
		return inc.Amount
	case IncomeYearly:
		return inc.Amount.Div(monthsPerYear)
	default:
		return ZeroMoney()
	}
}

// TotalMonthlyIncome sums monthly equivalents over all incomes, including
// those excluded from bills. Empty input yields zero.
func TotalMonthlyIncome(incomes []Income) Money {
	total := ZeroMoney()
	for _, inc := range incomes {
		total = total.Add(MonthlyEquivalent(inc))
	}
	return total
}

// TotalMonthlyIncomeForBills sums monthly equivalents over bill-eligible
// incomes only (UsedForBills unset counts as eligible).
func TotalMonthlyIncomeForBills(incomes []Income) Money {
	total := ZeroMoney()
	for _, inc := range incomes {
		if !inc.CountsForBills() {
			continue
		}
		total = total.Add(MonthlyEquivalent(inc))
	}
	return total
}
