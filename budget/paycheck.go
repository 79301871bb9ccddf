/*
paycheck.go - Paycheck allocation with overpayment/underpayment spillover

PURPOSE:
  The algorithmic core: given one paycheck, the bills selected to be paid
  from it, an optional tithe, and the current budgeted percentages, compute
  how much of the check goes to spending and how much to savings.

THE SPILLOVER POLICY:
  expectedBills is the budgeted bill share of the check (amount x
  billsPercentage), independent of what was actually selected.

  - Paid MORE than budgeted (overpayment): the excess is absorbed first
    from the spending base, floored at zero; whatever spending could not
    absorb comes out of the savings base, also floored at zero.
  - Paid LESS than budgeted (underpayment): the unused bill share is added
    entirely to savings; spending keeps its base value.

  The priority order is deliberate: disciplined bill-paying grows savings,
  over-allocation eats discretionary spending before it ever touches
  savings. Neither amount may go negative at any intermediate step.

SWEEP OVERRIDE:
  SweepRemainderToSavings bypasses the split entirely: everything left
  after bills and tithe goes to savings and spending is zeroed.

THE CYCLE DIVISORS:
  A monthly bill paid from a weekly check costs amount/4 this cycle, from a
  biweekly check amount/2. These divisors are NOT the income normalizer's
  4.33/2.17 multipliers - paychecks settle round fractions of a bill, while
  income normalization spreads pay across average month lengths. Keep the
  two tables distinct.
*/
package budget

import "github.com/shopspring/decimal"

var (
	weeksPerCycle   = decimal.NewFromInt(4)
	biweeksPerCycle = decimal.NewFromInt(2)
)

// CycleAmount converts a monthly bill amount into the share due from one
// paycheck of the given frequency.
func CycleAmount(monthly Money, freq PaycheckFrequency) Money {
	switch freq {
	case PaycheckWeekly:
		return monthly.Div(weeksPerCycle)
	case PaycheckBiweekly:
		return monthly.Div(biweeksPerCycle)
	default:
		return monthly
	}
}

// =============================================================================
// ALLOCATION
// =============================================================================

// AllocationInput carries everything the processor needs for one paycheck.
// BillsPercentage and the multipliers come from ComputePercentages at the
// moment the check is logged.
type AllocationInput struct {
	Amount          Money
	Frequency       PaycheckFrequency
	SelectedBills   []ExpenseItem
	OneTimeExpenses []OneTimeExpense
	Settings        AppSettings

	BillsPercentage   decimal.Decimal
	SpendMultiplier   decimal.Decimal
	SavingsMultiplier decimal.Decimal

	SweepRemainderToSavings bool
}

// Allocation is the computed split for one paycheck. The intermediate
// figures are kept so hosts can show the arithmetic to the user.
type Allocation struct {
	TitheAmount     Money
	ActualBillsPaid Money
	ExpectedBills   Money
	SpendingBase    Money
	SavingsBase     Money
	SpendingAmount  Money
	SavingsAmount   Money
}

// Allocate computes the spending and savings amounts for one paycheck.
// Amount is assumed positive (caller-validated). With zero bill-eligible
// income BillsPercentage is zero, so any selected bill lands in the
// overpayment branch and is absorbed from spending first.
func Allocate(in AllocationInput) Allocation {
	titheAmount := ZeroMoney()
	if in.Settings.TitheEnabled {
		titheAmount = in.Amount.Mul(in.Settings.TithePercentage.Div(hundred))
	}

	actualBillsPaid := selectedBillsTotal(in).Add(titheAmount)
	expectedBills := in.Amount.Mul(in.BillsPercentage.Div(hundred))

	// Base splits come from the remaining (non-bill) percentage.
	remainingPct := hundred.Sub(in.BillsPercentage)
	spendingBase := in.Amount.Mul(remainingPct.Mul(in.SpendMultiplier).Div(hundred))
	savingsBase := in.Amount.Mul(remainingPct.Mul(in.SavingsMultiplier).Div(hundred))

	var spending, savings Money
	if in.SweepRemainderToSavings {
		spending = ZeroMoney()
		savings = in.Amount.Sub(actualBillsPaid).FloorZero()
	} else {
		spending, savings = SpilloverSplit(actualBillsPaid, expectedBills, spendingBase, savingsBase)
	}

	return Allocation{
		TitheAmount:     titheAmount,
		ActualBillsPaid: actualBillsPaid,
		ExpectedBills:   expectedBills,
		SpendingBase:    spendingBase,
		SavingsBase:     savingsBase,
		SpendingAmount:  spending,
		SavingsAmount:   savings,
	}
}

// SpilloverSplit applies the overpayment/underpayment policy to the base
// splits. Exported separately because the absorption order is the invariant
// that matters: spending absorbs overpayment first, savings only takes the
// remainder, and underpayment flows entirely to savings.
func SpilloverSplit(actualBillsPaid, expectedBills, spendingBase, savingsBase Money) (spending, savings Money) {
	if actualBillsPaid.GreaterThan(expectedBills) {
		overpayment := actualBillsPaid.Sub(expectedBills)
		spending = spendingBase.Sub(overpayment).FloorZero()
		remainder := overpayment.Sub(spendingBase).FloorZero()
		savings = savingsBase.Sub(remainder).FloorZero()
		return spending, savings
	}

	unused := expectedBills.Sub(actualBillsPaid)
	return spendingBase, savingsBase.Add(unused)
}

// selectedBillsTotal sums the cycle-adjusted amounts of the selected bills
// plus all one-time expenses. An edited one-time expense whose id matches a
// selected bill replaces that bill's cycle amount instead of adding to it.
func selectedBillsTotal(in AllocationInput) Money {
	overrides := make(map[string]Money)
	for _, ote := range in.OneTimeExpenses {
		if ote.IsEdited {
			overrides[ote.ID] = ote.Amount
		}
	}

	total := ZeroMoney()
	for _, bill := range in.SelectedBills {
		if amt, ok := overrides[bill.ID]; ok {
			total = total.Add(amt)
			continue
		}
		total = total.Add(CycleAmount(bill.Amount, in.Frequency))
	}
	for _, ote := range in.OneTimeExpenses {
		if !ote.IsEdited {
			total = total.Add(ote.Amount)
		}
	}
	return total
}
