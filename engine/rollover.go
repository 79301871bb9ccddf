/*
rollover.go - Month-boundary archive and reset

PURPOSE:
  When a new calendar month is detected, the closing month's bills (with
  their final paid state) and payments are frozen into a write-once
  MonthlyArchive, then every live bill's paid cache is reset and the live
  payment collection cleared. Bill definitions survive; only paid state
  resets.

SKIP-AHEAD BEHAVIOR:
  The check compares the last seen month to now - nothing iterates over
  months in between. If the app is not opened during some month, that month
  is silently skipped and never archived. This is the accepted product
  behavior; do not "fix" it by back-filling missed months, as that would
  change historical archive semantics.
*/
package engine

import (
	"context"

	"github.com/warp/budget-engine/budget"
)

// CheckAndResetMonthly runs the rollover check, intended to be invoked at
// startup (and harmless to call repeatedly). It returns true when a
// rollover occurred.
func (c *Controller) CheckAndResetMonthly(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	// First launch: anchor the month without archiving anything.
	if c.lastResetDate.IsZero() {
		c.lastResetDate = now
		return false, c.saveLastReset(ctx)
	}

	if budget.SameMonth(c.lastResetDate, now) {
		return false, nil
	}

	// Freeze the closing month. The archive is keyed by the month we last
	// saw, not by now-1: months with no launch are skipped, not back-filled.
	closing := budget.MonthOf(c.lastResetDate)

	expensesCopy := make([]budget.ExpenseItem, len(c.expenses))
	copy(expensesCopy, c.expenses)
	paymentsCopy := make([]budget.Payment, len(c.payments))
	copy(paymentsCopy, c.payments)

	totalPaid := budget.ZeroMoney()
	for _, p := range paymentsCopy {
		totalPaid = totalPaid.Add(p.Amount)
	}

	c.archives = append(c.archives, budget.MonthlyArchive{
		Month:      closing,
		Expenses:   expensesCopy,
		Payments:   paymentsCopy,
		TotalPaid:  totalPaid,
		TotalBills: budget.TotalBills(c.expenses),
	})

	// Reset live state for the new month.
	for i := range c.expenses {
		c.expenses[i].AmountPaid = budget.ZeroMoney()
		c.expenses[i].IsPaid = false
	}
	c.payments = nil
	c.monthStates = nil
	c.lastResetDate = now

	err := firstError(
		c.saveArchives(ctx),
		c.saveExpenses(ctx),
		c.savePayments(ctx),
		c.saveMonthStates(ctx),
		c.saveLastReset(ctx),
	)
	return true, err
}
