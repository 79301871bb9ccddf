/*
ledger.go - The per-month payment ledger

PURPOSE:
  Records individual bill payments tagged by month and answers the
  paid/partially-paid/unpaid question per bill and in aggregate.

INVARIANTS:
  1. A BillMonthState exists for a period before any payment is recorded
     against it (created idempotently).
  2. ExpenseItem.AmountPaid/IsPaid are a materialized view of the current
     month's payments, rebuilt by one recomputation function - never
     adjusted incrementally from call sites.
  3. Overpayment is representable: recording a payment against an already
     paid bill still appends and recomputes; AmountDue clamps at zero and
     PercentPaid is uncapped above 100.
*/
package engine

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/budget-engine/budget"
)

// =============================================================================
// STATUS TYPES
// =============================================================================

type PaymentState string

const (
	StatusPaid          PaymentState = "paid"
	StatusPartiallyPaid PaymentState = "partially-paid"
	StatusUnpaid        PaymentState = "unpaid"
)

// ExpenseStatus is one bill's paid position for a period.
type ExpenseStatus struct {
	Status      PaymentState
	AmountPaid  budget.Money
	AmountDue   budget.Money
	PercentPaid decimal.Decimal
}

// BillsSummary aggregates the period: TotalBills is the sum of all defined
// bill amounts (period-independent), TotalPaid the payments recorded in the
// period, TotalRemaining the shortfall clamped at zero.
type BillsSummary struct {
	TotalBills     budget.Money
	TotalPaid      budget.Money
	TotalRemaining budget.Money
}

// =============================================================================
// RECORDING
// =============================================================================

// RecordPayment appends a standalone payment event for a bill or the tithe.
// An empty month means the current month. The period's BillMonthState is
// created if absent, and the target bill's paid cache is recomputed.
func (c *Controller) RecordPayment(ctx context.Context, target budget.PaymentTarget, amount budget.Money, paycheckID string, month budget.MonthKey) (budget.Payment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if month == "" {
		month = budget.MonthOf(c.now())
	}
	if !month.Valid() {
		return budget.Payment{}, budget.ErrInvalidMonthKey
	}

	p := c.recordPaymentLocked(target, amount, paycheckID, month, c.now())
	return p, firstError(c.savePayments(ctx), c.saveMonthStates(ctx), c.saveExpenses(ctx))
}

// recordPaymentLocked is the shared write path for standalone payments and
// paycheck settlement. Caller holds the lock and persists afterwards.
func (c *Controller) recordPaymentLocked(target budget.PaymentTarget, amount budget.Money, paycheckID string, month budget.MonthKey, date time.Time) budget.Payment {
	state := c.ensureMonthState(month)

	p := budget.Payment{
		ID:         newID(),
		ExpenseID:  target.LedgerID(),
		Amount:     amount,
		Date:       date,
		PaycheckID: paycheckID,
		MonthYear:  month,
	}
	c.payments = append(c.payments, p)
	state.PaymentIDs = append(state.PaymentIDs, p.ID)

	if id, ok := target.ExpenseID(); ok {
		c.refreshExpenseCache(id)
	}
	return p
}

// ensureMonthState returns the period's ledger partition, creating an empty
// one on first use. Idempotent.
func (c *Controller) ensureMonthState(month budget.MonthKey) *budget.BillMonthState {
	for i := range c.monthStates {
		if c.monthStates[i].MonthYear == month {
			return &c.monthStates[i]
		}
	}
	c.monthStates = append(c.monthStates, budget.BillMonthState{MonthYear: month})
	return &c.monthStates[len(c.monthStates)-1]
}

// refreshExpenseCache rebuilds one bill's AmountPaid/IsPaid from the current
// month's payments. This is the only place the cached fields are written
// outside of rollover.
func (c *Controller) refreshExpenseCache(expenseID string) {
	month := budget.MonthOf(c.now())
	paid := c.paidSum(expenseID, month)

	for i := range c.expenses {
		if c.expenses[i].ID == expenseID {
			c.expenses[i].AmountPaid = paid
			c.expenses[i].IsPaid = paid.GreaterOrEqual(c.expenses[i].Amount)
			return
		}
	}
}

func (c *Controller) paidSum(ledgerID string, month budget.MonthKey) budget.Money {
	sum := budget.ZeroMoney()
	for _, p := range c.payments {
		if p.ExpenseID == ledgerID && p.MonthYear == month {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// removePaymentsForPaycheck is the deletion cascade: payments originated by
// a deleted paycheck disappear from the ledger and month states, and the
// affected bills' caches are rebuilt.
func (c *Controller) removePaymentsForPaycheck(paycheckID string) {
	removed := make(map[string]bool)
	affected := make(map[string]bool)

	kept := c.payments[:0]
	for _, p := range c.payments {
		if p.PaycheckID == paycheckID {
			removed[p.ID] = true
			if id, ok := p.Target().ExpenseID(); ok {
				affected[id] = true
			}
			continue
		}
		kept = append(kept, p)
	}
	c.payments = kept

	if len(removed) == 0 {
		return
	}
	for i := range c.monthStates {
		ids := c.monthStates[i].PaymentIDs[:0]
		for _, id := range c.monthStates[i].PaymentIDs {
			if !removed[id] {
				ids = append(ids, id)
			}
		}
		c.monthStates[i].PaymentIDs = ids
	}
	for id := range affected {
		c.refreshExpenseCache(id)
	}
}

// =============================================================================
// QUERIES
// =============================================================================

func (c *Controller) Payments() []budget.Payment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]budget.Payment, len(c.payments))
	copy(out, c.payments)
	return out
}

// ExpensePaymentStatus reports one target's paid position for a period
// (empty month = current month). The tithe target is answerable too: its
// due amount is the configured monthly tithe, so it can sit in the same
// paid/unpaid checklist as real bills.
func (c *Controller) ExpensePaymentStatus(target budget.PaymentTarget, month budget.MonthKey) (ExpenseStatus, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if month == "" {
		month = budget.MonthOf(c.now())
	}
	if !month.Valid() {
		return ExpenseStatus{}, budget.ErrInvalidMonthKey
	}

	due := budget.ZeroMoney()
	if id, ok := target.ExpenseID(); ok {
		found := false
		for _, e := range c.expenses {
			if e.ID == id {
				due = e.Amount
				found = true
				break
			}
		}
		if !found {
			return ExpenseStatus{}, budget.ErrExpenseNotFound
		}
	} else {
		due = budget.TithingAmount(c.incomes, c.settings)
	}

	paid := c.paidSum(target.LedgerID(), month)
	return buildStatus(paid, due), nil
}

func buildStatus(paid, due budget.Money) ExpenseStatus {
	status := StatusUnpaid
	switch {
	case !due.IsZero() && paid.GreaterOrEqual(due), due.IsZero() && paid.IsPositive():
		status = StatusPaid
	case paid.IsPositive():
		status = StatusPartiallyPaid
	}

	percent := decimal.Zero
	if !due.IsZero() {
		percent = paid.Value.Div(due.Value).Mul(hundredPct)
	}

	return ExpenseStatus{
		Status:      status,
		AmountPaid:  paid,
		AmountDue:   due.Sub(paid).FloorZero(),
		PercentPaid: percent,
	}
}

var hundredPct = decimal.NewFromInt(100)

// BillsSummaryFor aggregates the period's paid position (empty month =
// current month).
func (c *Controller) BillsSummaryFor(month budget.MonthKey) (BillsSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if month == "" {
		month = budget.MonthOf(c.now())
	}
	if !month.Valid() {
		return BillsSummary{}, budget.ErrInvalidMonthKey
	}

	totalBills := budget.TotalBills(c.expenses)
	totalPaid := budget.ZeroMoney()
	for _, p := range c.payments {
		if p.MonthYear == month {
			totalPaid = totalPaid.Add(p.Amount)
		}
	}

	return BillsSummary{
		TotalBills:     totalBills,
		TotalPaid:      totalPaid,
		TotalRemaining: totalBills.Sub(totalPaid).FloorZero(),
	}, nil
}
