/*
ledger_test.go - Payment ledger tests

Tests for:
- Month state creation (idempotent, one per period)
- The materialized AmountPaid/IsPaid cache
- Paid status derivation including overpayment
- The tithe pseudo-payment in status queries
*/
package engine

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/budget-engine/budget"
)

func TestRecordPayment_CreatesMonthStateOnce(t *testing.T) {
	// GIVEN: A bill
	c := newTestController()
	ctx := context.Background()
	rent := addBill(t, c, "rent", 1000)

	// WHEN: Two payments land in the same period
	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(400), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(600), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	// THEN: Exactly one month state exists, holding both payment ids
	if len(c.monthStates) != 1 {
		t.Fatalf("monthStates = %d, want 1", len(c.monthStates))
	}
	if got := len(c.monthStates[0].PaymentIDs); got != 2 {
		t.Errorf("PaymentIDs = %d, want 2", got)
	}
	if c.monthStates[0].MonthYear != budget.MonthOf(testNow) {
		t.Errorf("month = %s, want %s", c.monthStates[0].MonthYear, budget.MonthOf(testNow))
	}
}

func TestRecordPayment_RefreshesExpenseCache(t *testing.T) {
	c := newTestController()
	ctx := context.Background()
	rent := addBill(t, c, "rent", 1000)

	// Partial payment: cache reflects the sum, not paid yet.
	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(400), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	e := c.Expenses()[0]
	wantMoney(t, e.AmountPaid, "400", "AmountPaid")
	if e.IsPaid {
		t.Error("partially paid bill marked paid")
	}

	// Completing payment flips IsPaid.
	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(600), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	e = c.Expenses()[0]
	wantMoney(t, e.AmountPaid, "1000", "AmountPaid")
	if !e.IsPaid {
		t.Error("fully paid bill not marked paid")
	}
}

func TestRecordPayment_RejectsMalformedMonth(t *testing.T) {
	c := newTestController()
	rent := addBill(t, c, "rent", 1000)

	_, err := c.RecordPayment(context.Background(), budget.BillTarget(rent.ID), budget.NewMoney(100), "", "06/2026")
	if err != budget.ErrInvalidMonthKey {
		t.Errorf("err = %v, want ErrInvalidMonthKey", err)
	}
}

func TestRecordPayment_PastMonthDoesNotTouchCurrentCache(t *testing.T) {
	// GIVEN: A bill with no payments this month
	c := newTestController()
	ctx := context.Background()
	rent := addBill(t, c, "rent", 1000)

	// WHEN: A payment is recorded against an earlier period
	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(1000), "", "2026-01"); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	// THEN: The cache is a view of the CURRENT month and stays clean
	e := c.Expenses()[0]
	wantMoney(t, e.AmountPaid, "0", "AmountPaid")
	if e.IsPaid {
		t.Error("bill marked paid by a past-month payment")
	}
}

// =============================================================================
// STATUS QUERIES
// =============================================================================

func TestExpensePaymentStatus(t *testing.T) {
	c := newTestController()
	ctx := context.Background()
	rent := addBill(t, c, "rent", 1000)

	// Unpaid.
	st, err := c.ExpensePaymentStatus(budget.BillTarget(rent.ID), "")
	if err != nil {
		t.Fatalf("ExpensePaymentStatus: %v", err)
	}
	if st.Status != StatusUnpaid {
		t.Errorf("status = %s, want unpaid", st.Status)
	}
	wantMoney(t, st.AmountDue, "1000", "AmountDue")

	// Partially paid.
	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(250), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	st, _ = c.ExpensePaymentStatus(budget.BillTarget(rent.ID), "")
	if st.Status != StatusPartiallyPaid {
		t.Errorf("status = %s, want partially-paid", st.Status)
	}
	wantMoney(t, st.AmountPaid, "250", "AmountPaid")
	wantMoney(t, st.AmountDue, "750", "AmountDue")
	if !st.PercentPaid.Equal(decimal.NewFromInt(25)) {
		t.Errorf("percent = %s, want 25", st.PercentPaid)
	}

	// Overpaid: due clamps at zero, percent runs past 100.
	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(1000), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	st, _ = c.ExpensePaymentStatus(budget.BillTarget(rent.ID), "")
	if st.Status != StatusPaid {
		t.Errorf("status = %s, want paid", st.Status)
	}
	wantMoney(t, st.AmountDue, "0", "AmountDue")
	if !st.PercentPaid.Equal(decimal.NewFromInt(125)) {
		t.Errorf("percent = %s, want 125", st.PercentPaid)
	}
}

func TestExpensePaymentStatus_UnknownBill(t *testing.T) {
	c := newTestController()
	_, err := c.ExpensePaymentStatus(budget.BillTarget("nope"), "")
	if !budget.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestExpensePaymentStatus_TitheTarget(t *testing.T) {
	// GIVEN: 4000 income with tithing at 10% -> 400 due monthly
	c := newTestController()
	ctx := context.Background()
	addIncome(t, c, 4000)
	enabled := true
	if _, err := c.UpdateSettings(ctx, SettingsPatch{TitheEnabled: &enabled}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	// WHEN: Half the tithe is paid
	if _, err := c.RecordPayment(ctx, budget.TitheTarget(), budget.NewMoney(200), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	// THEN: The tithe answers the same status question as a real bill
	st, err := c.ExpensePaymentStatus(budget.TitheTarget(), "")
	if err != nil {
		t.Fatalf("ExpensePaymentStatus: %v", err)
	}
	if st.Status != StatusPartiallyPaid {
		t.Errorf("status = %s, want partially-paid", st.Status)
	}
	wantMoney(t, st.AmountDue, "200", "AmountDue")
}

func TestBillsSummaryFor(t *testing.T) {
	c := newTestController()
	ctx := context.Background()
	rent := addBill(t, c, "rent", 1000)
	addBill(t, c, "utilities", 500)

	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(600), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	s, err := c.BillsSummaryFor("")
	if err != nil {
		t.Fatalf("BillsSummaryFor: %v", err)
	}
	wantMoney(t, s.TotalBills, "1500", "TotalBills")
	wantMoney(t, s.TotalPaid, "600", "TotalPaid")
	wantMoney(t, s.TotalRemaining, "900", "TotalRemaining")

	// A different period has no payments but the same bill definitions.
	s, err = c.BillsSummaryFor("2026-01")
	if err != nil {
		t.Fatalf("BillsSummaryFor: %v", err)
	}
	wantMoney(t, s.TotalPaid, "0", "TotalPaid")
	wantMoney(t, s.TotalRemaining, "1500", "TotalRemaining")
}

func TestUpdateExpense_RebuildsPaidCacheFromLedger(t *testing.T) {
	// GIVEN: A fully paid 500 bill
	c := newTestController()
	ctx := context.Background()
	bill := addBill(t, c, "insurance", 500)
	if _, err := c.RecordPayment(ctx, budget.BillTarget(bill.ID), budget.NewMoney(500), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	// WHEN: The bill amount is raised to 800 (the update carries stale paid
	// fields - they must be ignored)
	updated := bill
	updated.Amount = budget.NewMoney(800)
	updated.AmountPaid = budget.NewMoney(9999)
	updated.IsPaid = true
	got, err := c.UpdateExpense(ctx, bill.ID, updated)
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}

	// THEN: The cache is rebuilt from the ledger, not taken from the input
	wantMoney(t, got.AmountPaid, "500", "AmountPaid")
	if got.IsPaid {
		t.Error("bill should no longer be fully paid after the raise")
	}
}
