/*
rollover_test.go - Month-boundary archive and reset tests

Tests for:
- First-launch anchoring (no archive)
- Same-month no-op
- Archive contents and live-state reset on a month change
- Skip-ahead: unattended months are not back-filled
*/
package engine

import (
	"context"
	"testing"
	"time"

	"github.com/warp/budget-engine/budget"
)

func TestCheckAndResetMonthly_FirstLaunchAnchorsOnly(t *testing.T) {
	c := newTestController()

	rolled, err := c.CheckAndResetMonthly(context.Background())
	if err != nil {
		t.Fatalf("CheckAndResetMonthly: %v", err)
	}
	if rolled {
		t.Error("first launch should not roll over")
	}
	if len(c.Archives()) != 0 {
		t.Error("first launch should not archive")
	}
	if !c.lastResetDate.Equal(testNow) {
		t.Errorf("lastResetDate = %v, want %v", c.lastResetDate, testNow)
	}
}

func TestCheckAndResetMonthly_SameMonthIsNoOp(t *testing.T) {
	c := newTestController()
	ctx := context.Background()

	if _, err := c.CheckAndResetMonthly(ctx); err != nil {
		t.Fatalf("CheckAndResetMonthly: %v", err)
	}

	// Later the same month.
	c.now = func() time.Time { return testNow.AddDate(0, 0, 10) }
	rolled, err := c.CheckAndResetMonthly(ctx)
	if err != nil {
		t.Fatalf("CheckAndResetMonthly: %v", err)
	}
	if rolled {
		t.Error("same-month check should be a no-op")
	}
}

func TestCheckAndResetMonthly_ArchivesAndResets(t *testing.T) {
	// GIVEN: June state with a paid bill
	c := newTestController()
	ctx := context.Background()
	rent := addBill(t, c, "rent", 1000)
	if _, err := c.CheckAndResetMonthly(ctx); err != nil {
		t.Fatalf("anchor: %v", err)
	}
	if _, err := c.RecordPayment(ctx, budget.BillTarget(rent.ID), budget.NewMoney(1000), "", ""); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	// WHEN: July arrives
	c.now = func() time.Time { return time.Date(2026, time.July, 2, 9, 0, 0, 0, time.UTC) }
	rolled, err := c.CheckAndResetMonthly(ctx)
	if err != nil {
		t.Fatalf("CheckAndResetMonthly: %v", err)
	}
	if !rolled {
		t.Fatal("expected a rollover")
	}

	// THEN: June is frozen with its final paid state
	archives := c.Archives()
	if len(archives) != 1 {
		t.Fatalf("archives = %d, want 1", len(archives))
	}
	a := archives[0]
	if a.Month != "2026-06" {
		t.Errorf("archive month = %s, want 2026-06", a.Month)
	}
	if len(a.Payments) != 1 {
		t.Errorf("archived payments = %d, want 1", len(a.Payments))
	}
	if !a.Expenses[0].IsPaid {
		t.Error("archived bill should keep its paid state")
	}
	wantMoney(t, a.TotalPaid, "1000", "TotalPaid")
	wantMoney(t, a.TotalBills, "1000", "TotalBills")

	// AND: Live state starts the new month clean - bill survives, paid
	// state does not
	if got := len(c.Payments()); got != 0 {
		t.Errorf("live payments = %d, want 0", got)
	}
	e := c.Expenses()[0]
	if e.IsPaid || !e.AmountPaid.IsZero() {
		t.Error("live bill paid state not reset")
	}

	// AND: Running the check again is a no-op
	rolled, err = c.CheckAndResetMonthly(ctx)
	if err != nil || rolled {
		t.Errorf("second check = (%v, %v), want (false, nil)", rolled, err)
	}
}

func TestCheckAndResetMonthly_SkippedMonthsAreNotBackFilled(t *testing.T) {
	// GIVEN: Anchored in June
	c := newTestController()
	ctx := context.Background()
	addBill(t, c, "rent", 1000)
	if _, err := c.CheckAndResetMonthly(ctx); err != nil {
		t.Fatalf("anchor: %v", err)
	}

	// WHEN: The next launch is in September
	c.now = func() time.Time { return time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC) }
	rolled, err := c.CheckAndResetMonthly(ctx)
	if err != nil {
		t.Fatalf("CheckAndResetMonthly: %v", err)
	}
	if !rolled {
		t.Fatal("expected a rollover")
	}

	// THEN: Exactly one archive exists, keyed by the last seen month.
	// July and August are gone for good.
	archives := c.Archives()
	if len(archives) != 1 {
		t.Fatalf("archives = %d, want 1", len(archives))
	}
	if archives[0].Month != "2026-06" {
		t.Errorf("archive month = %s, want 2026-06", archives[0].Month)
	}
}
