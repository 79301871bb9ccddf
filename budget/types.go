/*
Package budget provides the core household-budgeting domain model and algorithms.

PURPOSE:
  This package contains the pure arithmetic heart of the budgeting engine:
  income normalization, percentage allocation, and paycheck splitting.
  Everything here is a function over in-memory values - no storage, no HTTP,
  no clocks. The stateful parts (ledger, rollover, persistence) live in the
  engine package and call into this one.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A monetary amount backed by decimal.Decimal
  - Income/ExpenseItem/Paycheck/Payment: The user-facing entities
  - PaymentTarget: Tagged variant distinguishing bill payments from tithe
  - AppSettings/BudgetPercentages: Configuration and derived views

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere; no float arithmetic on money
  2. Derived fields stay derived: ExpenseItem.AmountPaid/IsPaid are caches
     recomputed from payments, never independently settable
  3. No sentinel strings in code: the tithe pseudo-payment is a tagged
     variant, serialized with a reserved id only at the storage boundary

SEE ALSO:
  - income.go: Frequency normalization to monthly equivalents
  - percentages.go: Bills/spend/savings percentage derivation
  - paycheck.go: Paycheck allocation with spillover rules
*/
package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Monetary amount with exact decimal arithmetic
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(o Money) Money              { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money              { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Mul(s decimal.Decimal) Money    { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money    { return Money{Value: m.Value.Div(s)} }
func (m Money) Neg() Money                     { return Money{Value: m.Value.Neg()} }
func (m Money) IsZero() bool                   { return m.Value.IsZero() }
func (m Money) IsNegative() bool               { return m.Value.IsNegative() }
func (m Money) IsPositive() bool               { return m.Value.IsPositive() }
func (m Money) GreaterThan(o Money) bool       { return m.Value.GreaterThan(o.Value) }
func (m Money) GreaterOrEqual(o Money) bool    { return m.Value.GreaterThanOrEqual(o.Value) }
func (m Money) LessThan(o Money) bool          { return m.Value.LessThan(o.Value) }
func (m Money) Equal(o Money) bool             { return m.Value.Equal(o.Value) }
func (m Money) Float64() float64               { f, _ := m.Value.Float64(); return f }
func (m Money) String() string                 { return m.Value.String() }

// FloorZero clamps negative amounts to zero. The allocation spillover rules
// apply this at every intermediate step.
func (m Money) FloorZero() Money {
	if m.IsNegative() {
		return ZeroMoney()
	}
	return m
}

func (m Money) MarshalJSON() ([]byte, error)  { return m.Value.MarshalJSON() }
func (m *Money) UnmarshalJSON(b []byte) error { return m.Value.UnmarshalJSON(b) }

// =============================================================================
// FREQUENCIES
// =============================================================================

// IncomeFrequency is how often an income source pays out.
type IncomeFrequency string

const (
	IncomeWeekly   IncomeFrequency = "weekly"
	IncomeBiweekly IncomeFrequency = "biweekly"
	IncomeMonthly  IncomeFrequency = "monthly"
	IncomeYearly   IncomeFrequency = "yearly"
)

// PaycheckFrequency is the cadence of a logged paycheck. Note there is no
// yearly paycheck - nobody logs a once-a-year check against monthly bills.
type PaycheckFrequency string

const (
	PaycheckWeekly   PaycheckFrequency = "weekly"
	PaycheckBiweekly PaycheckFrequency = "biweekly"
	PaycheckMonthly  PaycheckFrequency = "monthly"
)

// =============================================================================
// ENTITIES - User-managed records
// =============================================================================

// HouseholdMember lets incomes and bills be attributed to a person.
type HouseholdMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Income is a recurring income source. UsedForBills defaults to true when
// unset; an income excluded from bills still counts toward total income.
type Income struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Amount            Money           `json:"amount"`
	Frequency         IncomeFrequency `json:"frequency"`
	StartDate         time.Time       `json:"start_date"`
	HouseholdMemberID string          `json:"household_member_id,omitempty"`
	UsedForBills      *bool           `json:"used_for_bills,omitempty"`
}

// CountsForBills reports whether this income participates in the
// bill-eligible income total. Unset means yes.
func (i Income) CountsForBills() bool {
	return i.UsedForBills == nil || *i.UsedForBills
}

// ExpenseItem is a recurring monthly bill. AmountPaid and IsPaid are
// engine-owned caches recomputed from the payment ledger for the current
// month; they are reset at rollover and must never be set directly.
type ExpenseItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Amount            Money  `json:"amount"`
	Category          string `json:"category"`
	DueDay            int    `json:"due_day,omitempty"`
	Description       string `json:"description,omitempty"`
	HouseholdMemberID string `json:"household_member_id,omitempty"`

	AmountPaid Money `json:"amount_paid"`
	IsPaid     bool  `json:"is_paid"`
}

// OneTimeExpense is a bill-like item scoped to a single paycheck. When
// IsEdited is set and the ID matches a recurring bill, its amount overrides
// that bill's cycle-adjusted amount for the paycheck it belongs to.
type OneTimeExpense struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   Money  `json:"amount"`
	Category string `json:"category"`
	IsEdited bool   `json:"is_edited,omitempty"`
}

// DailyExpense is an ad-hoc discretionary purchase deducted from the running
// spending total.
type DailyExpense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	Date        time.Time `json:"date"`
}

// Paycheck is one logged check and the allocation computed for it.
// SpendingAmount/SavingsAmount are fixed at creation; deleting the paycheck
// reverses their contribution to the running totals.
type Paycheck struct {
	ID                 string            `json:"id"`
	Amount             Money             `json:"amount"`
	Frequency          PaycheckFrequency `json:"frequency"`
	Date               time.Time         `json:"date"`
	PaidExpenseIDs     []string          `json:"paid_expense_ids"`
	TitheAmount        *Money            `json:"tithe_amount,omitempty"`
	SpendingAmount     Money             `json:"spending_amount"`
	SavingsAmount      Money             `json:"savings_amount"`
	IncomeSourceID     string            `json:"income_source_id,omitempty"`
	CustomIncomeSource string            `json:"custom_income_source,omitempty"`
	CheckedExpenses    map[string]bool   `json:"checked_expenses,omitempty"`
	OneTimeExpenses    []OneTimeExpense  `json:"one_time_expenses,omitempty"`
}

// =============================================================================
// PAYMENT TARGET - Bill(id) | Tithe
// =============================================================================

// TitheLedgerID is the reserved ledger id for tithe pseudo-payments. It only
// appears in serialized Payment records; code works with PaymentTarget.
const TitheLedgerID = "tithe"

type targetKind int

const (
	targetBill targetKind = iota
	targetTithe
)

// PaymentTarget identifies what a payment settles: a real bill or the tithe.
// Modeling this as a tagged variant keeps the reserved tithe id from ever
// colliding with a user-created bill id.
type PaymentTarget struct {
	kind      targetKind
	expenseID string
}

func BillTarget(expenseID string) PaymentTarget {
	return PaymentTarget{kind: targetBill, expenseID: expenseID}
}

func TitheTarget() PaymentTarget {
	return PaymentTarget{kind: targetTithe}
}

func (t PaymentTarget) IsTithe() bool { return t.kind == targetTithe }

// ExpenseID returns the bill id and true for bill targets, "" and false for
// tithe.
func (t PaymentTarget) ExpenseID() (string, bool) {
	if t.kind == targetBill {
		return t.expenseID, true
	}
	return "", false
}

// LedgerID returns the id recorded on the Payment row.
func (t PaymentTarget) LedgerID() string {
	if t.kind == targetTithe {
		return TitheLedgerID
	}
	return t.expenseID
}

// TargetFromLedgerID reverses LedgerID for records loaded from storage.
func TargetFromLedgerID(id string) PaymentTarget {
	if id == TitheLedgerID {
		return TitheTarget()
	}
	return BillTarget(id)
}

// =============================================================================
// LEDGER RECORDS
// =============================================================================

// Payment is one settled amount against a bill (or tithe) in a ledger period.
// Payments are the append-only source of truth for AmountPaid; they are never
// edited, only removed by a paycheck deletion cascade.
type Payment struct {
	ID         string    `json:"id"`
	ExpenseID  string    `json:"expense_id"`
	Amount     Money     `json:"amount"`
	Date       time.Time `json:"date"`
	PaycheckID string    `json:"paycheck_id,omitempty"`
	MonthYear  MonthKey  `json:"month_year"`
}

// Target returns the tagged target this payment settles.
func (p Payment) Target() PaymentTarget { return TargetFromLedgerID(p.ExpenseID) }

// BillMonthState partitions the ledger by period. A state record is created
// before the first payment of a period is recorded.
type BillMonthState struct {
	MonthYear  MonthKey `json:"month_year"`
	PaymentIDs []string `json:"payment_ids"`
}

// MonthlyArchive is the write-once snapshot taken at rollover: the bills with
// their final paid state and every payment of the closed month.
type MonthlyArchive struct {
	Month      MonthKey      `json:"month"`
	Expenses   []ExpenseItem `json:"expenses"`
	Payments   []Payment     `json:"payments"`
	TotalPaid  Money         `json:"total_paid"`
	TotalBills Money         `json:"total_bills"`
}

// =============================================================================
// SETTINGS AND DERIVED VIEWS
// =============================================================================

// AppSettings holds the user's tithe configuration.
type AppSettings struct {
	TitheEnabled    bool            `json:"tithe_enabled"`
	TithePercentage decimal.Decimal `json:"tithe_percentage"`
}

// DefaultSettings matches a fresh install: tithe off, 10% when enabled.
func DefaultSettings() AppSettings {
	return AppSettings{TitheEnabled: false, TithePercentage: decimal.NewFromInt(10)}
}

// BudgetSummary is the headline monthly view.
type BudgetSummary struct {
	TotalIncome Money `json:"total_income"`
	TotalBills  Money `json:"total_bills"`
	Balance     Money `json:"balance"`
}

// BudgetPercentages is a derived view of how monthly income divides across
// bills, spending, and savings. Only the multipliers are authoritative state;
// the percentages are recomputed on every read.
type BudgetPercentages struct {
	BillsPercentage   decimal.Decimal `json:"bills_percentage"`
	SpendPercentage   decimal.Decimal `json:"spend_percentage"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
	SpendMultiplier   decimal.Decimal `json:"spend_multiplier"`
	SavingsMultiplier decimal.Decimal `json:"savings_multiplier"`
}

// DefaultSpendMultiplier and DefaultSavingsMultiplier split the non-bill
// remainder 60/40 until the user configures otherwise.
var (
	DefaultSpendMultiplier   = decimal.NewFromFloat(0.6)
	DefaultSavingsMultiplier = decimal.NewFromFloat(0.4)
)
