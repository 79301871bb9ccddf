/*
controller.go - The single owner of all budget state

PURPOSE:
  Controller holds the whole household budget as one explicit state object:
  every collection lives here, every mutation is a method, and derived views
  are recomputed on read. Hosts receive an injected *Controller rather than
  reaching for ambient globals.

CONCURRENCY:
  The design is single-writer: operations run to completion before the next
  is accepted. A mutex serializes mutations from the concurrent HTTP host;
  the semantics per operation are unchanged by interleaving.

PERSISTENCE:
  Writes are attempted after each mutation. A failed write is logged and
  reported to the caller, but the in-memory change stands - the session
  stays available at the cost of strict durability.
*/
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/warp/budget-engine/budget"
)

// =============================================================================
// CONTROLLER
// =============================================================================

type Controller struct {
	mu    sync.RWMutex
	store Store
	now   func() time.Time

	incomes       []budget.Income
	expenses      []budget.ExpenseItem
	paychecks     []budget.Paycheck
	payments      []budget.Payment
	monthStates   []budget.BillMonthState
	archives      []budget.MonthlyArchive
	dailyExpenses []budget.DailyExpense
	members       []budget.HouseholdMember

	settings          budget.AppSettings
	spendMultiplier   decimal.Decimal
	savingsMultiplier decimal.Decimal

	spendingTotal budget.Money
	savingsTotal  budget.Money

	lastResetDate time.Time
}

// NewController creates a controller with fresh-install defaults. Call Load
// to hydrate from the store before serving.
func NewController(store Store) *Controller {
	return &Controller{
		store:             store,
		now:               time.Now,
		settings:          budget.DefaultSettings(),
		spendMultiplier:   budget.DefaultSpendMultiplier,
		savingsMultiplier: budget.DefaultSavingsMultiplier,
		spendingTotal:     budget.ZeroMoney(),
		savingsTotal:      budget.ZeroMoney(),
	}
}

func newID() string { return uuid.NewString() }

// =============================================================================
// INCOME
// =============================================================================

func (c *Controller) Incomes() []budget.Income {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]budget.Income, len(c.incomes))
	copy(out, c.incomes)
	return out
}

func (c *Controller) AddIncome(ctx context.Context, inc budget.Income) (budget.Income, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if inc.ID == "" {
		inc.ID = newID()
	}
	c.incomes = append(c.incomes, inc)
	return inc, c.saveIncomes(ctx)
}

func (c *Controller) UpdateIncome(ctx context.Context, id string, inc budget.Income) (budget.Income, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.incomes {
		if c.incomes[i].ID == id {
			inc.ID = id
			c.incomes[i] = inc
			return inc, c.saveIncomes(ctx)
		}
	}
	return budget.Income{}, budget.ErrIncomeNotFound
}

func (c *Controller) DeleteIncome(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.incomes {
		if c.incomes[i].ID == id {
			c.incomes = append(c.incomes[:i], c.incomes[i+1:]...)
			return c.saveIncomes(ctx)
		}
	}
	return budget.ErrIncomeNotFound
}

// =============================================================================
// EXPENSES (recurring bills)
// =============================================================================

func (c *Controller) Expenses() []budget.ExpenseItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]budget.ExpenseItem, len(c.expenses))
	copy(out, c.expenses)
	return out
}

func (c *Controller) AddExpense(ctx context.Context, exp budget.ExpenseItem) (budget.ExpenseItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if exp.ID == "" {
		exp.ID = newID()
	}
	// Paid state is engine-owned and starts clean.
	exp.AmountPaid = budget.ZeroMoney()
	exp.IsPaid = false
	c.expenses = append(c.expenses, exp)
	return exp, c.saveExpenses(ctx)
}

func (c *Controller) UpdateExpense(ctx context.Context, id string, exp budget.ExpenseItem) (budget.ExpenseItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.expenses {
		if c.expenses[i].ID == id {
			exp.ID = id
			c.expenses[i] = exp
			// The due amount may have changed; the paid cache is derived,
			// so rebuild it from the ledger rather than trusting the input.
			c.refreshExpenseCache(id)
			return c.expenses[i], c.saveExpenses(ctx)
		}
	}
	return budget.ExpenseItem{}, budget.ErrExpenseNotFound
}

func (c *Controller) DeleteExpense(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.expenses {
		if c.expenses[i].ID == id {
			c.expenses = append(c.expenses[:i], c.expenses[i+1:]...)
			return c.saveExpenses(ctx)
		}
	}
	return budget.ErrExpenseNotFound
}

// =============================================================================
// HOUSEHOLD MEMBERS
// =============================================================================

func (c *Controller) HouseholdMembers() []budget.HouseholdMember {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]budget.HouseholdMember, len(c.members))
	copy(out, c.members)
	return out
}

func (c *Controller) AddHouseholdMember(ctx context.Context, m budget.HouseholdMember) (budget.HouseholdMember, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m.ID == "" {
		m.ID = newID()
	}
	c.members = append(c.members, m)
	return m, c.saveMembers(ctx)
}

func (c *Controller) UpdateHouseholdMember(ctx context.Context, id string, m budget.HouseholdMember) (budget.HouseholdMember, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.members {
		if c.members[i].ID == id {
			m.ID = id
			c.members[i] = m
			return m, c.saveMembers(ctx)
		}
	}
	return budget.HouseholdMember{}, budget.ErrMemberNotFound
}

func (c *Controller) DeleteHouseholdMember(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.members {
		if c.members[i].ID == id {
			c.members = append(c.members[:i], c.members[i+1:]...)
			return c.saveMembers(ctx)
		}
	}
	return budget.ErrMemberNotFound
}

// =============================================================================
// PAYCHECKS
// =============================================================================

// LogPaycheckInput is one paycheck as entered by the user. Amount is assumed
// positive and SelectedExpenseIDs pre-validated by the caller.
type LogPaycheckInput struct {
	Amount             budget.Money
	Frequency          budget.PaycheckFrequency
	Date               time.Time // zero value means "now"
	SelectedExpenseIDs []string
	OneTimeExpenses    []budget.OneTimeExpense
	IncomeSourceID     string
	CustomIncomeSource string

	SweepRemainderToSavings bool
}

func (c *Controller) Paychecks() []budget.Paycheck {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]budget.Paycheck, len(c.paychecks))
	copy(out, c.paychecks)
	return out
}

// LogPaycheck runs the allocation algorithm against the current budgeted
// percentages, persists the paycheck, adds its spending/savings to the
// running totals, and records ledger payments for the selected bills plus a
// tithe pseudo-payment when tithing is enabled.
func (c *Controller) LogPaycheck(ctx context.Context, in LogPaycheckInput) (budget.Paycheck, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	date := in.Date
	if date.IsZero() {
		date = c.now()
	}

	selected := c.selectedExpenses(in.SelectedExpenseIDs)
	pcts := budget.ComputePercentages(c.incomes, c.expenses, c.settings, c.spendMultiplier, c.savingsMultiplier)

	alloc := budget.Allocate(budget.AllocationInput{
		Amount:                  in.Amount,
		Frequency:               in.Frequency,
		SelectedBills:           selected,
		OneTimeExpenses:         in.OneTimeExpenses,
		Settings:                c.settings,
		BillsPercentage:         pcts.BillsPercentage,
		SpendMultiplier:         pcts.SpendMultiplier,
		SavingsMultiplier:       pcts.SavingsMultiplier,
		SweepRemainderToSavings: in.SweepRemainderToSavings,
	})

	p := budget.Paycheck{
		ID:                 newID(),
		Amount:             in.Amount,
		Frequency:          in.Frequency,
		Date:               date,
		PaidExpenseIDs:     append([]string(nil), in.SelectedExpenseIDs...),
		SpendingAmount:     alloc.SpendingAmount,
		SavingsAmount:      alloc.SavingsAmount,
		IncomeSourceID:     in.IncomeSourceID,
		CustomIncomeSource: in.CustomIncomeSource,
		OneTimeExpenses:    in.OneTimeExpenses,
	}
	if c.settings.TitheEnabled {
		tithe := alloc.TitheAmount
		p.TitheAmount = &tithe
	}

	c.paychecks = append(c.paychecks, p)
	c.spendingTotal = c.spendingTotal.Add(alloc.SpendingAmount)
	c.savingsTotal = c.savingsTotal.Add(alloc.SavingsAmount)

	// Settle the selected bills in this month's ledger partition.
	month := budget.MonthOf(date)
	overrides := make(map[string]budget.Money)
	for _, ote := range in.OneTimeExpenses {
		if ote.IsEdited {
			overrides[ote.ID] = ote.Amount
		}
	}
	for _, bill := range selected {
		amount := budget.CycleAmount(bill.Amount, in.Frequency)
		if amt, ok := overrides[bill.ID]; ok {
			amount = amt
		}
		c.recordPaymentLocked(budget.BillTarget(bill.ID), amount, p.ID, month, date)
	}
	if c.settings.TitheEnabled && alloc.TitheAmount.IsPositive() {
		c.recordPaymentLocked(budget.TitheTarget(), alloc.TitheAmount, p.ID, month, date)
	}

	err := firstError(
		c.savePaychecks(ctx),
		c.saveTotals(ctx),
		c.savePayments(ctx),
		c.saveMonthStates(ctx),
		c.saveExpenses(ctx),
	)
	return p, err
}

// PaycheckPatch is a partial paycheck update; nil fields are left unchanged.
// Only post-logging bookkeeping is patchable: the checklist of what was
// actually paid off and the income-source attribution. Amount, frequency,
// and the computed allocation are fixed at logging time - changing them
// without re-running the allocation would desynchronize the running totals,
// so the way to correct a mis-entered check is delete and re-log.
type PaycheckPatch struct {
	CheckedExpenses    map[string]bool // replaces the checklist when non-nil
	IncomeSourceID     *string
	CustomIncomeSource *string
}

// UpdatePaycheck applies a partial update to a logged paycheck. Running
// totals and ledger payments are not re-adjusted; the patch carries only
// bookkeeping fields.
func (c *Controller) UpdatePaycheck(ctx context.Context, id string, patch PaycheckPatch) (budget.Paycheck, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.paychecks {
		if c.paychecks[i].ID != id {
			continue
		}
		if patch.CheckedExpenses != nil {
			c.paychecks[i].CheckedExpenses = patch.CheckedExpenses
		}
		if patch.IncomeSourceID != nil {
			c.paychecks[i].IncomeSourceID = *patch.IncomeSourceID
		}
		if patch.CustomIncomeSource != nil {
			c.paychecks[i].CustomIncomeSource = *patch.CustomIncomeSource
		}
		return c.paychecks[i], c.savePaychecks(ctx)
	}
	return budget.Paycheck{}, budget.ErrPaycheckNotFound
}

// DeletePaycheck removes a paycheck, reverses its spending/savings
// contribution (floored at zero - balances never go negative from a single
// deletion), and cascades away the payments it created.
func (c *Controller) DeletePaycheck(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.paychecks {
		if c.paychecks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return budget.ErrPaycheckNotFound
	}

	p := c.paychecks[idx]
	c.paychecks = append(c.paychecks[:idx], c.paychecks[idx+1:]...)

	c.spendingTotal = c.spendingTotal.Sub(p.SpendingAmount).FloorZero()
	c.savingsTotal = c.savingsTotal.Sub(p.SavingsAmount).FloorZero()

	c.removePaymentsForPaycheck(id)

	return firstError(
		c.savePaychecks(ctx),
		c.saveTotals(ctx),
		c.savePayments(ctx),
		c.saveMonthStates(ctx),
		c.saveExpenses(ctx),
	)
}

func (c *Controller) selectedExpenses(ids []string) []budget.ExpenseItem {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []budget.ExpenseItem
	for _, e := range c.expenses {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// =============================================================================
// DAILY EXPENSES
// =============================================================================

func (c *Controller) DailyExpenses() []budget.DailyExpense {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]budget.DailyExpense, len(c.dailyExpenses))
	copy(out, c.dailyExpenses)
	return out
}

// AddDailyExpense deducts an ad-hoc purchase from the running spending
// total. A deficit spills into savings; if savings cannot cover it either,
// the residual shortfall is carried on spending as a negative balance.
func (c *Controller) AddDailyExpense(ctx context.Context, exp budget.DailyExpense) (budget.DailyExpense, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if exp.ID == "" {
		exp.ID = newID()
	}
	if exp.Date.IsZero() {
		exp.Date = c.now()
	}
	c.dailyExpenses = append(c.dailyExpenses, exp)

	newSpending := c.spendingTotal.Sub(exp.Amount)
	newSavings := c.savingsTotal
	if newSpending.IsNegative() {
		newSavings = newSavings.Add(newSpending)
		newSpending = budget.ZeroMoney()
		if newSavings.IsNegative() {
			newSpending = newSavings
			newSavings = budget.ZeroMoney()
		}
	}
	c.spendingTotal = newSpending
	c.savingsTotal = newSavings

	return exp, firstError(c.saveDailyExpenses(ctx), c.saveTotals(ctx))
}

// DeleteDailyExpense refunds the purchase back to the spending total.
func (c *Controller) DeleteDailyExpense(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.dailyExpenses {
		if c.dailyExpenses[i].ID == id {
			amount := c.dailyExpenses[i].Amount
			c.dailyExpenses = append(c.dailyExpenses[:i], c.dailyExpenses[i+1:]...)
			c.spendingTotal = c.spendingTotal.Add(amount)
			return firstError(c.saveDailyExpenses(ctx), c.saveTotals(ctx))
		}
	}
	return budget.ErrDailyExpenseNotFound
}

// =============================================================================
// SETTINGS, MULTIPLIERS, TOTALS
// =============================================================================

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	TitheEnabled    *bool
	TithePercentage *decimal.Decimal
}

func (c *Controller) Settings() budget.AppSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

func (c *Controller) UpdateSettings(ctx context.Context, patch SettingsPatch) (budget.AppSettings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if patch.TitheEnabled != nil {
		c.settings.TitheEnabled = *patch.TitheEnabled
	}
	if patch.TithePercentage != nil {
		c.settings.TithePercentage = *patch.TithePercentage
	}
	return c.settings, c.saveSettings(ctx)
}

// UpdatePercentageMultipliers stores the spend/savings split verbatim.
// Callers must ensure the pair sums to 1.0 (tolerance 0.0001); the engine
// does not re-normalize - validation lives at the boundary.
func (c *Controller) UpdatePercentageMultipliers(ctx context.Context, spend, savings decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.spendMultiplier = spend
	c.savingsMultiplier = savings
	return c.savePercentages(ctx)
}

// TotalTarget selects which running balance a manual override applies to.
type TotalTarget string

const (
	TargetSpending TotalTarget = "spending"
	TargetSavings  TotalTarget = "savings"
)

// SetSpendingOrSavingsTotal is the manual override, clamped to >= 0.
func (c *Controller) SetSpendingOrSavingsTotal(ctx context.Context, amount budget.Money, target TotalTarget) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if target == TargetSpending {
		c.spendingTotal = amount.FloorZero()
	} else {
		c.savingsTotal = amount.FloorZero()
	}
	return c.saveTotals(ctx)
}

// Totals returns the running spending and savings balances.
func (c *Controller) Totals() (spending, savings budget.Money) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.spendingTotal, c.savingsTotal
}

// =============================================================================
// DERIVED VIEWS
// =============================================================================

// BudgetSummary is the headline view: total monthly income (all sources),
// total recurring bills, and the difference.
func (c *Controller) BudgetSummary() budget.BudgetSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	totalIncome := budget.TotalMonthlyIncome(c.incomes)
	totalBills := budget.TotalBills(c.expenses)
	return budget.BudgetSummary{
		TotalIncome: totalIncome,
		TotalBills:  totalBills,
		Balance:     totalIncome.Sub(totalBills),
	}
}

func (c *Controller) BudgetPercentages() budget.BudgetPercentages {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return budget.ComputePercentages(c.incomes, c.expenses, c.settings, c.spendMultiplier, c.savingsMultiplier)
}

func (c *Controller) TithingAmount() budget.Money {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return budget.TithingAmount(c.incomes, c.settings)
}

func (c *Controller) Archives() []budget.MonthlyArchive {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]budget.MonthlyArchive, len(c.archives))
	copy(out, c.archives)
	return out
}

// =============================================================================
// HELPERS
// =============================================================================

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
