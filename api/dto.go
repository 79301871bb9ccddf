/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing field
  renaming and version evolution without breaking clients.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.
  This layer is the "caller" the engine trusts: amounts, percentages, and
  multiplier sums are checked here before anything reaches the controller.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/warp/budget-engine/budget"
	"github.com/warp/budget-engine/engine"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// IncomeDTO represents an income source in API responses.
type IncomeDTO struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Amount            float64 `json:"amount"`
	Frequency         string  `json:"frequency"`
	StartDate         string  `json:"start_date"`
	HouseholdMemberID string  `json:"household_member_id,omitempty"`
	UsedForBills      bool    `json:"used_for_bills"`
	MonthlyEquivalent float64 `json:"monthly_equivalent"`
}

// SaveIncomeRequest creates or replaces an income source.
type SaveIncomeRequest struct {
	Name              string  `json:"name"`
	Amount            float64 `json:"amount"`
	Frequency         string  `json:"frequency"`
	StartDate         string  `json:"start_date,omitempty"`
	HouseholdMemberID string  `json:"household_member_id,omitempty"`
	UsedForBills      *bool   `json:"used_for_bills,omitempty"`
}

// ExpenseDTO represents a recurring bill, including its engine-owned paid
// state for the current month.
type ExpenseDTO struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Amount            float64 `json:"amount"`
	Category          string  `json:"category"`
	DueDay            int     `json:"due_day,omitempty"`
	Description       string  `json:"description,omitempty"`
	HouseholdMemberID string  `json:"household_member_id,omitempty"`
	AmountPaid        float64 `json:"amount_paid"`
	IsPaid            bool    `json:"is_paid"`
}

// SaveExpenseRequest creates or replaces a bill definition. Paid state is
// engine-owned and not accepted here.
type SaveExpenseRequest struct {
	Name              string  `json:"name"`
	Amount            float64 `json:"amount"`
	Category          string  `json:"category"`
	DueDay            int     `json:"due_day,omitempty"`
	Description       string  `json:"description,omitempty"`
	HouseholdMemberID string  `json:"household_member_id,omitempty"`
}

// MemberDTO represents a household member.
type MemberDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SaveMemberRequest creates or replaces a household member.
type SaveMemberRequest struct {
	Name string `json:"name"`
}

// OneTimeExpenseDTO is a paycheck-scoped expense.
type OneTimeExpenseDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	IsEdited bool    `json:"is_edited,omitempty"`
}

// LogPaycheckRequest logs one paycheck and the bills it settles.
type LogPaycheckRequest struct {
	Amount                  float64             `json:"amount"`
	Frequency               string              `json:"frequency"`
	Date                    string              `json:"date,omitempty"`
	PaidExpenseIDs          []string            `json:"paid_expense_ids"`
	OneTimeExpenses         []OneTimeExpenseDTO `json:"one_time_expenses,omitempty"`
	IncomeSourceID          string              `json:"income_source_id,omitempty"`
	CustomIncomeSource      string              `json:"custom_income_source,omitempty"`
	SweepRemainderToSavings bool                `json:"sweep_remainder_to_savings"`
}

// PaycheckDTO represents a logged paycheck and its computed allocation.
type PaycheckDTO struct {
	ID                 string              `json:"id"`
	Amount             float64             `json:"amount"`
	Frequency          string              `json:"frequency"`
	Date               string              `json:"date"`
	PaidExpenseIDs     []string            `json:"paid_expense_ids"`
	TitheAmount        *float64            `json:"tithe_amount,omitempty"`
	SpendingAmount     float64             `json:"spending_amount"`
	SavingsAmount      float64             `json:"savings_amount"`
	IncomeSourceID     string              `json:"income_source_id,omitempty"`
	CustomIncomeSource string              `json:"custom_income_source,omitempty"`
	CheckedExpenses    map[string]bool     `json:"checked_expenses,omitempty"`
	OneTimeExpenses    []OneTimeExpenseDTO `json:"one_time_expenses,omitempty"`
}

// UpdatePaycheckRequest patches a logged paycheck's bookkeeping fields;
// omitted fields keep their current values. CheckedExpenses keys are bill
// ids, plus "tithe" for the tithe line. Amount and frequency are fixed at
// logging time - delete and re-log to correct them.
type UpdatePaycheckRequest struct {
	CheckedExpenses    map[string]bool `json:"checked_expenses,omitempty"`
	IncomeSourceID     *string         `json:"income_source_id,omitempty"`
	CustomIncomeSource *string         `json:"custom_income_source,omitempty"`
}

// RecordPaymentRequest records a standalone payment against a bill, or the
// tithe when Tithe is set.
type RecordPaymentRequest struct {
	ExpenseID  string  `json:"expense_id,omitempty"`
	Tithe      bool    `json:"tithe,omitempty"`
	Amount     float64 `json:"amount"`
	PaycheckID string  `json:"paycheck_id,omitempty"`
	Month      string  `json:"month,omitempty"`
}

// PaymentDTO represents one ledger payment.
type PaymentDTO struct {
	ID         string  `json:"id"`
	ExpenseID  string  `json:"expense_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	PaycheckID string  `json:"paycheck_id,omitempty"`
	MonthYear  string  `json:"month_year"`
}

// DailyExpenseDTO represents an ad-hoc discretionary purchase.
type DailyExpenseDTO struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// AddDailyExpenseRequest records a discretionary purchase.
type AddDailyExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date,omitempty"`
}

// SummaryDTO is the headline monthly view.
type SummaryDTO struct {
	TotalIncome float64 `json:"total_income"`
	TotalBills  float64 `json:"total_bills"`
	Balance     float64 `json:"balance"`
}

// PercentagesDTO is the derived bills/spend/savings split.
type PercentagesDTO struct {
	BillsPercentage   float64 `json:"bills_percentage"`
	SpendPercentage   float64 `json:"spend_percentage"`
	SavingsPercentage float64 `json:"savings_percentage"`
	SpendMultiplier   float64 `json:"spend_multiplier"`
	SavingsMultiplier float64 `json:"savings_multiplier"`
}

// UpdateMultipliersRequest sets the spend/savings split. The pair must sum
// to 1.0 within tolerance; this is enforced here, not in the engine.
type UpdateMultipliersRequest struct {
	SpendMultiplier   float64 `json:"spend_multiplier"`
	SavingsMultiplier float64 `json:"savings_multiplier"`
}

// SettingsDTO mirrors AppSettings.
type SettingsDTO struct {
	TitheEnabled    bool    `json:"tithe_enabled"`
	TithePercentage float64 `json:"tithe_percentage"`
}

// UpdateSettingsRequest partially updates settings; omitted fields keep
// their current values.
type UpdateSettingsRequest struct {
	TitheEnabled    *bool    `json:"tithe_enabled,omitempty"`
	TithePercentage *float64 `json:"tithe_percentage,omitempty"`
}

// ExpenseStatusDTO is one bill's paid position for a period.
type ExpenseStatusDTO struct {
	Status      string  `json:"status"`
	AmountPaid  float64 `json:"amount_paid"`
	AmountDue   float64 `json:"amount_due"`
	PercentPaid float64 `json:"percent_paid"`
}

// BillsSummaryDTO aggregates a period's paid position.
type BillsSummaryDTO struct {
	TotalBills     float64 `json:"total_bills"`
	TotalPaid      float64 `json:"total_paid"`
	TotalRemaining float64 `json:"total_remaining"`
}

// TotalsDTO exposes the running balances.
type TotalsDTO struct {
	SpendingTotal float64 `json:"spending_total"`
	SavingsTotal  float64 `json:"savings_total"`
}

// SetTotalRequest manually overrides one running balance.
type SetTotalRequest struct {
	Amount float64 `json:"amount"`
	Target string  `json:"target"` // "spending" or "savings"
}

// ArchiveDTO is a frozen month snapshot.
type ArchiveDTO struct {
	Month      string       `json:"month"`
	Expenses   []ExpenseDTO `json:"expenses"`
	Payments   []PaymentDTO `json:"payments"`
	TotalPaid  float64      `json:"total_paid"`
	TotalBills float64      `json:"total_bills"`
}

// RolloverResultDTO reports whether a month boundary was processed.
type RolloverResultDTO struct {
	RolledOver bool `json:"rolled_over"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toIncomeDTO(inc budget.Income) IncomeDTO {
	return IncomeDTO{
		ID:                inc.ID,
		Name:              inc.Name,
		Amount:            inc.Amount.Float64(),
		Frequency:         string(inc.Frequency),
		StartDate:         inc.StartDate.Format("2006-01-02"),
		HouseholdMemberID: inc.HouseholdMemberID,
		UsedForBills:      inc.CountsForBills(),
		MonthlyEquivalent: budget.MonthlyEquivalent(inc).Float64(),
	}
}

func toExpenseDTO(e budget.ExpenseItem) ExpenseDTO {
	return ExpenseDTO{
		ID:                e.ID,
		Name:              e.Name,
		Amount:            e.Amount.Float64(),
		Category:          e.Category,
		DueDay:            e.DueDay,
		Description:       e.Description,
		HouseholdMemberID: e.HouseholdMemberID,
		AmountPaid:        e.AmountPaid.Float64(),
		IsPaid:            e.IsPaid,
	}
}

func toPaycheckDTO(p budget.Paycheck) PaycheckDTO {
	dto := PaycheckDTO{
		ID:                 p.ID,
		Amount:             p.Amount.Float64(),
		Frequency:          string(p.Frequency),
		Date:               p.Date.Format(time.RFC3339),
		PaidExpenseIDs:     p.PaidExpenseIDs,
		SpendingAmount:     p.SpendingAmount.Float64(),
		SavingsAmount:      p.SavingsAmount.Float64(),
		IncomeSourceID:     p.IncomeSourceID,
		CustomIncomeSource: p.CustomIncomeSource,
		CheckedExpenses:    p.CheckedExpenses,
		OneTimeExpenses:    toOneTimeExpenseDTOs(p.OneTimeExpenses),
	}
	if p.TitheAmount != nil {
		tithe := p.TitheAmount.Float64()
		dto.TitheAmount = &tithe
	}
	return dto
}

func toPaymentDTO(p budget.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         p.ID,
		ExpenseID:  p.ExpenseID,
		Amount:     p.Amount.Float64(),
		Date:       p.Date.Format(time.RFC3339),
		PaycheckID: p.PaycheckID,
		MonthYear:  string(p.MonthYear),
	}
}

func toPaymentDTOs(payments []budget.Payment) []PaymentDTO {
	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = toPaymentDTO(p)
	}
	return dtos
}

func toOneTimeExpenseDTOs(otes []budget.OneTimeExpense) []OneTimeExpenseDTO {
	if len(otes) == 0 {
		return nil
	}
	dtos := make([]OneTimeExpenseDTO, len(otes))
	for i, o := range otes {
		dtos[i] = OneTimeExpenseDTO{
			ID:       o.ID,
			Name:     o.Name,
			Amount:   o.Amount.Float64(),
			Category: o.Category,
			IsEdited: o.IsEdited,
		}
	}
	return dtos
}

func fromOneTimeExpenseDTOs(dtos []OneTimeExpenseDTO) []budget.OneTimeExpense {
	if len(dtos) == 0 {
		return nil
	}
	otes := make([]budget.OneTimeExpense, len(dtos))
	for i, d := range dtos {
		otes[i] = budget.OneTimeExpense{
			ID:       d.ID,
			Name:     d.Name,
			Amount:   budget.NewMoney(d.Amount),
			Category: d.Category,
			IsEdited: d.IsEdited,
		}
	}
	return otes
}

func toStatusDTO(s engine.ExpenseStatus) ExpenseStatusDTO {
	percent, _ := s.PercentPaid.Float64()
	return ExpenseStatusDTO{
		Status:      string(s.Status),
		AmountPaid:  s.AmountPaid.Float64(),
		AmountDue:   s.AmountDue.Float64(),
		PercentPaid: percent,
	}
}

func toArchiveDTO(a budget.MonthlyArchive) ArchiveDTO {
	expenses := make([]ExpenseDTO, len(a.Expenses))
	for i, e := range a.Expenses {
		expenses[i] = toExpenseDTO(e)
	}
	return ArchiveDTO{
		Month:      string(a.Month),
		Expenses:   expenses,
		Payments:   toPaymentDTOs(a.Payments),
		TotalPaid:  a.TotalPaid.Float64(),
		TotalBills: a.TotalBills.Float64(),
	}
}
