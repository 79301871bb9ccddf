/*
handlers.go - HTTP API handlers for the budgeting engine

PURPOSE:
  Exposes the budget controller via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Setup:
    GET/POST   /api/incomes             List / create income sources
    PUT/DELETE /api/incomes/{id}        Replace / delete an income source
    GET/POST   /api/expenses            List / create bills
    PUT/DELETE /api/expenses/{id}       Replace / delete a bill
    GET        /api/expenses/{id}/status  Paid status for a period
    GET/POST   /api/household           List / create members
    PUT/DELETE /api/household/{id}      Replace / delete a member

  Money movement:
    GET/POST   /api/paychecks           List / log paychecks
    PUT        /api/paychecks/{id}      Patch checklist / attribution
    DELETE     /api/paychecks/{id}      Delete (reverses totals, cascades payments)
    GET/POST   /api/payments            List / record standalone payments
    GET/POST   /api/daily-expenses      List / record daily purchases
    DELETE     /api/daily-expenses/{id} Delete (refunds spending)

  Views and config:
    GET        /api/summary             Income/bills/balance
    GET/PUT    /api/percentages         Derived split / update multipliers
    GET/PUT    /api/settings            Tithe configuration
    GET        /api/tithing             Monthly tithe amount
    GET        /api/bills/summary       Period paid aggregate
    GET/PUT    /api/totals              Running balances / manual override
    GET        /api/archives            Frozen month snapshots
    POST       /api/rollover            Month-boundary check

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Record not found
  - 500: Internal errors

VALIDATION:
  This layer is the engine's trusted caller. Amounts must be positive,
  tithe percentage in [0,100], multipliers must sum to 1.0 within 0.0001.
  The engine itself assumes pre-validated input.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/warp/budget-engine/budget"
	"github.com/warp/budget-engine/engine"
)

// multiplierTolerance is how far spend+savings may drift from 1.0.
const multiplierTolerance = 0.0001

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Controller *engine.Controller
}

// NewHandler creates a handler around the injected controller.
func NewHandler(c *engine.Controller) *Handler {
	return &Handler{Controller: c}
}

// =============================================================================
// INCOME HANDLERS
// =============================================================================

func (h *Handler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	incomes := h.Controller.Incomes()
	dtos := make([]IncomeDTO, len(incomes))
	for i, inc := range incomes {
		dtos[i] = toIncomeDTO(inc)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	inc, ok := h.decodeIncome(w, r)
	if !ok {
		return
	}

	created, err := h.Controller.AddIncome(r.Context(), inc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save income", err)
		return
	}
	writeJSON(w, http.StatusCreated, toIncomeDTO(created))
}

func (h *Handler) UpdateIncome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	inc, ok := h.decodeIncome(w, r)
	if !ok {
		return
	}

	updated, err := h.Controller.UpdateIncome(r.Context(), id, inc)
	if err != nil {
		writeEngineError(w, "Failed to update income", err)
		return
	}
	writeJSON(w, http.StatusOK, toIncomeDTO(updated))
}

func (h *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.DeleteIncome(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, "Failed to delete income", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeIncome(w http.ResponseWriter, r *http.Request) (budget.Income, bool) {
	var req SaveIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return budget.Income{}, false
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return budget.Income{}, false
	}
	freq := budget.IncomeFrequency(req.Frequency)
	switch freq {
	case budget.IncomeWeekly, budget.IncomeBiweekly, budget.IncomeMonthly, budget.IncomeYearly:
	default:
		writeError(w, http.StatusBadRequest, "Invalid frequency (weekly|biweekly|monthly|yearly)", nil)
		return budget.Income{}, false
	}

	startDate := time.Now()
	if req.StartDate != "" {
		var err error
		startDate, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)", err)
			return budget.Income{}, false
		}
	}

	return budget.Income{
		Name:              req.Name,
		Amount:            budget.NewMoney(req.Amount),
		Frequency:         freq,
		StartDate:         startDate,
		HouseholdMemberID: req.HouseholdMemberID,
		UsedForBills:      req.UsedForBills,
	}, true
}

// =============================================================================
// EXPENSE HANDLERS
// =============================================================================

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses := h.Controller.Expenses()
	dtos := make([]ExpenseDTO, len(expenses))
	for i, e := range expenses {
		dtos[i] = toExpenseDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	exp, ok := h.decodeExpense(w, r)
	if !ok {
		return
	}

	created, err := h.Controller.AddExpense(r.Context(), exp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseDTO(created))
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	exp, ok := h.decodeExpense(w, r)
	if !ok {
		return
	}

	updated, err := h.Controller.UpdateExpense(r.Context(), id, exp)
	if err != nil {
		writeEngineError(w, "Failed to update expense", err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseDTO(updated))
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.DeleteExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, "Failed to delete expense", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetExpenseStatus returns one bill's paid position. ?month=YYYY-MM selects
// a period; default is the current month. The reserved id "tithe" answers
// for the tithe pseudo-payment.
func (h *Handler) GetExpenseStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	month, ok := h.monthParam(w, r)
	if !ok {
		return
	}

	status, err := h.Controller.ExpensePaymentStatus(budget.TargetFromLedgerID(id), month)
	if err != nil {
		writeEngineError(w, "Failed to get payment status", err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusDTO(status))
}

func (h *Handler) decodeExpense(w http.ResponseWriter, r *http.Request) (budget.ExpenseItem, bool) {
	var req SaveExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return budget.ExpenseItem{}, false
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return budget.ExpenseItem{}, false
	}
	if req.DueDay < 0 || req.DueDay > 31 {
		writeError(w, http.StatusBadRequest, "due_day must be between 1 and 31 (0 = unset)", nil)
		return budget.ExpenseItem{}, false
	}

	return budget.ExpenseItem{
		Name:              req.Name,
		Amount:            budget.NewMoney(req.Amount),
		Category:          req.Category,
		DueDay:            req.DueDay,
		Description:       req.Description,
		HouseholdMemberID: req.HouseholdMemberID,
	}, true
}

// =============================================================================
// HOUSEHOLD HANDLERS
// =============================================================================

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members := h.Controller.HouseholdMembers()
	dtos := make([]MemberDTO, len(members))
	for i, m := range members {
		dtos[i] = MemberDTO{ID: m.ID, Name: m.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req SaveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	m, err := h.Controller.AddHouseholdMember(r.Context(), budget.HouseholdMember{Name: req.Name})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save member", err)
		return
	}
	writeJSON(w, http.StatusCreated, MemberDTO{ID: m.ID, Name: m.Name})
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req SaveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	m, err := h.Controller.UpdateHouseholdMember(r.Context(), chi.URLParam(r, "id"), budget.HouseholdMember{Name: req.Name})
	if err != nil {
		writeEngineError(w, "Failed to update member", err)
		return
	}
	writeJSON(w, http.StatusOK, MemberDTO{ID: m.ID, Name: m.Name})
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.DeleteHouseholdMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, "Failed to delete member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYCHECK HANDLERS
// =============================================================================

func (h *Handler) ListPaychecks(w http.ResponseWriter, r *http.Request) {
	paychecks := h.Controller.Paychecks()
	dtos := make([]PaycheckDTO, len(paychecks))
	for i, p := range paychecks {
		dtos[i] = toPaycheckDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) LogPaycheck(w http.ResponseWriter, r *http.Request) {
	var req LogPaycheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}
	freq := budget.PaycheckFrequency(req.Frequency)
	switch freq {
	case budget.PaycheckWeekly, budget.PaycheckBiweekly, budget.PaycheckMonthly:
	default:
		writeError(w, http.StatusBadRequest, "Invalid frequency (weekly|biweekly|monthly)", nil)
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format (use RFC3339)", err)
			return
		}
	}

	p, err := h.Controller.LogPaycheck(r.Context(), engine.LogPaycheckInput{
		Amount:                  budget.NewMoney(req.Amount),
		Frequency:               freq,
		Date:                    date,
		SelectedExpenseIDs:      req.PaidExpenseIDs,
		OneTimeExpenses:         fromOneTimeExpenseDTOs(req.OneTimeExpenses),
		IncomeSourceID:          req.IncomeSourceID,
		CustomIncomeSource:      req.CustomIncomeSource,
		SweepRemainderToSavings: req.SweepRemainderToSavings,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to log paycheck", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaycheckDTO(p))
}

// UpdatePaycheck patches a logged paycheck's bookkeeping: the paid-off
// checklist and the income-source attribution. The allocation itself is
// immutable after logging.
func (h *Handler) UpdatePaycheck(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaycheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	p, err := h.Controller.UpdatePaycheck(r.Context(), chi.URLParam(r, "id"), engine.PaycheckPatch{
		CheckedExpenses:    req.CheckedExpenses,
		IncomeSourceID:     req.IncomeSourceID,
		CustomIncomeSource: req.CustomIncomeSource,
	})
	if err != nil {
		writeEngineError(w, "Failed to update paycheck", err)
		return
	}
	writeJSON(w, http.StatusOK, toPaycheckDTO(p))
}

func (h *Handler) DeletePaycheck(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.DeletePaycheck(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, "Failed to delete paycheck", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYMENT HANDLERS
// =============================================================================

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPaymentDTOs(h.Controller.Payments()))
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}
	if !req.Tithe && req.ExpenseID == "" {
		writeError(w, http.StatusBadRequest, "expense_id or tithe is required", nil)
		return
	}

	target := budget.TitheTarget()
	if !req.Tithe {
		target = budget.BillTarget(req.ExpenseID)
	}

	p, err := h.Controller.RecordPayment(r.Context(), target, budget.NewMoney(req.Amount), req.PaycheckID, budget.MonthKey(req.Month))
	if err != nil {
		writeEngineError(w, "Failed to record payment", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentDTO(p))
}

// =============================================================================
// DAILY EXPENSE HANDLERS
// =============================================================================

func (h *Handler) ListDailyExpenses(w http.ResponseWriter, r *http.Request) {
	expenses := h.Controller.DailyExpenses()
	dtos := make([]DailyExpenseDTO, len(expenses))
	for i, e := range expenses {
		dtos[i] = DailyExpenseDTO{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount.Float64(),
			Date:        e.Date.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) AddDailyExpense(w http.ResponseWriter, r *http.Request) {
	var req AddDailyExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format (use RFC3339)", err)
			return
		}
	}

	e, err := h.Controller.AddDailyExpense(r.Context(), budget.DailyExpense{
		Description: req.Description,
		Amount:      budget.NewMoney(req.Amount),
		Date:        date,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save daily expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, DailyExpenseDTO{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.Float64(),
		Date:        e.Date.Format(time.RFC3339),
	})
}

func (h *Handler) DeleteDailyExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.Controller.DeleteDailyExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, "Failed to delete daily expense", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// VIEW AND CONFIG HANDLERS
// =============================================================================

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s := h.Controller.BudgetSummary()
	writeJSON(w, http.StatusOK, SummaryDTO{
		TotalIncome: s.TotalIncome.Float64(),
		TotalBills:  s.TotalBills.Float64(),
		Balance:     s.Balance.Float64(),
	})
}

func (h *Handler) GetPercentages(w http.ResponseWriter, r *http.Request) {
	p := h.Controller.BudgetPercentages()
	bills, _ := p.BillsPercentage.Float64()
	spend, _ := p.SpendPercentage.Float64()
	savings, _ := p.SavingsPercentage.Float64()
	spendMult, _ := p.SpendMultiplier.Float64()
	savingsMult, _ := p.SavingsMultiplier.Float64()
	writeJSON(w, http.StatusOK, PercentagesDTO{
		BillsPercentage:   bills,
		SpendPercentage:   spend,
		SavingsPercentage: savings,
		SpendMultiplier:   spendMult,
		SavingsMultiplier: savingsMult,
	})
}

func (h *Handler) UpdateMultipliers(w http.ResponseWriter, r *http.Request) {
	var req UpdateMultipliersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.SpendMultiplier < 0 || req.SavingsMultiplier < 0 {
		writeError(w, http.StatusBadRequest, "Multipliers must be non-negative", nil)
		return
	}
	if math.Abs(req.SpendMultiplier+req.SavingsMultiplier-1.0) > multiplierTolerance {
		writeError(w, http.StatusBadRequest, "Multipliers must sum to 1.0", nil)
		return
	}

	err := h.Controller.UpdatePercentageMultipliers(r.Context(),
		decimal.NewFromFloat(req.SpendMultiplier),
		decimal.NewFromFloat(req.SavingsMultiplier))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update multipliers", err)
		return
	}
	h.GetPercentages(w, r)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s := h.Controller.Settings()
	pct, _ := s.TithePercentage.Float64()
	writeJSON(w, http.StatusOK, SettingsDTO{TitheEnabled: s.TitheEnabled, TithePercentage: pct})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.TithePercentage != nil && (*req.TithePercentage < 0 || *req.TithePercentage > 100) {
		writeError(w, http.StatusBadRequest, "tithe_percentage must be between 0 and 100", nil)
		return
	}

	patch := engine.SettingsPatch{TitheEnabled: req.TitheEnabled}
	if req.TithePercentage != nil {
		pct := decimal.NewFromFloat(*req.TithePercentage)
		patch.TithePercentage = &pct
	}

	s, err := h.Controller.UpdateSettings(r.Context(), patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update settings", err)
		return
	}
	pct, _ := s.TithePercentage.Float64()
	writeJSON(w, http.StatusOK, SettingsDTO{TitheEnabled: s.TitheEnabled, TithePercentage: pct})
}

func (h *Handler) GetTithing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]float64{"tithing_amount": h.Controller.TithingAmount().Float64()})
}

func (h *Handler) GetBillsSummary(w http.ResponseWriter, r *http.Request) {
	month, ok := h.monthParam(w, r)
	if !ok {
		return
	}

	s, err := h.Controller.BillsSummaryFor(month)
	if err != nil {
		writeEngineError(w, "Failed to get bills summary", err)
		return
	}
	writeJSON(w, http.StatusOK, BillsSummaryDTO{
		TotalBills:     s.TotalBills.Float64(),
		TotalPaid:      s.TotalPaid.Float64(),
		TotalRemaining: s.TotalRemaining.Float64(),
	})
}

func (h *Handler) GetTotals(w http.ResponseWriter, r *http.Request) {
	spending, savings := h.Controller.Totals()
	writeJSON(w, http.StatusOK, TotalsDTO{
		SpendingTotal: spending.Float64(),
		SavingsTotal:  savings.Float64(),
	})
}

func (h *Handler) SetTotal(w http.ResponseWriter, r *http.Request) {
	var req SetTotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	target := engine.TotalTarget(req.Target)
	if target != engine.TargetSpending && target != engine.TargetSavings {
		writeError(w, http.StatusBadRequest, "target must be 'spending' or 'savings'", nil)
		return
	}

	if err := h.Controller.SetSpendingOrSavingsTotal(r.Context(), budget.NewMoney(req.Amount), target); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to set total", err)
		return
	}
	h.GetTotals(w, r)
}

func (h *Handler) ListArchives(w http.ResponseWriter, r *http.Request) {
	archives := h.Controller.Archives()
	dtos := make([]ArchiveDTO, len(archives))
	for i, a := range archives {
		dtos[i] = toArchiveDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) TriggerRollover(w http.ResponseWriter, r *http.Request) {
	rolled, err := h.Controller.CheckAndResetMonthly(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Rollover failed", err)
		return
	}
	writeJSON(w, http.StatusOK, RolloverResultDTO{RolledOver: rolled})
}

// =============================================================================
// HELPERS
// =============================================================================

// monthParam reads an optional ?month=YYYY-MM query parameter. Empty means
// "current month" and is passed through as such.
func (h *Handler) monthParam(w http.ResponseWriter, r *http.Request) (budget.MonthKey, bool) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return "", true
	}
	month, err := budget.ParseMonthKey(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return "", false
	}
	return month, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeEngineError maps engine errors to HTTP status codes.
func writeEngineError(w http.ResponseWriter, message string, err error) {
	switch {
	case budget.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case errors.Is(err, budget.ErrInvalidMonthKey):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
