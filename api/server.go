/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/incomes/*         Income source management
  /api/expenses/*        Recurring bill management
  /api/household/*       Household members
  /api/paychecks/*       Paycheck logging and allocation
  /api/payments/*        Standalone bill payments
  /api/daily-expenses/*  Discretionary purchases
  /api/summary           Budget headline view
  /api/percentages       Bills/spend/savings split
  /api/settings          Tithe configuration
  /api/bills/summary     Period paid aggregate
  /api/totals            Running balances
  /api/archives          Frozen month snapshots
  /api/rollover          Month-boundary check

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.
  This serves a single household on a trusted network.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Income routes
		r.Route("/incomes", func(r chi.Router) {
			r.Get("/", h.ListIncomes)
			r.Post("/", h.CreateIncome)
			r.Put("/{id}", h.UpdateIncome)
			r.Delete("/{id}", h.DeleteIncome)
		})

		// Expense (recurring bill) routes
		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.ListExpenses)
			r.Post("/", h.CreateExpense)
			r.Put("/{id}", h.UpdateExpense)
			r.Delete("/{id}", h.DeleteExpense)
			r.Get("/{id}/status", h.GetExpenseStatus)
		})

		// Household routes
		r.Route("/household", func(r chi.Router) {
			r.Get("/", h.ListMembers)
			r.Post("/", h.CreateMember)
			r.Put("/{id}", h.UpdateMember)
			r.Delete("/{id}", h.DeleteMember)
		})

		// Paycheck routes
		r.Route("/paychecks", func(r chi.Router) {
			r.Get("/", h.ListPaychecks)
			r.Post("/", h.LogPaycheck)
			r.Put("/{id}", h.UpdatePaycheck)
			r.Delete("/{id}", h.DeletePaycheck)
		})

		// Payment ledger routes
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.ListPayments)
			r.Post("/", h.RecordPayment)
		})

		// Daily expense routes
		r.Route("/daily-expenses", func(r chi.Router) {
			r.Get("/", h.ListDailyExpenses)
			r.Post("/", h.AddDailyExpense)
			r.Delete("/{id}", h.DeleteDailyExpense)
		})

		// Views and config
		r.Get("/summary", h.GetSummary)
		r.Get("/percentages", h.GetPercentages)
		r.Put("/percentages", h.UpdateMultipliers)
		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.UpdateSettings)
		r.Get("/tithing", h.GetTithing)
		r.Get("/bills/summary", h.GetBillsSummary)
		r.Get("/totals", h.GetTotals)
		r.Put("/totals", h.SetTotal)
		r.Get("/archives", h.ListArchives)
		r.Post("/rollover", h.TriggerRollover)
	})

	return r
}
