/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the household budget engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Overlay .env file (if present) and parse command-line flags
  2. Initialize SQLite store
  3. Create the budget controller and hydrate it from the store
  4. Run the month-boundary check once (catches up after any downtime)
  5. Configure HTTP router
  6. Start server with graceful shutdown

CONFIGURATION:
  -port    HTTP server port (default: 8080, env: PORT)
  -db      SQLite database path (default: budget.db, env: BUDGET_DB_PATH)
           Use ":memory:" for an in-memory database

  A .env file in the working directory is loaded first; flags passed on
  the command line win over it.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/budget.db"

  # Run with in-memory database
  ./server -db=":memory:"

  # Run on different port
  ./server -port=3000

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/warp/budget-engine/api"
	"github.com/warp/budget-engine/engine"
	"github.com/warp/budget-engine/store/sqlite"
)

func main() {
	// .env overlays defaults; explicit flags win over both.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envStr("BUDGET_DB_PATH", "budget.db"), "SQLite database path")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize controller
	controller := engine.NewController(store)
	if err := controller.Load(context.Background()); err != nil {
		log.Printf("Warning: failed to load state: %v", err)
	}

	// Catch up on any month boundary crossed while the server was down.
	if rolled, err := controller.CheckAndResetMonthly(context.Background()); err != nil {
		log.Printf("Warning: monthly rollover failed: %v", err)
	} else if rolled {
		log.Println("Monthly rollover: previous month archived")
	}

	// Create router
	handler := api.NewHandler(controller)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Warning: ignoring non-numeric %s=%q", key, v)
	}
	return fallback
}
