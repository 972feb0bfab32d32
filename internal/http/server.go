// Package http serves the JSON API for the monthly ledger.
package http

import (
	"net/http"

	"fintrack/internal/middleware/trace"
	"fintrack/internal/services"
)

// Server hosts the transaction API. Reset is refused unless resetEnabled
// is set at construction.
type Server struct {
	*http.Server

	ledger       *services.LedgerService
	insight      *services.InsightService
	resetEnabled bool
}

func NewServer(addr string, ledger *services.LedgerService, insight *services.InsightService, resetEnabled bool) *Server {
	s := &Server{
		ledger:       ledger,
		insight:      insight,
		resetEnabled: resetEnabled,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/transactions/income", s.handleAddIncome)
	mux.HandleFunc("/api/transactions/expense", s.handleAddExpense)
	mux.HandleFunc("/api/transactions/current", s.handleCurrent)
	mux.HandleFunc("/api/transactions/insight", s.handleInsight)
	mux.HandleFunc("/api/transactions/reset", s.handleReset)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleHealth)

	tracer := trace.NewMiddleware()
	s.Server = &http.Server{
		Addr:    addr,
		Handler: tracer.Middleware(mux),
	}

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
