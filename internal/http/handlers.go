package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/services"
)

// ResetConfirmHeader must carry ResetConfirmValue on DELETE /reset.
// The full wipe is destructive and unscoped, so a bare DELETE is refused.
const (
	ResetConfirmHeader = "X-Confirm-Reset"
	ResetConfirmValue  = "wipe-ledger"
)

type incomeRequest struct {
	Amount float64 `json:"amount"`
	Period string  `json:"period"`
	Note   string  `json:"note"`
}

type expenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

type recordResponse struct {
	Message string          `json:"message"`
	Data    transactionJSON `json:"data"`
}

func (s *Server) handleAddIncome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	record, created, err := s.ledger.AddIncome(r.Context(), req.Amount, core.Period(req.Period), req.Note)
	if err != nil {
		s.writeServiceError(w, r, err, "Income amount is required and must be greater than zero.")
		return
	}

	status := http.StatusOK
	message := "Income updated successfully."
	if created {
		status = http.StatusCreated
		message = "Income added successfully."
	}
	writeJSON(w, status, recordResponse{Message: message, Data: toTransactionJSON(record)})
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	record, err := s.ledger.AddExpense(r.Context(), req.Category, req.Amount, req.Note)
	if err != nil {
		s.writeServiceError(w, r, err, "Category and a positive amount are required.")
		return
	}

	writeJSON(w, http.StatusCreated, recordResponse{Message: "Expense added successfully.", Data: toTransactionJSON(record)})
}

func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	records, err := s.ledger.Current(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List current transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch transactions.")
		return
	}

	out := make([]transactionJSON, len(records))
	for i, rec := range records {
		out[i] = toTransactionJSON(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	text, err := s.insight.Generate(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoTransactions) {
			writeError(w, http.StatusBadRequest, "No transactions found for this month to analyze.")
			return
		}
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			slog.ErrorContext(r.Context(), "Insight upstream call failed", "error", err)
			writeErrorDetails(w, http.StatusInternalServerError, "Failed to generate AI insight.", upstream.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Insight generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate AI insight.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"insight": text})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if !s.resetEnabled {
		writeError(w, http.StatusForbidden, "Reset is disabled on this deployment.")
		return
	}
	if r.Header.Get(ResetConfirmHeader) != ResetConfirmValue {
		writeError(w, http.StatusBadRequest, "Reset requires the confirmation header "+ResetConfirmHeader+".")
		return
	}

	deleted, err := s.ledger.Reset(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger reset failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to reset transactions.")
		return
	}

	slog.WarnContext(r.Context(), "Ledger reset via API", "deleted", deleted)
	writeJSON(w, http.StatusOK, map[string]string{"message": "All transactions cleared successfully."})
}

// writeServiceError maps validation failures to 400 and everything else
// (store failures) to 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, validationMsg string) {
	switch {
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrEmptyCategory),
		errors.Is(err, core.ErrInvalidPeriod):
		writeError(w, http.StatusBadRequest, validationMsg)
	default:
		slog.ErrorContext(r.Context(), "Ledger operation failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal server error.")
	}
}
