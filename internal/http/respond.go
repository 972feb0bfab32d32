package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/core"
)

// transactionJSON is the wire form of a ledger record. Amounts travel in
// base currency units; the null ownerId is kept for forward compatibility.
type transactionJSON struct {
	ID        int64     `json:"id"`
	OwnerID   *string   `json:"ownerId"`
	Kind      string    `json:"kind"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	Period    string    `json:"period,omitempty"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	out := transactionJSON{
		ID:        t.ID,
		Kind:      string(t.Kind),
		Category:  t.Category,
		Amount:    t.Amount.Units(),
		Note:      t.Note,
		Month:     t.Month,
		Year:      t.Year,
		CreatedAt: t.CreatedAt,
	}
	if t.Kind == core.Income {
		out.Period = string(t.Period)
	}
	if t.OwnerID != "" {
		out.OwnerID = &t.OwnerID
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func writeErrorDetails(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorBody{Error: msg, Details: details})
}
