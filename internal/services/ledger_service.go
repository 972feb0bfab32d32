package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/core"
)

// LedgerService implements the transaction operations over the ledger store.
// All writes are scoped to the current calendar month resolved at call time.
type LedgerService struct {
	store LedgerStore
	clock core.Clock
}

func NewLedgerService(store LedgerStore, clock core.Clock) *LedgerService {
	if clock == nil {
		clock = core.SystemClock()
	}
	return &LedgerService{store: store, clock: clock}
}

// AddIncome records the income for the current scope. There is at most one
// income record per (month, year, period): a second call in the same scope
// overwrites amount and note of the existing record. Returns created=true
// when a new record was inserted.
func (s *LedgerService) AddIncome(ctx context.Context, amount float64, period core.Period, note string) (core.Transaction, bool, error) {
	if period == "" {
		period = core.Monthly
	}
	if err := period.Validate(); err != nil {
		return core.Transaction{}, false, fmt.Errorf("add income: %w", err)
	}
	cents, err := core.AmountToCents(amount)
	if err != nil {
		return core.Transaction{}, false, fmt.Errorf("add income: %w", err)
	}

	scope := core.CurrentScope(s.clock)
	record, created, err := s.store.UpsertIncome(ctx, scope, period, cents, note)
	if err != nil {
		return core.Transaction{}, false, fmt.Errorf("add income: %w", err)
	}

	op := "update"
	if created {
		op = "create"
	}
	slog.InfoContext(ctx, "Income recorded",
		"operation", op,
		"record_id", record.ID,
		"period", string(period),
		"month", scope.Month,
		"year", scope.Year)

	return record, created, nil
}

// AddExpense appends a new expense record scoped to the current month.
// Identical calls produce distinct records; expenses are never merged.
func (s *LedgerService) AddExpense(ctx context.Context, category string, amount float64, note string) (core.Transaction, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return core.Transaction{}, fmt.Errorf("add expense: %w", core.ErrEmptyCategory)
	}
	cents, err := core.AmountToCents(amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("add expense: %w", err)
	}

	scope := core.CurrentScope(s.clock)
	record, err := s.store.InsertExpense(ctx, scope, category, cents, note)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("add expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense recorded",
		"record_id", record.ID,
		"category", category,
		"month", scope.Month,
		"year", scope.Year)

	return record, nil
}

// Current returns all records for the current scope, newest first.
func (s *LedgerService) Current(ctx context.Context) ([]core.Transaction, error) {
	scope := core.CurrentScope(s.clock)
	records, err := s.store.ListByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list current transactions: %w", err)
	}
	return records, nil
}

// Reset deletes every record in the store. Destructive and unscoped; the
// HTTP layer gates this behind configuration and a confirmation header.
func (s *LedgerService) Reset(ctx context.Context) (int64, error) {
	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset ledger: %w", err)
	}
	return deleted, nil
}
