package services

import (
	"context"

	"fintrack/internal/core"
)

// Ports for outbound adapters.
type (
	// LedgerStore is the persistence port for transaction records.
	LedgerStore interface {
		UpsertIncome(ctx context.Context, scope core.Scope, period core.Period, amountCents int64, note string) (core.Transaction, bool, error)
		InsertExpense(ctx context.Context, scope core.Scope, category string, amountCents int64, note string) (core.Transaction, error)
		ListByScope(ctx context.Context, scope core.Scope) ([]core.Transaction, error)
		DeleteAll(ctx context.Context) (int64, error)
	}

	// ScopeReader is the read-only subset used by the insight requester
	// and the archival sweep.
	ScopeReader interface {
		ListByScope(ctx context.Context, scope core.Scope) ([]core.Transaction, error)
	}

	// TextGenerator produces natural-language text from a prompt.
	// The production implementation calls Gemini; tests use fakes.
	TextGenerator interface {
		Generate(ctx context.Context, prompt string) (string, error)
	}

	// Archiver receives a prior month's records for offload.
	Archiver interface {
		Archive(ctx context.Context, scope core.Scope, records []core.Transaction) error
	}
)
