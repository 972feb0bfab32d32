package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/core"
)

// Sweeper selects the previous month's records and hands them to the
// configured archiver sink. It runs once per month; a failed run is logged
// by the caller and the next scheduled run is the only retry.
type Sweeper struct {
	store    ScopeReader
	archiver Archiver
	clock    core.Clock
}

func NewSweeper(store ScopeReader, archiver Archiver, clock core.Clock) *Sweeper {
	if clock == nil {
		clock = core.SystemClock()
	}
	return &Sweeper{store: store, archiver: archiver, clock: clock}
}

// Run performs a single sweep of the scope immediately preceding the
// current one. An empty prior month is a no-op.
func (s *Sweeper) Run(ctx context.Context) error {
	scope := core.PreviousScope(s.clock)

	records, err := s.store.ListByScope(ctx, scope)
	if err != nil {
		return fmt.Errorf("fetch records for %d/%d: %w", scope.Month, scope.Year, err)
	}

	slog.InfoContext(ctx, "Archival sweep started",
		"month", scope.Month,
		"year", scope.Year,
		"record_count", len(records))

	if len(records) == 0 {
		return nil
	}

	if err := s.archiver.Archive(ctx, scope, records); err != nil {
		return fmt.Errorf("archive %d records for %d/%d: %w", len(records), scope.Month, scope.Year, err)
	}

	return nil
}

// NextRun returns the next sweep moment strictly after t: 02:00 on the
// first day of a month, in t's location.
func NextRun(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), 1, 2, 0, 0, 0, t.Location())
	if !next.After(t) {
		next = next.AddDate(0, 1, 0)
	}
	return next
}
