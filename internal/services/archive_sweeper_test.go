package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/core"
)

type fakeArchiver struct {
	scope   core.Scope
	records []core.Transaction
	calls   int
	err     error
}

func (f *fakeArchiver) Archive(ctx context.Context, scope core.Scope, records []core.Transaction) error {
	f.calls++
	f.scope = scope
	f.records = records
	return f.err
}

func TestSweeperSelectsPreviousScope(t *testing.T) {
	store := newFakeStore()
	// Records in April (previous) and May (current).
	if _, err := store.InsertExpense(context.Background(), core.Scope{Month: 4, Year: 2025}, "Food", 100, ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.InsertExpense(context.Background(), core.Scope{Month: 5, Year: 2025}, "Rent", 200, ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	archiver := &fakeArchiver{}
	sweeper := NewSweeper(store, archiver, testClock)

	if err := sweeper.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if archiver.calls != 1 {
		t.Fatalf("archiver called %d times, want 1", archiver.calls)
	}
	if archiver.scope != (core.Scope{Month: 4, Year: 2025}) {
		t.Errorf("archived scope = %+v, want April 2025", archiver.scope)
	}
	if len(archiver.records) != 1 || archiver.records[0].Category != "Food" {
		t.Errorf("archived records = %+v, want the April expense only", archiver.records)
	}
}

func TestSweeperSkipsEmptyMonth(t *testing.T) {
	archiver := &fakeArchiver{}
	sweeper := NewSweeper(newFakeStore(), archiver, testClock)

	if err := sweeper.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if archiver.calls != 0 {
		t.Errorf("archiver called %d times for empty month, want 0", archiver.calls)
	}
}

func TestSweeperPropagatesFailures(t *testing.T) {
	store := newFakeStore()
	if _, err := store.InsertExpense(context.Background(), core.Scope{Month: 4, Year: 2025}, "Food", 100, ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sinkErr := errors.New("sink unavailable")
	sweeper := NewSweeper(store, &fakeArchiver{err: sinkErr}, testClock)
	if err := sweeper.Run(context.Background()); !errors.Is(err, sinkErr) {
		t.Errorf("Run() error = %v, want wrapped sink error", err)
	}

	store.failList = errors.New("db closed")
	sweeper = NewSweeper(store, &fakeArchiver{}, testClock)
	if err := sweeper.Run(context.Background()); err == nil {
		t.Error("Run() = nil on fetch failure, want error")
	}
}

func TestNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "mid month",
			now:  time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "first of month before the run hour",
			now:  time.Date(2025, 5, 1, 1, 30, 0, 0, time.UTC),
			want: time.Date(2025, 5, 1, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "first of month exactly at the run hour",
			now:  time.Date(2025, 5, 1, 2, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "december rolls into the new year",
			now:  time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextRun(tt.now); !got.Equal(tt.want) {
				t.Errorf("NextRun(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
