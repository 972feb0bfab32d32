package storage

import (
	"context"
	"path/filepath"
	"testing"

	"fintrack/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestUpsertIncomeCreateThenUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	scope := core.Scope{Month: 5, Year: 2025}

	first, created, err := repo.UpsertIncome(ctx, scope, core.Monthly, 5000000, "salary")
	if err != nil {
		t.Fatalf("UpsertIncome: %v", err)
	}
	if !created {
		t.Error("first upsert: created = false, want true")
	}
	if first.Category != core.MonthlyIncomeCategory {
		t.Errorf("category = %q, want %q", first.Category, core.MonthlyIncomeCategory)
	}

	second, created, err := repo.UpsertIncome(ctx, scope, core.Monthly, 5500000, "raise")
	if err != nil {
		t.Fatalf("UpsertIncome: %v", err)
	}
	if created {
		t.Error("second upsert: created = true, want false")
	}
	if second.ID != first.ID {
		t.Errorf("second upsert id = %d, want %d (identity preserved)", second.ID, first.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at changed on update: %v != %v", second.CreatedAt, first.CreatedAt)
	}
	if second.Amount.Cents != 5500000 || second.Note != "raise" {
		t.Errorf("update did not overwrite amount/note: %+v", second)
	}

	records, err := repo.ListByScope(ctx, scope)
	if err != nil {
		t.Fatalf("ListByScope: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want exactly 1 income per scope", len(records))
	}
	if records[0].Amount.Cents != 5500000 {
		t.Errorf("amount = %d, want 5500000", records[0].Amount.Cents)
	}
}

func TestUpsertIncomeDistinctPeriods(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	scope := core.Scope{Month: 5, Year: 2025}

	if _, _, err := repo.UpsertIncome(ctx, scope, core.Monthly, 100, ""); err != nil {
		t.Fatalf("monthly upsert: %v", err)
	}
	if _, _, err := repo.UpsertIncome(ctx, scope, core.Yearly, 200, ""); err != nil {
		t.Fatalf("yearly upsert: %v", err)
	}

	records, err := repo.ListByScope(ctx, scope)
	if err != nil {
		t.Fatalf("ListByScope: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (one per period)", len(records))
	}
}

func TestInsertExpenseNeverDeduplicates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	scope := core.Scope{Month: 5, Year: 2025}

	a, err := repo.InsertExpense(ctx, scope, "Food", 200000, "groceries")
	if err != nil {
		t.Fatalf("InsertExpense: %v", err)
	}
	b, err := repo.InsertExpense(ctx, scope, "Food", 200000, "groceries")
	if err != nil {
		t.Fatalf("InsertExpense: %v", err)
	}
	if a.ID == b.ID {
		t.Error("identical expenses share an id, want distinct records")
	}

	records, err := repo.ListByScope(ctx, scope)
	if err != nil {
		t.Fatalf("ListByScope: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestListByScopeFiltersAndOrders(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	current := core.Scope{Month: 5, Year: 2025}
	other := core.Scope{Month: 4, Year: 2025}

	if _, err := repo.InsertExpense(ctx, other, "Food", 100, ""); err != nil {
		t.Fatalf("InsertExpense: %v", err)
	}
	first, err := repo.InsertExpense(ctx, current, "Food", 200, "")
	if err != nil {
		t.Fatalf("InsertExpense: %v", err)
	}
	second, err := repo.InsertExpense(ctx, current, "Rent", 300, "")
	if err != nil {
		t.Fatalf("InsertExpense: %v", err)
	}

	records, err := repo.ListByScope(ctx, current)
	if err != nil {
		t.Fatalf("ListByScope: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (other scope excluded)", len(records))
	}
	for _, r := range records {
		if r.Month != current.Month || r.Year != current.Year {
			t.Errorf("record %d has scope %d/%d, want %d/%d", r.ID, r.Month, r.Year, current.Month, current.Year)
		}
	}
	// Newest first: the later insert comes before the earlier one.
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Errorf("order = [%d %d], want [%d %d]", records[0].ID, records[1].ID, second.ID, first.ID)
	}
}

func TestDeleteAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	scope := core.Scope{Month: 5, Year: 2025}

	if _, _, err := repo.UpsertIncome(ctx, scope, core.Monthly, 100, ""); err != nil {
		t.Fatalf("UpsertIncome: %v", err)
	}
	if _, err := repo.InsertExpense(ctx, scope, "Food", 200, ""); err != nil {
		t.Fatalf("InsertExpense: %v", err)
	}

	deleted, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	records, err := repo.ListByScope(ctx, scope)
	if err != nil {
		t.Fatalf("ListByScope: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records after wipe, want 0", len(records))
	}
}
