package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the persistent ledger store.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// _txlock=immediate makes every transaction take the write lock at BEGIN,
	// so the income upsert's read-then-write runs as one atomic unit.
	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// UpsertIncome inserts the income row for the given scope and period, or
// overwrites amount and note of the existing row in place. Identity and
// creation timestamp of an updated row are untouched. Returns created=true
// when a new row was inserted.
func (r *SQLiteRepository) UpsertIncome(ctx context.Context, scope core.Scope, period core.Period, amountCents int64, note string) (core.Transaction, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Transaction{}, false, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	record := core.Transaction{
		Kind:     core.Income,
		Category: period.IncomeCategory(),
		Amount:   core.Money{Cents: amountCents},
		Note:     note,
		Period:   period,
		Month:    scope.Month,
		Year:     scope.Year,
	}

	var existingID int64
	var createdAt time.Time
	err = tx.QueryRowContext(ctx,
		`SELECT id, created_at FROM transactions
		 WHERE kind = 'income' AND month = ? AND year = ? AND period = ?`,
		scope.Month, scope.Year, string(period),
	).Scan(&existingID, &createdAt)

	created := false
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = tx.QueryRowContext(ctx,
			`INSERT INTO transactions (kind, category, amount_cents, note, period, month, year)
			 VALUES ('income', ?, ?, ?, ?, ?, ?)
			 RETURNING id, created_at`,
			record.Category, amountCents, note, string(period), scope.Month, scope.Year,
		).Scan(&record.ID, &record.CreatedAt)
		if err != nil {
			return core.Transaction{}, false, fmt.Errorf("insert income: %w", err)
		}
		created = true
	case err != nil:
		return core.Transaction{}, false, fmt.Errorf("find income: %w", err)
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE transactions SET amount_cents = ?, note = ? WHERE id = ?`,
			amountCents, note, existingID,
		); err != nil {
			return core.Transaction{}, false, fmt.Errorf("update income: %w", err)
		}
		record.ID = existingID
		record.CreatedAt = createdAt
	}

	if err := tx.Commit(); err != nil {
		return core.Transaction{}, false, fmt.Errorf("commit upsert: %w", err)
	}

	slog.InfoContext(ctx, "Income saved",
		"id", record.ID,
		"created", created,
		"amount_cents", amountCents,
		"period", string(period),
		"month", scope.Month,
		"year", scope.Year)

	return record, created, nil
}

// InsertExpense appends a new expense row. Expenses are never merged;
// every call creates a distinct record.
func (r *SQLiteRepository) InsertExpense(ctx context.Context, scope core.Scope, category string, amountCents int64, note string) (core.Transaction, error) {
	record := core.Transaction{
		Kind:     core.Expense,
		Category: category,
		Amount:   core.Money{Cents: amountCents},
		Note:     note,
		Period:   core.Monthly,
		Month:    scope.Month,
		Year:     scope.Year,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO transactions (kind, category, amount_cents, note, month, year)
		 VALUES ('expense', ?, ?, ?, ?, ?)
		 RETURNING id, created_at`,
		category, amountCents, note, scope.Month, scope.Year,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", record.ID,
		"category", category,
		"amount_cents", amountCents,
		"month", scope.Month,
		"year", scope.Year)

	return record, nil
}

// ListByScope returns all transactions for the given month, newest first.
func (r *SQLiteRepository) ListByScope(ctx context.Context, scope core.Scope) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, COALESCE(owner_id, ''), kind, category, amount_cents, note, period, month, year, created_at
		 FROM transactions
		 WHERE month = ? AND year = ?
		 ORDER BY created_at DESC, id DESC`,
		scope.Month, scope.Year,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var records []core.Transaction
	for rows.Next() {
		var t core.Transaction
		var kind, period string
		if err := rows.Scan(&t.ID, &t.OwnerID, &kind, &t.Category, &t.Amount.Cents, &t.Note, &period, &t.Month, &t.Year, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Kind = core.Kind(kind)
		t.Period = core.Period(period)
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return records, nil
}

// DeleteAll wipes the entire ledger and returns the number of deleted rows.
func (r *SQLiteRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions`)
	if err != nil {
		return 0, fmt.Errorf("delete all transactions: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted transactions: %w", err)
	}

	slog.WarnContext(ctx, "Ledger wiped", "deleted", deleted)
	return deleted, nil
}
