package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

const (
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Income categories are fixed per period; expense categories are free text.
const (
	MonthlyIncomeCategory = "Monthly Income"
	YearlyIncomeCategory  = "Yearly Income"
)

type (
	Kind   string
	Period string

	// Transaction is a single ledger entry scoped to a calendar month.
	Transaction struct {
		ID        int64
		OwnerID   string // reserved for multi-user support, always empty
		Kind      Kind
		Category  string
		Amount    Money
		Note      string
		Period    Period // meaningful for income entries only
		Month     int    // 1-12
		Year      int
		CreatedAt time.Time
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidKind   = errors.New("invalid kind")
)

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidKind
	}
}

func (p Period) Validate() error {
	switch p {
	case Monthly, Yearly:
		return nil
	default:
		return ErrInvalidPeriod
	}
}

// IncomeCategory returns the fixed category label for an income entry.
func (p Period) IncomeCategory() string {
	if p == Yearly {
		return YearlyIncomeCategory
	}
	return MonthlyIncomeCategory
}

func (t Transaction) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.Kind == Expense && strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Kind == Income {
		if err := t.Period.Validate(); err != nil {
			return err
		}
	}
	if t.Month < 1 || t.Month > 12 {
		return errors.New("month out of range")
	}
	return nil
}
