package core

import "testing"

func TestPeriodValidate(t *testing.T) {
	if err := Monthly.Validate(); err != nil {
		t.Errorf("Monthly.Validate() = %v", err)
	}
	if err := Yearly.Validate(); err != nil {
		t.Errorf("Yearly.Validate() = %v", err)
	}
	if err := Period("weekly").Validate(); err == nil {
		t.Error("expected error for unknown period")
	}
	if err := Period("").Validate(); err == nil {
		t.Error("expected error for empty period")
	}
}

func TestPeriodIncomeCategory(t *testing.T) {
	if got := Monthly.IncomeCategory(); got != MonthlyIncomeCategory {
		t.Errorf("Monthly.IncomeCategory() = %q", got)
	}
	if got := Yearly.IncomeCategory(); got != YearlyIncomeCategory {
		t.Errorf("Yearly.IncomeCategory() = %q", got)
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{
			name: "valid expense",
			tx:   Transaction{Kind: Expense, Category: "Food", Amount: Money{Cents: 2000}, Month: 5, Year: 2025},
		},
		{
			name: "valid income",
			tx:   Transaction{Kind: Income, Category: MonthlyIncomeCategory, Amount: Money{Cents: 5000}, Period: Monthly, Month: 5, Year: 2025},
		},
		{
			name:    "expense without category",
			tx:      Transaction{Kind: Expense, Category: "  ", Amount: Money{Cents: 2000}, Month: 5, Year: 2025},
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "income without period",
			tx:      Transaction{Kind: Income, Amount: Money{Cents: 5000}, Month: 5, Year: 2025},
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "zero amount",
			tx:      Transaction{Kind: Expense, Category: "Food", Month: 5, Year: 2025},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "unknown kind",
			tx:      Transaction{Kind: "transfer", Category: "Food", Amount: Money{Cents: 100}, Month: 5, Year: 2025},
			wantErr: ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
