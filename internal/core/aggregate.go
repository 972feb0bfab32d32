package core

// CategoryAmount is the summed expense amount for one category.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Summary holds the aggregate figures for one scope's transactions.
// ByCategory keeps first-seen order so chart labels stay stable within
// a single render.
type Summary struct {
	Income     Money
	Expense    Money
	Balance    Money // Income - Expense, may be negative
	ByCategory []CategoryAmount
}

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(records []Transaction) Money {
	var cents int64
	for _, t := range records {
		if t.Kind == Income {
			cents += t.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// TotalExpense sums the amounts of all expense transactions.
func TotalExpense(records []Transaction) Money {
	var cents int64
	for _, t := range records {
		if t.Kind == Expense {
			cents += t.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// Balance returns TotalIncome minus TotalExpense.
func Balance(records []Transaction) Money {
	return Money{Cents: TotalIncome(records).Cents - TotalExpense(records).Cents}
}

// BreakdownByCategory groups expense transactions by category, summing
// amounts per group. The map is empty, never nil, when no expenses exist.
func BreakdownByCategory(records []Transaction) map[string]Money {
	breakdown := make(map[string]Money)
	for _, t := range records {
		if t.Kind != Expense {
			continue
		}
		sum := breakdown[t.Category]
		sum.Cents += t.Amount.Cents
		breakdown[t.Category] = sum
	}
	return breakdown
}

// Summarize computes all aggregate figures in one pass.
func Summarize(records []Transaction) Summary {
	var s Summary
	index := make(map[string]int)
	for _, t := range records {
		switch t.Kind {
		case Income:
			s.Income.Cents += t.Amount.Cents
		case Expense:
			s.Expense.Cents += t.Amount.Cents
			i, ok := index[t.Category]
			if !ok {
				i = len(s.ByCategory)
				index[t.Category] = i
				s.ByCategory = append(s.ByCategory, CategoryAmount{Name: t.Category})
			}
			s.ByCategory[i].Amount.Cents += t.Amount.Cents
		}
	}
	s.Balance.Cents = s.Income.Cents - s.Expense.Cents
	return s
}
