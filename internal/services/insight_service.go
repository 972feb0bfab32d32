package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/core"
)

// ErrNoTransactions signals that the current month holds no records to analyze.
var ErrNoTransactions = errors.New("no transactions found for this month to analyze")

// FallbackInsight is returned when the model produced no text candidate.
const FallbackInsight = "No insight generated. Try again later."

// UpstreamError reports a failed call to the text-generation endpoint,
// carrying whatever detail the endpoint provided.
type UpstreamError struct {
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("insight generation failed: %s", e.Detail)
	}
	return fmt.Sprintf("insight generation failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// InsightService builds a budgeting prompt from the current month's figures
// and requests a natural-language suggestion from the generator.
//
// Calls are not cached and carry no determinism guarantee; every invocation
// re-sends the full current state. A single attempt is made per request,
// bounded by the configured timeout.
type InsightService struct {
	store   ScopeReader
	gen     TextGenerator
	clock   core.Clock
	timeout time.Duration
}

func NewInsightService(store ScopeReader, gen TextGenerator, clock core.Clock, timeout time.Duration) *InsightService {
	if clock == nil {
		clock = core.SystemClock()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &InsightService{store: store, gen: gen, clock: clock, timeout: timeout}
}

// Generate returns budgeting advice for the current scope.
func (s *InsightService) Generate(ctx context.Context) (string, error) {
	scope := core.CurrentScope(s.clock)
	records, err := s.store.ListByScope(ctx, scope)
	if err != nil {
		return "", fmt.Errorf("load current transactions: %w", err)
	}
	if len(records) == 0 {
		return "", ErrNoTransactions
	}

	prompt := BuildPrompt(core.Summarize(records))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	slog.InfoContext(ctx, "Insight generated",
		"month", scope.Month,
		"year", scope.Year,
		"record_count", len(records),
		"duration_ms", time.Since(start).Milliseconds())

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackInsight, nil
	}
	return text, nil
}

// BuildPrompt renders the advisor prompt from aggregated figures. Categories
// appear in first-seen order so the listing is stable for a given ledger.
func BuildPrompt(summary core.Summary) string {
	var b strings.Builder
	b.WriteString("You are a personal finance advisor for an Indian user.\n")
	b.WriteString("This month's total income: ₹" + summary.Income.String() + ".\n")
	b.WriteString("Expenses by category: ")
	for i, c := range summary.ByCategory {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Name + ": ₹" + c.Amount.String())
	}
	b.WriteString(".\n")
	b.WriteString("Give a short summary (2-4 sentences) and 3 actionable saving tips in plain English.\n")
	return b.String()
}
