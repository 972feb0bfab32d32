package core

import "time"

// Clock abstracts wall-clock time so period resolution is testable
// with a fixed moment.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// Scope identifies the calendar month a transaction belongs to.
type Scope struct {
	Month int // 1-12
	Year  int
}

// CurrentScope resolves the (month, year) pair for the current moment.
func CurrentScope(clock Clock) Scope {
	now := clock.Now()
	return Scope{Month: int(now.Month()), Year: now.Year()}
}

// PreviousScope resolves the scope immediately preceding the current one.
// January rolls back to December of the prior year.
func PreviousScope(clock Clock) Scope {
	s := CurrentScope(clock)
	if s.Month == 1 {
		return Scope{Month: 12, Year: s.Year - 1}
	}
	return Scope{Month: s.Month - 1, Year: s.Year}
}
