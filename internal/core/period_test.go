package core

import (
	"testing"
	"time"
)

func TestCurrentScope(t *testing.T) {
	clock := FixedClock(time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC))
	got := CurrentScope(clock)
	if got.Month != 3 || got.Year != 2025 {
		t.Errorf("CurrentScope() = %+v, want month=3 year=2025", got)
	}
}

func TestPreviousScope(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantMonth int
		wantYear  int
	}{
		{
			name:      "mid year",
			now:       time.Date(2025, time.March, 1, 2, 0, 0, 0, time.UTC),
			wantMonth: 2,
			wantYear:  2025,
		},
		{
			name:      "january rolls to december of prior year",
			now:       time.Date(2025, time.January, 1, 2, 0, 0, 0, time.UTC),
			wantMonth: 12,
			wantYear:  2024,
		},
		{
			name:      "december",
			now:       time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC),
			wantMonth: 11,
			wantYear:  2025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviousScope(FixedClock(tt.now))
			if got.Month != tt.wantMonth || got.Year != tt.wantYear {
				t.Errorf("PreviousScope() = %+v, want month=%d year=%d", got, tt.wantMonth, tt.wantYear)
			}
		})
	}
}
