package service

import (
	"testing"
	"time"
)

func TestGateRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		last    time.Time
		blocked bool
	}{
		{"baru saja submit", now.Add(-1 * time.Minute), true},
		{"23 jam lalu", now.Add(-23 * time.Hour), true},
		{"tepat 24 jam", now.Add(-24 * time.Hour), false},
		{"25 jam lalu", now.Add(-25 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining := gateRemaining(tt.last, now)
			if got := remaining > 0; got != tt.blocked {
				t.Errorf("gateRemaining(%v) = %v, blocked harusnya %v", tt.last, remaining, tt.blocked)
			}
		})
	}
}

func TestDailyLimitErrorMessage(t *testing.T) {
	next := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	err := &DailyLimitError{NextAllowedAt: next}
	want := "entri harian sudah ada, submission berikutnya setelah 2026-03-11T12:00:00Z"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
