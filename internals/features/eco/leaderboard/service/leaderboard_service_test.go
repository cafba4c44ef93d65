package service

import (
	"testing"
	"time"

	"jejakhijau_backend/internals/features/eco/leaderboard/dto"
)

func TestAssignDenseRank(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   []int
	}{
		{"kosong", nil, nil},
		{"satu baris", []int{50}, []int{1}},
		{"semua beda", []int{100, 80, 60}, []int{1, 2, 3}},
		{"seri di puncak", []int{100, 100, 80}, []int{1, 1, 2}},
		{"seri di tengah", []int{90, 70, 70, 50}, []int{1, 2, 2, 3}},
		{"semua seri", []int{40, 40, 40}, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]dto.LeaderboardRow, len(tt.scores))
			for i, s := range tt.scores {
				rows[i].TotalEcoScore = s
			}
			AssignDenseRank(rows)
			for i := range rows {
				if rows[i].Rank != tt.want[i] {
					t.Errorf("rows[%d].Rank = %d, want %d", i, rows[i].Rank, tt.want[i])
				}
			}
		})
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	want := time.Date(2026, 3, 3, 8, 30, 0, 0, time.UTC)
	if got := WindowStart(now); !got.Equal(want) {
		t.Errorf("WindowStart(%v) = %v, want %v", now, got, want)
	}
}
