package service

import (
	"time"

	"gorm.io/gorm"

	"jejakhijau_backend/internals/features/eco/leaderboard/dto"
)

const (
	windowDays = 7
	maxRows    = 10
)

// WindowStart menghitung batas bawah jendela leaderboard.
func WindowStart(now time.Time) time.Time {
	return now.Add(-windowDays * 24 * time.Hour)
}

// AssignDenseRank mengisi Rank pada baris yang sudah terurut skor menurun.
// Skor sama mendapat rank sama, rank berikutnya tidak melompat (1,1,2).
func AssignDenseRank(rows []dto.LeaderboardRow) {
	rank := 0
	prevScore := 0
	for i := range rows {
		if i == 0 || rows[i].TotalEcoScore != prevScore {
			rank++
			prevScore = rows[i].TotalEcoScore
		}
		rows[i].Rank = rank
	}
}

// ComputeLeaderboard mengagregasi entri 7 hari terakhir per user,
// urut total eco score menurun, maksimal 10 baris.
func ComputeLeaderboard(db *gorm.DB) ([]dto.LeaderboardRow, error) {
	rows := []dto.LeaderboardRow{}

	err := db.Raw(`
		SELECT u.email AS email,
		       SUM(t.tracker_entry_eco_score)::int AS total_eco_score,
		       SUM(t.tracker_entry_total_co2) AS total_co2,
		       COUNT(*)::int AS entries
		FROM tracker_entries t
		JOIN users u ON u.id = t.tracker_entry_user_id
		WHERE t.created_at >= ?
		GROUP BY u.email
		ORDER BY total_eco_score DESC, u.email ASC
		LIMIT ?`, WindowStart(time.Now()), maxRows).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	AssignDenseRank(rows)
	return rows, nil
}
