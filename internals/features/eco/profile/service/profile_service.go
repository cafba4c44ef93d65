package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jejakhijau_backend/internals/features/eco/profile/dto"
)

// ErrNoEntries dikembalikan saat user belum punya satu pun entri tracker.
var ErrNoEntries = errors.New("belum ada entri tracker")

// PickMostUsedTransport memilih moda dengan hitungan terbanyak.
// Baris diasumsikan terurut count menurun lalu nama menaik, jadi
// seri jatuh ke nama alfabetis pertama (deterministik).
func PickMostUsedTransport(counts []dto.TransportCount) (string, int) {
	if len(counts) == 0 {
		return "", 0
	}
	best := counts[0]
	for _, c := range counts[1:] {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Transport, best.Count
}

// ComputeProfile menghitung ringkasan seumur hidup user: total eco score
// dan moda transport yang paling sering dipakai.
func ComputeProfile(db *gorm.DB, userID uuid.UUID) (*dto.ProfileResponse, error) {
	var agg struct {
		Email         string `gorm:"column:email"`
		TotalEcoScore int    `gorm:"column:total_eco_score"`
		Entries       int    `gorm:"column:entries"`
	}
	err := db.Raw(`
		SELECT u.email AS email,
		       COALESCE(SUM(t.tracker_entry_eco_score), 0)::int AS total_eco_score,
		       COUNT(t.tracker_entry_id)::int AS entries
		FROM users u
		LEFT JOIN tracker_entries t ON t.tracker_entry_user_id = u.id
		WHERE u.id = ?
		GROUP BY u.email`, userID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	if agg.Entries == 0 {
		return nil, ErrNoEntries
	}

	counts := []dto.TransportCount{}
	err = db.Raw(`
		SELECT tracker_entry_transport AS transport,
		       COUNT(*)::int AS count
		FROM tracker_entries
		WHERE tracker_entry_user_id = ?
		GROUP BY tracker_entry_transport
		ORDER BY count DESC, transport ASC`, userID).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	transport, usage := PickMostUsedTransport(counts)
	return &dto.ProfileResponse{
		Email:               agg.Email,
		TotalEcoScore:       agg.TotalEcoScore,
		MostUsedTransport:   transport,
		TransportUsageCount: usage,
	}, nil
}
