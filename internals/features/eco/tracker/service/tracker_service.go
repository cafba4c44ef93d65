package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jejakhijau_backend/internals/features/eco/tracker/dto"
	"jejakhijau_backend/internals/features/eco/tracker/model"
)

// dailyWindow: satu entri per user per 24 jam berjalan.
const dailyWindow = 24 * time.Hour

// DailyLimitError dikembalikan saat user sudah submit dalam 24 jam terakhir.
type DailyLimitError struct {
	NextAllowedAt time.Time
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("entri harian sudah ada, submission berikutnya setelah %s", e.NextAllowedAt.Format(time.RFC3339))
}

// gateRemaining menghitung sisa waktu tunggu sejak entri terakhir.
// Nol atau negatif artinya boleh submit.
func gateRemaining(lastCreatedAt, now time.Time) time.Duration {
	return dailyWindow - now.Sub(lastCreatedAt)
}

// SubmitEntry menyimpan satu entri harian. Aturan 24 jam di-enforce di
// server, di dalam transaksi yang sama dengan insert: advisory lock per
// user mencegah dua submit beruntun lolos bersamaan.
func SubmitEntry(db *gorm.DB, userID uuid.UUID, input dto.SubmitTrackerRequest) (*model.TrackerEntryModel, error) {
	impact := ComputeImpact(input.Transport, input.Electricity, input.Plastic)

	entry := model.TrackerEntryModel{
		TrackerEntryUserID:      userID,
		TrackerEntryTransport:   input.Transport,
		TrackerEntryElectricity: input.Electricity,
		TrackerEntryPlastic:     input.Plastic,
		TrackerEntryTotalCO2:    impact.TotalCO2,
		TrackerEntryEcoScore:    impact.EcoScore,
		TrackerEntryBreakdown: datatypes.JSONMap{
			"transport":   impact.TransportCO2,
			"electricity": impact.ElectricityCO2,
			"plastic":     impact.PlasticCO2,
		},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Serialisasi per user sampai transaksi selesai
		if err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext(?))`, userID.String()).Error; err != nil {
			return err
		}

		var last model.TrackerEntryModel
		err := tx.Where("tracker_entry_user_id = ?", userID).
			Order("created_at DESC").
			First(&last).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if remaining := gateRemaining(last.CreatedAt, time.Now()); remaining > 0 {
				return &DailyLimitError{NextAllowedAt: last.CreatedAt.Add(dailyWindow)}
			}
		}

		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries mengambil seluruh entri milik user, terbaru dulu.
// Dalam praktik jumlahnya kecil karena TTL 7 hari.
func ListEntries(db *gorm.DB, userID uuid.UUID) ([]model.TrackerEntryModel, error) {
	var entries []model.TrackerEntryModel
	if err := db.Where("tracker_entry_user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
