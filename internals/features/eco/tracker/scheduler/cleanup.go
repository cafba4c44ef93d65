package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"jejakhijau_backend/internals/features/eco/tracker/model"
)

// StartEntryCleanupScheduler menghapus entri tracker yang lebih tua dari
// TTL (default 7 hari), pengganti TTL index pada sistem lama.
func StartEntryCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TRACKER_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan tracker_entries...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			res := db.Where("created_at < ?", deleteBefore).
				Delete(&model.TrackerEntryModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus entri lama: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d entri kadaluarsa dihapus", res.RowsAffected)
			} else {
				log.Println("[CLEANUP] Tidak ada entri yang memenuhi syarat dihapus")
			}

			// Jalankan tiap jam
			time.Sleep(1 * time.Hour)
		}
	}()
}
