package database

import (
	"log"

	badgeModel "jejakhijau_backend/internals/features/eco/badges/model"
	trackerModel "jejakhijau_backend/internals/features/eco/tracker/model"
	authModel "jejakhijau_backend/internals/features/users/auth/model"
	userModel "jejakhijau_backend/internals/features/users/user/model"
)

// Migrate menjalankan auto-migration untuk seluruh tabel inti.
// Unique index komposit (badge_user_id, badge_title) ikut dibuat di sini;
// idempotensi unlock badge bergantung pada index itu, bukan cek aplikasi.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&trackerModel.TrackerEntryModel{},
		&badgeModel.BadgeModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}
	log.Println("✅ Migrasi skema selesai.")
}
