package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jejakhijau_backend/internals/features/eco/badges/dto"
	"jejakhijau_backend/internals/features/eco/badges/model"
)

// UnlockBadge menyimpan badge untuk user. Idempotent: index unik
// (badge_user_id, badge_title) + ON CONFLICT DO NOTHING, jadi unlock
// kedua untuk title yang sama tidak membuat baris baru.
// Return kedua = true bila badge baru benar-benar tersimpan.
func UnlockBadge(db *gorm.DB, userID uuid.UUID, input dto.UnlockBadgeRequest) (*model.BadgeModel, bool, error) {
	badge := model.BadgeModel{
		BadgeUserID:      userID,
		BadgeTitle:       input.Title,
		BadgeDescription: input.Description,
		BadgeUnlocked:    true,
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "badge_user_id"}, {Name: "badge_title"}},
		DoNothing: true,
	}).Create(&badge)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &badge, true, nil
}

// ListUserBadges mengambil badge milik user, terbaru dulu.
func ListUserBadges(db *gorm.DB, userID uuid.UUID) ([]model.BadgeModel, error) {
	var badges []model.BadgeModel
	if err := db.Where("badge_user_id = ?", userID).
		Order("created_at DESC").
		Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}
