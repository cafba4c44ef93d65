package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	badgeModel "jejakhijau_backend/internals/features/eco/badges/model"
	trackerModel "jejakhijau_backend/internals/features/eco/tracker/model"
	userModel "jejakhijau_backend/internals/features/users/user/model"
)

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "google_id = ?", googleID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUserCascade menghapus user beserta seluruh data turunannya
// (entri tracker + badge) dalam satu transaksi.
func DeleteUserCascade(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tracker_entry_user_id = ?", userID).
			Delete(&trackerModel.TrackerEntryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("badge_user_id = ?", userID).
			Delete(&badgeModel.BadgeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel.UserModel{}, "id = ?", userID).Error
	})
}
