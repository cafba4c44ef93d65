package model

import (
	"time"

	"github.com/google/uuid"
)

type BadgeModel struct {
	BadgeID          uuid.UUID `json:"badge_id" gorm:"column:badge_id;type:uuid;default:gen_random_uuid();primaryKey"`
	BadgeUserID      uuid.UUID `json:"user_id" gorm:"column:badge_user_id;type:uuid;not null;uniqueIndex:idx_badge_user_title"`
	BadgeTitle       string    `json:"title" gorm:"column:badge_title;type:varchar(100);not null;uniqueIndex:idx_badge_user_title"`
	BadgeDescription string    `json:"description" gorm:"column:badge_description;type:text"`
	BadgeUnlocked    bool      `json:"unlocked" gorm:"column:badge_unlocked;not null;default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (BadgeModel) TableName() string {
	return "badges"
}
