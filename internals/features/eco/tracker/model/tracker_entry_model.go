package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TrackerEntryModel merepresentasikan satu entri eco-log harian milik user.
// Entri bersifat immutable setelah dibuat; baris yang lebih tua dari 7 hari
// dihapus oleh scheduler.
type TrackerEntryModel struct {
	TrackerEntryID          uint              `gorm:"column:tracker_entry_id;primaryKey" json:"tracker_entry_id"`
	TrackerEntryUserID      uuid.UUID         `gorm:"column:tracker_entry_user_id;type:uuid;not null;index:idx_tracker_entry_user_created" json:"tracker_entry_user_id"`
	TrackerEntryTransport   string            `gorm:"column:tracker_entry_transport;size:20;not null" json:"transport"`
	TrackerEntryElectricity string            `gorm:"column:tracker_entry_electricity;size:20;not null" json:"electricity"`
	TrackerEntryPlastic     string            `gorm:"column:tracker_entry_plastic;size:20;not null" json:"plastic"`
	TrackerEntryTotalCO2    float64           `gorm:"column:tracker_entry_total_co2;not null" json:"totalCO2"`
	TrackerEntryEcoScore    int               `gorm:"column:tracker_entry_eco_score;not null" json:"ecoScore"`
	TrackerEntryBreakdown   datatypes.JSONMap `gorm:"column:tracker_entry_breakdown" json:"breakdown,omitempty"` // rincian emisi per kategori
	CreatedAt               time.Time         `gorm:"column:created_at;autoCreateTime;index:idx_tracker_entry_user_created" json:"created_at"`
}

func (TrackerEntryModel) TableName() string {
	return "tracker_entries"
}
