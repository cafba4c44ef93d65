package dto

// LeaderboardRow adalah satu baris papan peringkat 7 hari terakhir.
// Tag gorm eksplisit karena TotalCO2 tidak ter-derive konsisten oleh naming
// strategy (CO2 dianggap dua kata).
type LeaderboardRow struct {
	Rank          int     `json:"rank" gorm:"-"`
	Email         string  `json:"email" gorm:"column:email"`
	TotalEcoScore int     `json:"totalEcoScore" gorm:"column:total_eco_score"`
	TotalCO2      float64 `json:"totalCO2" gorm:"column:total_co2"`
	Entries       int     `json:"entries" gorm:"column:entries"`
}
