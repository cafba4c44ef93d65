package dto

// TransportCount hasil GROUP BY transport untuk satu user.
type TransportCount struct {
	Transport string `json:"transport" gorm:"column:transport"`
	Count     int    `json:"count" gorm:"column:count"`
}

// ProfileResponse meringkas seluruh riwayat eco user.
type ProfileResponse struct {
	Email               string `json:"email"`
	TotalEcoScore       int    `json:"totalEcoScore"`
	MostUsedTransport   string `json:"mostUsedTransport"`
	TransportUsageCount int    `json:"transportUsageCount"`
}
