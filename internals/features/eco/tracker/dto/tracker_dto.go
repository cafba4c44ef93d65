package dto

// SubmitTrackerRequest adalah body POST /api/tracker.
// totalCO2/ecoScore kiriman client sengaja TIDAK diterima di sini:
// nilai derived selalu dihitung ulang di server.
type SubmitTrackerRequest struct {
	Transport   string `json:"transport" validate:"required,oneof=walk bike public rideshare car"`
	Electricity string `json:"electricity" validate:"required,oneof=renewable low medium high"`
	Plastic     string `json:"plastic" validate:"required,oneof=none low medium high"`
}
