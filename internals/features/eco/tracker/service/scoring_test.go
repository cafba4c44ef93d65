package service

import "testing"

func TestComputeImpact(t *testing.T) {
	tests := []struct {
		name        string
		transport   string
		electricity string
		plastic     string
		wantTotal   float64
		wantScore   int
	}{
		{"semua nol", "walk", "renewable", "none", 0, 100},
		{"kasus terburuk", "car", "high", "high", 24, 28},
		{"campuran menengah", "public", "medium", "medium", 10, 70},
		{"rideshare rendah", "rideshare", "low", "low", 9, 73},
		{"bike renewable low", "bike", "renewable", "low", 1, 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeImpact(tt.transport, tt.electricity, tt.plastic)
			if got.TotalCO2 != tt.wantTotal {
				t.Errorf("TotalCO2 = %v, want %v", got.TotalCO2, tt.wantTotal)
			}
			if got.EcoScore != tt.wantScore {
				t.Errorf("EcoScore = %d, want %d", got.EcoScore, tt.wantScore)
			}
			if sum := got.TransportCO2 + got.ElectricityCO2 + got.PlasticCO2; sum != got.TotalCO2 {
				t.Errorf("breakdown tidak konsisten: %v != %v", sum, got.TotalCO2)
			}
		})
	}
}

func TestComputeImpactScoreNeverNegative(t *testing.T) {
	// 24 * 3 = 72, masih positif; pastikan clamp tetap bekerja untuk
	// kombinasi apapun dari tabel.
	for tr := range TransportCO2 {
		for el := range ElectricityCO2 {
			for pl := range PlasticCO2 {
				if got := ComputeImpact(tr, el, pl); got.EcoScore < 0 || got.EcoScore > 100 {
					t.Errorf("ComputeImpact(%s,%s,%s).EcoScore = %d di luar [0,100]", tr, el, pl, got.EcoScore)
				}
			}
		}
	}
}

func TestComputeImpactUnknownKeyScoresZeroWeight(t *testing.T) {
	got := ComputeImpact("teleport", "renewable", "none")
	if got.TotalCO2 != 0 || got.EcoScore != 100 {
		t.Errorf("key tak dikenal harus berbobot 0, got total=%v score=%d", got.TotalCO2, got.EcoScore)
	}
}
