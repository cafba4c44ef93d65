package service

// Tabel bobot emisi per kategori. Dibuat sekali saat proses start dan
// tidak pernah dimutasi; key di luar tabel dianggap berbobot 0
// (input tetap ditolak lebih dulu oleh validasi DTO).
var (
	TransportCO2 = map[string]float64{
		"walk":      0,
		"bike":      0,
		"public":    2,
		"rideshare": 6,
		"car":       8,
	}

	ElectricityCO2 = map[string]float64{
		"renewable": 0,
		"low":       2,
		"medium":    5,
		"high":      10,
	}

	PlasticCO2 = map[string]float64{
		"none":   0,
		"low":    1,
		"medium": 3,
		"high":   6,
	}
)

// Impact adalah hasil derivasi satu entri.
type Impact struct {
	TransportCO2   float64
	ElectricityCO2 float64
	PlasticCO2     float64
	TotalCO2       float64
	EcoScore       int
}

// ComputeImpact menghitung total emisi dan eco score dari tiga pilihan kategori.
// Rumus: ecoScore = max(0, 100 - totalCO2*3).
func ComputeImpact(transport, electricity, plastic string) Impact {
	tw := TransportCO2[transport]
	ew := ElectricityCO2[electricity]
	pw := PlasticCO2[plastic]
	total := tw + ew + pw

	score := 100 - int(total*3)
	if score < 0 {
		score = 0
	}

	return Impact{
		TransportCO2:   tw,
		ElectricityCO2: ew,
		PlasticCO2:     pw,
		TotalCO2:       total,
		EcoScore:       score,
	}
}
