package service

import (
	"testing"

	"jejakhijau_backend/internals/features/eco/profile/dto"
)

func TestPickMostUsedTransport(t *testing.T) {
	tests := []struct {
		name      string
		counts    []dto.TransportCount
		want      string
		wantCount int
	}{
		{"kosong", nil, "", 0},
		{
			"mayoritas jelas",
			[]dto.TransportCount{{Transport: "car", Count: 2}, {Transport: "bike", Count: 1}},
			"car", 2,
		},
		{
			"seri, urutan alfabetis menang",
			[]dto.TransportCount{{Transport: "bike", Count: 2}, {Transport: "car", Count: 2}},
			"bike", 2,
		},
		{
			"satu moda",
			[]dto.TransportCount{{Transport: "walk", Count: 5}},
			"walk", 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := PickMostUsedTransport(tt.counts)
			if got != tt.want || count != tt.wantCount {
				t.Errorf("PickMostUsedTransport() = (%q, %d), want (%q, %d)", got, count, tt.want, tt.wantCount)
			}
		})
	}
}
