package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestSubmitTrackerRequestValidation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		input   SubmitTrackerRequest
		wantErr bool
	}{
		{"valid", SubmitTrackerRequest{Transport: "car", Electricity: "high", Plastic: "high"}, false},
		{"valid nol emisi", SubmitTrackerRequest{Transport: "walk", Electricity: "renewable", Plastic: "none"}, false},
		{"transport kosong", SubmitTrackerRequest{Electricity: "low", Plastic: "low"}, true},
		{"transport tak dikenal", SubmitTrackerRequest{Transport: "teleport", Electricity: "low", Plastic: "low"}, true},
		{"electricity tak dikenal", SubmitTrackerRequest{Transport: "walk", Electricity: "nuclear", Plastic: "low"}, true},
		{"plastic tak dikenal", SubmitTrackerRequest{Transport: "walk", Electricity: "low", Plastic: "zero"}, true},
		{"none bukan nilai electricity", SubmitTrackerRequest{Transport: "walk", Electricity: "none", Plastic: "none"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate.Struct(%+v) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
