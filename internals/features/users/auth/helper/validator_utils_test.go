package helper

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"nama.panjang+tag@sub.domain.co.id", true},
		{"tanpa-at.example.com", false},
		{"user@", false},
		{"@example.com", false},
		{"user@domain", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := isValidEmail(tt.email); got != tt.want {
				t.Errorf("isValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "Budi", "budi@example.com", "rahasia-kuat", false},
		{"nama kosong", "", "budi@example.com", "rahasia-kuat", true},
		{"nama spasi saja", "   ", "budi@example.com", "rahasia-kuat", true},
		{"email invalid", "Budi", "bukan-email", "rahasia-kuat", true},
		{"password pendek", "Budi", "budi@example.com", "1234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegisterInput(tt.userName, tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegisterInput() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password-uji-123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "password-uji-123" {
		t.Fatal("hash tidak boleh sama dengan plaintext")
	}
	if err := CheckPasswordHash(hash, "password-uji-123"); err != nil {
		t.Errorf("CheckPasswordHash dengan password benar: %v", err)
	}
	if err := CheckPasswordHash(hash, "password-salah"); err == nil {
		t.Error("CheckPasswordHash dengan password salah harusnya gagal")
	}
}
