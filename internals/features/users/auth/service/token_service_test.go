package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "jejakhijau_backend/internals/features/users/user/model"
)

func TestComputeRefreshHashDeterministic(t *testing.T) {
	a := computeRefreshHash("token-abc", "secret-1")
	b := computeRefreshHash("token-abc", "secret-1")
	if !bytes.Equal(a, b) {
		t.Error("hash harus deterministik untuk token+secret yang sama")
	}

	if bytes.Equal(a, computeRefreshHash("token-abc", "secret-2")) {
		t.Error("secret berbeda harus menghasilkan hash berbeda")
	}
	if bytes.Equal(a, computeRefreshHash("token-xyz", "secret-1")) {
		t.Error("token berbeda harus menghasilkan hash berbeda")
	}
	if len(a) != 32 {
		t.Errorf("HMAC-SHA256 harus 32 byte, got %d", len(a))
	}
}

func TestAccessClaimsRoundTrip(t *testing.T) {
	user := userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Budi",
		Email:    "budi@example.com",
	}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	secret := "test-secret"

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(signed, claims, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID)
	}
	if claims["user_name"] != "Budi" || claims["email"] != "budi@example.com" {
		t.Errorf("claims identitas tidak utuh: %v", claims)
	}
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if time.Duration(exp-iat)*time.Second != accessTTLDefault {
		t.Errorf("umur token = %vs, want %v", exp-iat, accessTTLDefault)
	}
}

func TestRefreshClaimsTTL(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	claims := buildRefreshClaims(uuid.New(), now)

	exp := claims["exp"].(int64)
	iat := claims["iat"].(int64)
	if time.Duration(exp-iat)*time.Second != refreshTTLDefault {
		t.Errorf("umur refresh = %ds, want %v", exp-iat, refreshTTLDefault)
	}
}

func TestStrptr(t *testing.T) {
	if strptr("") != nil {
		t.Error("string kosong harus jadi nil")
	}
	if p := strptr("x"); p == nil || *p != "x" {
		t.Error("string non-kosong harus dikembalikan apa adanya")
	}
}
