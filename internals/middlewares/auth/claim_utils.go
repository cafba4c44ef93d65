// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "jejakhijau_backend/internals/features/users/user/model"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// 1) Authorization header, fallback cookie "access_token"
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			return "", errors.New("Format Authorization harus 'Bearer <token>'")
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		if token == "" {
			return "", errors.New("Token kosong")
		}
		return token, nil
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	return "", errors.New("Unauthorized - Token tidak ditemukan")
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	// klaim utama "sub", fallback "id" (token lama)
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return uuid.Parse(sub)
	}
	if id, ok := claims["id"].(string); ok && id != "" {
		return uuid.Parse(id)
	}
	return uuid.Nil, errors.New("klaim user id tidak ditemukan")
}

/* ======== Validators ======== */

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("klaim exp tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("klaim exp tidak valid")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token kadaluarsa")
	}
	return nil
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var user userModel.UserModel
	if err := db.Select("id", "is_active").First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	if !user.IsActive {
		return errors.New("user nonaktif")
	}
	return nil
}

/* ======== Locals ======== */

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_name"].(string); ok && v != "" {
		c.Locals("user_name", v)
	}
	if v, ok := claims["email"].(string); ok && v != "" {
		c.Locals("user_email", v)
	}
}
