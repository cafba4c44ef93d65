package service

import (
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jejakhijau_backend/internals/configs"
	authHelper "jejakhijau_backend/internals/features/users/auth/helper"
	authRepo "jejakhijau_backend/internals/features/users/auth/repository"
	userModel "jejakhijau_backend/internals/features/users/user/model"
	helpers "jejakhijau_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userModel.UserModel
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := input.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Hash password
	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.Password = passwordHash
	input.IsActive = true

	// Create user
	if err := authRepo.CreateUser(db, &input); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", nil)
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if configs.GoogleClientID == "" {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	// Decode claim
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	// Cari by google_id
	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// User belum ada -> buat baru. Email Google dianggap sudah terverifikasi.
		newUser := userModel.UserModel{
			UserName:   name,
			Email:      email,
			Password:   generateDummyPassword(),
			GoogleID:   &googleID,
			IsVerified: true,
			IsActive:   true,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = &newUser
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":         user.ID,
			"name":       user.UserName,
			"email":      user.Email,
			"isVerified": user.IsVerified,
			"created_at": user.CreatedAt,
		},
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helpers.GetRawAccessToken(c)
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// Blacklist access token sampai masa berlakunya habis
	if err := blacklistAccessToken(db, raw); err != nil {
		log.Printf("[logout] blacklist failed: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
	}

	// Revoke refresh token (kalau cookie ada)
	if refresh := helpers.GetRefreshTokenFromCookie(c); refresh != "" {
		if err := deleteRefreshTokenByRaw(db, refresh); err != nil {
			log.Printf("[logout] delete refresh failed: %v", err)
		}
	}
	clearAuthCookies(c)

	return helpers.JsonOK(c, "Logout successful", nil)
}

/* ==========================
   DELETE ACCOUNT
========================== */

func DeleteAccount(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := authRepo.DeleteUserCascade(db, userID); err != nil {
		log.Printf("[delete-account] cascade failed: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete account")
	}

	// Token lama tidak boleh dipakai lagi
	if raw := helpers.GetRawAccessToken(c); raw != "" {
		if err := blacklistAccessToken(db, raw); err != nil {
			log.Printf("[delete-account] blacklist failed: %v", err)
		}
	}
	clearAuthCookies(c)

	return helpers.JsonDeleted(c, "Account deleted successfully", nil)
}
