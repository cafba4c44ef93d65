package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jejakhijau_backend/internals/features/eco/profile/service"
	helpers "jejakhijau_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// 🟢 GET /api/profile-tracker
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	profile, err := service.ComputeProfile(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoEntries) {
			return helpers.JsonError(c, fiber.StatusNotFound, "No tracker data found")
		}
		log.Println("[ERROR] Gagal menghitung profile:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":             true,
		"email":               profile.Email,
		"totalEcoScore":       profile.TotalEcoScore,
		"mostUsedTransport":   profile.MostUsedTransport,
		"transportUsageCount": profile.TransportUsageCount,
	})
}
