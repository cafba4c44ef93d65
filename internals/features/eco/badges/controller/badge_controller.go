package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jejakhijau_backend/internals/features/eco/badges/dto"
	"jejakhijau_backend/internals/features/eco/badges/service"
	helpers "jejakhijau_backend/internals/helpers"
)

var validate = validator.New()

type BadgeController struct {
	DB *gorm.DB
}

func NewBadgeController(db *gorm.DB) *BadgeController {
	return &BadgeController{DB: db}
}

// 🟡 POST /api/badges
// Unlock idempotent: request ulang untuk title yang sama tidak menduplikasi.
func (ctrl *BadgeController) Unlock(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input dto.UnlockBadgeRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Please fill all fields")
		}
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	badge, created, err := service.UnlockBadge(ctrl.DB, userID, input)
	if err != nil {
		log.Println("[ERROR] Gagal menyimpan badge:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	if !created {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Badge already unlocked",
		})
	}

	return helpers.JsonCreated(c, "Badge saved successfully", badge)
}

// 🟢 GET /api/my-badges
func (ctrl *BadgeController) GetMyBadges(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	badges, err := service.ListUserBadges(ctrl.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal mengambil badges:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helpers.JsonOK(c, "ok", badges)
}
