package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jejakhijau_backend/internals/features/eco/tracker/dto"
	"jejakhijau_backend/internals/features/eco/tracker/service"
	helpers "jejakhijau_backend/internals/helpers"
)

var validate = validator.New()

type TrackerController struct {
	DB *gorm.DB
}

func NewTrackerController(db *gorm.DB) *TrackerController {
	return &TrackerController{DB: db}
}

// 🟡 POST /api/tracker
// Menyimpan satu eco-log harian. totalCO2 & ecoScore dihitung server-side.
func (ctrl *TrackerController) Submit(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input dto.SubmitTrackerRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fieldErr := range ve {
				if fieldErr.Tag() == "required" {
					return helpers.JsonError(c, fiber.StatusBadRequest, "Please fill all fields")
				}
			}
			return helpers.JsonError(c, fiber.StatusBadRequest, "Kategori tidak dikenal")
		}
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	entry, err := service.SubmitEntry(ctrl.DB, userID, input)
	if err != nil {
		var dle *service.DailyLimitError
		if errors.As(err, &dle) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":         false,
				"message":         "Entri hari ini sudah tercatat. Coba lagi besok.",
				"next_allowed_at": dle.NextAllowedAt,
			})
		}
		log.Println("[ERROR] Gagal menyimpan eco entry:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helpers.JsonCreated(c, "Eco data submitted successfully", entry)
}

// 🟢 GET /api/tracker
// Mengambil seluruh entri milik user (terbaru dulu).
func (ctrl *TrackerController) GetEntries(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	entries, err := service.ListEntries(ctrl.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal mengambil eco entries:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helpers.JsonOK(c, "ok", entries)
}
