package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jejakhijau_backend/internals/features/eco/leaderboard/service"
	helpers "jejakhijau_backend/internals/helpers"
)

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

// 🟢 GET /api/leaderboard-tracker (publik)
func (ctrl *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	rows, err := service.ComputeLeaderboard(ctrl.DB)
	if err != nil {
		log.Println("[ERROR] Gagal menghitung leaderboard:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	// Kontrak lama: key "leaderboard", bukan "data"
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"leaderboard": rows,
	})
}
