package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaderboardController "jejakhijau_backend/internals/features/eco/leaderboard/controller"
)

// LeaderboardRoutes mendaftarkan endpoint publik leaderboard
func LeaderboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := leaderboardController.NewLeaderboardController(db)
	api.Get("/leaderboard-tracker", ctrl.GetLeaderboard)
}
