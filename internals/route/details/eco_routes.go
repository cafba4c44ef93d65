package details

import (
	badgeRoute "jejakhijau_backend/internals/features/eco/badges/route"
	leaderboardRoute "jejakhijau_backend/internals/features/eco/leaderboard/route"
	profileRoute "jejakhijau_backend/internals/features/eco/profile/route"
	trackerRoute "jejakhijau_backend/internals/features/eco/tracker/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EcoRoutes memasang seluruh fitur eco di bawah /api
func EcoRoutes(api fiber.Router, db *gorm.DB) {
	trackerRoute.TrackerRoutes(api, db)
	leaderboardRoute.LeaderboardRoutes(api, db)
	profileRoute.ProfileRoutes(api, db)
	badgeRoute.BadgeRoutes(api, db)
}
