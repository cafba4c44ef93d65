package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeController "jejakhijau_backend/internals/features/eco/badges/controller"
	authMiddleware "jejakhijau_backend/internals/middlewares/auth"
)

// BadgeRoutes mendaftarkan endpoint badge (semua butuh token)
func BadgeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := badgeController.NewBadgeController(db)

	api.Post("/badges", authMiddleware.AuthMiddleware(db), ctrl.Unlock)
	api.Get("/my-badges", authMiddleware.AuthMiddleware(db), ctrl.GetMyBadges)
}
