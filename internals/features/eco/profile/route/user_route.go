package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "jejakhijau_backend/internals/features/eco/profile/controller"
	authMiddleware "jejakhijau_backend/internals/middlewares/auth"
)

// ProfileRoutes mendaftarkan endpoint ringkasan profil (butuh token)
func ProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)
	api.Get("/profile-tracker", authMiddleware.AuthMiddleware(db), ctrl.GetProfile)
}
