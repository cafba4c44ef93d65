package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trackerController "jejakhijau_backend/internals/features/eco/tracker/controller"
	authMiddleware "jejakhijau_backend/internals/middlewares/auth"
)

// TrackerRoutes mendaftarkan endpoint /api/tracker (semua butuh token)
func TrackerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := trackerController.NewTrackerController(db)

	tracker := api.Group("/tracker", authMiddleware.AuthMiddleware(db))
	tracker.Post("/", ctrl.Submit)
	tracker.Get("/", ctrl.GetEntries)
}
