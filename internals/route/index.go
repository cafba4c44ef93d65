// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "jejakhijau_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== ECO =====================
	log.Println("[INFO] Mounting Eco routes...")
	api := app.Group("/api")
	routeDetails.EcoRoutes(api, db)
}
