package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "jejakhijau_backend/internals/features/users/auth/controller"
	middlewares "jejakhijau_backend/internals/middlewares"
	authMiddleware "jejakhijau_backend/internals/middlewares/auth"
)

// AuthRoutes mendaftarkan seluruh endpoint /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	authGroup := app.Group("/api/auth")

	// Public
	authGroup.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	authGroup.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	authGroup.Post("/refresh-token", ctrl.RefreshToken)

	// Butuh token
	authGroup.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
	authGroup.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
	authGroup.Delete("/delete", authMiddleware.AuthMiddleware(db), ctrl.DeleteAccount)
}
